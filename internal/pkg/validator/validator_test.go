package validator

import (
	"errors"
	"strings"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	policyID = "e46f629f31e4a3c4ba16dd3bc396f24fb222f2776e7d698f2bda5018"
	gMAYZ    = policyID + "674d41595a"
)

func TestValidatorInitialization(t *testing.T) {
	t.Run("should initialize validator instance", func(t *testing.T) {
		assert.NotNil(t, validator)
	})

	t.Run("should support required struct validation", func(t *testing.T) {
		type NestedStruct struct {
			Inner struct {
				Value string `validate:"required"`
			} `validate:"required"`
		}

		nested := NestedStruct{}
		nested.Inner.Value = "test"

		assert.NoError(t, validator.Struct(nested))
	})
}

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		type TestStruct struct {
			Name  string `validate:"required"`
			Email string `validate:"required,email"`
		}

		err := gvalidator.New().Struct(TestStruct{Email: "invalid"})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Name': value '' does not meet the requirements for the 'required' validation")
		assert.Contains(t, formattedErr.Error(), "'Email': value 'invalid' does not meet the requirements for the 'email' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("database connection failed")
		assert.Equal(t, originalErr, formatError(originalErr))
	})
}

func TestValidate(t *testing.T) {
	type Contract struct {
		Name     string `validate:"required"`
		Address  string `validate:"required,startswith=addr"`
		Policy   string `validate:"omitempty,cardano_hash"`
		GovToken string `validate:"omitempty,asset_unit"`
	}

	t.Run("should pass when all fields are valid", func(t *testing.T) {
		err := Validate(Contract{
			Name:     "Staking MAYZ",
			Address:  "addr1w9cplc68n2q4x3kjaf6djfsm4zhczkuftmx3nqtcpw6rvts74alaf",
			Policy:   policyID,
			GovToken: gMAYZ,
		})
		assert.NoError(t, err)
	})

	t.Run("should fail with every invalid field reported", func(t *testing.T) {
		err := Validate(Contract{
			Address:  "stake1xyz",
			Policy:   "abc",
			GovToken: "TOKENX",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)

		errStr := err.Error()
		assert.Contains(t, errStr, "'Name': value '' does not meet the requirements for the 'required' validation")
		assert.Contains(t, errStr, "'Address': value 'stake1xyz' does not meet the requirements for the 'startswith' validation")
		assert.Contains(t, errStr, "'Policy': value 'abc' does not meet the requirements for the 'cardano_hash' validation")
		assert.Contains(t, errStr, "'GovToken': value 'TOKENX' does not meet the requirements for the 'asset_unit' validation")
	})
}

func TestVar(t *testing.T) {
	t.Run("should accept a key hash", func(t *testing.T) {
		assert.NoError(t, Var(strings.Repeat("aa", 28), "required,cardano_hash"))
	})

	t.Run("should reject a short hash", func(t *testing.T) {
		err := Var(strings.Repeat("aa", 27), "required,cardano_hash")
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestIsCardanoHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"policy id", policyID, true},
		{"uppercase hex", strings.ToUpper(policyID), true},
		{"too short", policyID[:54], false},
		{"too long", policyID + "00", false},
		{"not hex", strings.Repeat("zz", 28), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCardanoHash(tt.input))
		})
	}
}

func TestIsAssetUnit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lovelace", "lovelace", true},
		{"policy with name", gMAYZ, true},
		{"policy with empty name", policyID, true},
		{"name too long", policyID + strings.Repeat("00", 33), false},
		{"odd length name", policyID + "0", false},
		{"ticker", "TOKENX", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAssetUnit(tt.input))
		})
	}
}
