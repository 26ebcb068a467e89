// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the stock tags it registers two Cardano-specific ones:
//
//   - cardano_hash: a 28-byte hash rendered as 56 hex characters (key hashes,
//     script hashes, policy ids).
//   - asset_unit: either "lovelace" or a policy id followed by an asset name of
//     at most 32 bytes, all hex.
package validator

import (
	"encoding/hex"
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

const (
	// hashHexLen is the hex length of a 28-byte Blake2b-224 hash.
	hashHexLen = 56

	// maxAssetNameHexLen is the hex length of the longest asset name (32 bytes).
	maxAssetNameHexLen = 64

	lovelaceUnit = "lovelace"
)

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	_ = validator.RegisterValidation("cardano_hash", validateCardanoHash)
	_ = validator.RegisterValidation("asset_unit", validateAssetUnit)
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsCardanoHash reports whether s is a 28-byte hash in hex.
func IsCardanoHash(s string) bool {
	return len(s) == hashHexLen && isHex(s)
}

// IsAssetUnit reports whether s is "lovelace" or policy id + hex asset name.
func IsAssetUnit(s string) bool {
	if s == lovelaceUnit {
		return true
	}

	if len(s) < hashHexLen || len(s) > hashHexLen+maxAssetNameHexLen {
		return false
	}

	return isHex(s)
}

func validateCardanoHash(fl gvalidator.FieldLevel) bool {
	return IsCardanoHash(fl.Field().String())
}

func validateAssetUnit(fl gvalidator.FieldLevel) bool {
	return IsAssetUnit(fl.Field().String())
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
//	type Input struct {
//	    Unit string `validate:"required,asset_unit"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against a tag expression, e.g.
// Var(pkh, "required,cardano_hash").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
