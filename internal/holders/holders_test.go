package holders_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MAYZGitHub/mayz-tools/internal/holders"
	"github.com/MAYZGitHub/mayz-tools/internal/holders/mocks"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
)

const (
	gMAYZ = "e46f629f31e4a3c4ba16dd3bc396f24fb222f2776e7d698f2bda5018674d41595a"

	baseAddress   = "addr1q9987jqul9rh0ezz70rdt0njqmc36czpxq4fm84llxk76nahpsv997yptprf8scv982c2zmafd6evg80av0l4g88x7ustehyhq"
	scriptAddress = "addr1z9987jqul9rh0ezz70rdt0njqmc36czpxq4fm84llxk76nahpsv997yptprf8scv982c2zmafd6evg80av0l4g88x7usykwlf5"
	otherAddress  = "addr1qxf0vp30qg9p3umn9pwvqf028fcv2ye2j2fyg6ydd9k9t9zry0szdxwvzdv2p7zapcc7warkxwrvf284nudvunw579sq2q27sc"
	enterprise    = "addr1w9cplc68n2q4x3kjaf6djfsm4zhczkuftmx3nqtcpw6rvts74alaf"

	sharedStake = "stake1uxmscxzjlzq4s35ncvxzn4v9pd75kavkyrh7k8l65rnn0wghcrmwg"
	otherStake  = "stake1u9pj8cpxn8xpxk9qlpwsuv08w3mr8pky4r6e7xkwfh20zcqx8dahf"
)

func TestList(t *testing.T) {
	t.Run("should attach the stake address of every holder", func(t *testing.T) {
		source := mocks.NewHolderSource(t)
		source.EXPECT().FetchAssetHolders(mock.Anything, gMAYZ).Return([]holders.Holder{
			{Address: baseAddress, Quantity: "100"},
			{Address: enterprise, Quantity: "7"},
			{Address: otherAddress, Quantity: "18446744073709551617"},
		}, nil).Once()

		rows, err := holders.New(source).List(t.Context(), gMAYZ)
		require.NoError(t, err)

		require.Len(t, rows, 3)
		assert.Equal(t, sharedStake, rows[0].StakeAddress)
		assert.Equal(t, "100", rows[0].Quantity.String())
		assert.Empty(t, rows[1].StakeAddress)
		assert.Equal(t, otherStake, rows[2].StakeAddress)
		assert.Equal(t, "18446744073709551617", rows[2].Quantity.String())
	})

	t.Run("should wrap source errors", func(t *testing.T) {
		source := mocks.NewHolderSource(t)
		sourceErr := errors.New("forbidden")
		source.EXPECT().FetchAssetHolders(mock.Anything, gMAYZ).Return(nil, sourceErr).Once()

		_, err := holders.New(source).List(t.Context(), gMAYZ)
		assert.ErrorIs(t, err, sourceErr)
	})

	t.Run("should reject invalid quantities", func(t *testing.T) {
		source := mocks.NewHolderSource(t)
		source.EXPECT().FetchAssetHolders(mock.Anything, gMAYZ).Return([]holders.Holder{
			{Address: baseAddress, Quantity: "1.5"},
		}, nil).Once()

		_, err := holders.New(source).List(t.Context(), gMAYZ)
		assert.ErrorIs(t, err, ledger.ErrInvalidQuantity)
	})
}

func TestGroupByStake(t *testing.T) {
	rows := []holders.HolderRow{
		{Address: otherAddress, StakeAddress: otherStake, Quantity: big.NewInt(1)},
		{Address: baseAddress, StakeAddress: sharedStake, Quantity: big.NewInt(100)},
		{Address: enterprise, Quantity: big.NewInt(5)},
		{Address: scriptAddress, StakeAddress: sharedStake, Quantity: big.NewInt(20)},
	}

	got := holders.GroupByStake(rows)

	require.Len(t, got, 2)
	assert.Equal(t, otherStake, got[0].StakeAddress)
	assert.Equal(t, "1", got[0].Quantity.String())
	assert.Equal(t, 1, got[0].Addresses)
	assert.Equal(t, sharedStake, got[1].StakeAddress)
	assert.Equal(t, "120", got[1].Quantity.String())
	assert.Equal(t, 2, got[1].Addresses)

	// the input rows are not modified
	assert.Equal(t, "100", rows[1].Quantity.String())

	assert.Empty(t, holders.GroupByStake(nil))
}
