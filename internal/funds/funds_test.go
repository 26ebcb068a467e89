package funds_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/funds"
	"github.com/MAYZGitHub/mayz-tools/internal/funds/mocks"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

const (
	userAddress = "addr1q9987jqul9rh0ezz70rdt0njqmc36czpxq4fm84llxk76nahpsv997yptprf8scv982c2zmafd6evg80av0l4g88x7ustehyhq"
	enterprise  = "addr1v9987jqul9rh0ezz70rdt0njqmc36czpxq4fm84llxk76nccnrqxg"

	userPKH types.Hex = "4a7f481cf94777e442f3c6d5be7206f11d6041302a9d9ebff9aded4f"
)

var (
	cdex = funds.Fund{
		ID:        "68546467e324e6b50d6651aa",
		Name:      "CDEX",
		PolicyID:  "fba03fec6fe3e948446ac01578ddbbdb9f4bcebd2d4eb18f285868dc",
		TokenName: "43444558",
	}
	ctool = funds.Fund{
		ID:       "687a9c693f7439a906a207f7",
		Name:     "CTOOL",
		PolicyID: "23b267d4504fffec8ee38e81a9bc3947429f1b25b51de6df2831b593",
	}
)

func day(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func deposit(date string, total int64) funds.Deposit {
	return funds.Deposit{Date: day(date), NewDeposits: big.NewInt(total), TotalDeposits: big.NewInt(total)}
}

func delegation(date string, total int64) funds.Delegation {
	return funds.Delegation{Date: day(date), NewDelegations: big.NewInt(total), TotalDelegations: big.NewInt(total)}
}

func userDelegation(date string, total int64) funds.UserDelegation {
	return funds.UserDelegation{Date: day(date), NewDelegations: big.NewInt(total), TotalDelegations: big.NewInt(total)}
}

func TestService_List(t *testing.T) {
	t.Run("should return the funds of the source", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex, ctool}, nil).Once()

		got, err := funds.New(source).List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []funds.Fund{cdex, ctool}, got)
	})

	t.Run("should wrap source errors", func(t *testing.T) {
		source := mocks.NewSource(t)
		sourceErr := errors.New("bad gateway")
		source.EXPECT().ListFunds(mock.Anything).Return(nil, sourceErr).Once()

		_, err := funds.New(source).List(t.Context())
		assert.ErrorIs(t, err, sourceErr)
		assert.ErrorContains(t, err, "fetch funds")
	})
}

func TestService_Select(t *testing.T) {
	t.Run("should return every fund without ids", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex, ctool}, nil).Once()

		got, err := funds.New(source).Select(t.Context(), nil)
		require.NoError(t, err)
		assert.Equal(t, []funds.Fund{cdex, ctool}, got)
	})

	t.Run("should keep the requested order and drop repeats", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex, ctool}, nil).Once()

		got, err := funds.New(source).Select(t.Context(), []string{ctool.ID, cdex.ID, ctool.ID})
		require.NoError(t, err)
		assert.Equal(t, []funds.Fund{ctool, cdex}, got)
	})

	t.Run("should reject unknown ids", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex}, nil).Once()

		_, err := funds.New(source).Select(t.Context(), []string{"000000000000000000000000"})
		assert.ErrorIs(t, err, funds.ErrUnknownFund)
		assert.ErrorContains(t, err, "000000000000000000000000")
	})
}

func TestService_History(t *testing.T) {
	t.Run("should join deposits and delegations of every selected fund", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex, ctool}, nil).Once()
		source.EXPECT().DepositHistory(mock.Anything, cdex.ID).Return([]funds.Deposit{
			deposit("2025-06-20T00:00:00Z", 300),
			deposit("2025-06-19T00:00:00Z", 100),
		}, nil).Once()
		source.EXPECT().DelegationHistory(mock.Anything, cdex.ID).Return([]funds.Delegation{
			delegation("2025-06-21T00:00:00Z", 50),
		}, nil).Once()

		got, err := funds.New(source).History(t.Context(), []string{cdex.ID})
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, cdex, got[0].Fund)
		require.Len(t, got[0].Days, 3)
		assert.Equal(t, "2025-06-19", got[0].Days[0].Date)
		assert.Equal(t, "2025-06-20", got[0].Days[1].Date)
		assert.Equal(t, "2025-06-21", got[0].Days[2].Date)
		assert.Nil(t, got[0].Days[2].Deposit)
		assert.Equal(t, "50", got[0].Days[2].Delegation.TotalDelegations.String())
	})

	t.Run("should fail when a history cannot be fetched", func(t *testing.T) {
		source := mocks.NewSource(t)
		sourceErr := errors.New("timeout")
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex, ctool}, nil).Once()
		source.EXPECT().DepositHistory(mock.Anything, cdex.ID).Return(nil, nil).Once()
		source.EXPECT().DelegationHistory(mock.Anything, cdex.ID).Return(nil, sourceErr).Once()

		got, err := funds.New(source).History(t.Context(), nil)
		assert.ErrorIs(t, err, sourceErr)
		assert.ErrorContains(t, err, "delegations of CDEX")
		assert.Nil(t, got)
	})
}

func TestService_UserHistory(t *testing.T) {
	t.Run("should attach the user delegations of the wallet owner", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().WalletByPaymentKeyHash(mock.Anything, userPKH).Return(funds.Wallet{ID: "w-1", PaymentKeyHash: userPKH}, nil).Once()
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex, ctool}, nil).Once()
		source.EXPECT().DepositHistory(mock.Anything, ctool.ID).Return([]funds.Deposit{
			deposit("2025-07-01T00:00:00Z", 10),
		}, nil).Once()
		source.EXPECT().DelegationHistory(mock.Anything, ctool.ID).Return([]funds.Delegation{
			delegation("2025-07-02T00:00:00Z", 4),
		}, nil).Once()
		source.EXPECT().UserDelegationHistory(mock.Anything, userPKH, ctool.ID).Return([]funds.UserDelegation{
			userDelegation("2025-07-02T00:00:00Z", 4),
			userDelegation("2025-07-03T00:00:00Z", 9),
		}, nil).Once()

		got, err := funds.New(source).UserHistory(t.Context(), userAddress, []string{ctool.ID})
		require.NoError(t, err)

		assert.Equal(t, userAddress, got.Address)
		assert.Equal(t, userPKH, got.Identity.PaymentKeyHash)
		assert.Equal(t, "w-1", got.WalletID)
		require.Len(t, got.Funds, 1)

		days := got.Funds[0].Days
		require.Len(t, days, 2)
		assert.Nil(t, days[0].User)
		require.NotNil(t, days[1].User)
		assert.Equal(t, "4", days[1].User.TotalDelegations.String())
	})

	t.Run("should fail when the owner has no wallet", func(t *testing.T) {
		source := mocks.NewSource(t)
		source.EXPECT().WalletByPaymentKeyHash(mock.Anything, userPKH).Return(funds.Wallet{}, funds.ErrWalletNotFound).Once()

		_, err := funds.New(source).UserHistory(t.Context(), userAddress, nil)
		assert.ErrorIs(t, err, funds.ErrWalletNotFound)
		assert.ErrorContains(t, err, string(userPKH))
	})

	t.Run("should refuse addresses without a payment and stake key", func(t *testing.T) {
		source := mocks.NewSource(t)

		_, err := funds.New(source).UserHistory(t.Context(), enterprise, nil)
		assert.ErrorIs(t, err, cardano.ErrUnsupportedAddressFormat)
	})

	t.Run("should fail when the user history cannot be fetched", func(t *testing.T) {
		source := mocks.NewSource(t)
		sourceErr := errors.New("forbidden")
		source.EXPECT().WalletByPaymentKeyHash(mock.Anything, userPKH).Return(funds.Wallet{ID: "w-1"}, nil).Once()
		source.EXPECT().ListFunds(mock.Anything).Return([]funds.Fund{cdex}, nil).Once()
		source.EXPECT().DepositHistory(mock.Anything, cdex.ID).Return(nil, nil).Once()
		source.EXPECT().DelegationHistory(mock.Anything, cdex.ID).Return(nil, nil).Once()
		source.EXPECT().UserDelegationHistory(mock.Anything, userPKH, cdex.ID).Return(nil, sourceErr).Once()

		_, err := funds.New(source).UserHistory(t.Context(), userAddress, nil)
		assert.ErrorIs(t, err, sourceErr)
	})
}

func TestJoin(t *testing.T) {
	t.Run("should return the sorted union of deposit and delegation days", func(t *testing.T) {
		days := funds.Join(
			[]funds.Deposit{deposit("2025-06-22T00:00:00Z", 3), deposit("2025-06-20T00:00:00Z", 1)},
			[]funds.Delegation{delegation("2025-06-21T00:00:00Z", 2), delegation("2025-06-22T12:00:00Z", 5)},
			nil,
		)

		require.Len(t, days, 3)
		assert.Equal(t, "2025-06-20", days[0].Date)
		assert.Nil(t, days[0].Delegation)
		assert.Equal(t, "2025-06-21", days[1].Date)
		assert.Nil(t, days[1].Deposit)
		assert.Equal(t, "2025-06-22", days[2].Date)
		assert.Equal(t, "3", days[2].Deposit.TotalDeposits.String())
		assert.Equal(t, "5", days[2].Delegation.TotalDelegations.String())
	})

	t.Run("should only attach user records to known days", func(t *testing.T) {
		days := funds.Join(
			[]funds.Deposit{deposit("2025-06-20T00:00:00Z", 1)},
			nil,
			[]funds.UserDelegation{userDelegation("2025-06-19T00:00:00Z", 7), userDelegation("2025-06-20T00:00:00Z", 8)},
		)

		require.Len(t, days, 1)
		require.NotNil(t, days[0].User)
		assert.Equal(t, "8", days[0].User.TotalDelegations.String())
	})

	t.Run("should key days in UTC", func(t *testing.T) {
		days := funds.Join([]funds.Deposit{deposit("2025-06-19T23:30:00-03:00", 1)}, nil, nil)

		require.Len(t, days, 1)
		assert.Equal(t, "2025-06-20", days[0].Date)
	})

	t.Run("should keep the last record of a day", func(t *testing.T) {
		days := funds.Join(
			[]funds.Deposit{deposit("2025-06-20T01:00:00Z", 1), deposit("2025-06-20T02:00:00Z", 2)},
			nil,
			nil,
		)

		require.Len(t, days, 1)
		assert.Equal(t, "2", days[0].Deposit.TotalDeposits.String())
	})

	t.Run("should return no days without records", func(t *testing.T) {
		assert.Empty(t, funds.Join(nil, nil, nil))
	})
}
