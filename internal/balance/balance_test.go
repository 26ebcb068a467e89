package balance_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
)

func TestReportFilter(t *testing.T) {
	const token = "TOKENX"

	both := func() ledger.Ledger {
		return ledger.Ledger{ledger.Lovelace: big.NewInt(10), token: big.NewInt(2)}
	}

	r := balance.Report{
		RunID: "run",
		Wallets: []balance.WalletReport{
			{
				Wallet:   alice,
				Holdings: both(),
				Locked:   both(),
				Contracts: []balance.ContractReport{
					{Contract: swapOffer, Ledger: both(), Utxos: []string{"tx1#0"}},
				},
			},
			{Wallet: bob, Err: errors.New("boom")},
		},
		Holdings: both(),
		Locked:   both(),
		Combined: both(),
	}

	t.Run("should narrow every ledger to the given units", func(t *testing.T) {
		got := r.Filter(token)

		want := ledger.Ledger{token: big.NewInt(2)}
		assert.Equal(t, "run", got.RunID)
		assert.True(t, want.Equal(got.Holdings))
		assert.True(t, want.Equal(got.Locked))
		assert.True(t, want.Equal(got.Combined))
		assert.True(t, want.Equal(got.Wallets[0].Holdings))
		assert.True(t, want.Equal(got.Wallets[0].Contracts[0].Ledger))
		assert.Equal(t, []string{"tx1#0"}, got.Wallets[0].Contracts[0].Utxos)
		assert.Len(t, got.Failed(), 1)
	})

	t.Run("should leave the original report untouched", func(t *testing.T) {
		_ = r.Filter(token)

		assert.Len(t, r.Holdings, 2)
		assert.Len(t, r.Wallets[0].Contracts[0].Ledger, 2)
	})
}

func TestWalletReportTotal(t *testing.T) {
	w := balance.WalletReport{
		Holdings: ledger.Ledger{ledger.Lovelace: big.NewInt(100)},
		Locked:   ledger.Ledger{ledger.Lovelace: big.NewInt(50), "TOKENX": big.NewInt(1)},
	}

	total := w.Total()
	assert.Equal(t, "150", total.Get(ledger.Lovelace).String())
	assert.Equal(t, "1", total.Get("TOKENX").String())
	assert.Equal(t, "100", w.Holdings.Get(ledger.Lovelace).String())
}
