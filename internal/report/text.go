package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/valuation"
)

// Valuer prices a ledger. *valuation.Service implements it.
type Valuer interface {
	Value(ctx context.Context, l ledger.Ledger) (valuation.Valuation, error)
}

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

// Text writes a human readable report. When valuer is nil no prices are
// shown.
type Text struct {
	w      io.Writer
	valuer Valuer
	err    error
}

// NewText returns a text writer on w.
func NewText(w io.Writer, valuer Valuer) *Text {
	return &Text{w: w, valuer: valuer}
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// WriteReport writes every wallet then the run totals.
func (t *Text) WriteReport(ctx context.Context, r balance.Report) error {
	t.printf("Run %s (%d wallets, %d failed)\n", r.RunID, len(r.Wallets), len(r.Failed()))

	for _, w := range r.Wallets {
		if err := t.writeWallet(ctx, w); err != nil {
			return err
		}
	}

	t.printf("\n%s\nGLOBAL SUMMARY\n%s\n", heavyRule, heavyRule)
	sections := []struct {
		title string
		l     ledger.Ledger
	}{
		{"Holdings", r.Holdings},
		{"Locked in contracts", r.Locked},
		{"Combined", r.Combined},
	}
	for _, s := range sections {
		t.printf("\n%s:\n", s.title)
		if err := t.writeLedger(ctx, s.l, "No assets."); err != nil {
			return err
		}
	}

	return t.err
}

func (t *Text) writeWallet(ctx context.Context, w balance.WalletReport) error {
	t.printf("\n%s\nWallet: %s - Address: %s\n", heavyRule, w.Wallet.Name, w.Wallet.Address)
	if !w.Identity.PaymentKeyHash.IsEmpty() {
		t.printf("PKH:   %s\nStake: %s\n", w.Identity.PaymentKeyHash, w.Identity.StakeKeyHash)
	}
	t.printf("%s\n", heavyRule)

	if w.Err != nil {
		t.printf("FAILED: %v\n", w.Err)
		return t.err
	}

	t.printf("\nCurrent Holdings:\n")
	if err := t.writeLedger(ctx, w.Holdings, "No holdings found."); err != nil {
		return err
	}

	for _, c := range w.Contracts {
		t.printf("\n%s (%d utxos):\n", c.Contract.Name, len(c.Utxos))
		if err := t.writeLedger(ctx, c.Ledger, "No matched assets."); err != nil {
			return err
		}
	}

	t.printf("\n%s\nSubtotal locked for wallet: %s\n", lightRule, w.Wallet.Name)
	if err := t.writeLedger(ctx, w.Locked, "No locked assets."); err != nil {
		return err
	}

	t.printf("\nTOTAL wallet (holdings + locked):\n")
	return t.writeLedger(ctx, w.Total(), "No assets.")
}

func (t *Text) writeLedger(ctx context.Context, l ledger.Ledger, empty string) error {
	if l.IsEmpty() {
		t.printf("→ %s\n", empty)
		return t.err
	}

	if t.valuer == nil {
		for _, unit := range l.Units() {
			t.printf("→ %s: %s\n", Label(unit), Quantity(unit, l.Get(unit)))
		}
		return t.err
	}

	v, err := t.valuer.Value(ctx, l)
	if err != nil {
		return err
	}

	for _, u := range v.Units {
		pretty := Quantity(u.Unit, u.Quantity)
		if u.PriceADAx1e6.Sign() == 0 {
			t.printf("→ %s: %s\n", Label(u.Unit), pretty)
			continue
		}

		t.printf("→ %s: %s (₳ %s) | ₳ %s | $%s\n",
			Label(u.Unit), pretty, Decimal(u.PriceADAx1e6, adaDecimals), u.ADA.FloatString(6), u.USD.FloatString(2))
	}
	t.printf("→ Total: ₳ %s | $%s\n", v.ADA.FloatString(6), v.USD.FloatString(2))

	return t.err
}

// Ensure the valuation service can be used as a Valuer.
var _ Valuer = (*valuation.Service)(nil)
