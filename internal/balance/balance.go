// Package balance computes what a set of wallets owns: the assets sitting at
// each wallet address plus the assets locked in smart contracts whose datum
// names the wallet as owner.
//
// Ownership of a contract UTxO is established by resolving the contract's
// payment and stake paths in the UTxO datum and comparing the resolved byte
// strings with the wallet's key hashes. Totals are kept per contract, per
// wallet and globally, in input order.
package balance

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// WalletRef names a wallet by its base address.
type WalletRef struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ContractSpec describes where a script records the owner of its UTxOs.
type ContractSpec struct {
	Name        string     `json:"name" validate:"required"`
	Address     string     `json:"address" validate:"required"`
	PaymentPath datum.Path `json:"pkhPath" validate:"required"`
	StakePath   datum.Path `json:"stakePath" validate:"required"`
}

// Utxo is an unspent output as returned by the chain index.
type Utxo struct {
	TxHash      string         // transaction that created the output
	OutputIndex uint32         // position of the output in that transaction
	Amount      []ledger.Asset // raw asset list
	InlineDatum string         // CBOR hex of the inline datum, if any
	DataHash    string         // hash of the datum, if any
}

// Ref returns the "txhash#index" reference of the output.
func (u Utxo) Ref() string {
	return fmt.Sprintf("%s#%d", u.TxHash, u.OutputIndex)
}

// HasDatum reports whether the output carries an inline datum or a datum hash.
func (u Utxo) HasDatum() bool {
	return u.InlineDatum != "" || u.DataHash != ""
}

// UtxoSource lists the unspent outputs sitting at an address.
type UtxoSource interface {
	// FetchUtxos returns every UTxO at address, walking all pages.
	FetchUtxos(ctx context.Context, address string) ([]Utxo, error)
}

// DatumResolver turns a UTxO datum reference into a datum value.
type DatumResolver interface {
	// ResolveDatum returns nil when the output has no datum, when inline
	// bytes do not decode or when a hash lookup fails.
	ResolveDatum(ctx context.Context, u Utxo) datum.Value
}

// FundsSource reports the governance tokens required by the funds a wallet
// created on the dApp.
type FundsSource interface {
	FundsCreatedBy(ctx context.Context, creator types.Hex, policyID, assetName string) (*big.Int, error)
}

// ContractReport is the share of one contract owned by a wallet.
type ContractReport struct {
	Contract ContractSpec
	Ledger   ledger.Ledger
	Utxos    []string // references of the matched outputs
}

// WalletReport is the outcome of one wallet. Err is set when the wallet could
// not be processed; its ledgers then hold whatever was computed before the
// failure and were not added to the run totals.
type WalletReport struct {
	Wallet    WalletRef
	Identity  cardano.Identity
	Holdings  ledger.Ledger
	Contracts []ContractReport
	Locked    ledger.Ledger
	Err       error
}

// Total returns holdings plus locked assets as a new ledger.
func (r WalletReport) Total() ledger.Ledger {
	return ledger.Sum(r.Holdings, r.Locked)
}

// Report is the outcome of one aggregation run.
type Report struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Wallets    []WalletReport
	Holdings   ledger.Ledger
	Locked     ledger.Ledger
	Combined   ledger.Ledger
}

// Failed returns the wallets that could not be processed.
func (r Report) Failed() []WalletReport {
	var out []WalletReport
	for _, w := range r.Wallets {
		if w.Err != nil {
			out = append(out, w)
		}
	}
	return out
}

// Filter returns a copy of r with every ledger restricted to units. Contract
// reports keep their matched references.
func (r Report) Filter(units ...string) Report {
	out := r
	out.Holdings = r.Holdings.Filter(units...)
	out.Locked = r.Locked.Filter(units...)
	out.Combined = r.Combined.Filter(units...)

	out.Wallets = make([]WalletReport, len(r.Wallets))
	for i, w := range r.Wallets {
		w.Holdings = w.Holdings.Filter(units...)
		w.Locked = w.Locked.Filter(units...)

		contracts := make([]ContractReport, len(w.Contracts))
		for j, c := range w.Contracts {
			c.Ledger = c.Ledger.Filter(units...)
			contracts[j] = c
		}
		w.Contracts = contracts

		out.Wallets[i] = w
	}

	return out
}
