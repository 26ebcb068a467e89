package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/holders"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
)

// Balance CSV scopes.
const (
	ScopeHoldings       = "holdings"
	ScopeContract       = "contract"
	ScopeLocked         = "locked"
	ScopeTotal          = "total"
	ScopeGlobalHoldings = "global_holdings"
	ScopeGlobalLocked   = "global_locked"
	ScopeGlobalCombined = "global_combined"
)

// notAvailable stands for a missing stake address in holder exports.
const notAvailable = "N/A"

// WriteBalancesCSV writes one scope,wallet,contract,unit,quantity row per
// unit of every ledger of r. Quantities are raw integers. Failed wallets are
// left out, as they are from the run totals.
func WriteBalancesCSV(w io.Writer, r balance.Report) error {
	cw := csv.NewWriter(w)

	rows := [][]string{{"scope", "wallet", "contract", "unit", "quantity"}}
	add := func(scope, wallet, contract string, l ledger.Ledger) {
		for _, unit := range l.Units() {
			rows = append(rows, []string{scope, wallet, contract, unit, l.Get(unit).String()})
		}
	}

	for _, wr := range r.Wallets {
		if wr.Err != nil {
			continue
		}

		name := wr.Wallet.Name
		add(ScopeHoldings, name, "", wr.Holdings)
		for _, c := range wr.Contracts {
			add(ScopeContract, name, c.Contract.Name, c.Ledger)
		}
		add(ScopeLocked, name, "", wr.Locked)
		add(ScopeTotal, name, "", wr.Total())
	}

	add(ScopeGlobalHoldings, "", "", r.Holdings)
	add(ScopeGlobalLocked, "", "", r.Locked)
	add(ScopeGlobalCombined, "", "", r.Combined)

	return cw.WriteAll(rows)
}

// WriteHoldersCSV writes wallet_address,stake_address,amount rows. Holders
// without a stake address get N/A.
func WriteHoldersCSV(w io.Writer, rows []holders.HolderRow) error {
	cw := csv.NewWriter(w)

	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"wallet_address", "stake_address", "amount"})
	for _, r := range rows {
		stake := r.StakeAddress
		if stake == "" {
			stake = notAvailable
		}
		records = append(records, []string{r.Address, stake, r.Quantity.String()})
	}

	return cw.WriteAll(records)
}

// WriteStakeHoldingsCSV writes stake_address,amount,addresses rows.
func WriteStakeHoldingsCSV(w io.Writer, rows []holders.StakeHolding) error {
	cw := csv.NewWriter(w)

	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"stake_address", "amount", "addresses"})
	for _, r := range rows {
		records = append(records, []string{r.StakeAddress, r.Quantity.String(), strconv.Itoa(r.Addresses)})
	}

	return cw.WriteAll(records)
}
