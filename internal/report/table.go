package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/utxodump"
)

// WriteGovernance writes the governance token position of every wallet as an
// aligned table, amounts scaled down by 10^decimals.
func WriteGovernance(w io.Writer, label string, rows []balance.GovernanceBalance, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "WALLET\tHOLDINGS\tCONTRACTS\tFUNDS\tTOTAL %s\tNOTE\n", label)
	for _, row := range rows {
		note := ""
		if row.Err != nil {
			note = "funds unavailable"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Wallet.Name,
			Decimal(row.Holdings, decimals),
			Decimal(row.Locked, decimals),
			Decimal(row.Funds, decimals),
			Decimal(row.Total(), decimals),
			note,
		)
	}

	return tw.Flush()
}

// WriteDumpJSON writes the contract dump as indented JSON.
func WriteDumpJSON(w io.Writer, entries []utxodump.Entry) error {
	if entries == nil {
		entries = []utxodump.Entry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
