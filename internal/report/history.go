package report

import (
	"fmt"
	"io"
	"math/big"
	"text/tabwriter"

	"github.com/MAYZGitHub/mayz-tools/internal/funds"
)

// WriteFunds writes the dApp funds as an aligned table.
func WriteFunds(w io.Writer, list []funds.Fund) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "ID\tNAME\tPOLICY\tTOKEN NAME\n")
	for _, f := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", orNA(f.ID), orNA(f.Name), orNA(f.PolicyID), orNA(f.TokenName))
	}
	fmt.Fprintf(tw, "\n%d fund(s)\n", len(list))

	return tw.Flush()
}

// WriteHistory writes the day by day history of every fund. With detail the
// commission breakdown of every deposit day follows the table.
func WriteHistory(w io.Writer, list []funds.History, detail bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, h := range list {
		writeFundHistory(tw, h, false, detail)
	}
	return tw.Flush()
}

// WriteUserHistory writes the fund histories of a user with the user's
// delegation columns next to the fund totals.
func WriteUserHistory(w io.Writer, u funds.UserHistory, detail bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Address: %s\n", u.Address)
	fmt.Fprintf(tw, "Payment key hash: %s\n", u.Identity.PaymentKeyHash)
	fmt.Fprintf(tw, "Stake key hash: %s\n", u.Identity.StakeKeyHash)
	fmt.Fprintf(tw, "Wallet: %s\n", u.WalletID)

	for _, h := range u.Funds {
		writeFundHistory(tw, h, true, detail)
	}
	return tw.Flush()
}

func writeFundHistory(w io.Writer, h funds.History, withUser, detail bool) {
	fmt.Fprintf(w, "\n%s\nFund: %s\nID: %s\nPolicy: %s\n%s\n", heavyRule, h.Fund.Name, h.Fund.ID, orNA(h.Fund.PolicyID), heavyRule)

	if len(h.Days) == 0 {
		fmt.Fprint(w, "No history found for this fund.\n")
		return
	}

	fmt.Fprint(w, "DATE\tMONTHS LEFT\tNEW DEPOSITS\tTOTAL DEPOSITS\tNEW COMMISSIONS\tTOTAL COMMISSIONS\tNEW DELEGATIONS\tTOTAL DELEGATIONS")
	if withUser {
		fmt.Fprint(w, "\tUSER NEW\tUSER TOTAL\tALL DELEGATIONS\tUSER AVAILABLE")
	}
	fmt.Fprint(w, "\n")

	for _, d := range h.Days {
		months := "0"
		var newDep, totalDep, newCom, totalCom, newDel, totalDel *big.Int
		if d.Deposit != nil {
			months = fmt.Sprint(d.Deposit.MonthsRemaining)
			newDep, totalDep = d.Deposit.NewDeposits, d.Deposit.TotalDeposits
			newCom, totalCom = d.Deposit.NewCommissions, d.Deposit.TotalCommissions
		}
		if d.Delegation != nil {
			newDel, totalDel = d.Delegation.NewDelegations, d.Delegation.TotalDelegations
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			d.Date, months, zero(newDep), zero(totalDep), zero(newCom), zero(totalCom), zero(newDel), zero(totalDel))
		if withUser {
			if u := d.User; u != nil {
				fmt.Fprintf(w, "\t%s\t%s\t%s\t%s",
					zero(u.NewDelegations), zero(u.TotalDelegations), zero(u.TotalDelegationsAll), zero(u.TotalAvailableCommissions))
			} else {
				fmt.Fprint(w, "\t\t\t\t")
			}
		}
		fmt.Fprint(w, "\n")
	}

	if detail {
		for _, d := range h.Days {
			if d.Deposit != nil {
				writeDepositDetail(w, d.Date, d.Deposit)
			}
		}
	}
}

func writeDepositDetail(w io.Writer, date string, d *funds.Deposit) {
	fmt.Fprintf(w, "\n%s\n%s\n", date, lightRule)
	fmt.Fprintf(w, "Release per month (x1e6):\t%s\n", zero(d.ReleasePerMonthx1e6))
	fmt.Fprint(w, "\tPROTOCOL\tMANAGERS\tDELEGATORS\n")
	for _, row := range []struct {
		label string
		split funds.Split
	}{
		{"New collected", d.NewCollected},
		{"Total collected", d.TotalCollected},
		{"New available", d.NewAvailable},
		{"Total available", d.TotalAvailable},
	} {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.label, zero(row.split.Protocol), zero(row.split.Managers), zero(row.split.Delegators))
	}
}

func zero(q *big.Int) string {
	if q == nil {
		return "0"
	}
	return q.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
