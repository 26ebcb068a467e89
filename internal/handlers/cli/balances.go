package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/report"

	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

// balancesCommand returns the command that aggregates the configured wallets
// against the contract registry.
//
// Usage example:
//
//	mayz-tools balances --format csv --unit lovelace
func balancesCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "balances",
		Description: "Aggregate the holdings and the contract-locked assets of every configured wallet.",
		Usage:       "Prints per-wallet, per-contract and global balances.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text or csv",
				Value: formatText,
			},
			&cli.StringSliceFlag{
				Name:  "unit",
				Usage: "Only report these asset units (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-prices",
				Usage: "Do not value balances in ADA and USD",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			format := c.String("format")
			if format != formatText && format != formatCSV {
				return fmt.Errorf("unknown format %q", format)
			}
			if len(svc.Wallets) == 0 {
				return ErrNoWallets
			}

			r, err := svc.Balance.Aggregate(ctx, svc.Wallets, svc.Contracts)
			if err != nil {
				return err
			}
			if units := c.StringSlice("unit"); len(units) > 0 {
				r = r.Filter(units...)
			}

			valuer := svc.Valuer
			if c.Bool("no-prices") {
				valuer = nil
			}

			err = withOutput(c, func(w io.Writer) error {
				if format == formatCSV {
					return report.WriteBalancesCSV(w, r)
				}
				return report.NewText(w, valuer).WriteReport(ctx, r)
			})
			if err != nil {
				return err
			}

			return failedWallets(r)
		},
	}
}

// govBalanceCommand returns the command that breaks down the governance
// token per wallet: held, locked in contracts and required by created funds.
//
// Usage example:
//
//	mayz-tools gov-balance --decimals 6
func govBalanceCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "gov-balance",
		Description: "Break down the governance token of every configured wallet across holdings, contracts and created funds.",
		Usage:       "Prints the governance token position of every wallet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Governance token unit (policy id + asset name)",
				Value: svc.GovUnit,
			},
			&cli.IntFlag{
				Name:  "decimals",
				Usage: "Decimals of the token",
				Value: 6,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if len(svc.Wallets) == 0 {
				return ErrNoWallets
			}

			unit := c.String("unit")
			r, err := svc.Balance.Aggregate(ctx, svc.Wallets, svc.Contracts)
			if err != nil {
				return err
			}

			rows, err := svc.Balance.GovernanceBalances(ctx, r, unit)
			if err != nil {
				return err
			}
			if err := report.WriteGovernance(c.Root().Writer, report.AssetName(unit), rows, int(c.Int("decimals"))); err != nil {
				return err
			}

			return failedWallets(r)
		},
	}
}

// failedWallets turns wallet failures into the command error so the process
// exits non-zero after the report is written.
func failedWallets(r balance.Report) error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}

	return fmt.Errorf("%d of %d wallets failed, first: %s: %w", len(failed), len(r.Wallets), failed[0].Wallet.Name, failed[0].Err)
}
