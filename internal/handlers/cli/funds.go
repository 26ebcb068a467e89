package cli

import (
	"context"
	"io"

	"github.com/MAYZGitHub/mayz-tools/internal/report"

	"github.com/urfave/cli/v3"
)

// fundsCommand returns the command that lists the dApp funds.
//
// Usage example:
//
//	mayz-tools funds
func fundsCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "funds",
		Description: "List every fund registered in the MAYZ dApp with its policy and token name.",
		Usage:       "Lists the dApp funds.",
		Flags:       []cli.Flag{outputFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			list, err := svc.Funds.List(ctx)
			if err != nil {
				return err
			}

			return withOutput(c, func(w io.Writer) error {
				return report.WriteFunds(w, list)
			})
		},
	}
}

// historyCommand returns the command that prints the deposit and delegation
// history of funds, optionally next to the delegations of one user.
//
// Usage example:
//
//	mayz-tools history --fund 68546467e324e6b50d6651aa --address addr1... --detail
func historyCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Print the day by day deposits, commissions and delegations of dApp funds.",
		Usage:       "Shows fund history (all funds unless --fund is given).",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "fund",
				Usage: "Fund id, repeatable",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Base address of a user whose delegations are shown next to the fund",
			},
			&cli.BoolFlag{
				Name:  "detail",
				Usage: "Break down commissions by beneficiary",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ids := c.StringSlice("fund")

			if address := c.String("address"); address != "" {
				u, err := svc.Funds.UserHistory(ctx, address, ids)
				if err != nil {
					return err
				}

				return withOutput(c, func(w io.Writer) error {
					return report.WriteUserHistory(w, u, c.Bool("detail"))
				})
			}

			list, err := svc.Funds.History(ctx, ids)
			if err != nil {
				return err
			}

			return withOutput(c, func(w io.Writer) error {
				return report.WriteHistory(w, list, c.Bool("detail"))
			})
		},
	}
}
