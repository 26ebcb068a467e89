package cli

import (
	"context"
	"io"

	"github.com/MAYZGitHub/mayz-tools/internal/holders"
	"github.com/MAYZGitHub/mayz-tools/internal/report"

	"github.com/urfave/cli/v3"
)

// holdersCommand returns the command that exports the holders of an asset.
//
// Usage example:
//
//	mayz-tools holders --group-by-stake -o holders.csv
func holdersCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "holders",
		Description: "Export every address holding an asset with its stake address, as CSV.",
		Usage:       "Lists the holders of an asset (defaults to the governance token).",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Asset unit (policy id + asset name)",
				Value: svc.GovUnit,
			},
			&cli.BoolFlag{
				Name:  "group-by-stake",
				Usage: "Sum quantities per stake address",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rows, err := svc.Holders.List(ctx, c.String("unit"))
			if err != nil {
				return err
			}

			return withOutput(c, func(w io.Writer) error {
				if c.Bool("group-by-stake") {
					return report.WriteStakeHoldingsCSV(w, holders.GroupByStake(rows))
				}
				return report.WriteHoldersCSV(w, rows)
			})
		},
	}
}

// dumpCommand returns the command that dumps the owner of every contract
// UTxO as JSON.
//
// Usage example:
//
//	mayz-tools dump --unit e46f...674d41595a -o gmayzDump.json
func dumpCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "dump",
		Description: "Dump the owner recorded in the datum of every contract UTxO, as JSON.",
		Usage:       "Lists contract UTxOs with their owner key hash and stake address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "unit",
				Usage: "Only keep UTxOs holding this unit, and only its amount",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			entries, err := svc.Dumper.Dump(ctx, svc.Contracts, c.String("unit"))
			if err != nil {
				return err
			}

			return withOutput(c, func(w io.Writer) error {
				return report.WriteDumpJSON(w, entries)
			})
		},
	}
}
