package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/funds"
	"github.com/MAYZGitHub/mayz-tools/internal/holders"
	"github.com/MAYZGitHub/mayz-tools/internal/report"
	"github.com/MAYZGitHub/mayz-tools/internal/utxodump"

	"github.com/urfave/cli/v3"
)

// ErrNoWallets is returned by wallet commands when no wallet is configured.
var ErrNoWallets = errors.New("no wallets configured, set WALLETS=NAME:addr1...,NAME:addr1...")

// HolderLister lists the holders of an asset.
type HolderLister interface {
	List(ctx context.Context, unit string) ([]holders.HolderRow, error)
}

// ContractDumper dumps the owners of contract UTxOs.
type ContractDumper interface {
	Dump(ctx context.Context, contracts []balance.ContractSpec, unit string) ([]utxodump.Entry, error)
}

// FundHistory reads the dApp funds and their history.
type FundHistory interface {
	List(ctx context.Context) ([]funds.Fund, error)
	History(ctx context.Context, ids []string) ([]funds.History, error)
	UserHistory(ctx context.Context, address string, ids []string) (funds.UserHistory, error)
}

// Services bundles what the commands run against.
type Services struct {
	Balance balance.Service
	Holders HolderLister
	Dumper  ContractDumper
	Funds   FundHistory
	Valuer  report.Valuer // nil disables prices

	Wallets   []balance.WalletRef
	Contracts []balance.ContractSpec
	GovUnit   string
	Network   cardano.Network
}

// Run builds the mayz-tools command tree and executes it with os.Args.
//
// Commands:
//
//   - `balances`: holdings and contract-locked assets per wallet.
//   - `gov-balance`: governance token position per wallet.
//   - `holders`: holders of an asset, optionally grouped by stake address.
//   - `dump`: owners recorded in contract UTxO datums.
//   - `funds`: funds registered in the dApp.
//   - `history`: deposit and delegation history of funds, optionally per user.
//   - `identity`: key hashes of a base address.
//   - `address`: base address from key hashes.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "mayz-tools",
		Description:           "Balances, governance positions and holders of MAYZ wallets and contracts on Cardano.",
		Usage:                 "mayz-tools [command] [flags]",
		Commands: []*cli.Command{
			balancesCommand(svc),
			govBalanceCommand(svc),
			holdersCommand(svc),
			dumpCommand(svc),
			fundsCommand(svc),
			historyCommand(svc),
			identityCommand(),
			addressCommand(svc.Network),
		},
	}
}

// outputFlag selects a file instead of standard output.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write to this file instead of standard output",
	}
}

// withOutput runs write against the --output file, or the command writer
// when the flag is empty.
func withOutput(c *cli.Command, write func(io.Writer) error) error {
	path := c.String("output")
	if path == "" {
		return write(c.Root().Writer)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(c.Root().ErrWriter, "written %s\n", path)
	return nil
}
