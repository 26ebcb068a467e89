package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/validator"

	"github.com/urfave/cli/v3"
)

// identityCommand returns the command that prints the key hashes of a base
// address.
//
// Usage example:
//
//	mayz-tools identity --address addr1q9...
func identityCommand() *cli.Command {
	return &cli.Command{
		Name:        "identity",
		Description: "Decode a base address into its payment and stake key hashes.",
		Usage:       "Prints the payment key hash, stake key hash and stake address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Base address (addr1...)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("address")

			id, err := cardano.DeriveIdentity(address)
			if err != nil {
				return err
			}

			stake, err := cardano.StakeAddress(address)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "payment_key_hash\t%s\n", id.PaymentKeyHash)
			fmt.Fprintf(tw, "stake_key_hash\t%s\n", id.StakeKeyHash)
			fmt.Fprintf(tw, "stake_address\t%s\n", stake)
			return tw.Flush()
		},
	}
}

// addressCommand returns the command that builds an address from key hashes:
// a base address with --stake-pkh, an enterprise address without.
//
// Usage example:
//
//	mayz-tools address --pkh 4a7f... --stake-pkh b70c...
func addressCommand(network cardano.Network) *cli.Command {
	defaultNetwork := "mainnet"
	if network == cardano.Testnet {
		defaultNetwork = "testnet"
	}

	return &cli.Command{
		Name:        "address",
		Description: "Build a base or enterprise address from a payment key hash and an optional stake key hash.",
		Usage:       "Prints the bech32 address of the given key hashes.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pkh",
				Usage:    "Payment key hash (56 hex characters)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "stake-pkh",
				Usage: "Stake key hash (56 hex characters)",
			},
			&cli.StringFlag{
				Name:  "network",
				Usage: "mainnet or testnet",
				Value: defaultNetwork,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				pkh   = c.String("pkh")
				stake = c.String("stake-pkh")
			)

			if err := validator.Var(pkh, "cardano_hash"); err != nil {
				return fmt.Errorf("--pkh: %w", err)
			}
			if err := validator.Var(stake, "omitempty,cardano_hash"); err != nil {
				return fmt.Errorf("--stake-pkh: %w", err)
			}

			n, err := cardano.ParseNetwork(c.String("network"))
			if err != nil {
				return err
			}

			paymentHash, err := types.HexFromString(pkh)
			if err != nil {
				return err
			}
			stakeHash, err := types.HexFromString(stake)
			if err != nil {
				return err
			}

			addr, err := cardano.AddressFromKeyHashes(n, paymentHash, stakeHash)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, addr)
			return err
		},
	}
}
