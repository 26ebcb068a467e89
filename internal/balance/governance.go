package balance

import (
	"context"
	"math/big"

	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
)

// GovernanceBalance is the governance token position of one wallet.
type GovernanceBalance struct {
	Wallet   WalletRef
	Holdings *big.Int // held at the wallet address
	Locked   *big.Int // locked in matched contract UTxOs
	Funds    *big.Int // required by funds the wallet created
	Err      error    // funds lookup failure; Funds is zero when set
}

// Total returns Holdings + Locked + Funds.
func (g GovernanceBalance) Total() *big.Int {
	total := new(big.Int).Add(g.Holdings, g.Locked)
	return total.Add(total, g.Funds)
}

func (s *service) GovernanceBalances(ctx context.Context, report Report, unit string) ([]GovernanceBalance, error) {
	policyID, assetName, isToken := ledger.ParseUnit(unit)

	out := make([]GovernanceBalance, 0, len(report.Wallets))
	for _, w := range report.Wallets {
		if w.Err != nil {
			continue
		}

		row := GovernanceBalance{
			Wallet:   w.Wallet,
			Holdings: w.Holdings.Get(unit),
			Locked:   w.Locked.Get(unit),
			Funds:    new(big.Int),
		}

		if s.funds != nil && isToken {
			funds, err := s.funds.FundsCreatedBy(ctx, w.Identity.PaymentKeyHash, policyID, assetName)
			switch {
			case err == nil:
				if funds != nil {
					row.Funds = funds
				}
			case isCanceled(err):
				return nil, err
			default:
				logger.Warn(ctx, "funds lookup failed, counted as zero", "wallet", w.Wallet.Name, "error", err)
				row.Err = err
			}
		}

		out = append(out, row)
	}

	return out, nil
}
