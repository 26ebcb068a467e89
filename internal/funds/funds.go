// Package funds lists the funds of the MAYZ dApp and joins their deposit and
// delegation history, optionally alongside the delegations of one user.
package funds

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// DayLayout is the key rows are joined on.
const DayLayout = time.DateOnly

var (
	// ErrUnknownFund is returned when a requested fund id is not listed by
	// the dApp.
	ErrUnknownFund = errors.New("unknown fund")

	// ErrWalletNotFound is returned when no dApp wallet is registered for a
	// payment key hash.
	ErrWalletNotFound = errors.New("wallet not found")
)

// Fund is a fund registered in the dApp.
type Fund struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PolicyID  string `json:"policy_id"`
	TokenName string `json:"token_name"`
}

// Split is a commission amount broken down by beneficiary.
type Split struct {
	Protocol   *big.Int `json:"protocol"`
	Managers   *big.Int `json:"managers"`
	Delegators *big.Int `json:"delegators"`
}

// Deposit is a daily snapshot of the deposits into a fund and the
// commissions they generated.
type Deposit struct {
	Date                time.Time `json:"date"`
	MonthsRemaining     int64     `json:"months_remaining"`
	NewDeposits         *big.Int  `json:"new_deposits"`
	TotalDeposits       *big.Int  `json:"total_deposits"`
	NewCommissions      *big.Int  `json:"new_commissions"`
	TotalCommissions    *big.Int  `json:"total_commissions"`
	ReleasePerMonthx1e6 *big.Int  `json:"release_per_month_x1e6"`
	NewCollected        Split     `json:"new_collected"`
	TotalCollected      Split     `json:"total_collected"`
	NewAvailable        Split     `json:"new_available"`
	TotalAvailable      Split     `json:"total_available"`
}

// Delegation is a daily snapshot of the governance tokens delegated to a
// fund.
type Delegation struct {
	Date             time.Time `json:"date"`
	NewDelegations   *big.Int  `json:"new_delegations"`
	TotalDelegations *big.Int  `json:"total_delegations"`
}

// UserDelegation is a daily snapshot of one user's delegation to a fund.
type UserDelegation struct {
	Date                      time.Time `json:"date"`
	NewDelegations            *big.Int  `json:"new_delegations"`
	TotalDelegations          *big.Int  `json:"total_delegations"`
	TotalDelegationsAll       *big.Int  `json:"total_delegations_all"`
	NewAvailableCommissions   *big.Int  `json:"new_available_commissions"`
	TotalAvailableCommissions *big.Int  `json:"total_available_commissions"`
}

// Wallet is a dApp user record.
type Wallet struct {
	ID             string    `json:"id"`
	PaymentKeyHash types.Hex `json:"payment_key_hash"`
}

// Source reads funds and their history from the dApp.
type Source interface {
	ListFunds(ctx context.Context) ([]Fund, error)
	DepositHistory(ctx context.Context, fundID string) ([]Deposit, error)
	DelegationHistory(ctx context.Context, fundID string) ([]Delegation, error)
	UserDelegationHistory(ctx context.Context, user types.Hex, fundID string) ([]UserDelegation, error)
	// WalletByPaymentKeyHash fails with ErrWalletNotFound when no wallet is
	// registered for pkh.
	WalletByPaymentKeyHash(ctx context.Context, pkh types.Hex) (Wallet, error)
}

// Day is one row of a fund history. Any of the records may be nil.
type Day struct {
	Date       string          `json:"date"`
	Deposit    *Deposit        `json:"deposit,omitempty"`
	Delegation *Delegation     `json:"delegation,omitempty"`
	User       *UserDelegation `json:"user,omitempty"`
}

// History is the day by day history of a fund.
type History struct {
	Fund Fund  `json:"fund"`
	Days []Day `json:"days"`
}

// UserHistory is the history of the funds a user delegated to.
type UserHistory struct {
	Address  string           `json:"address"`
	Identity cardano.Identity `json:"identity"`
	WalletID string           `json:"wallet_id"`
	Funds    []History        `json:"funds"`
}

// Service reads fund history.
type Service struct {
	source Source
}

// New returns a funds service reading from source.
func New(source Source) *Service {
	return &Service{source: source}
}

// List returns every fund of the dApp.
func (s *Service) List(ctx context.Context) ([]Fund, error) {
	funds, err := s.source.ListFunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch funds: %w", err)
	}

	logger.Info(ctx, "funds listed", "funds", len(funds))
	return funds, nil
}

// Select returns the funds with the given ids in the requested order, or
// every fund when ids is empty.
func (s *Service) Select(ctx context.Context, ids []string) ([]Fund, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return all, nil
	}

	out := make([]Fund, 0, len(ids))
	seen := types.NewSet[string]()
	for _, id := range ids {
		if !seen.TryAdd(id) {
			continue
		}

		i := slices.IndexFunc(all, func(f Fund) bool { return f.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFund, id)
		}
		out = append(out, all[i])
	}
	return out, nil
}

// History returns the deposit and delegation history of the selected funds.
func (s *Service) History(ctx context.Context, ids []string) ([]History, error) {
	funds, err := s.Select(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]History, 0, len(funds))
	for _, f := range funds {
		deposits, delegations, err := s.fundHistory(ctx, f)
		if err != nil {
			return nil, err
		}

		out = append(out, History{Fund: f, Days: Join(deposits, delegations, nil)})
	}
	return out, nil
}

// UserHistory returns the history of the selected funds with the delegations
// of the owner of a base address attached.
func (s *Service) UserHistory(ctx context.Context, address string, ids []string) (UserHistory, error) {
	id, err := cardano.DeriveIdentity(address)
	if err != nil {
		return UserHistory{}, err
	}

	wallet, err := s.source.WalletByPaymentKeyHash(ctx, id.PaymentKeyHash)
	if err != nil {
		return UserHistory{}, fmt.Errorf("wallet of %s: %w", id.PaymentKeyHash, err)
	}

	funds, err := s.Select(ctx, ids)
	if err != nil {
		return UserHistory{}, err
	}

	out := UserHistory{
		Address:  address,
		Identity: id,
		WalletID: wallet.ID,
		Funds:    make([]History, 0, len(funds)),
	}
	for _, f := range funds {
		deposits, delegations, err := s.fundHistory(ctx, f)
		if err != nil {
			return UserHistory{}, err
		}

		users, err := s.source.UserDelegationHistory(ctx, id.PaymentKeyHash, f.ID)
		if err != nil {
			return UserHistory{}, fmt.Errorf("fetch user delegations of %s: %w", f.Name, err)
		}

		logger.Debug(ctx, "user delegations fetched", "fund", f.Name, "records", len(users))
		out.Funds = append(out.Funds, History{Fund: f, Days: Join(deposits, delegations, users)})
	}
	return out, nil
}

func (s *Service) fundHistory(ctx context.Context, f Fund) ([]Deposit, []Delegation, error) {
	deposits, err := s.source.DepositHistory(ctx, f.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch deposits of %s: %w", f.Name, err)
	}

	delegations, err := s.source.DelegationHistory(ctx, f.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch delegations of %s: %w", f.Name, err)
	}

	logger.Info(ctx, "fund history fetched", "fund", f.Name, "deposits", len(deposits), "delegations", len(delegations))
	return deposits, delegations, nil
}

// Join lines up the records by UTC day, oldest first. Days come from
// deposits and delegations; a user record is attached only to a day one of
// them already has. When a day has several records of a kind the last one
// wins.
func Join(deposits []Deposit, delegations []Delegation, users []UserDelegation) []Day {
	days := types.NewDefaultMap[string](func() *Day { return &Day{} })

	for i := range deposits {
		days.Get(dayOf(deposits[i].Date)).Deposit = &deposits[i]
	}
	for i := range delegations {
		days.Get(dayOf(delegations[i].Date)).Delegation = &delegations[i]
	}

	keys := days.Keys()
	slices.Sort(keys)

	for i := range users {
		key := dayOf(users[i].Date)
		if _, ok := slices.BinarySearch(keys, key); ok {
			days.Get(key).User = &users[i]
		}
	}

	out := make([]Day, 0, len(keys))
	for _, key := range keys {
		d := days.Get(key)
		d.Date = key
		out = append(out, *d)
	}
	return out
}

func dayOf(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
