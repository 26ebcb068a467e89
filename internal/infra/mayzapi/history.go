package mayzapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/funds"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// ErrInvalidAmount is returned when a history amount is not an integer.
var ErrInvalidAmount = errors.New("invalid amount")

// amount is an integer the dApp sends either as a JSON string or a JSON
// number. Missing and null values read as zero.
type amount struct {
	v *big.Int
}

func (a *amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		a.v = nil
		return nil
	}

	v, ok := new(big.Int).SetString(string(bytes.Trim(data, `"`)), 10)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	a.v = v
	return nil
}

func (a amount) Int() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

func split(protocol, managers, delegators amount) funds.Split {
	return funds.Split{Protocol: protocol.Int(), Managers: managers.Int(), Delegators: delegators.Int()}
}

type fundRecord struct {
	ID        string `json:"_DB_id"`
	Name      string `json:"name"`
	PolicyID  string `json:"fdFundPolicy_CS"`
	TokenName string `json:"fdFundFT_TN_Hex"`
}

// ListFunds implements funds.Source.
func (c *client) ListFunds(ctx context.Context) ([]funds.Fund, error) {
	body := byParams{
		ParamsFilter: map[string]any{},
		FieldsForSelect: map[string]bool{
			"id":              true,
			"name":            true,
			"fdFundPolicy_CS": true,
			"fdFundFT_TN_Hex": true,
		},
		LoadRelations: map[string]bool{
			"investUnit_id": false,
		},
	}

	var records []fundRecord
	if err := c.dapp.Post(ctx, "/funds-with-details/by-params", body, &records); err != nil {
		return nil, err
	}

	out := make([]funds.Fund, 0, len(records))
	for _, r := range records {
		out = append(out, funds.Fund(r))
	}
	return out, nil
}

type depositRecord struct {
	Date                     time.Time `json:"date"`
	MonthsRemaining          amount    `json:"monthsRemaining"`
	NewDeposits              amount    `json:"newDeposits"`
	TotalDeposits            amount    `json:"totalDeposits"`
	NewCommissions           amount    `json:"newCommissions"`
	TotalCommissions         amount    `json:"totalCommissions"`
	ReleasePerMonthx1e6      amount    `json:"totalCommissions_Release_PerMonth_1e6"`
	NewCollectedProtocol     amount    `json:"newCommissions_Collected_Protocol"`
	NewCollectedManagers     amount    `json:"newCommissions_Collected_Managers"`
	NewCollectedDelegators   amount    `json:"newCommissions_Collected_Delegators"`
	TotalCollectedProtocol   amount    `json:"totalCommissions_Collected_Protocol"`
	TotalCollectedManagers   amount    `json:"totalCommissions_Collected_Managers"`
	TotalCollectedDelegators amount    `json:"totalCommissions_Collected_Delegators"`
	NewAvailableProtocol     amount    `json:"newAvailableCommissions_Protocol"`
	NewAvailableManagers     amount    `json:"newAvailableCommissions_Managers"`
	NewAvailableDelegators   amount    `json:"newAvailableCommissions_Delegators"`
	TotalAvailableProtocol   amount    `json:"totalAvailableCommissions_Protocol"`
	TotalAvailableManagers   amount    `json:"totalAvailableCommissions_Managers"`
	TotalAvailableDelegators amount    `json:"totalAvailableCommissions_Delegators"`
}

func historyQuery(fundID string) byParams {
	return byParams{
		ParamsFilter:    map[string]any{"fund_id": fundID},
		FieldsForSelect: map[string]bool{},
		Sort:            map[string]int{"date": 1},
		LoadRelations:   map[string]bool{},
	}
}

// DepositHistory implements funds.Source.
func (c *client) DepositHistory(ctx context.Context, fundID string) ([]funds.Deposit, error) {
	var records []depositRecord
	if err := c.dapp.Post(ctx, "/history-deposits/by-params", historyQuery(fundID), &records); err != nil {
		return nil, err
	}

	out := make([]funds.Deposit, 0, len(records))
	for _, r := range records {
		out = append(out, funds.Deposit{
			Date:                r.Date,
			MonthsRemaining:     r.MonthsRemaining.Int().Int64(),
			NewDeposits:         r.NewDeposits.Int(),
			TotalDeposits:       r.TotalDeposits.Int(),
			NewCommissions:      r.NewCommissions.Int(),
			TotalCommissions:    r.TotalCommissions.Int(),
			ReleasePerMonthx1e6: r.ReleasePerMonthx1e6.Int(),
			NewCollected:        split(r.NewCollectedProtocol, r.NewCollectedManagers, r.NewCollectedDelegators),
			TotalCollected:      split(r.TotalCollectedProtocol, r.TotalCollectedManagers, r.TotalCollectedDelegators),
			NewAvailable:        split(r.NewAvailableProtocol, r.NewAvailableManagers, r.NewAvailableDelegators),
			TotalAvailable:      split(r.TotalAvailableProtocol, r.TotalAvailableManagers, r.TotalAvailableDelegators),
		})
	}
	return out, nil
}

type delegationRecord struct {
	Date             time.Time `json:"date"`
	NewDelegations   amount    `json:"newDelegations"`
	TotalDelegations amount    `json:"totalDelegations"`
}

// DelegationHistory implements funds.Source.
func (c *client) DelegationHistory(ctx context.Context, fundID string) ([]funds.Delegation, error) {
	var records []delegationRecord
	if err := c.dapp.Post(ctx, "/history-delegations/by-params", historyQuery(fundID), &records); err != nil {
		return nil, err
	}

	out := make([]funds.Delegation, 0, len(records))
	for _, r := range records {
		out = append(out, funds.Delegation{
			Date:             r.Date,
			NewDelegations:   r.NewDelegations.Int(),
			TotalDelegations: r.TotalDelegations.Int(),
		})
	}
	return out, nil
}

type userDelegationRecord struct {
	Date                          time.Time `json:"date"`
	NewDelegationsUser            amount    `json:"newDelegationsUser"`
	TotalDelegationsUser          amount    `json:"totalDelegationsUser"`
	TotalDelegationsAll           amount    `json:"totalDelegationsAll"`
	NewAvailableCommissionsUser   amount    `json:"newAvailableCommissionsUser"`
	TotalAvailableCommissionsUser amount    `json:"totalAvailableCommissionsUser"`
}

// UserDelegationHistory implements funds.Source.
func (c *client) UserDelegationHistory(ctx context.Context, user types.Hex, fundID string) ([]funds.UserDelegation, error) {
	body := byParams{
		ParamsFilter: map[string]any{
			"$and": []map[string]string{
				{"user": string(user)},
				{"fund_id": fundID},
			},
		},
		FieldsForSelect: map[string]bool{},
		LoadRelations:   map[string]bool{},
	}

	var records []userDelegationRecord
	if err := c.dapp.Post(ctx, "/history-delegations-user/by-params", body, &records); err != nil {
		return nil, err
	}

	out := make([]funds.UserDelegation, 0, len(records))
	for _, r := range records {
		out = append(out, funds.UserDelegation{
			Date:                      r.Date,
			NewDelegations:            r.NewDelegationsUser.Int(),
			TotalDelegations:          r.TotalDelegationsUser.Int(),
			TotalDelegationsAll:       r.TotalDelegationsAll.Int(),
			NewAvailableCommissions:   r.NewAvailableCommissionsUser.Int(),
			TotalAvailableCommissions: r.TotalAvailableCommissionsUser.Int(),
		})
	}
	return out, nil
}

type walletRecord struct {
	ID         string    `json:"_DB_id"`
	PaymentPKH types.Hex `json:"paymentPKH"`
}

// WalletByPaymentKeyHash implements funds.Source. The first matching wallet
// wins.
func (c *client) WalletByPaymentKeyHash(ctx context.Context, pkh types.Hex) (funds.Wallet, error) {
	body := byParams{
		ParamsFilter:    map[string]any{"paymentPKH": string(pkh)},
		FieldsForSelect: map[string]bool{},
		LoadRelations:   map[string]bool{},
	}

	var records []walletRecord
	if err := c.dapp.Post(ctx, "/wallets/by-params", body, &records); err != nil {
		return funds.Wallet{}, err
	}
	if len(records) == 0 {
		return funds.Wallet{}, funds.ErrWalletNotFound
	}

	return funds.Wallet{ID: records[0].ID, PaymentKeyHash: records[0].PaymentPKH}, nil
}

var _ funds.Source = (*client)(nil)
