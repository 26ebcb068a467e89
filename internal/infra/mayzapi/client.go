// Package mayzapi talks to the MAYZ dApp backend (token prices, funds and
// their history) and to CoinGecko (ADA/USD rate).
package mayzapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/url"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/transport/rest"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
	"github.com/MAYZGitHub/mayz-tools/internal/valuation"
)

const (
	// DefaultDAppURL is the root of the MAYZ dApp API.
	DefaultDAppURL = "https://dapp.mayz.io/api"

	// DefaultCoinGeckoURL is the root of the public CoinGecko API.
	DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

	// priceValidityMS is how old a dApp quote may be.
	priceValidityMS = "100000"
)

var (
	// ErrMissingPrice is returned when a price response carries no quote.
	ErrMissingPrice = errors.New("missing price in response")

	// ErrNotAToken is returned when a price is asked for a unit that is not
	// a native token.
	ErrNotAToken = errors.New("unit is not a native token")
)

type client struct {
	dapp      rest.Client
	coingecko rest.Client
}

// New returns a client for the dApp API and CoinGecko.
func New(dapp, coingecko rest.Client) *client {
	return &client{
		dapp:      dapp,
		coingecko: coingecko,
	}
}

type priceResponse struct {
	PriceADAx1e6 json.Number `json:"priceADAx1e6"`
}

// TokenPriceADAx1e6 implements valuation.PriceOracle.
func (c *client) TokenPriceADAx1e6(ctx context.Context, unit string) (*big.Int, error) {
	policyID, assetName, ok := ledger.ParseUnit(unit)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAToken, unit)
	}

	query := url.Values{
		"CS":         {policyID},
		"TN_Hex":     {assetName},
		"validityMS": {priceValidityMS},
	}

	var res priceResponse
	if err := c.dapp.Get(ctx, "/prices/get-priceADAx1e6", query, &res); err != nil {
		return nil, err
	}
	if res.PriceADAx1e6 == "" {
		return nil, ErrMissingPrice
	}

	price, ok := new(big.Int).SetString(res.PriceADAx1e6.String(), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrMissingPrice, res.PriceADAx1e6)
	}
	return price, nil
}

type simplePriceResponse struct {
	Cardano *struct {
		USD *float64 `json:"usd"`
	} `json:"cardano"`
}

// ADAUSD implements valuation.PriceOracle.
func (c *client) ADAUSD(ctx context.Context) (float64, error) {
	query := url.Values{
		"ids":           {"cardano"},
		"vs_currencies": {"usd"},
	}

	var res simplePriceResponse
	if err := c.coingecko.Get(ctx, "/simple/price", query, &res); err != nil {
		return 0, err
	}
	if res.Cardano == nil || res.Cardano.USD == nil {
		return 0, ErrMissingPrice
	}
	return *res.Cardano.USD, nil
}

// byParams is the body of the dApp POST /<collection>/by-params queries. An
// empty FieldsForSelect selects every field.
type byParams struct {
	ParamsFilter        map[string]any  `json:"paramsFilter"`
	FieldsForSelect     map[string]bool `json:"fieldsForSelect"`
	Sort                map[string]int  `json:"sort,omitempty"`
	DoCallbackAfterLoad bool            `json:"doCallbackAfterLoad"`
	LoadRelations       map[string]bool `json:"loadRelations"`
	CheckRelations      bool            `json:"checkRelations"`
}

type fund struct {
	Name               string      `json:"name"`
	FdRequiredTokenGov json.Number `json:"fdRequiredTokenGov"`
}

// FundsCreatedBy implements balance.FundsSource: it sums the governance
// tokens required by the funds creator created with the given governance
// token.
func (c *client) FundsCreatedBy(ctx context.Context, creator types.Hex, policyID, assetName string) (*big.Int, error) {
	body := byParams{
		ParamsFilter: map[string]any{
			"$and": []map[string]string{{
				"_creator":          string(creator),
				"fdTokenGov_AC.CS": policyID,
				"fdTokenGov_AC.TN": assetName,
			}},
		},
		FieldsForSelect: map[string]bool{
			"name":               true,
			"fdTokenGov_AC":      true,
			"fdRequiredTokenGov": true,
		},
		LoadRelations: map[string]bool{
			"investUnit_id": false,
		},
	}

	var funds []fund
	if err := c.dapp.Post(ctx, "/funds-with-details/by-params", body, &funds); err != nil {
		return nil, err
	}

	total := new(big.Int)
	for _, f := range funds {
		if f.FdRequiredTokenGov == "" {
			continue
		}

		required, ok := new(big.Int).SetString(f.FdRequiredTokenGov.String(), 10)
		if !ok {
			return nil, fmt.Errorf("fund %q: invalid fdRequiredTokenGov %q", f.Name, f.FdRequiredTokenGov)
		}
		total.Add(total, required)
	}
	return total, nil
}

var (
	_ valuation.PriceOracle = (*client)(nil)
	_ balance.FundsSource   = (*client)(nil)
)
