// Package holders lists the addresses holding a native asset and groups them
// by the stake address that controls them.
package holders

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// Holder is an address holding some quantity of an asset, as listed by the
// chain index.
type Holder struct {
	Address  string `json:"address"`
	Quantity string `json:"quantity"`
}

// HolderSource lists every holder of an asset unit.
type HolderSource interface {
	// FetchAssetHolders walks every page of the holders of unit.
	FetchAssetHolders(ctx context.Context, unit string) ([]Holder, error)
}

// HolderRow is a holder with its parsed quantity and stake address. The stake
// address is empty for addresses without a stake credential.
type HolderRow struct {
	Address      string
	StakeAddress string
	Quantity     *big.Int
}

// StakeHolding is the quantity controlled by one stake address.
type StakeHolding struct {
	StakeAddress string
	Quantity     *big.Int
	Addresses    int // number of holder addresses folded in
}

// Service lists asset holders.
type Service struct {
	source HolderSource
}

// New returns a holders service reading from source.
func New(source HolderSource) *Service {
	return &Service{source: source}
}

// List returns the holders of unit in the order of the source.
func (s *Service) List(ctx context.Context, unit string) ([]HolderRow, error) {
	holders, err := s.source.FetchAssetHolders(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("fetch holders of %s: %w", unit, err)
	}

	rows := make([]HolderRow, 0, len(holders))
	for _, h := range holders {
		q, err := ledger.ParseQuantity(h.Quantity)
		if err != nil {
			return nil, fmt.Errorf("holder %s: %w", h.Address, err)
		}

		stake, err := cardano.StakeAddress(h.Address)
		if err != nil {
			logger.Debug(ctx, "holder without stake address", "address", h.Address, "error", err)
			stake = ""
		}

		rows = append(rows, HolderRow{Address: h.Address, StakeAddress: stake, Quantity: q})
	}

	logger.Info(ctx, "asset holders listed", "unit", unit, "holders", len(rows))
	return rows, nil
}

// GroupByStake sums the quantities of rows per stake address, in first-seen
// order. Rows without a stake address are left out.
func GroupByStake(rows []HolderRow) []StakeHolding {
	totals := types.NewDefaultMap[string](func() *StakeHolding {
		return &StakeHolding{Quantity: new(big.Int)}
	})

	for _, r := range rows {
		if r.StakeAddress == "" {
			continue
		}

		h := totals.Get(r.StakeAddress)
		h.StakeAddress = r.StakeAddress
		h.Quantity.Add(h.Quantity, r.Quantity)
		h.Addresses++
	}

	out := make([]StakeHolding, 0, totals.Len())
	for _, stake := range totals.Keys() {
		out = append(out, *totals.Get(stake))
	}
	return out
}
