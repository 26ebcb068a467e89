// Package utxodump lists the owner recorded in the datum of every UTxO
// sitting at a set of contracts.
package utxodump

import (
	"context"
	"fmt"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// Entry is one contract UTxO with a datum. PaymentKeyHash and StakeAddress
// are nil when the contract paths do not resolve to a key hash.
type Entry struct {
	Contract       string         `json:"contract"`
	UtxoID         string         `json:"utxoId"`
	PaymentKeyHash *types.Hex     `json:"pkh"`
	StakeAddress   *string        `json:"stake"`
	Amounts        []ledger.Asset `json:"amounts"`
}

// Service dumps contract owners.
type Service struct {
	utxos   balance.UtxoSource
	datums  balance.DatumResolver
	network cardano.Network
}

// Option configures the dump service.
type Option func(*Service)

// WithNetwork sets the network stake addresses are rendered for. Defaults to
// mainnet.
func WithNetwork(n cardano.Network) Option {
	return func(s *Service) {
		s.network = n
	}
}

// New returns a dump service reading from utxos and datums.
func New(utxos balance.UtxoSource, datums balance.DatumResolver, opts ...Option) *Service {
	s := &Service{
		utxos:   utxos,
		datums:  datums,
		network: cardano.Mainnet,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dump returns an entry per datum-carrying UTxO of contracts, in contract
// then listing order. When unit is set, amounts are narrowed to it and
// entries that do not hold it are dropped.
func (s *Service) Dump(ctx context.Context, contracts []balance.ContractSpec, unit string) ([]Entry, error) {
	var out []Entry

	for _, contract := range contracts {
		ctx := logger.Derive(ctx, "contract", contract.Name)
		logger.Info(ctx, "scanning contract", "address", contract.Address)

		utxos, err := s.utxos.FetchUtxos(ctx, contract.Address)
		if err != nil {
			return nil, fmt.Errorf("fetch utxos of contract %q: %w", contract.Name, err)
		}

		for _, u := range utxos {
			if !u.HasDatum() {
				continue
			}

			v := s.datums.ResolveDatum(ctx, u)
			if v == nil {
				continue
			}

			entry := s.entry(ctx, contract, u, v)
			if unit != "" {
				entry.Amounts = filterUnit(entry.Amounts, unit)
				if len(entry.Amounts) == 0 {
					continue
				}
			}
			out = append(out, entry)
		}
	}

	return out, nil
}

func (s *Service) entry(ctx context.Context, contract balance.ContractSpec, u balance.Utxo, v datum.Value) Entry {
	e := Entry{
		Contract: contract.Name,
		UtxoID:   u.Ref(),
		Amounts:  u.Amount,
	}

	if pkh, ok := resolveHex(v, contract.PaymentPath); ok {
		e.PaymentKeyHash = &pkh
	}

	if stake, ok := resolveHex(v, contract.StakePath); ok {
		addr, err := cardano.StakeAddressFromKeyHash(stake, s.network)
		if err != nil {
			logger.Debug(ctx, "stake field is not a key hash", "utxo", u.Ref(), "error", err)
		} else {
			e.StakeAddress = &addr
		}
	}

	return e
}

func resolveHex(v datum.Value, p datum.Path) (types.Hex, bool) {
	node, ok := datum.Resolve(v, p)
	if !ok {
		return "", false
	}
	return datum.AsHex(node)
}

func filterUnit(assets []ledger.Asset, unit string) []ledger.Asset {
	var out []ledger.Asset
	for _, a := range assets {
		if a.Unit == unit {
			out = append(out, a)
		}
	}
	return out
}
