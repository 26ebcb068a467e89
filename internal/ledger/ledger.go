// Package ledger accumulates multi-asset quantities keyed by asset unit.
//
// A Ledger represents one scope of a balance run: the assets of a single
// UTxO, the matched total of one contract, the holdings of a wallet or a
// global grand total. Quantities are arbitrary-precision non-negative
// integers; native asset supplies routinely exceed 2^63.
//
// Ledgers only grow. Merge is additive and carries no de-duplication: merging
// the same delta twice doubles it, so callers must merge each UTxO once.
package ledger

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

// Lovelace is the unit of the chain's native currency.
const Lovelace = "lovelace"

// policyIDHexLen is the hex length of a minting policy id.
const policyIDHexLen = 56

// ErrInvalidQuantity is returned when a quantity is not a non-negative
// base-10 integer.
var ErrInvalidQuantity = errors.New("invalid asset quantity")

// Asset is one entry of the raw amount list attached to a UTxO.
type Asset struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// Ledger maps an asset unit to its accumulated quantity. An absent unit
// holds zero. The zero value (nil) is a valid empty ledger for reads; use New
// before merging into it.
type Ledger map[string]*big.Int

// New returns an empty ledger.
func New() Ledger {
	return make(Ledger)
}

// FromAssets builds a ledger out of a raw amount list.
func FromAssets(assets []Asset) (Ledger, error) {
	l := New()
	if err := l.MergeAssets(assets); err != nil {
		return nil, err
	}
	return l, nil
}

// ParseQuantity parses s as a non-negative arbitrary-precision integer.
func ParseQuantity(s string) (*big.Int, error) {
	q, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	if q.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidQuantity, s)
	}
	return q, nil
}

// MergeAssets adds every (unit, quantity) pair to l. All quantities are
// parsed before any is added, so on error l is left untouched.
func (l Ledger) MergeAssets(assets []Asset) error {
	parsed := make([]*big.Int, len(assets))
	for i, a := range assets {
		q, err := ParseQuantity(a.Quantity)
		if err != nil {
			return fmt.Errorf("unit %s: %w", a.Unit, err)
		}
		parsed[i] = q
	}

	for i, a := range assets {
		l.add(a.Unit, parsed[i])
	}

	return nil
}

// Merge adds every quantity of src to l. l never shares integers with src.
func (l Ledger) Merge(src Ledger) {
	for unit, q := range src {
		l.add(unit, q)
	}
}

func (l Ledger) add(unit string, q *big.Int) {
	if cur, ok := l[unit]; ok {
		cur.Add(cur, q)
		return
	}
	l[unit] = new(big.Int).Set(q)
}

// Sum returns a new ledger holding the key-wise sum of ledgers. The inputs are
// not modified.
func Sum(ledgers ...Ledger) Ledger {
	out := New()
	for _, l := range ledgers {
		out.Merge(l)
	}
	return out
}

// Get returns a copy of the quantity of unit, zero when absent.
func (l Ledger) Get(unit string) *big.Int {
	if q, ok := l[unit]; ok {
		return new(big.Int).Set(q)
	}
	return new(big.Int)
}

// Clone returns a deep copy of l.
func (l Ledger) Clone() Ledger {
	return Sum(l)
}

// IsEmpty reports whether every quantity in l is zero.
func (l Ledger) IsEmpty() bool {
	for _, q := range l {
		if q.Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal compares two ledgers treating absent units as zero.
func (l Ledger) Equal(other Ledger) bool {
	for unit, q := range l {
		if q.Cmp(other.Get(unit)) != 0 {
			return false
		}
	}
	for unit, q := range other {
		if q.Cmp(l.Get(unit)) != 0 {
			return false
		}
	}
	return true
}

// Units returns the units of l in a stable order: lovelace first, then the
// remaining units sorted lexicographically.
func (l Ledger) Units() []string {
	units := make([]string, 0, len(l))
	for unit := range l {
		units = append(units, unit)
	}

	slices.SortFunc(units, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == Lovelace:
			return -1
		case b == Lovelace:
			return 1
		case a < b:
			return -1
		default:
			return 1
		}
	})

	return units
}

// Filter returns a new ledger restricted to the given units. Repeated units
// are kept once.
func (l Ledger) Filter(units ...string) Ledger {
	out := New()
	for _, unit := range units {
		if q, ok := l[unit]; ok {
			out[unit] = new(big.Int).Set(q)
		}
	}
	return out
}

// Map renders the ledger as unit -> decimal string, the shape used by JSON
// reports.
func (l Ledger) Map() map[string]string {
	out := make(map[string]string, len(l))
	for unit, q := range l {
		out[unit] = q.String()
	}
	return out
}

// ParseUnit splits a unit into its policy id and hex asset name. Lovelace and
// malformed units return ok=false.
func ParseUnit(unit string) (policyID, assetName string, ok bool) {
	if unit == Lovelace || len(unit) < policyIDHexLen {
		return "", "", false
	}
	return unit[:policyIDHexLen], unit[policyIDHexLen:], true
}
