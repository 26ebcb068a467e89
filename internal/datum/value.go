// Package datum models Plutus data attached to UTxOs, reads values out of it
// by path and matches the values against a wallet identity.
//
// Inline datums (CBOR) and datums fetched by hash (Blockfrost's detailed JSON
// schema) decode to the same Value tree, so one contract path works for both.
package datum

import (
	"math/big"

	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// Value is a node of a Plutus data tree. It is one of Constr, Bytes, Int,
// List or Map.
type Value interface {
	isValue()
}

// Constr is a constructor application: an alternative index and its fields.
type Constr struct {
	Index  uint64
	Fields []Value
}

// Bytes is a byte string leaf (key hashes, policy ids, names).
type Bytes []byte

// Int is an arbitrary-precision integer leaf.
type Int struct {
	N *big.Int
}

// List is an ordered sequence of values.
type List []Value

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an association list. Entry order is kept as decoded.
type Map []MapEntry

func (Constr) isValue() {}
func (Bytes) isValue()  {}
func (Int) isValue()    {}
func (List) isValue()   {}
func (Map) isValue()    {}

// NewInt returns an Int holding n.
func NewInt(n int64) Int {
	return Int{N: big.NewInt(n)}
}

// Hex renders the byte string as lowercase hex.
func (b Bytes) Hex() types.Hex {
	return types.HexFromBytes(b)
}

// String renders the integer in base 10.
func (i Int) String() string {
	if i.N == nil {
		return "0"
	}
	return i.N.String()
}

// AsHex returns the hex form of v when v is a byte string.
func AsHex(v Value) (types.Hex, bool) {
	b, ok := v.(Bytes)
	if !ok {
		return "", false
	}
	return b.Hex(), true
}
