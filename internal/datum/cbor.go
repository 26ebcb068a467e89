package datum

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/Salvionied/cbor/v2"
)

// ErrInvalidDatum is returned when datum bytes do not encode Plutus data.
var ErrInvalidDatum = errors.New("invalid datum")

// maxDepth bounds the nesting accepted from on-chain data.
const maxDepth = 64

// CBOR major types.
const (
	majorUint   = 0
	majorNegInt = 1
	majorBytes  = 2
	majorArray  = 4
	majorMap    = 5
	majorTag    = 6
)

// Plutus data constructor tags.
const (
	tagBigUint        = 2
	tagBigNegInt      = 3
	tagConstrGeneral  = 102
	tagConstrCompact  = 121 // alternatives 0-6
	tagConstrCompactN = 127
	tagConstrExtended = 1280 // alternatives 7-127
	tagConstrExtendN  = 1400
)

// DecodeCBORHex decodes a hex-encoded inline datum.
func DecodeCBORHex(s string) (Value, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
	}
	return DecodeCBOR(raw)
}

// DecodeCBOR decodes Plutus data: constructors (tags 121-127, 1280-1400 and
// 102), byte strings (definite or chunked), integers and bignums, lists and
// maps.
func DecodeCBOR(data []byte) (Value, error) {
	v, err := decodeNode(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
	}
	return v, nil
}

func decodeNode(data []byte, depth int) (Value, error) {
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting deeper than %d", maxDepth)
	}

	switch major := data[0] >> 5; major {
	case majorUint, majorNegInt:
		var n big.Int
		if err := cbor.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return Int{N: &n}, nil

	case majorBytes:
		var b []byte
		if err := cbor.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return Bytes(b), nil

	case majorArray:
		var items []cbor.RawMessage
		if err := cbor.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return decodeList(items, depth)

	case majorMap:
		return decodeMap(data, depth)

	case majorTag:
		return decodeTag(data, depth)

	default:
		return nil, fmt.Errorf("unexpected CBOR major type %d", major)
	}
}

func decodeList(items []cbor.RawMessage, depth int) (List, error) {
	out := make(List, len(items))
	for i, item := range items {
		v, err := decodeNode(item, depth+1)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func decodeTag(data []byte, depth int) (Value, error) {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch n := tag.Number; {
	case n == tagBigUint || n == tagBigNegInt:
		var i big.Int
		if err := cbor.Unmarshal(data, &i); err != nil {
			return nil, err
		}
		return Int{N: &i}, nil

	case n >= tagConstrCompact && n <= tagConstrCompactN:
		return decodeConstr(n-tagConstrCompact, tag.Content, depth)

	case n >= tagConstrExtended && n <= tagConstrExtendN:
		return decodeConstr(n-tagConstrExtended+7, tag.Content, depth)

	case n == tagConstrGeneral:
		var pair []cbor.RawMessage
		if err := cbor.Unmarshal(tag.Content, &pair); err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("constructor tag 102 expects 2 items, got %d", len(pair))
		}

		var alt uint64
		if err := cbor.Unmarshal(pair[0], &alt); err != nil {
			return nil, fmt.Errorf("constructor alternative: %w", err)
		}
		return decodeConstr(alt, pair[1], depth)

	default:
		return nil, fmt.Errorf("unexpected CBOR tag %d", n)
	}
}

func decodeConstr(alt uint64, content []byte, depth int) (Value, error) {
	var items []cbor.RawMessage
	if err := cbor.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("constructor %d fields: %w", alt, err)
	}

	fields, err := decodeList(items, depth)
	if err != nil {
		return nil, fmt.Errorf("constructor %d: %w", alt, err)
	}

	return Constr{Index: alt, Fields: fields}, nil
}

// decodeMap walks the map items one by one so entry order is kept and keys
// of any shape (byte strings, constructors) are accepted.
func decodeMap(data []byte, depth int) (Value, error) {
	count, indefinite, header, err := mapHeader(data)
	if err != nil {
		return nil, err
	}

	rest := data[header:]
	dec := cbor.NewDecoder(bytes.NewReader(rest))

	var out Map
	for i := uint64(0); indefinite || i < count; i++ {
		if indefinite {
			read := dec.NumBytesRead()
			if read >= len(rest) {
				return nil, errors.New("unterminated indefinite-length map")
			}
			if rest[read] == 0xff {
				break
			}
		}

		var rawKey, rawValue cbor.RawMessage
		if err := dec.Decode(&rawKey); err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		if err := dec.Decode(&rawValue); err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}

		key, err := decodeNode(rawKey, depth+1)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		value, err := decodeNode(rawValue, depth+1)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}

		out = append(out, MapEntry{Key: key, Value: value})
	}

	if out == nil {
		out = Map{}
	}
	return out, nil
}

// mapHeader returns the entry count of a map and the size of its header.
func mapHeader(data []byte) (count uint64, indefinite bool, size int, err error) {
	info := data[0] & 0x1f
	switch {
	case info < 24:
		return uint64(info), false, 1, nil
	case info == 31:
		return 0, true, 1, nil
	case info > 27:
		return 0, false, 0, fmt.Errorf("invalid map length encoding %d", info)
	}

	width := 1 << (info - 24)
	if len(data) < 1+width {
		return 0, false, 0, errors.New("truncated map header")
	}

	switch width {
	case 1:
		count = uint64(data[1])
	case 2:
		count = uint64(binary.BigEndian.Uint16(data[1:3]))
	case 4:
		count = uint64(binary.BigEndian.Uint32(data[1:5]))
	default:
		count = binary.BigEndian.Uint64(data[1:9])
	}

	return count, false, 1 + width, nil
}
