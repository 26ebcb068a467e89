package datum

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// DecodeDetailedJSON decodes a datum in the "detailed schema" JSON used by
// cardano-cli and Blockfrost's json_value:
//
//	{"constructor": 0, "fields": [...]}
//	{"bytes": "<hex>"}
//	{"int": 42}
//	{"list": [...]}
//	{"map": [{"k": ..., "v": ...}]}
func DecodeDetailedJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
	}

	v, err := fromJSON(raw, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
	}
	return v, nil
}

func fromJSON(raw any, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting deeper than %d", maxDepth)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an object, got %T", raw)
	}

	if alt, ok := obj["constructor"]; ok {
		idx, err := jsonUint(alt)
		if err != nil {
			return nil, fmt.Errorf("constructor: %w", err)
		}

		items, ok := obj["fields"].([]any)
		if !ok {
			return nil, errors.New("constructor without a fields array")
		}

		fields, err := listFromJSON(items, depth)
		if err != nil {
			return nil, err
		}
		return Constr{Index: idx, Fields: fields}, nil
	}

	if s, ok := obj["bytes"]; ok {
		str, ok := s.(string)
		if !ok {
			return nil, errors.New("bytes must be a hex string")
		}
		b, err := hex.DecodeString(str)
		if err != nil {
			return nil, fmt.Errorf("bytes: %w", err)
		}
		return Bytes(b), nil
	}

	if n, ok := obj["int"]; ok {
		i, err := jsonInt(n)
		if err != nil {
			return nil, err
		}
		return Int{N: i}, nil
	}

	if l, ok := obj["list"]; ok {
		items, ok := l.([]any)
		if !ok {
			return nil, errors.New("list must be an array")
		}
		return listFromJSON(items, depth)
	}

	if m, ok := obj["map"]; ok {
		entries, ok := m.([]any)
		if !ok {
			return nil, errors.New("map must be an array")
		}
		return mapFromJSON(entries, depth)
	}

	return nil, errors.New("object is not a detailed schema datum")
}

func listFromJSON(items []any, depth int) (List, error) {
	out := make(List, len(items))
	for i, item := range items {
		v, err := fromJSON(item, depth+1)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func mapFromJSON(entries []any, depth int) (Map, error) {
	out := make(Map, 0, len(entries))
	for i, e := range entries {
		pair, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("map entry %d is not an object", i)
		}

		key, err := fromJSON(pair["k"], depth+1)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		value, err := fromJSON(pair["v"], depth+1)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}

		out = append(out, MapEntry{Key: key, Value: value})
	}
	return out, nil
}

func jsonInt(raw any) (*big.Int, error) {
	var s string
	switch n := raw.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = n
	default:
		return nil, fmt.Errorf("int must be a number, got %T", raw)
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("int %q is not an integer", s)
	}
	return i, nil
}

func jsonUint(raw any) (uint64, error) {
	i, err := jsonInt(raw)
	if err != nil {
		return 0, err
	}
	if i.Sign() < 0 || !i.IsUint64() {
		return 0, fmt.Errorf("%s is out of range", i)
	}
	return i.Uint64(), nil
}
