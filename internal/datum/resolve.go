package datum

import "math/big"

// Resolve walks p from v and returns the value it reaches.
//
// It returns (nil, false) when v is nil, when a field or index does not exist
// or when an accessor is applied to a leaf. A missing value is an ordinary
// outcome, not an error.
//
// Accessors behave as follows:
//   - Constr: "fields" yields the fields as a List, "constructor" (or
//     "index") yields the alternative as an Int, an index selects a field.
//   - List: an index selects an element.
//   - Map: a field selects the value whose key renders to the name (hex for
//     byte string keys, decimal for integer keys); an index selects the i-th
//     value.
func Resolve(v Value, p Path) (Value, bool) {
	cur := v
	for _, a := range p {
		if cur == nil {
			return nil, false
		}

		next, ok := step(cur, a)
		if !ok {
			return nil, false
		}
		cur = next
	}

	if cur == nil {
		return nil, false
	}
	return cur, true
}

func step(v Value, a Accessor) (Value, bool) {
	switch node := v.(type) {
	case Constr:
		if a.isIndex {
			return at(node.Fields, a.index)
		}
		switch a.name {
		case "fields":
			return List(node.Fields), true
		case "constructor", "index":
			return Int{N: new(big.Int).SetUint64(node.Index)}, true
		}
	case List:
		if a.isIndex {
			return at(node, a.index)
		}
	case Map:
		if a.isIndex {
			if a.index < 0 || a.index >= len(node) {
				return nil, false
			}
			return node[a.index].Value, node[a.index].Value != nil
		}
		for _, entry := range node {
			if key, ok := keyName(entry.Key); ok && key == a.name {
				return entry.Value, entry.Value != nil
			}
		}
	}

	return nil, false
}

func at(values []Value, i int) (Value, bool) {
	if i < 0 || i >= len(values) || values[i] == nil {
		return nil, false
	}
	return values[i], true
}

func keyName(v Value) (string, bool) {
	switch k := v.(type) {
	case Bytes:
		return string(k.Hex()), true
	case Int:
		return k.String(), true
	default:
		return "", false
	}
}
