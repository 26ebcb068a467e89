package datum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned when a path cannot be parsed.
var ErrInvalidPath = errors.New("invalid datum path")

// Accessor is one step of a Path: a named field or a positional index.
type Accessor struct {
	name    string
	index   int
	isIndex bool
}

// Field returns an accessor selecting a named field.
func Field(name string) Accessor {
	return Accessor{name: name}
}

// Index returns an accessor selecting the i-th element.
func Index(i int) Accessor {
	return Accessor{index: i, isIndex: true}
}

// IsIndex reports whether the accessor is positional.
func (a Accessor) IsIndex() bool {
	return a.isIndex
}

func (a Accessor) String() string {
	if a.isIndex {
		return strconv.Itoa(a.index)
	}
	return a.name
}

// Path is an ordered list of accessors walked from the datum root.
type Path []Accessor

// ParsePath parses the dotted form, e.g. "fields.0.fields.3". Segments made of
// digits are indexes, everything else is a field name. The empty string is
// the empty path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}

	segments := strings.Split(s, ".")
	p := make(Path, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, s)
		}

		if n, err := strconv.Atoi(seg); err == nil {
			if n < 0 {
				return nil, fmt.Errorf("%w: negative index in %q", ErrInvalidPath, s)
			}
			p = append(p, Index(n))
			continue
		}

		p = append(p, Field(seg))
	}

	return p, nil
}

// MustParsePath is ParsePath for static paths; it panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, a := range p {
		parts[i] = a.String()
	}
	return strings.Join(parts, ".")
}

// MarshalJSON encodes the path as a mixed array, e.g. ["fields",0,"fields",3].
func (p Path) MarshalJSON() ([]byte, error) {
	out := make([]any, len(p))
	for i, a := range p {
		if a.isIndex {
			out[i] = a.index
		} else {
			out[i] = a.name
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts a mixed array of field names and non-negative
// integers, or the dotted string form.
func (p *Path) UnmarshalJSON(data []byte) error {
	var dotted string
	if err := json.Unmarshal(data, &dotted); err == nil {
		parsed, err := ParsePath(dotted)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	parsed := make(Path, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if v == "" {
				return fmt.Errorf("%w: empty field name", ErrInvalidPath)
			}
			parsed = append(parsed, Field(v))
		case json.Number:
			n, err := strconv.Atoi(v.String())
			if err != nil || n < 0 {
				return fmt.Errorf("%w: index %s", ErrInvalidPath, v)
			}
			parsed = append(parsed, Index(n))
		default:
			return fmt.Errorf("%w: unexpected element %v", ErrInvalidPath, item)
		}
	}

	*p = parsed
	return nil
}
