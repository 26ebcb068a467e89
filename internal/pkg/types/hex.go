package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Hex represents a lowercase hexadecimal encoding of raw bytes (e.g., a
// 28-byte key hash rendered as 56 characters). Unlike chain formats that
// prefix numbers with "0x", Cardano tooling renders hashes as bare hex.
type Hex string

// HexFromBytes encodes b as a lowercase Hex.
func HexFromBytes(b []byte) Hex {
	return Hex(hex.EncodeToString(b))
}

// HexFromString validates the input string and returns its normalized
// (lowercase) Hex form.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(strings.ToLower(s)), nil
}

// validateHex checks whether s is an even-length string of hexadecimal digits.
func validateHex(s string) error {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must not carry a 0x prefix")
	}

	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses, validates and lowercases a JSON-encoded hex string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	v, err := HexFromString(s)
	if err != nil {
		return err
	}

	*h = v
	return nil
}

// Bytes returns the decoded bytes. If the value is invalid, it returns nil.
func (h Hex) Bytes() []byte {
	b, err := hex.DecodeString(string(h))
	if err != nil {
		return nil
	}
	return b
}

// ByteLen returns the number of bytes the value encodes.
func (h Hex) ByteLen() int {
	return len(h) / 2
}

// IsEmpty reports whether the value holds no bytes.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Equal compares two hex values ignoring letter case.
func (h Hex) Equal(other Hex) bool {
	return strings.EqualFold(string(h), string(other))
}
