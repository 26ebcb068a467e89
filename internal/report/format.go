// Package report renders balances, governance positions, holders and
// contract dumps for people (text, tables) and for other tools (CSV, JSON).
package report

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
)

// adaDecimals is the number of decimals of ADA and of gMAYZ.
const adaDecimals = 6

// Decimal renders q scaled down by 10^decimals with exactly that many
// decimals: Decimal(1234567, 6) is "1.234567".
func Decimal(q *big.Int, decimals int) string {
	if q == nil {
		q = new(big.Int)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Rat).SetFrac(q, scale).FloatString(decimals)
}

// Quantity renders q for humans: lovelace as ADA, tokens as raw integers.
func Quantity(unit string, q *big.Int) string {
	if unit == ledger.Lovelace {
		return Decimal(q, adaDecimals)
	}
	if q == nil {
		return "0"
	}
	return q.String()
}

// Label names a unit for humans. Lovelace is "ADA"; tokens show the edges of
// the policy id, the decoded asset name and its hex, as in
// "e46f...5018.gMAYZ [674d41595a]".
func Label(unit string) string {
	if unit == ledger.Lovelace {
		return "ADA"
	}

	policyID, nameHex, ok := ledger.ParseUnit(unit)
	if !ok {
		return unit
	}

	short := policyID[:4] + "..." + policyID[52:56]

	name, ok := decodeName(nameHex)
	if !ok {
		return short + ".[" + nameHex + "]"
	}
	return short + "." + name + " [" + nameHex + "]"
}

// AssetName returns the decoded asset name of unit ("gMAYZ"), "ADA" for
// lovelace, or unit itself when it has no readable name.
func AssetName(unit string) string {
	if unit == ledger.Lovelace {
		return "ADA"
	}

	_, nameHex, ok := ledger.ParseUnit(unit)
	if !ok {
		return unit
	}

	name, ok := decodeName(nameHex)
	if !ok || name == "" {
		return unit
	}
	return name
}

func decodeName(nameHex string) (string, bool) {
	name, err := hex.DecodeString(nameHex)
	if err != nil {
		return "", false
	}
	return strings.ToValidUTF8(string(name), "\uFFFD"), true
}
