package datum

import (
	"fmt"
	"strings"

	"github.com/MAYZGitHub/mayz-tools/internal/cardano"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/types"
)

// MatchResult tells which side of an identity a datum designates.
type MatchResult struct {
	PaymentMatched bool
	StakeMatched   bool
}

// Full reports whether both key hashes matched.
func (r MatchResult) Full() bool {
	return r.PaymentMatched && r.StakeMatched
}

// Any reports whether at least one key hash matched.
func (r MatchResult) Any() bool {
	return r.PaymentMatched || r.StakeMatched
}

// Match resolves paymentPath and stakePath in v and compares each resolved
// byte string with the corresponding key hash of id, ignoring hex case.
//
// Match cannot fail: a path that does not resolve, or resolves to anything but
// a byte string, does not match.
func Match(v Value, id cardano.Identity, paymentPath, stakePath Path) MatchResult {
	return MatchResult{
		PaymentMatched: matchesHash(v, paymentPath, id.PaymentKeyHash),
		StakeMatched:   matchesHash(v, stakePath, id.StakeKeyHash),
	}
}

func matchesHash(v Value, p Path, want types.Hex) bool {
	if want.IsEmpty() {
		return false
	}

	resolved, ok := Resolve(v, p)
	if !ok {
		return false
	}

	got, ok := AsHex(resolved)
	return ok && got.Equal(want)
}

// MatchPolicy decides which match results count as ownership.
type MatchPolicy int

const (
	// MatchFull requires both the payment and the stake key hash.
	MatchFull MatchPolicy = iota
	// MatchAny accepts a match on either key hash.
	MatchAny
)

// Accepts reports whether r counts as a match under the policy.
func (p MatchPolicy) Accepts(r MatchResult) bool {
	if p == MatchAny {
		return r.Any()
	}
	return r.Full()
}

func (p MatchPolicy) String() string {
	if p == MatchAny {
		return "any"
	}
	return "full"
}

// ParseMatchPolicy parses "full" or "any".
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return MatchFull, nil
	case "any":
		return MatchAny, nil
	default:
		return MatchFull, fmt.Errorf("unknown match policy %q", s)
	}
}

// UnmarshalText lets configuration loaders decode the policy by name.
func (p *MatchPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
