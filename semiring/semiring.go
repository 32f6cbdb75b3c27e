// SPDX-License-Identifier: MIT

package semiring

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Value is the scalar stored in every tropical matrix and vector.
type Value int32

const (
	// NegInf is the additive zero of max-plus and max-min ("no path").
	NegInf Value = math.MinInt32
	// PosInf is the additive zero of min-plus and min-max.
	PosInf Value = math.MaxInt32
)

// IsInf reports whether v is one of the two sentinels.
func (v Value) IsInf() bool { return v == NegInf || v == PosInf }

// String renders sentinels as "-inf" and "+inf".
func (v Value) String() string {
	switch v {
	case NegInf:
		return "-inf"
	case PosInf:
		return "+inf"
	}

	return fmt.Sprintf("%d", int32(v))
}

// Semiring selects the (⊕, ⊗) pair used by an operation.
type Semiring uint8

// The numeric values are stable and match the order of the names table.
const (
	MaxPlus Semiring = iota
	MinPlus
	MaxMin
	MinMax
	Boolean
)

// ErrUnknownSemiring is returned by Parse for unrecognised names.
var ErrUnknownSemiring = errors.New("semiring: unknown semiring")

var names = [...]string{
	MaxPlus: "max-plus",
	MinPlus: "min-plus",
	MaxMin:  "max-min",
	MinMax:  "min-max",
	Boolean: "boolean",
}

// All returns every supported semiring in tag order.
func All() []Semiring {
	return []Semiring{MaxPlus, MinPlus, MaxMin, MinMax, Boolean}
}

// Valid reports whether s is one of the five defined variants.
func (s Semiring) Valid() bool { return s <= Boolean }

// Additive reports whether ⊗ is saturating integer addition
// (max-plus and min-plus). Only these admit cycle means.
func (s Semiring) Additive() bool { return s == MaxPlus || s == MinPlus }

// String returns the canonical name, e.g. "max-plus", or "unknown".
func (s Semiring) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return names[s]
}

// Parse maps a name to its Semiring. Matching ignores case, and both
// "_" and "-" are accepted as separators ("max_plus", "MaxPlus" too).
func Parse(name string) (Semiring, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	for i, n := range names {
		if strings.ReplaceAll(n, "-", "") == key {
			return Semiring(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSemiring, name)
}

// Zero returns the additive identity, absorbing under Mul.
func (s Semiring) Zero() Value {
	switch s {
	case MinPlus, MinMax:
		return PosInf
	case Boolean:
		return 0
	default:
		return NegInf
	}
}

// One returns the multiplicative identity.
func (s Semiring) One() Value {
	switch s {
	case MaxMin:
		return PosInf
	case MinMax:
		return NegInf
	case Boolean:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a equals s.Zero().
func (s Semiring) IsZero(a Value) bool { return a == s.Zero() }

// Add computes a ⊕ b.
func (s Semiring) Add(a, b Value) Value {
	switch s {
	case MinPlus, MinMax:
		return min(a, b)
	case Boolean:
		if a != 0 || b != 0 {
			return 1
		}

		return 0
	default:
		return max(a, b)
	}
}

// Mul computes a ⊗ b.
//
// For MaxPlus and MinPlus the semiring's own zero is checked first so
// that it absorbs even when the other operand is the opposite sentinel.
func (s Semiring) Mul(a, b Value) Value {
	switch s {
	case MaxPlus:
		if a == NegInf || b == NegInf {
			return NegInf
		}
		if a == PosInf || b == PosInf {
			return PosInf
		}

		return saturate(int64(a) + int64(b))
	case MinPlus:
		if a == PosInf || b == PosInf {
			return PosInf
		}
		if a == NegInf || b == NegInf {
			return NegInf
		}

		return saturate(int64(a) + int64(b))
	case MaxMin:
		return min(a, b)
	case MinMax:
		return max(a, b)
	case Boolean:
		if a != 0 && b != 0 {
			return 1
		}

		return 0
	default:
		return MaxPlus.Mul(a, b)
	}
}

// Pow computes a ⊗ a ⊗ ... ⊗ a (k factors); k == 0 yields One.
func (s Semiring) Pow(a Value, k uint) Value {
	if k == 0 {
		return s.One()
	}
	if !s.Additive() || a.IsInf() || a == 0 {
		// ⊗ is idempotent here, or a is a fixed point of +.
		return s.Mul(a, a)
	}
	if k > math.MaxInt32 {
		k = math.MaxInt32
	}

	return saturate(int64(a) * int64(k))
}

// Sub removes a finite scalar from a finite value under saturation,
// leaving sentinels untouched. It is the inverse of ⊗ on the additive
// semirings and is used for eigenvector normalisation.
func Sub(a, b Value) Value {
	if a.IsInf() {
		return a
	}

	return saturate(int64(a) - int64(b))
}

// saturate clamps an exact sum back into the Value range. Results that
// land exactly on a sentinel are clamped as well.
func saturate(sum int64) Value {
	if sum >= math.MaxInt32 {
		return PosInf
	}
	if sum <= math.MinInt32 {
		return NegInf
	}

	return Value(sum)
}
