// Package numbers converts the parser kernel's number fragment descriptors
// (spec.md §3.4) into host integer or floating-point values.
package numbers

import (
	"math/big"
	"strconv"

	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/value"
)

// SignedRange is an exponent's sign paired with its digit range.
type SignedRange struct {
	Negative bool
	Digits   input.Range
}

// Descriptor describes a parsed JSON number without having decoded it yet:
// the integer part, and optionally a decimal part and/or exponent. If both
// Decimal and Exponent are nil the fragment is an integer; otherwise it's a
// float.
type Descriptor struct {
	Negative bool
	Integer  input.Range
	Decimal  *input.Range
	Exponent *SignedRange
}

// IsFloat reports whether the descriptor must decode to a float64.
func (d Descriptor) IsFloat() bool {
	return d.Decimal != nil || d.Exponent != nil
}

// Decode materializes d against p and returns the appropriate host value:
// an Int64 when the integer fits the native signed 64-bit range, a *BigInt
// otherwise, or a Float64 when a decimal point or exponent is present.
func Decode(p input.Provider, d Descriptor) (value.Value, error) {
	if d.IsFloat() {
		return decodeFloat(p, d)
	}
	return decodeInteger(p, d)
}

func decodeInteger(p input.Provider, d Descriptor) (value.Value, error) {
	var digits []byte
	p.PushRange(d.Integer, &digits)

	// Fast path: try native int64 first. ParseUint on the unsigned digit
	// string avoids allocating a big.Int for the overwhelmingly common
	// case of small numbers.
	if u, err := strconv.ParseUint(string(digits), 10, 64); err == nil {
		if !d.Negative {
			if u <= uint64(1)<<63-1 {
				return value.Int64(int64(u)), nil
			}
		} else {
			// -9223372036854775808 fits in int64 but its magnitude
			// (9223372036854775808) does not fit in a positive int64, so
			// compare against the unsigned magnitude of math.MinInt64.
			if u <= uint64(1)<<63 {
				return value.Int64(-int64(u - 1) - 1), nil
			}
		}
	}

	n := new(big.Int)
	if _, ok := n.SetString(string(digits), 10); !ok {
		return nil, &DecodeError{Reason: "invalid integer digits"}
	}
	if d.Negative {
		n.Neg(n)
	}
	return value.NewBigInt(n), nil
}

func decodeFloat(p input.Provider, d Descriptor) (value.Value, error) {
	var buf []byte
	if d.Negative {
		buf = append(buf, '-')
	}
	p.PushRange(d.Integer, &buf)
	if d.Decimal != nil {
		buf = append(buf, '.')
		p.PushRange(*d.Decimal, &buf)
	}
	if d.Exponent != nil {
		buf = append(buf, 'e')
		if d.Exponent.Negative {
			buf = append(buf, '-')
		}
		p.PushRange(d.Exponent.Digits, &buf)
	}
	f, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid float literal: " + err.Error()}
	}
	return value.Float64(f), nil
}

// DecodeError reports a malformed number fragment. This should be
// unreachable if the parser kernel only ever emits descriptors over
// grammar-valid digit ranges; it exists as a defensive boundary rather than
// a normal control-flow path.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return "numbers: " + e.Reason }
