package njson

import (
	"fmt"
	"math/big"
)

// Rat wraps big.Rat so multipleOf can use exact arithmetic when both the
// instance and the divisor are Int. When either is a Float,
// evaluateNumberConstraints uses double division instead.
type Rat struct {
	*big.Rat
}

// NewRatFromInt builds an exact Rat from an Int node value.
func NewRatFromInt(v int64) *Rat {
	return &Rat{new(big.Rat).SetInt64(v)}
}

// NewRatFromFloat builds a Rat holding the exact binary value of a Float
// node value, or nil for NaN/Infinity.
func NewRatFromFloat(v float64) *Rat {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return nil
	}
	return &Rat{r}
}

// NodeToRat converts a numeric Node to a Rat, or (nil, false) if n is not
// a number.
func NodeToRat(n *Node) (*Rat, bool) {
	switch n.Kind() {
	case KindInt:
		return NewRatFromInt(n.IntValue()), true
	case KindFloat:
		r := NewRatFromFloat(n.FloatValue())
		return r, r != nil
	default:
		return nil, false
	}
}

func (r *Rat) String() string {
	if r == nil || r.Rat == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	f, _ := r.Float64()
	return fmt.Sprint(f)
}

// isMultipleOf reports whether value is an exact multiple of divisor.
func isMultipleOf(value, divisor *Rat) bool {
	if divisor == nil || divisor.Sign() <= 0 {
		return false
	}
	quotient := new(big.Rat).Quo(value.Rat, divisor.Rat)
	return quotient.IsInt()
}
