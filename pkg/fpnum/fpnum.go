// Package fpnum implements the Q16.16 fixed-point number used for all
// script arithmetic. Every bit pattern is a valid value and every operation
// is total.
package fpnum

import (
	"fmt"
	"math"
	"math/bits"
)

// Num is a signed 32-bit pattern read as 16 integer bits and 16 fraction bits.
type Num int32

const (
	fracBits = 16
	one      = 1 << fracBits
	fracMask = one - 1
)

const (
	MaxValue Num = math.MaxInt32
	MinValue Num = math.MinInt32
	Zero     Num = 0
	One      Num = one
)

// Integer division by zero yields these, not the 32-bit clamp bounds.
var (
	IntDivPosSentinel = FromInt(32767)
	IntDivNegSentinel = FromInt(-32768)
)

func FromInt(i int) Num        { return Num(uint32(i) << fracBits) }
func FromInt64(i int64) Num    { return Num(uint32(i) << fracBits) }
func FromUint(u uint) Num      { return Num(uint32(u) << fracBits) }
func FromRaw(raw int32) Num    { return Num(raw) }
func (n Num) Raw() int32       { return int32(n) }
func (n Num) Float64() float64 { return float64(n) / one }
func (n Num) Float32() float32 { return float32(n.Float64()) }

// FromFloat rounds r*65536 half away from zero. Finite values outside the
// representable range wrap modulo 2^32; NaN becomes zero and infinities
// clamp.
func FromFloat(r float64) Num {
	switch {
	case math.IsNaN(r):
		return Zero
	case math.IsInf(r, 1):
		return MaxValue
	case math.IsInf(r, -1):
		return MinValue
	}
	scaled := math.Round(r * one)
	if scaled >= math.MinInt64 && scaled < math.MaxInt64 {
		return Num(int32(int64(scaled)))
	}
	wrapped := math.Mod(scaled, 1<<32)
	return Num(int32(int64(wrapped)))
}

// FromParts packs an explicit integer part and fraction bits.
func FromParts(integer int16, frac uint16) Num {
	return Num(uint32(uint16(integer))<<fracBits | uint32(frac))
}

// Int floors toward negative infinity, matching an arithmetic shift of the
// stored pattern.
func (n Num) Int() int { return int(int32(n) >> fracBits) }

func (n Num) SignedIntegralBits() int16    { return int16(int32(n) >> fracBits) }
func (n Num) UnsignedIntegralBits() uint16 { return uint16(uint32(n) >> fracBits) }
func (n Num) DecimalBits() uint16          { return uint16(uint32(n) & fracMask) }

// Wrapping family.

func (n Num) Add(o Num) Num { return Num(int32(n) + int32(o)) }
func (n Num) Sub(o Num) Num { return Num(int32(n) - int32(o)) }
func (n Num) Neg() Num      { return Num(-int32(n)) }

func (n Num) Mul(o Num) Num {
	return Num(int32((int64(n) * int64(o)) >> fracBits))
}

// Div wraps on overflow; a zero divisor gives MaxValue or MinValue by the
// sign of the dividend.
func (n Num) Div(o Num) Num {
	if o == 0 {
		if n >= 0 {
			return MaxValue
		}
		return MinValue
	}
	return Num(int32((int64(n) << fracBits) / int64(o)))
}

// Mod is the truncated remainder of the raw patterns, zero for a zero divisor.
func (n Num) Mod(o Num) Num {
	if o == 0 {
		return Zero
	}
	return Num(int32(int64(n) % int64(o)))
}

// IntDiv divides the raw patterns and keeps the truncated quotient as the
// new raw pattern, without rescaling: 7 \ 2 has raw value 3. MinValue \ -1
// wraps to MinValue.
func (n Num) IntDiv(o Num) Num {
	if o == 0 {
		if n >= 0 {
			return IntDivPosSentinel
		}
		return IntDivNegSentinel
	}
	return FromRaw(int32(int64(n) / int64(o)))
}

// Saturating family.

func clamp(v int64) Num {
	switch {
	case v > math.MaxInt32:
		return MaxValue
	case v < math.MinInt32:
		return MinValue
	}
	return Num(v)
}

func (n Num) SAdd(o Num) Num { return clamp(int64(n) + int64(o)) }
func (n Num) SSub(o Num) Num { return clamp(int64(n) - int64(o)) }
func (n Num) SMul(o Num) Num { return clamp((int64(n) * int64(o)) >> fracBits) }

func (n Num) SDiv(o Num) Num {
	if o == 0 {
		if n >= 0 {
			return MaxValue
		}
		return MinValue
	}
	return clamp((int64(n) << fracBits) / int64(o))
}

// Bitwise operations act on the raw pattern.

func (n Num) And(o Num) Num { return n & o }
func (n Num) Or(o Num) Num  { return n | o }
func (n Num) Xor(o Num) Num { return n ^ o }
func (n Num) Not() Num      { return ^n }

// Shl shifts left by o.Int(); a negative count is a logical right shift.
func (n Num) Shl(o Num) Num {
	s := o.Int()
	if s >= 0 {
		return Num(int32(n) << uint(s))
	}
	return Num(int32(uint32(n) >> uint(-s)))
}

// Shr is the arithmetic right shift; a negative count shifts left.
func (n Num) Shr(o Num) Num {
	s := o.Int()
	if s >= 0 {
		return Num(int32(n) >> uint(s))
	}
	return Num(int32(n) << uint(-s))
}

// Lshr is the logical right shift; a negative count shifts left.
func (n Num) Lshr(o Num) Num {
	s := o.Int()
	if s >= 0 {
		return Num(int32(uint32(n) >> uint(s)))
	}
	return Num(int32(n) << uint(-s))
}

func (n Num) Rotl(o Num) Num { return Num(int32(bits.RotateLeft32(uint32(n), o.Int()))) }
func (n Num) Rotr(o Num) Num { return Num(int32(bits.RotateLeft32(uint32(n), -o.Int()))) }

// Ordering.

func (n Num) Cmp(o Num) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	}
	return 0
}

func (n Num) Less(o Num) bool   { return n < o }
func (n Num) LessEq(o Num) bool { return n <= o }
func (n Num) Equal(o Num) bool  { return n == o }

func Min(a, b Num) Num {
	if b < a {
		return b
	}
	return a
}

func Max(a, b Num) Num {
	if b > a {
		return b
	}
	return a
}

// String renders the debug form "<int>.<5 fraction digits>".
func (n Num) String() string {
	frac := (int64(n.DecimalBits())*100000 + one/2) / one
	return fmt.Sprintf("%d.%05d", n.Int(), frac)
}

// Hex renders the pattern as "0xIIII.FFFF".
func (n Num) Hex() string {
	return fmt.Sprintf("0x%04x.%04x", n.UnsignedIntegralBits(), n.DecimalBits())
}
