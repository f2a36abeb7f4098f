package fpnum

import (
	"math"
	"sync/atomic"
)

// Math is the approximation backend for the transcendental operations. It
// receives and returns raw Q16.16 patterns; implementations must keep that
// scale on both sides.
type Math interface {
	Sin(x int32) int32
	Cos(x int32) int32
	Tan(x int32) int32
	Asin(x int32) int32
	Acos(x int32) int32
	Atan(x int32) int32
	Atan2(y, x int32) int32
	Sqrt(x int32) int32
	Exp(x int32) int32
	Log(x int32) int32
	Floor(x int32) int32
	Abs(x int32) int32
}

var backend atomic.Pointer[Math]

func init() {
	var m Math = FloatMath{}
	backend.Store(&m)
}

// SetMath replaces the backend used by every Num and returns the previous one.
func SetMath(m Math) Math {
	old := backend.Swap(&m)
	return *old
}

func mathImpl() Math { return *backend.Load() }

func (n Num) Sin() Num   { return Num(mathImpl().Sin(int32(n))) }
func (n Num) Cos() Num   { return Num(mathImpl().Cos(int32(n))) }
func (n Num) Tan() Num   { return Num(mathImpl().Tan(int32(n))) }
func (n Num) Asin() Num  { return Num(mathImpl().Asin(int32(n))) }
func (n Num) Acos() Num  { return Num(mathImpl().Acos(int32(n))) }
func (n Num) Atan() Num  { return Num(mathImpl().Atan(int32(n))) }
func (n Num) Sqrt() Num  { return Num(mathImpl().Sqrt(int32(n))) }
func (n Num) Exp() Num   { return Num(mathImpl().Exp(int32(n))) }
func (n Num) Log() Num   { return Num(mathImpl().Log(int32(n))) }
func (n Num) Floor() Num { return Num(mathImpl().Floor(int32(n))) }
func (n Num) Abs() Num   { return Num(mathImpl().Abs(int32(n))) }

// Atan2 treats the receiver as y.
func (n Num) Atan2(x Num) Num { return Num(mathImpl().Atan2(int32(n), int32(x))) }

// Pow is exp(log(x)*y).
func (n Num) Pow(y Num) Num { return n.Log().Mul(y).Exp() }

// Ldexp is x * 2^e.
func (n Num) Ldexp(e int) Num { return n.Mul(FromInt(2).Pow(FromInt(e))) }

// FloatMath evaluates through float64 and rounds back with FromFloat. Its
// domain rules follow the usual fixed-point library conventions: square
// roots of negatives are negated, logarithms of non-positive values give
// MinValue, inverse sines outside [-1, 1] give zero.
type FloatMath struct{}

func raw(f float64) int32    { return int32(FromFloat(f)) }
func toReal(x int32) float64 { return Num(x).Float64() }

var (
	expMax = math.Log(32768)
	expMin = -11.7
)

func (FloatMath) Sin(x int32) int32      { return raw(math.Sin(toReal(x))) }
func (FloatMath) Cos(x int32) int32      { return raw(math.Cos(toReal(x))) }
func (FloatMath) Tan(x int32) int32      { return raw(math.Tan(toReal(x))) }
func (FloatMath) Atan(x int32) int32     { return raw(math.Atan(toReal(x))) }
func (FloatMath) Atan2(y, x int32) int32 { return raw(math.Atan2(toReal(y), toReal(x))) }
func (FloatMath) Floor(x int32) int32    { return int32(uint32(x) &^ fracMask) }

func (FloatMath) Asin(x int32) int32 {
	if x > one || x < -one {
		return 0
	}
	return raw(math.Asin(toReal(x)))
}

func (m FloatMath) Acos(x int32) int32 {
	return int32(Num(raw(math.Pi / 2)).Sub(Num(m.Asin(x))))
}

func (FloatMath) Sqrt(x int32) int32 {
	if x < 0 {
		return -raw(math.Sqrt(-toReal(x)))
	}
	return raw(math.Sqrt(toReal(x)))
}

func (FloatMath) Exp(x int32) int32 {
	switch f := toReal(x); {
	case x == 0:
		return one
	case f >= expMax:
		return int32(MaxValue)
	case f <= expMin:
		return 0
	default:
		return raw(math.Exp(f))
	}
}

func (FloatMath) Log(x int32) int32 {
	if x <= 0 {
		return int32(MinValue)
	}
	return raw(math.Log(toReal(x)))
}

func (FloatMath) Abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
