package fpnum

import (
	"math"
	"testing"
)

func near(t *testing.T, name string, got Num, want float64, tol float64) {
	t.Helper()
	if d := math.Abs(got.Float64() - want); d > tol {
		t.Errorf("%s = %v, want %v (off by %v)", name, got.Float64(), want, d)
	}
}

func TestTranscendentals(t *testing.T) {
	const tol = 2.0 / 65536
	near(t, "sin(0)", Zero.Sin(), 0, tol)
	near(t, "sin(pi/2)", FromFloat(math.Pi/2).Sin(), 1, tol)
	near(t, "cos(0)", Zero.Cos(), 1, tol)
	near(t, "tan(pi/4)", FromFloat(math.Pi/4).Tan(), 1, tol)
	near(t, "asin(1)", One.Asin(), math.Pi/2, tol)
	near(t, "acos(1)", One.Acos(), 0, tol)
	near(t, "atan(1)", One.Atan(), math.Pi/4, tol)
	near(t, "atan2(1,-1)", One.Atan2(FromInt(-1)), 3*math.Pi/4, tol)
	near(t, "sqrt(2)", FromInt(2).Sqrt(), math.Sqrt2, tol)
	near(t, "exp(1)", One.Exp(), math.E, 4.0/65536)
	near(t, "log(e)", FromFloat(math.E).Log(), 1, tol)
	near(t, "pow(2,3)", FromInt(2).Pow(FromInt(3)), 8, 0.01)
	near(t, "ldexp(3,2)", FromInt(3).Ldexp(2), 12, 0.01)
}

func TestMathDomainRules(t *testing.T) {
	if got := FromInt(-4).Sqrt(); got != FromInt(-2) {
		t.Errorf("sqrt(-4) = %v", got)
	}
	if got := Zero.Log(); got != MinValue {
		t.Errorf("log(0) = %#x", got.Raw())
	}
	if got := FromInt(2).Asin(); got != Zero {
		t.Errorf("asin(2) = %v", got)
	}
	if got := FromInt(20).Exp(); got != MaxValue {
		t.Errorf("exp(20) = %#x", got.Raw())
	}
	if got := FromInt(-20).Exp(); got != Zero {
		t.Errorf("exp(-20) = %v", got)
	}
	if got := Zero.Exp(); got != One {
		t.Errorf("exp(0) = %v", got)
	}
	if got := FromFloat(-1.5).Floor(); got != FromInt(-2) {
		t.Errorf("floor(-1.5) = %v", got)
	}
	if got := FromFloat(-1.5).Abs(); got != FromFloat(1.5) {
		t.Errorf("abs(-1.5) = %v", got)
	}
	if got := MinValue.Abs(); got != MinValue {
		t.Errorf("abs(min) = %#x", got.Raw())
	}
}

type constMath struct{ FloatMath }

func (constMath) Sin(int32) int32 { return 42 }

func TestSetMath(t *testing.T) {
	prev := SetMath(constMath{})
	defer SetMath(prev)
	if got := One.Sin().Raw(); got != 42 {
		t.Fatalf("Sin with swapped backend = %d", got)
	}
	if got := FromInt(4).Sqrt(); got != FromInt(2) {
		t.Fatalf("embedded backend Sqrt = %v", got)
	}
}
