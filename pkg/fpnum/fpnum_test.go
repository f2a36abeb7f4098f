package fpnum

import (
	"math"
	"testing"
)

var rawSamples = []int32{
	0, 1, -1, 0x10000, -0x10000, 0x7fffffff, -0x80000000, 0x12345678,
	-0x12345678, 0x0000ffff, 0x7fff0000, 0x00008000, -0x00008000,
}

func TestRawRoundTrip(t *testing.T) {
	for _, raw := range rawSamples {
		if got := FromRaw(raw).Raw(); got != raw {
			t.Errorf("FromRaw(%#x).Raw() = %#x", raw, got)
		}
	}
	for x := int64(math.MinInt32); x <= math.MaxInt32; x += 0x01010101 {
		if got := FromRaw(int32(x)).Raw(); got != int32(x) {
			t.Fatalf("FromRaw(%#x).Raw() = %#x", x, got)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, r := range []float64{0, 1, -1, 0.5, -0.5, 123.45, -123.45, 32767.99998, -32768, 1.0 / 3, 0.0001, -0.0001} {
		got := FromFloat(r).Float64()
		if d := math.Abs(got - r); d > 1.0/65536 {
			t.Errorf("FromFloat(%v).Float64() = %v, off by %v", r, got, d)
		}
	}
}

func TestFromFloatRounding(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{1, 0x10000},
		{0.5, 0x8000},
		{-0.5, -0x8000},
		{1.5 / 65536, 2},
		{-1.5 / 65536, -2},
		{0.4 / 65536, 0},
		{32768, math.MinInt32},
		{65536 + 1, 0x10000},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt32},
		{math.Inf(-1), math.MinInt32},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in).Raw(); got != tt.want {
			t.Errorf("FromFloat(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	if got := FromInt(3).Raw(); got != 3<<16 {
		t.Errorf("FromInt(3) = %#x", got)
	}
	if got := FromInt(-2).Raw(); got != -2<<16 {
		t.Errorf("FromInt(-2) = %#x", got)
	}
	if got := FromUint(7).Raw(); got != 7<<16 {
		t.Errorf("FromUint(7) = %#x", got)
	}
	if got := FromParts(-1, 0x8000).Raw(); got != -0x8000 {
		t.Errorf("FromParts(-1, 0x8000) = %#x", got)
	}
	if got := FromParts(5, 0x4000).Float64(); got != 5.25 {
		t.Errorf("FromParts(5, 0x4000) = %v", got)
	}
}

func TestIntTruncatesTowardStoredValue(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.75, 2},
		{-2.75, -3},
		{-0.5, -1},
		{-2, -2},
		{0.99998, 0},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in).Int(); got != tt.want {
			t.Errorf("FromFloat(%v).Int() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBitAccessors(t *testing.T) {
	n := FromRaw(-0x00018000) // -1.5
	if n.SignedIntegralBits() != -2 {
		t.Errorf("SignedIntegralBits = %d", n.SignedIntegralBits())
	}
	if n.UnsignedIntegralBits() != 0xfffe {
		t.Errorf("UnsignedIntegralBits = %#x", n.UnsignedIntegralBits())
	}
	if n.DecimalBits() != 0x8000 {
		t.Errorf("DecimalBits = %#x", n.DecimalBits())
	}
}

func TestWrappingArithmetic(t *testing.T) {
	if got := MaxValue.Add(FromRaw(1)); got != MinValue {
		t.Errorf("Max+1 = %#x, want wrap to Min", got.Raw())
	}
	if got := MinValue.Sub(FromRaw(1)); got != MaxValue {
		t.Errorf("Min-1 = %#x, want wrap to Max", got.Raw())
	}
	if got := FromInt(256).Mul(FromInt(256)); got != Zero {
		t.Errorf("256*256 = %v, want wrap to 0", got)
	}
	if got := FromInt(200).Mul(FromInt(200)).Raw(); got != -1673527296 {
		t.Errorf("200*200 = %#x", got)
	}
	if got := FromFloat(1.5).Mul(FromFloat(-2.25)).Float64(); got != -3.375 {
		t.Errorf("1.5*-2.25 = %v", got)
	}
	if got := FromInt(7).Div(FromInt(2)).Float64(); got != 3.5 {
		t.Errorf("7/2 = %v", got)
	}
	if got := FromInt(1).Div(FromInt(3)).Raw(); got != 0x5555 {
		t.Errorf("1/3 = %#x", got)
	}
	if got := FromInt(7).Mod(FromInt(3)); got != FromInt(1) {
		t.Errorf("7%%3 = %v", got)
	}
	if got := FromInt(-7).Mod(FromInt(3)); got != FromInt(-1) {
		t.Errorf("-7%%3 = %v", got)
	}
	if got := FromInt(7).Mod(Zero); got != Zero {
		t.Errorf("7%%0 = %v", got)
	}
	if got := FromInt(5).Div(Zero); got != MaxValue {
		t.Errorf("5/0 = %#x", got.Raw())
	}
	if got := FromInt(-5).Div(Zero); got != MinValue {
		t.Errorf("-5/0 = %#x", got.Raw())
	}
	if got := FromInt(3).Neg(); got != FromInt(-3) {
		t.Errorf("-3 = %v", got)
	}
}

func TestSaturatingBounds(t *testing.T) {
	tests := []struct {
		name string
		got  Num
		want Num
	}{
		{"max+1", MaxValue.SAdd(FromRaw(1)), MaxValue},
		{"min+(-1)", MinValue.SAdd(FromRaw(-1)), MinValue},
		{"max+max", MaxValue.SAdd(MaxValue), MaxValue},
		{"min+min", MinValue.SAdd(MinValue), MinValue},
		{"zero+zero", Zero.SAdd(Zero), Zero},
		{"min-1", MinValue.SSub(FromRaw(1)), MinValue},
		{"max-(-1)", MaxValue.SSub(FromRaw(-1)), MaxValue},
		{"zero-min", Zero.SSub(MinValue), MaxValue},
		{"max*2", MaxValue.SMul(FromInt(2)), MaxValue},
		{"min*2", MinValue.SMul(FromInt(2)), MinValue},
		{"min*-1", MinValue.SMul(FromInt(-1)), MaxValue},
		{"zero*max", Zero.SMul(MaxValue), Zero},
		{"max/half", MaxValue.SDiv(FromFloat(0.5)), MaxValue},
		{"min/half", MinValue.SDiv(FromFloat(0.5)), MinValue},
		{"min/-1", MinValue.SDiv(FromInt(-1)), MaxValue},
		{"max/0", MaxValue.SDiv(Zero), MaxValue},
		{"min/0", MinValue.SDiv(Zero), MinValue},
		{"zero/0", Zero.SDiv(Zero), MaxValue},
		{"in range", FromInt(3).SAdd(FromInt(4)), FromInt(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got.Raw(), tt.want.Raw())
			}
		})
	}
}

// SSub is computed directly; deriving it as SAdd(Neg(b)) disagrees when b
// is MinValue because Neg wraps.
func TestSaturatingSubDiffersFromNegatedAdd(t *testing.T) {
	direct := Zero.SSub(MinValue)
	derived := Zero.SAdd(MinValue.Neg())
	if direct != MaxValue {
		t.Fatalf("0 - Min = %#x, want Max", direct.Raw())
	}
	if derived != MinValue {
		t.Fatalf("0 + Neg(Min) = %#x, want Min", derived.Raw())
	}
}

func TestIntDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Num
		want Num
	}{
		{"positive by zero", FromInt(5), Zero, FromInt(32767)},
		{"zero by zero", Zero, Zero, FromInt(32767)},
		{"negative by zero", FromInt(-5), Zero, FromInt(-32768)},
		{"smallest negative by zero", FromRaw(-1), Zero, FromInt(-32768)},
		{"exact", FromInt(9), FromInt(3), FromRaw(3)},
		{"truncates", FromInt(7), FromInt(2), FromRaw(3)},
		{"fractional operands", FromFloat(7.5), FromFloat(2.5), FromRaw(3)},
		{"negative truncates toward zero", FromInt(-7), FromInt(2), FromRaw(-3)},
		{"raw operands", FromRaw(100), FromRaw(7), FromRaw(14)},
		{"min by minus one wraps", MinValue, FromRaw(-1), MinValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IntDiv(tt.b); got != tt.want {
				t.Errorf("%v \\ %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
	if IntDivPosSentinel == MaxValue || IntDivNegSentinel != MinValue {
		t.Errorf("sentinels = %#x / %#x", IntDivPosSentinel.Raw(), IntDivNegSentinel.Raw())
	}
}

func TestBitwise(t *testing.T) {
	a, b := FromRaw(0x0f0f0000), FromRaw(0x00ff0000)
	if got := a.And(b).Raw(); got != 0x000f0000 {
		t.Errorf("and = %#x", got)
	}
	if got := a.Or(b).Raw(); got != 0x0fff0000 {
		t.Errorf("or = %#x", got)
	}
	if got := a.Xor(b).Raw(); got != 0x0ff00000 {
		t.Errorf("xor = %#x", got)
	}
	if got := Zero.Not().Raw(); got != -1 {
		t.Errorf("not 0 = %#x", got)
	}
}

func TestShiftsAndRotates(t *testing.T) {
	neg := FromInt(-1) // 0xffff0000
	tests := []struct {
		name string
		got  Num
		want int32
	}{
		{"shl", FromInt(1).Shl(FromInt(4)), 0x100000},
		{"shl negative is logical right", neg.Shl(FromInt(-4)), 0x0ffff000},
		{"shr arithmetic", neg.Shr(FromInt(4)), -0x1000},
		{"shr negative shifts left", FromInt(1).Shr(FromInt(-4)), 0x100000},
		{"lshr", neg.Lshr(FromInt(4)), 0x0ffff000},
		{"lshr negative shifts left", FromInt(1).Lshr(FromInt(-4)), 0x100000},
		{"shift count floors", FromInt(1).Shl(FromFloat(1.75)), 0x20000},
		{"shl by 32", FromInt(1).Shl(FromInt(32)), 0},
		{"rotl", FromRaw(-0x80000000).Rotl(FromInt(1)), 1},
		{"rotr", FromRaw(1).Rotr(FromInt(1)), -0x80000000},
		{"rotl negative", FromRaw(1).Rotl(FromInt(-1)), -0x80000000},
		{"rotl 36", FromRaw(1).Rotl(FromInt(36)), 0x10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Raw() != tt.want {
				t.Errorf("got %#x, want %#x", tt.got.Raw(), tt.want)
			}
		})
	}
}

func TestOrdering(t *testing.T) {
	if MinValue.Cmp(MaxValue) != -1 || MaxValue.Cmp(MinValue) != 1 || One.Cmp(One) != 0 {
		t.Error("Cmp disagrees with signed order")
	}
	if !FromFloat(-0.5).Less(Zero) || !Zero.LessEq(Zero) || !FromInt(2).Equal(FromFloat(2)) {
		t.Error("Less/LessEq/Equal")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Num
		want string
	}{
		{FromInt(1), "1.00000"},
		{FromFloat(0.5), "0.50000"},
		{FromFloat(123.45), "123.45000"},
		{FromRaw(0xffff), "0.99998"},
		{FromRaw(1), "0.00002"},
		{FromFloat(-0.5), "-1.50000"},
		{MinValue, "-32768.00000"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%#x) = %q, want %q", tt.in.Raw(), got, tt.want)
		}
	}
	if got := FromFloat(-1.5).Hex(); got != "0xfffe.8000" {
		t.Errorf("Hex = %q", got)
	}
}
