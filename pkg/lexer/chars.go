package lexer

// class is the dispatch category of a byte in the main scan loop.
type class uint8

const (
	clsOther class = iota
	clsSpace
	clsNewline
	clsDigit
	clsAlpha
)

const (
	flagAlpha uint8 = 1 << iota
	flagDigit
	flagXDigit
	flagSpace
	flagPrint
)

var (
	classes [256]class
	flags   [256]uint8
)

func init() {
	for c := 0; c < 256; c++ {
		var f uint8
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			f |= flagAlpha
			classes[c] = clsAlpha
		case c >= '0' && c <= '9':
			f |= flagDigit | flagXDigit
			classes[c] = clsDigit
		case c == ' ', c == '\t', c == '\f', c == '\v':
			f |= flagSpace
			classes[c] = clsSpace
		case c == '\n', c == '\r':
			f |= flagSpace
			classes[c] = clsNewline
		}
		if (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			f |= flagXDigit
		}
		if c >= 0x20 && c < 0x7f {
			f |= flagPrint
		}
		flags[c] = f
	}
}

// The predicates take the scanner's current value, which is -1 at the end
// of input.

func is(c int, f uint8) bool { return c >= 0 && flags[c]&f != 0 }

func isAlpha(c int) bool   { return is(c, flagAlpha) }
func isDigit(c int) bool   { return is(c, flagDigit) }
func isAlnum(c int) bool   { return is(c, flagAlpha|flagDigit) }
func isXDigit(c int) bool  { return is(c, flagXDigit) }
func isSpace(c int) bool   { return is(c, flagSpace) }
func isNewline(c int) bool { return c == '\n' || c == '\r' }

func hexValue(c int) int {
	if isDigit(c) {
		return c - '0'
	}
	return (c | 0x20) - 'a' + 10
}
