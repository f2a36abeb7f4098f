package lexer

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/xplshn/fixlua/pkg/token"
)

// readNumeral accepts more than a valid numeral (any run of hex digits,
// dots and signed exponents) and leaves validation to str2d.
func (l *Lexer) readNumeral(line int) token.Token {
	expo := "Ee"
	first := l.current
	l.saveAndNext()
	if first == '0' && l.checkNext("Xx") {
		expo = "Pp"
	}
	for {
		if l.checkNext(expo) {
			l.checkNext("+-")
		}
		if isXDigit(l.current) || l.current == '.' {
			l.saveAndNext()
		} else {
			break
		}
	}
	v, ok := str2d(string(l.buf))
	if !ok {
		l.fail(ErrMalformedNumber, "malformed number", token.Number)
	}
	return token.Token{Kind: token.Number, Num: v, Line: line}
}

// str2d converts numeral text to a float64 with '.' as the only decimal
// point. Text naming inf or nan is rejected. Decimal overflow gives an
// infinity rather than an error.
func str2d(s string) (float64, bool) {
	if strings.ContainsAny(s, "nN") {
		return 0, false
	}
	if strings.ContainsAny(s, "xX") {
		return strx2number(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// strx2number parses 0x<hex>[.<hex>][p[+-]<dec>], optionally signed.
func strx2number(s string) (float64, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	if !(i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X')) {
		return 0, false
	}
	i += 2

	var r float64
	digits, frac := 0, 0
	for ; i < len(s) && isXDigit(int(s[i])); i++ {
		r = r*16 + float64(hexValue(int(s[i])))
		digits++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && isXDigit(int(s[i])); i++ {
			r = r*16 + float64(hexValue(int(s[i])))
			frac++
		}
	}
	if digits == 0 && frac == 0 {
		return 0, false
	}
	e := -4 * frac
	if i < len(s) && (s[i] == 'p' || s[i] == 'P') {
		i++
		eneg := false
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			eneg = s[i] == '-'
			i++
		}
		if i >= len(s) || !isDigit(int(s[i])) {
			return 0, false
		}
		exp := 0
		for ; i < len(s) && isDigit(int(s[i])); i++ {
			if exp < 1<<20 {
				exp = exp*10 + int(s[i]-'0')
			}
		}
		if eneg {
			exp = -exp
		}
		e += exp
	}
	if i != len(s) {
		return 0, false
	}
	if neg {
		r = -r
	}
	return math.Ldexp(r, e), true
}
