package lexer

import (
	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/glyph"
	"github.com/xplshn/fixlua/pkg/intern"
	"github.com/xplshn/fixlua/pkg/token"
)

// skipSep consumes '[' or ']' and any '=' run after it. It returns the
// number of '=' when the same bracket follows, and -count-1 otherwise.
func (l *Lexer) skipSep() int {
	count := 0
	s := l.current
	l.saveAndNext()
	for l.current == '=' {
		l.saveAndNext()
		count++
	}
	if l.current == s {
		return count
	}
	return -count - 1
}

// readLongString scans a bracketed string or comment body whose opener had
// sep '=' signs. Line breaks inside are stored as '\n'. Comments keep
// nothing, so the buffer is reset every line.
func (l *Lexer) readLongString(isString bool, sep int) *intern.String {
	l.saveAndNext()
	if isNewline(l.current) {
		l.incLine()
	}
	for {
		switch l.current {
		case eoz:
			if isString {
				l.fail(ErrUnfinishedLongString, "unfinished long string", token.EOS)
			}
			l.fail(ErrUnfinishedLongComment, "unfinished long comment", token.EOS)
		case ']':
			if l.skipSep() == sep {
				l.saveAndNext()
				if !isString {
					return nil
				}
				return l.strs.Intern(l.buf[2+sep : len(l.buf)-(2+sep)])
			}
		case '\n', '\r':
			l.save('\n')
			l.incLine()
			if !isString {
				l.resetBuffer()
			}
		default:
			if isString {
				l.saveAndNext()
			} else {
				l.next()
			}
		}
	}
}

var p8Escapes = [...]int{'*': 1, '#': 2, '-': 3, '|': 4, '+': 5, '^': 6}

// readString scans a quoted string. The delimiters are kept in the buffer
// for error messages and stripped from the interned content.
func (l *Lexer) readString(del int) *intern.String {
	l.saveAndNext()
	for l.current != del {
		switch l.current {
		case eoz:
			l.fail(ErrUnfinishedString, "unfinished string", token.EOS)
		case '\n', '\r':
			l.fail(ErrUnfinishedString, "unfinished string", token.String)
		case '\\':
			l.readEscape()
		default:
			l.readGlyph()
		}
	}
	l.saveAndNext()
	return l.strs.Intern(l.buf[1 : len(l.buf)-1])
}

func (l *Lexer) readEscape() {
	l.next()
	var c int
	switch l.current {
	case '*', '#', '-', '|', '+', '^':
		if !l.feature(config.FeatP8Esc) {
			l.escError(ErrInvalidEscape, "invalid escape sequence", l.current)
		}
		l.warn(config.WarnP8Esc, "use of the charset escape '\\%c'", rune(l.current))
		c = p8Escapes[l.current]
	case 'a':
		c = '\a'
	case 'b':
		c = '\b'
	case 'f':
		c = '\f'
	case 'n':
		c = '\n'
	case 'r':
		c = '\r'
	case 't':
		c = '\t'
	case 'v':
		c = '\v'
	case 'x':
		c = l.readHexEscape()
	case '\n', '\r':
		l.incLine()
		l.save('\n')
		return
	case '\\', '"', '\'':
		c = l.current
	case eoz:
		// The string loop reports it as unfinished.
		return
	case 'z':
		l.next()
		for isSpace(l.current) {
			if isNewline(l.current) {
				l.incLine()
			} else {
				l.next()
			}
		}
		return
	default:
		if !isDigit(l.current) {
			l.escError(ErrInvalidEscape, "invalid escape sequence", l.current)
		}
		l.save(l.readDecEscape())
		return
	}
	l.next()
	l.save(c)
}

// readHexEscape reads exactly two hex digits, leaving the second current.
func (l *Lexer) readHexEscape() int {
	chars := []int{'x'}
	r := 0
	for i := 0; i < 2; i++ {
		c := l.next()
		chars = append(chars, c)
		if !isXDigit(c) {
			l.escError(ErrHexDigit, "hexadecimal digit expected", chars...)
		}
		r = r<<4 + hexValue(c)
	}
	return r
}

func (l *Lexer) readDecEscape() int {
	var chars []int
	r := 0
	for i := 0; i < 3 && isDigit(l.current); i++ {
		chars = append(chars, l.current)
		r = 10*r + l.current - '0'
		l.next()
	}
	if r > 255 {
		l.escError(ErrDecimalEscape, "decimal escape too large", chars...)
	}
	return r
}

// readGlyph copies one string byte, first offering it to the glyph trie.
func (l *Lexer) readGlyph() {
	if !l.feature(config.FeatGlyphs) {
		l.saveAndNext()
		return
	}
	code, res := l.glyphs.Decode((*byteCursor)(l))
	switch res {
	case glyph.Decoded:
		l.save(int(code))
	case glyph.NotRecognized:
		if c := l.current; c >= 0x80 && c&0xc0 != 0x80 {
			l.warn(config.WarnGlyphPassthrough, "byte 0x%02x starts no known glyph and is copied unchanged", c)
		}
		l.saveAndNext()
	case glyph.Invalid:
		l.escError(ErrUnknownGlyph, "unknown utf-8 sequence", l.current)
	}
}

// byteCursor lets the glyph trie walk the lexer's input.
type byteCursor Lexer

func (c *byteCursor) Current() int { return c.current }
func (c *byteCursor) Advance() int { return (*Lexer)(c).next() }
