package lexer

import (
	"fmt"
	"strings"

	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/token"
)

type ErrorKind int

const (
	ErrSyntax ErrorKind = iota
	ErrMalformedNumber
	ErrUnfinishedString
	ErrUnfinishedLongString
	ErrUnfinishedLongComment
	ErrInvalidEscape
	ErrHexDigit
	ErrDecimalEscape
	ErrLongDelimiter
	ErrUnknownGlyph
	ErrTooManyLines
	ErrTooLong
	ErrRead
)

var errorKindNames = [...]string{
	ErrSyntax:                "syntax",
	ErrMalformedNumber:       "malformed number",
	ErrUnfinishedString:      "unfinished string",
	ErrUnfinishedLongString:  "unfinished long string",
	ErrUnfinishedLongComment: "unfinished long comment",
	ErrInvalidEscape:         "invalid escape",
	ErrHexDigit:              "hexadecimal digit expected",
	ErrDecimalEscape:         "decimal escape too large",
	ErrLongDelimiter:         "invalid long string delimiter",
	ErrUnknownGlyph:          "unknown utf-8 sequence",
	ErrTooManyLines:          "too many lines",
	ErrTooLong:               "lexical element too long",
	ErrRead:                  "read error",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a fatal scanning error. Near holds the rendered offending token,
// empty when the error has none.
type Error struct {
	Source string
	Line   int
	Msg    string
	Near   string
	Kind   ErrorKind
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	if e.Near != "" {
		msg += " near " + e.Near
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Warning is a non-fatal diagnostic collected while scanning.
type Warning struct {
	Source string
	Line   int
	Kind   config.Warning
	Msg    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.Source, w.Line, w.Msg)
}

// fail aborts the current scan. The panic never leaves the package: scan
// recovers it and turns it into the returned error.
func (l *Lexer) fail(kind ErrorKind, msg string, near token.Kind) {
	e := &Error{Source: l.chunk, Line: l.line, Msg: msg, Kind: kind}
	if near != 0 {
		e.Near = l.txtToken(near)
	}
	panic(e)
}

// escError reports a bad escape quoting the backslash and the bytes read.
func (l *Lexer) escError(kind ErrorKind, msg string, chars ...int) {
	l.resetBuffer()
	l.save('\\')
	for _, c := range chars {
		if c == eoz {
			break
		}
		l.save(c)
	}
	l.fail(kind, msg, token.String)
}

// txtToken renders a token for an error message. Literal classes show the
// scratch buffer, which still holds the text being scanned.
func (l *Lexer) txtToken(k token.Kind) string {
	switch k {
	case token.Name, token.String, token.Number:
		return "'" + string(l.buf) + "'"
	}
	return k.String()
}

func (l *Lexer) warn(w config.Warning, format string, args ...any) {
	if !l.cfg.IsWarningEnabled(w) {
		return
	}
	l.warnings = append(l.warnings, Warning{
		Source: l.chunk,
		Line:   l.line,
		Kind:   w,
		Msg:    fmt.Sprintf(format, args...),
	})
}

const (
	idSize = 60
	ellip  = "..."
	pre    = `[string "`
	pos    = `"]`
)

// ChunkID renders a source name for messages. "=name" is used verbatim,
// "@file" is a path shortened from the left, and anything else is source
// text shown as [string "first line..."]. The result fits in 59 bytes.
func ChunkID(source string) string {
	switch {
	case strings.HasPrefix(source, "="):
		if len(source) <= idSize {
			return source[1:]
		}
		return source[1:idSize]
	case strings.HasPrefix(source, "@"):
		if len(source) <= idSize {
			return source[1:]
		}
		keep := idSize - len(ellip) - 1
		return ellip + source[len(source)-keep:]
	}
	room := idSize - len(pre) - len(ellip) - len(pos) - 1
	nl := strings.IndexByte(source, '\n')
	if len(source) < room && nl < 0 {
		return pre + source + pos
	}
	l := len(source)
	if nl >= 0 {
		l = nl
	}
	l = min(l, room)
	return pre + source[:l] + ellip + pos
}
