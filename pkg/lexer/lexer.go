// Package lexer turns chunk source bytes into tokens for the parser.
//
// A Lexer owns one chunk. It reads bytes through an io.ByteReader, keeps a
// single token of lookahead and stops at the first error: every later call
// returns that same *Error.
package lexer

import (
	"bufio"
	"errors"
	"io"

	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/glyph"
	"github.com/xplshn/fixlua/pkg/intern"
	"github.com/xplshn/fixlua/pkg/token"
)

const eoz = -1

var ErrLookaheadFull = errors.New("lexer: lookahead slot already filled")

type Lexer struct {
	cfg     *config.Config
	ownCfg  bool
	r       io.ByteReader
	source  string
	chunk   string
	strs    intern.Interner
	glyphs  *glyph.Trie
	current int
	started bool

	line     int
	lastLine int
	atsol    bool
	emiteol  bool
	braces   int

	buf      []byte
	tok      token.Token
	ahead    token.Token
	hasAhead bool

	// scanned source text of tok and ahead, for error messages
	tokText   []byte
	aheadText []byte

	err      *Error
	warnings []Warning
}

// New prepares a lexer over r. source names the chunk in messages and
// follows ChunkID rules. A nil cfg uses the defaults and a nil strs gets a
// private store.
func New(cfg *config.Config, r io.ByteReader, source string, strs intern.Interner) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if strs == nil {
		strs = intern.NewStore()
	}
	return &Lexer{
		cfg:      cfg,
		r:        r,
		source:   source,
		chunk:    ChunkID(source),
		strs:     strs,
		glyphs:   glyph.Default,
		line:     1,
		lastLine: 1,
		atsol:    true,
		braces:   -1,
		buf:      make([]byte, 0, minBuffer),
	}
}

// Next advances to the next token, taking it from the lookahead slot when
// one is buffered.
func (l *Lexer) Next() (token.Token, error) {
	if l.err != nil {
		return token.Token{Kind: token.EOS, Line: l.line}, l.err
	}
	l.lastLine = l.line
	if l.hasAhead {
		l.tok, l.hasAhead = l.ahead, false
		l.tokText, l.aheadText = l.aheadText, l.tokText
		return l.tok, nil
	}
	tok, err := l.scan()
	if err != nil {
		return tok, err
	}
	l.tok = tok
	l.tokText = l.keepText(l.tokText, tok.Kind)
	return tok, nil
}

// Lookahead scans one token past the current one without advancing.
func (l *Lexer) Lookahead() (token.Token, error) {
	if l.err != nil {
		return token.Token{Kind: token.EOS, Line: l.line}, l.err
	}
	if l.hasAhead {
		return l.ahead, ErrLookaheadFull
	}
	tok, err := l.scan()
	if err != nil {
		return tok, err
	}
	l.ahead, l.hasAhead = tok, true
	l.aheadText = l.keepText(l.aheadText, tok.Kind)
	return tok, nil
}

// keepText copies the buffer into dst for tokens whose source spelling
// varies.
func (l *Lexer) keepText(dst []byte, k token.Kind) []byte {
	switch k {
	case token.Name, token.String, token.Number:
		return append(dst[:0], l.buf...)
	}
	return dst[:0]
}

func (l *Lexer) Current() token.Token { return l.tok }
func (l *Lexer) Line() int            { return l.line }
func (l *Lexer) LastLine() int        { return l.lastLine }
func (l *Lexer) Braces() int          { return l.braces }
func (l *Lexer) Source() string       { return l.chunk }
func (l *Lexer) Warnings() []Warning  { return l.warnings }

// Config returns the settings in effect, including any directive changes.
func (l *Lexer) Config() *config.Config { return l.cfg }

func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// TrackBraces starts a new short-if nesting count at the current token.
func (l *Lexer) TrackBraces() {
	if l.tok.Kind == '(' {
		l.braces = 1
	} else {
		l.braces = -1
	}
}

// SyntaxError builds a parser error located at the current token. Names,
// strings and numerals are quoted as scanned, delimiters included. It does
// not stop the lexer.
func (l *Lexer) SyntaxError(msg string) *Error {
	e := &Error{Source: l.chunk, Line: l.line, Msg: msg, Kind: ErrSyntax}
	switch l.tok.Kind {
	case token.Name, token.String, token.Number:
		e.Near = "'" + string(l.tokText) + "'"
	default:
		e.Near = l.tok.Kind.String()
	}
	return e
}

func (l *Lexer) scan() (tok token.Token, err error) {
	defer l.recover(&err)
	if !l.started {
		l.started = true
		l.next()
	}
	return l.lex(), nil
}

func (l *Lexer) recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	l.err = e
	*errp = e
}

func (l *Lexer) next() int {
	c, err := l.r.ReadByte()
	if err != nil {
		l.current = eoz
		if !errors.Is(err, io.EOF) {
			panic(&Error{Source: l.chunk, Line: l.line, Msg: err.Error(), Kind: ErrRead, Err: err})
		}
		return eoz
	}
	l.current = int(c)
	return l.current
}

// incLine consumes one line break: \n, \r, \n\r or \r\n.
func (l *Lexer) incLine() {
	old := l.current
	l.next()
	if isNewline(l.current) && l.current != old {
		l.next()
	}
	l.line++
	if l.line >= l.cfg.MaxLines {
		l.fail(ErrTooManyLines, "chunk has too many lines", 0)
	}
	l.atsol = true
}

func (l *Lexer) feature(f config.Feature) bool { return l.cfg.IsFeatureEnabled(f) }

func (l *Lexer) lex() token.Token {
	l.resetBuffer()
	for {
		atsol := l.atsol
		l.atsol = false
		line := l.line
		if l.current == eoz {
			return token.Token{Kind: token.EOS, Line: line}
		}
		switch classes[l.current] {
		case clsNewline:
			l.incLine()
			if l.emiteol {
				l.emiteol = false
				return token.Token{Kind: token.EOL, Line: line}
			}
		case clsSpace:
			l.next()
			l.atsol = atsol
		case clsDigit:
			return l.readNumeral(line)
		case clsAlpha:
			return l.readName(line)
		default:
			if tok, ok := l.symbol(atsol, line); ok {
				return tok
			}
		}
	}
}

func (l *Lexer) readName(line int) token.Token {
	for {
		l.saveAndNext()
		if !isAlnum(l.current) {
			break
		}
	}
	if k, ok := token.Reserved[string(l.buf)]; ok {
		return token.Token{Kind: k, Line: line}
	}
	return token.Token{Kind: token.Name, Str: l.strs.Intern(l.buf), Line: line}
}

// symbol scans punctuation, strings and comments. It reports false when it
// only skipped a comment.
func (l *Lexer) symbol(atsol bool, line int) (token.Token, bool) {
	tok := func(k token.Kind) (token.Token, bool) { return token.Token{Kind: k, Line: line}, true }
	// pick consumes the current byte when it equals c.
	pick := func(c int) bool {
		if l.current != c {
			return false
		}
		l.next()
		return true
	}

	switch c := l.current; c {
	case '?':
		if !l.feature(config.FeatPrintShorthand) {
			break
		}
		l.next()
		if atsol {
			l.emiteol = true
			l.warn(config.WarnPrintShorthand, "use of the '?' print shorthand")
			return tok(token.Print)
		}
		return tok('?')
	case '-':
		l.next()
		if !pick('-') {
			return tok('-')
		}
		var prefix string
		if l.current == '[' {
			sep := l.skipSep()
			prefix = string(l.buf)
			l.resetBuffer()
			if sep >= 0 {
				l.readLongString(false, sep)
				l.resetBuffer()
				return token.Token{}, false
			}
		}
		l.skipComment(prefix)
		return token.Token{}, false
	case '/':
		if !l.feature(config.FeatCComments) {
			break
		}
		l.next()
		if !pick('/') {
			return tok('/')
		}
		l.warn(config.WarnCComments, "use of a C-style '//' comment")
		l.skipComment("")
		return token.Token{}, false
	case '[':
		sep := l.skipSep()
		switch {
		case sep >= 0:
			s := l.readLongString(true, sep)
			return token.Token{Kind: token.String, Str: s, Line: line}, true
		case sep == -1:
			return tok('[')
		}
		l.fail(ErrLongDelimiter, "invalid long string delimiter", token.String)
	case '\\':
		if !l.feature(config.FeatIntDiv) {
			break
		}
		l.next()
		return tok(token.IDiv)
	case '=':
		l.next()
		if pick('=') {
			return tok(token.Eq)
		}
		return tok('=')
	case '<':
		l.next()
		if pick('<') {
			if pick('>') {
				return tok(token.BLRot)
			}
			return tok(token.BLShift)
		}
		if pick('=') {
			return tok(token.Le)
		}
		return tok('<')
	case '>':
		l.next()
		if pick('>') {
			switch {
			case pick('>'):
				return tok(token.BRShift)
			case pick('<'):
				return tok(token.BRRot)
			}
			return tok(token.ARShift)
		}
		if pick('=') {
			return tok(token.Ge)
		}
		return tok('>')
	case '^':
		l.next()
		if pick('^') {
			return tok(token.BXor)
		}
		return tok('^')
	case '~':
		l.next()
		if pick('=') {
			return tok(token.Ne)
		}
		return tok('~')
	case '!':
		if !l.feature(config.FeatBangNe) {
			break
		}
		l.next()
		if pick('=') {
			l.warn(config.WarnBangNe, "use of '!=' instead of '~='")
			return tok(token.Ne)
		}
		return tok('!')
	case ':':
		l.next()
		if pick(':') {
			return tok(token.DbColon)
		}
		return tok(':')
	case '"', '\'':
		s := l.readString(c)
		return token.Token{Kind: token.String, Str: s, Line: line}, true
	case '.':
		l.saveAndNext()
		if l.checkNext(".") {
			if l.checkNext(".") {
				return tok(token.Dots)
			}
			return tok(token.Concat)
		}
		if !isDigit(l.current) {
			return tok('.')
		}
		return l.readNumeral(line), true
	}

	// Any other byte is a token of its own. Parentheses drive the short-if
	// counter: ')' always closes, '(' only nests while the count is positive.
	c := l.current
	switch c {
	case ')':
		l.braces--
	case '(':
		if l.braces > 0 {
			l.braces++
		} else {
			l.braces--
		}
	}
	l.next()
	return tok(token.Kind(c))
}

// skipComment skips to the end of the line. prefix holds bytes of the
// comment already consumed, so directives written as --[fixlua]: still
// match.
func (l *Lexer) skipComment(prefix string) {
	directives := l.feature(config.FeatDirectives)
	var text []byte
	if directives {
		text = append(text, prefix...)
	}
	for !isNewline(l.current) && l.current != eoz {
		if directives && len(text) < maxDirective {
			text = append(text, byte(l.current))
		}
		l.next()
	}
	if !directives {
		return
	}
	if flags, ok := config.Directive(string(text)); ok {
		if !l.ownCfg {
			l.cfg, l.ownCfg = l.cfg.Clone(), true
		}
		l.cfg.ProcessDirectiveFlags(flags)
	}
}

const maxDirective = 512

// Tokenize scans a whole chunk and returns its tokens, ending with EOS.
func Tokenize(cfg *config.Config, source string, r io.Reader, strs intern.Interner) ([]token.Token, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	l := New(cfg, br, source, strs)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOS {
			return toks, nil
		}
	}
}
