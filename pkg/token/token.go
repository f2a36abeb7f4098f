// Package token defines the token kinds produced by the lexer.
package token

import (
	"fmt"

	"github.com/xplshn/fixlua/pkg/intern"
)

// Kind identifies a token. Values below FirstReserved are single-byte
// tokens whose kind is the byte itself, so '+' and '(' need no names.
type Kind int

// FirstReserved leaves room for every byte value.
const FirstReserved Kind = 257

const (
	// Words.
	And Kind = FirstReserved + iota
	Break
	Do
	Else
	Elseif
	End
	False
	For
	Function
	Goto
	If
	In
	Local
	Nil
	Not
	// Bitwise operators.
	BXor    // ^^
	BLShift // <<
	BRShift // >>>
	ARShift // >>
	BLRot   // <<>
	BRRot   // >><
	Or
	Repeat
	Return
	Then
	True
	Until
	While
	// Other multi-byte symbols.
	IDiv    // \
	Concat  // ..
	Dots    // ...
	Eq      // ==
	Ge      // >=
	Le      // <=
	Ne      // ~= and !=
	DbColon // ::
	EOS
	Number
	Name
	String
	Print // ? at the start of a line
	EOL
)

var names = [...]string{
	"and", "break", "do", "else", "elseif",
	"end", "false", "for", "function", "goto", "if",
	"in", "local", "nil", "not",
	"^^", "<<", ">>>", ">>", "<<>", ">><",
	"or", "repeat",
	"return", "then", "true", "until", "while",
	"\\", "..", "...", "==", ">=", "<=", "~=", "::", "<eof>",
	"<number>", "<name>", "<string>", "?", "<eol>",
}

// Reserved maps every reserved word to its kind. It is filled once at init
// and never written again.
var Reserved = make(map[string]Kind)

func init() {
	for k := And; k <= While; k++ {
		if s := names[k-FirstReserved]; isWord(s) {
			Reserved[s] = k
		}
	}
}

func isWord(s string) bool {
	c := s[0]
	return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z')
}

// Words lists the reserved words, for pinning in a string store.
func Words() []string {
	out := make([]string, 0, len(Reserved))
	for k := And; k <= While; k++ {
		if s := names[k-FirstReserved]; isWord(s) {
			out = append(out, s)
		}
	}
	return out
}

// Text returns the bare spelling of k: the byte for single-byte kinds and
// the table entry otherwise.
func (k Kind) Text() string {
	switch {
	case k >= 0 && k < 256:
		return string(rune(k))
	case k >= FirstReserved && k <= EOL:
		return names[k-FirstReserved]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// String renders k for diagnostics: printable bytes and fixed symbols are
// quoted, other bytes become char(N), and literal classes are left bare.
func (k Kind) String() string {
	switch {
	case k >= 0 && k < 256:
		if k >= 0x20 && k < 0x7f {
			return fmt.Sprintf("'%c'", rune(k))
		}
		return fmt.Sprintf("char(%d)", int(k))
	case k >= FirstReserved && k < EOS:
		return "'" + names[k-FirstReserved] + "'"
	case k >= EOS && k <= EOL:
		return names[k-FirstReserved]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsReserved reports whether k is a reserved word.
func (k Kind) IsReserved() bool {
	return k >= And && k <= While && isWord(names[k-FirstReserved])
}

// Token is one lexical unit. Str is set for names and strings, Num for
// numerals. Line is where the token starts.
type Token struct {
	Kind Kind
	Str  *intern.String
	Num  float64
	Line int
}

// Text returns the token's source-level text: the string content, the
// numeral's value, or the kind's spelling.
func (t Token) Text() string {
	switch t.Kind {
	case Name, String:
		if t.Str != nil {
			return t.Str.String()
		}
		return ""
	case Number:
		return fmt.Sprintf("%.14g", t.Num)
	}
	return t.Kind.Text()
}
