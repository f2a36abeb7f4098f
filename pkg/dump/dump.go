// Package dump renders token streams for the command line tools and golden
// files.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xplshn/fixlua/pkg/fpnum"
	"github.com/xplshn/fixlua/pkg/glyph"
	"github.com/xplshn/fixlua/pkg/token"
)

// Record is the printable form of one token. Numerals carry both the parsed
// double and its Q16.16 value.
type Record struct {
	Line  int    `json:"line"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Fixed string `json:"fixed,omitempty"`
	Hex   string `json:"hex,omitempty"`
}

func FromToken(t token.Token) Record {
	r := Record{Line: t.Line, Kind: t.Kind.String()}
	switch t.Kind {
	case token.Name:
		r.Text = t.Text()
	case token.String:
		// strings hold charset bytes; show them with their glyphs
		r.Text = glyph.EncodeBytes([]byte(t.Text()))
	case token.Number:
		n := fpnum.FromFloat(t.Num)
		r.Text = t.Text()
		r.Fixed = n.String()
		r.Hex = n.Hex()
	}
	return r
}

func Records(toks []token.Token) []Record {
	recs := make([]Record, len(toks))
	for i, t := range toks {
		recs[i] = FromToken(t)
	}
	return recs
}

// WriteText prints one record per line as "line kind text". With hex set,
// numerals show the raw fixed-point pattern instead of the decimal form.
func WriteText(w io.Writer, recs []Record, hex bool) error {
	for _, r := range recs {
		var err error
		switch {
		case r.Fixed != "" && hex:
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Line, r.Kind, r.Text, r.Hex)
		case r.Fixed != "":
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Line, r.Kind, r.Text, r.Fixed)
		case r.Kind == token.String.String():
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", r.Line, r.Kind, strconv.Quote(r.Text))
		case r.Text != "":
			_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", r.Line, r.Kind, r.Text)
		default:
			_, err = fmt.Fprintf(w, "%d\t%s\n", r.Line, r.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON(w io.Writer, recs []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}
