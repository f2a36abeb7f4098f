package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xplshn/fixlua/pkg/lexer"
)

func scan(t *testing.T, src string) []Record {
	t.Helper()
	toks, err := lexer.Tokenize(nil, "=test", strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	return Records(toks)
}

func TestRecords(t *testing.T) {
	got := scan(t, "x = 1.5\nprint(\"\xe2\x96\xae\")")
	want := []Record{
		{Line: 1, Kind: "<name>", Text: "x"},
		{Line: 1, Kind: "'='"},
		{Line: 1, Kind: "<number>", Text: "1.5", Fixed: "1.50000", Hex: "0x0001.8000"},
		{Line: 2, Kind: "<name>", Text: "print"},
		{Line: 2, Kind: "'('"},
		{Line: 2, Kind: "<string>", Text: "\xe2\x96\xae"},
		{Line: 2, Kind: "')'"},
		{Line: 2, Kind: "<eof>"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestWriteText(t *testing.T) {
	recs := scan(t, "a=-0.25 'q'")
	var dec, hex bytes.Buffer
	if err := WriteText(&dec, recs, false); err != nil {
		t.Fatal(err)
	}
	if err := WriteText(&hex, recs, true); err != nil {
		t.Fatal(err)
	}
	wantDec := "1\t<name>\ta\n1\t'='\n1\t'-'\n1\t<number>\t0.25\t0.25000\n1\t<string>\t\"q\"\n1\t<eof>\n"
	if diff := cmp.Diff(wantDec, dec.String()); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
	if !strings.Contains(hex.String(), "0.25\t0x0000.4000\n") {
		t.Errorf("hex dump = %q", hex.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, scan(t, "and")); err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"line\": 1,\n    \"kind\": \"'and'\"\n  },\n  {\n    \"line\": 1,\n    \"kind\": \"\\u003ceof\\u003e\"\n  }\n]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}
}
