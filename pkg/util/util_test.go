package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/lexer"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldExit, oldColor := Stderr, exitFunc, useColor
	Stderr, useColor = &buf, false
	exitFunc = func(code int) { buf.WriteString("exit " + string(rune('0'+code)) + "\n") }
	t.Cleanup(func() { Stderr, exitFunc, useColor = oldOut, oldExit, oldColor })
	return &buf
}

func TestError(t *testing.T) {
	buf := capture(t)
	_, err := lexer.Tokenize(nil, "@a.lua", strings.NewReader(`"x`), nil)
	Error(err)
	if got, want := buf.String(), "a.lua:1: error: unfinished string near <eof>\nexit 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	Error(errors.New("no input files"))
	if got, want := buf.String(), "fixlua: error: no input files\nexit 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWarn(t *testing.T) {
	buf := capture(t)
	cfg := config.NewConfig()
	ws := []lexer.Warning{
		{Source: "a.lua", Line: 3, Kind: config.WarnGlyphPassthrough, Msg: "raw byte"},
		{Source: "a.lua", Line: 4, Kind: config.WarnBangNe, Msg: "bang"},
	}
	Warn(cfg, ws)
	if got, want := buf.String(), "a.lua:3: warning: raw byte [-Wglyph-passthrough]\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestColor(t *testing.T) {
	buf := capture(t)
	SetColor(true)
	Info("scanned %d files", 2)
	if got := buf.String(); !strings.Contains(got, "\033[36minfo:\033[0m scanned 2 files") {
		t.Errorf("colored info = %q", got)
	}
}
