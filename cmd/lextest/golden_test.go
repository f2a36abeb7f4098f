package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGoldenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "a.lua", "?x != 0x1.8\n")

	if got := testFile(file, ""); got.Status != "SKIP" {
		t.Fatalf("without golden: %+v", got)
	}

	g, err := scan(file, "p8")
	if err != nil {
		t.Fatal(err)
	}
	if g.Error != "" {
		t.Fatalf("unexpected scan error %q", g.Error)
	}
	if n := len(g.Tokens); n != 6 {
		t.Fatalf("got %d tokens, want 6 (? x ~= num eol eof)", n)
	}
	if got := g.Tokens[3].Fixed; got != "1.50000" {
		t.Errorf("fixed = %q", got)
	}
	if err := writeGolden(goldenPath(file, ""), g); err != nil {
		t.Fatal(err)
	}
	if got := testFile(file, ""); got.Status != "PASS" {
		t.Errorf("after generate: %+v", got)
	}
}

func TestGoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	gdir := filepath.Join(dir, "golden")
	file := writeSource(t, dir, "b.lua", "a = 1\n")

	g, err := scan(file, "p8")
	if err != nil {
		t.Fatal(err)
	}
	g.Tokens[2].Text = "2"
	if err := writeGolden(goldenPath(file, gdir), g); err != nil {
		t.Fatal(err)
	}
	got := testFile(file, gdir)
	if got.Status != "FAIL" || !strings.Contains(got.Diff, `"2"`) {
		t.Errorf("got %+v", got)
	}

	writeSource(t, dir, "b.lua", "a = 2\n")
	if got := testFile(file, gdir); got.Status != "SKIP" {
		t.Errorf("stale golden: %+v", got)
	}
}

func TestScanRecordsErrors(t *testing.T) {
	file := writeSource(t, t.TempDir(), "c.lua", "x = 'open\n")
	g, err := scan(file, "lua")
	if err != nil {
		t.Fatal(err)
	}
	if want := "c.lua:1: unfinished string near ''open'"; g.Error != want {
		t.Errorf("error = %q, want %q", g.Error, want)
	}
	if len(g.Tokens) != 2 {
		t.Errorf("got %d tokens before the error", len(g.Tokens))
	}
}

func TestExpandGlobPatterns(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.lua", "")
	b := writeSource(t, dir, "b.lua", "")
	if err := os.Mkdir(filepath.Join(dir, "d.lua"), 0o755); err != nil {
		t.Fatal(err)
	}
	files, err := expandGlobPatterns(filepath.Join(dir, "*.lua") + " " + a)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0] != a || files[1] != b {
		t.Errorf("files = %v", files)
	}
}
