package util

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const chunk = "x = 1 -- hi\n"

func writeFile(t *testing.T, name string, compress func(io.Writer) io.WriteCloser) string {
	t.Helper()
	var buf bytes.Buffer
	w := compress(&buf)
	if _, err := io.WriteString(w, chunk); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestOpenSource(t *testing.T) {
	tests := []struct {
		name     string
		compress func(io.Writer) io.WriteCloser
	}{
		{"plain.lua", func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} }},
		{"cart.lua.gz", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }},
		{"cart.lua.zst", func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w)
			if err != nil {
				t.Fatal(err)
			}
			return zw
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := OpenSource(writeFile(t, tt.name, tt.compress))
			if err != nil {
				t.Fatal(err)
			}
			defer src.Close()
			first, err := src.ReadByte()
			if err != nil {
				t.Fatal(err)
			}
			rest, err := io.ReadAll(src)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(first) + string(rest); got != chunk {
				t.Errorf("got %q, want %q", got, chunk)
			}
		})
	}
}

func TestOpenSourceErrors(t *testing.T) {
	if _, err := OpenSource(filepath.Join(t.TempDir(), "missing.lua")); !os.IsNotExist(err) {
		t.Errorf("missing file: %v", err)
	}
	bad := writeFile(t, "bad.gz", func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} })
	if _, err := OpenSource(bad); err == nil {
		t.Error("plain text accepted as gzip")
	}
}

func TestSourceName(t *testing.T) {
	if got := SourceName("-"); got != "=stdin" {
		t.Errorf("stdin = %q", got)
	}
	if got := SourceName("a/b.lua"); got != "@a/b.lua" {
		t.Errorf("file = %q", got)
	}
}
