package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// SourceName returns the chunk name for a file path, in the "@path" form
// ChunkID shortens from the left.
func SourceName(path string) string {
	if path == "-" {
		return "=stdin"
	}
	return "@" + path
}

type source struct {
	*bufio.Reader
	closers []func() error
}

func (s *source) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Source is an open chunk ready for the lexer.
type Source interface {
	io.ByteReader
	io.ReadCloser
}

// OpenSource opens path for scanning. "-" reads stdin. Files ending in .gz
// or .zst are decompressed on the fly.
func OpenSource(path string) (Source, error) {
	var f io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, err
		}
	}
	s := &source{closers: []func() error{f.Close}}

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.closers = append(s.closers, zr.Close)
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.closers = append(s.closers, func() error { zr.Close(); return nil })
		r = zr
	}
	s.Reader = bufio.NewReader(r)
	return s, nil
}
