// Package glyph decodes the multi-byte UTF-8 sequences that the charset
// represents as single bytes, and renders charset bytes back to UTF-8.
package glyph

import (
	"errors"
	"fmt"
	"strings"
)

// Result tells the caller what a Decode call did with the input.
type Result int

const (
	// Decoded means a full sequence was consumed and a code produced.
	Decoded Result = iota
	// NotRecognized means the current byte starts no known sequence;
	// nothing was consumed.
	NotRecognized
	// Invalid means a known prefix was consumed but the next byte does not
	// continue any sequence.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Decoded:
		return "decoded"
	case NotRecognized:
		return "not recognized"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Cursor is a byte stream with one byte of lookahead. Current returns -1 at
// the end of input; Advance moves on and returns the new current byte.
type Cursor interface {
	Current() int
	Advance() int
}

var ErrInvalidSequence = errors.New("unknown utf-8 sequence")

type node struct {
	next     map[byte]*node
	terminal bool
	code     byte
}

// Trie matches byte prefixes to charset codes. It is read-only after
// construction and safe for concurrent use.
type Trie struct {
	root    node
	reverse [256]string
	size    int
}

var Default = MustNewTrie(Table)

// NewTrie builds a trie from entries. Empty or duplicate sequences and
// sequences that are a prefix of another are rejected, since the walk stops
// at the first terminal node.
func NewTrie(entries []Entry) (*Trie, error) {
	t := &Trie{}
	for _, e := range entries {
		if e.Seq == "" {
			return nil, fmt.Errorf("glyph: empty sequence for code %d", e.Code)
		}
		n := &t.root
		for i := 0; i < len(e.Seq); i++ {
			if n.terminal {
				return nil, fmt.Errorf("glyph: %q (code %d) extends the sequence for code %d", e.Seq, e.Code, n.code)
			}
			if n.next == nil {
				n.next = make(map[byte]*node)
			}
			child, ok := n.next[e.Seq[i]]
			if !ok {
				child = &node{}
				n.next[e.Seq[i]] = child
			}
			n = child
		}
		if n.terminal {
			return nil, fmt.Errorf("glyph: duplicate sequence %q", e.Seq)
		}
		if len(n.next) > 0 {
			return nil, fmt.Errorf("glyph: %q (code %d) is a prefix of another sequence", e.Seq, e.Code)
		}
		n.terminal = true
		n.code = e.Code
		if t.reverse[e.Code] == "" {
			t.reverse[e.Code] = e.Seq
		}
		t.size++
	}
	return t, nil
}

func MustNewTrie(entries []Entry) *Trie {
	t, err := NewTrie(entries)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Trie) Len() int { return t.size }

// Decode walks the trie from the cursor's current byte. The first byte is
// only examined; every byte that matches a child is consumed, so an Invalid
// result leaves the cursor on the first byte that diverged.
func (t *Trie) Decode(c Cursor) (byte, Result) {
	cur := c.Current()
	if cur < 0 {
		return 0, NotRecognized
	}
	n, ok := t.root.next[byte(cur)]
	if !ok {
		return 0, NotRecognized
	}
	cur = c.Advance()
	for !n.terminal {
		if cur < 0 {
			return 0, Invalid
		}
		child, ok := n.next[byte(cur)]
		if !ok {
			return 0, Invalid
		}
		n = child
		cur = c.Advance()
	}
	return n.code, Decoded
}

// Encode returns the UTF-8 sequence for a charset code.
func (t *Trie) Encode(code byte) (string, bool) {
	s := t.reverse[code]
	return s, s != ""
}

type stringCursor struct {
	s   string
	pos int
}

func (c *stringCursor) Current() int {
	if c.pos >= len(c.s) {
		return -1
	}
	return int(c.s[c.pos])
}

func (c *stringCursor) Advance() int {
	c.pos++
	return c.Current()
}

// DecodeString converts a whole UTF-8 string to charset bytes. Bytes that
// start no known sequence are copied unchanged.
func (t *Trie) DecodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	c := &stringCursor{s: s}
	for c.Current() >= 0 {
		start := c.pos
		code, res := t.Decode(c)
		switch res {
		case Decoded:
			out = append(out, code)
		case NotRecognized:
			out = append(out, s[c.pos])
			c.Advance()
		case Invalid:
			return out, fmt.Errorf("glyph: %w at offset %d (%q)", ErrInvalidSequence, start, s[start:min(c.pos+1, len(s))])
		}
	}
	return out, nil
}

// EncodeBytes renders charset bytes as UTF-8. Bytes without a glyph are
// written as-is.
func (t *Trie) EncodeBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if s := t.reverse[c]; s != "" {
			sb.WriteString(s)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func Decode(c Cursor) (byte, Result)        { return Default.Decode(c) }
func DecodeString(s string) ([]byte, error) { return Default.DecodeString(s) }
func Encode(code byte) (string, bool)       { return Default.Encode(code) }
func EncodeBytes(b []byte) string           { return Default.EncodeBytes(b) }
