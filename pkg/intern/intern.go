// Package intern keeps one shared copy of every distinct string the scanner
// produces, so equal contents compare by handle.
package intern

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// String is an interned string handle. Two handles from the same Store are
// equal exactly when their contents are.
type String struct {
	s      string
	hash   uint64
	pinned atomic.Bool
}

func (s *String) String() string { return s.s }
func (s *String) Len() int       { return len(s.s) }
func (s *String) Hash() uint64   { return s.hash }

// Interner is the part of a Store the lexer needs.
type Interner interface {
	Intern(b []byte) *String
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	buckets map[uint64][]*String
	count   int
	hash    func([]byte) uint64
}

func NewStore() *Store {
	return &Store{buckets: make(map[uint64][]*String), hash: xxhash.Sum64}
}

// Intern returns the handle for b, creating it on first sight. b is copied.
func (st *Store) Intern(b []byte) *String {
	h := st.hash(b)
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, s := range st.buckets[h] {
		if s.s == string(b) {
			return s
		}
	}
	s := &String{s: string(b), hash: h}
	st.buckets[h] = append(st.buckets[h], s)
	st.count++
	return s
}

func (st *Store) InternString(s string) *String { return st.Intern([]byte(s)) }

// Pin keeps s alive across every later Sweep.
func (st *Store) Pin(s *String) {
	s.pinned.Store(true)
}

// PinAll interns and pins each word.
func (st *Store) PinAll(words ...string) {
	for _, w := range words {
		st.Pin(st.InternString(w))
	}
}

func (s *String) Pinned() bool { return s.pinned.Load() }

// Sweep drops every unpinned handle for which live returns false and reports
// how many were dropped. Dropped handles stay valid for their holders but a
// later Intern of the same content returns a new handle.
func (st *Store) Sweep(live func(*String) bool) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	dropped := 0
	for h, bucket := range st.buckets {
		kept := bucket[:0]
		for _, s := range bucket {
			if s.pinned.Load() || live(s) {
				kept = append(kept, s)
				continue
			}
			dropped++
		}
		if len(kept) == 0 {
			delete(st.buckets, h)
			continue
		}
		clear(bucket[len(kept):])
		st.buckets[h] = kept
	}
	st.count -= dropped
	return dropped
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.count
}
