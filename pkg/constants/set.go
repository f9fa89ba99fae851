// Package constants publishes the Sui object identifiers and endpoints the
// PumpSui front end depends on.
//
// The Go constants are the source of truth. Set wraps them in an immutable
// table keyed by the names front-end bundles use, so they can be listed,
// validated, overridden per deployment and served over HTTP.
package constants

import (
	"fmt"
	"strings"

	"github.com/pumpsui/pumpsui_service/pkg/sui"
)

// Entry is a single named constant
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Group Group  `json:"group"`
	Kind  Kind   `json:"kind"`
}

// Set is an immutable, ordered table of constants. It is safe for concurrent
// use because nothing mutates it after New returns.
type Set struct {
	entries []Entry
	index   map[string]int
}

var defaultSet = mustNew(defaultEntries)

// Default returns the constant set compiled into the binary
func Default() *Set {
	return defaultSet
}

// New builds a set. Keys must be unique and non-empty, values non-empty.
func New(entries []Entry) (*Set, error) {
	s := &Set{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, dup := s.index[e.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key)
		}
		if e.Value == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyValue, e.Key)
		}
		s.index[e.Key] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s, nil
}

func mustNew(entries []Entry) *Set {
	s, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("constants: %v", err))
	}
	return s
}

// Len returns the number of constants
func (s *Set) Len() int {
	return len(s.entries)
}

// Lookup returns the value stored under key
func (s *Set) Lookup(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Entry returns the full entry stored under key
func (s *Set) Entry(key string) (Entry, bool) {
	i, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Get returns the value stored under key or ErrUnknownKey
func (s *Set) Get(key string) (string, error) {
	v, ok := s.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return v, nil
}

// MustGet is Get for init-time wiring; it panics on an unknown key.
func (s *Set) MustGet(key string) string {
	v, err := s.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Entries returns a copy of all entries in declaration order
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Keys returns all keys in declaration order
func (s *Set) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Group returns the entries of one group in declaration order
func (s *Set) Group(g Group) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Group == g {
			out = append(out, e)
		}
	}
	return out
}

// Map returns a fresh key to value map
func (s *Set) Map() map[string]string {
	m := make(map[string]string, len(s.entries))
	for _, e := range s.entries {
		m[e.Key] = e.Value
	}
	return m
}

// WithOverrides returns a new set where the given keys carry new values.
// Object id overrides are normalized when possible, so "0x6" is accepted
// for the clock. The receiver is left untouched.
func (s *Set) WithOverrides(overrides map[string]string) (*Set, error) {
	entries := s.Entries()
	for key, value := range overrides {
		key = strings.ToUpper(strings.TrimSpace(key))
		i, ok := s.index[key]
		if !ok {
			return nil, fmt.Errorf("override %w: %s", ErrUnknownKey, key)
		}
		value = strings.TrimSpace(value)
		if entries[i].Kind == KindObjectID {
			if normalized, err := sui.NormalizeObjectID(value); err == nil {
				value = normalized
			}
		}
		entries[i].Value = value
	}
	return New(entries)
}

// EnvLines renders the set as KEY=value lines in declaration order
func (s *Set) EnvLines() string {
	var b strings.Builder
	for _, e := range s.entries {
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
