package analyzer

import (
	"sort"
	"strings"
)

// Set is a set of interface names (e.g. "android.hardware.foo@1.0::IFoo").
type Set map[string]struct{}

// NewSet creates a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	s.Add(names...)
	return s
}

// Add inserts names into the set.
func (s Set) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexicographic order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LevelInterfaces maps a compatibility matrix level to every interface
// collected for it, including transitive dependencies.
type LevelInterfaces map[string]Set

// add merges names into the set for lvl, creating it on first use.
func (li LevelInterfaces) add(lvl string, names ...string) {
	s, ok := li[lvl]
	if !ok {
		s = NewSet()
		li[lvl] = s
	}
	s.Add(names...)
}

// fields splits tool output into whitespace-separated tokens.
func fields(out string) []string {
	return strings.Fields(out)
}
