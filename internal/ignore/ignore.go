// Package ignore decides whether a relative path belongs to the configured
// ignore set. Matching is exact and case-sensitive; entries are relative
// paths, not patterns.
package ignore

import "path/filepath"

// Set is an immutable collection of ignored relative paths. The zero value
// ignores nothing.
type Set struct {
	paths map[string]struct{}
}

// NewSet builds a Set from config entries. Entries are normalized to
// slash-separated cleaned paths so that "tmp/cache.bin" written on any
// platform matches the walker's output.
func NewSet(entries []string) *Set {
	s := &Set{paths: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		if e == "" {
			continue
		}
		s.paths[normalize(e)] = struct{}{}
	}
	return s
}

// Ignored reports whether rel is in the set. Pure lookup, no side effects.
func (s *Set) Ignored(rel string) bool {
	if s == nil || len(s.paths) == 0 {
		return false
	}
	_, ok := s.paths[normalize(rel)]
	return ok
}

// Len reports the number of configured entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}

func normalize(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
