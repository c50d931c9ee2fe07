// Package keyword provides case-insensitive substring tests over fixed word
// lists, backed by an Aho-Corasick automaton so that a line is scanned once
// no matter how many words the list holds.
package keyword

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Set is an immutable list of keywords. It is safe for concurrent use.
type Set struct {
	words   []string
	matcher *ahocorasick.Matcher
}

// NewSet builds a set from words. Matching ignores case; the order of words
// is kept and used by First.
func NewSet(words ...string) *Set {
	s := &Set{words: make([]string, 0, len(words))}

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}

		s.words = append(s.words, w)
	}

	if len(s.words) > 0 {
		s.matcher = ahocorasick.NewStringMatcher(s.words)
	}

	return s
}

// Contains reports whether any keyword occurs in text.
func (s *Set) Contains(text string) bool {
	return len(s.match(text)) > 0
}

// First returns the earliest keyword, in construction order, that occurs in
// text.
func (s *Set) First(text string) (string, bool) {
	hits := s.match(text)
	if len(hits) == 0 {
		return "", false
	}

	best := hits[0]
	for _, idx := range hits[1:] {
		if idx < best {
			best = idx
		}
	}

	return s.words[best], true
}

// Words returns a copy of the normalized keywords.
func (s *Set) Words() []string {
	return append([]string(nil), s.words...)
}

func (s *Set) match(text string) []int {
	if s == nil || s.matcher == nil || text == "" {
		return nil
	}

	// MatchThreadSafe keeps strategies usable from several goroutines.
	return s.matcher.MatchThreadSafe([]byte(strings.ToLower(text)))
}
