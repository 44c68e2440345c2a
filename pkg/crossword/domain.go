package crossword

// domain.go: WordSet, the ordered word-domain container backing the solver.
// Hash-ordered domain sets would make heuristic tie-breaks depend on map
// iteration order; WordSet keeps its words sorted so that variable and value
// ordering is deterministic and solver output is reproducible.

import (
	"sort"
	"strings"
)

// WordSet is a set of candidate words with deterministic, sorted iteration
// order. Duplicates are collapsed on construction. The zero value is not
// usable; create sets with NewWordSet.
//
// WordSet is mutable: the consistency engine shrinks domains in place before
// search begins. It is never mutated during search.
type WordSet struct {
	words []string // sorted ascending, unique
}

// NewWordSet builds a set from the given words. The input slice is not
// retained.
func NewWordSet(words []string) *WordSet {
	out := make([]string, len(words))
	copy(out, words)
	sort.Strings(out)
	// Collapse duplicates in place.
	n := 0
	for i, w := range out {
		if i == 0 || w != out[n-1] {
			out[n] = w
			n++
		}
	}
	return &WordSet{words: out[:n]}
}

// Count returns the number of words in the set.
func (s *WordSet) Count() int { return len(s.words) }

// Has reports whether w is in the set.
func (s *WordSet) Has(w string) bool {
	i := sort.SearchStrings(s.words, w)
	return i < len(s.words) && s.words[i] == w
}

// Remove deletes w from the set, reporting whether it was present.
func (s *WordSet) Remove(w string) bool {
	i := sort.SearchStrings(s.words, w)
	if i >= len(s.words) || s.words[i] != w {
		return false
	}
	s.words = append(s.words[:i], s.words[i+1:]...)
	return true
}

// Filter retains only words for which keep returns true and returns the
// number of words removed.
func (s *WordSet) Filter(keep func(word string) bool) int {
	n := 0
	for _, w := range s.words {
		if keep(w) {
			s.words[n] = w
			n++
		}
	}
	removed := len(s.words) - n
	s.words = s.words[:n]
	return removed
}

// Words returns the set's contents in ascending order. The returned slice is
// a copy.
func (s *WordSet) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Clone returns an independent copy of the set.
func (s *WordSet) Clone() *WordSet {
	words := make([]string, len(s.words))
	copy(words, s.words)
	return &WordSet{words: words}
}

// Equal reports whether both sets contain exactly the same words.
func (s *WordSet) Equal(o *WordSet) bool {
	if len(s.words) != len(o.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation like "{ATE,CAT,DOG}".
func (s *WordSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, w := range s.words {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(w)
	}
	b.WriteString("}")
	return b.String()
}
