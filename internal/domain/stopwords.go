package domain

import "strings"

// StopwordSet is a fixed set of common words excluded from topic
// consideration. Matching is case-insensitive. The set is built once at
// startup and never mutated afterwards.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a StopwordSet from the given words.
// Words are lowercased; empty entries are skipped.
func NewStopwordSet(words ...string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set (case-insensitive).
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// DefaultStopwords returns the built-in stopword set: articles,
// conjunctions, prepositions, common pronouns and filler adverbs.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(
		"the", "a", "an", "and", "of", "in", "on", "at", "to", "is", "for",
		"i", "you", "he", "she", "it", "we", "they", "me", "my", "your", "its",
		"this", "that", "these", "those", "am", "are", "was", "were", "be",
		"been", "with", "as", "by", "or", "but", "not", "so", "very", "really",
	)
}
