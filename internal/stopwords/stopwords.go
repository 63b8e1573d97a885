// Package stopwords provides the immutable stop-word set shared by document
// ingestion and query parsing.
package stopwords

import (
	"fmt"

	"github.com/avolkov/search-server/internal/tokenizer"
)

// Set is an immutable set of normalized stop words. The zero value of *Set
// (nil) is a valid empty set.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from a collection of words, deduplicating and dropping
// empty entries. It fails with an invalid-input error when any word contains
// a control character.
func New(words []string) (*Set, error) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if err := tokenizer.Validate(word); err != nil {
			return nil, fmt.Errorf("stop word %q: %w", word, err)
		}
		set[word] = struct{}{}
	}
	return &Set{words: set}, nil
}

// NewFromString builds a Set from a whitespace-separated string of words.
func NewFromString(text string) (*Set, error) {
	return New(tokenizer.Split(text))
}

// Contains reports whether word is a stop word.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct stop words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
