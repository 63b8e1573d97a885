// Package query turns raw query strings into structured sets of required
// (plus) and excluded (minus) terms.
package query

import (
	"fmt"
	"strings"

	"github.com/avolkov/search-server/internal/errors"
	"github.com/avolkov/search-server/internal/stopwords"
	"github.com/avolkov/search-server/internal/tokenizer"
)

// Query is a parsed query: two disjoint, deduplicated sets of terms with
// stop words already removed. Plus terms must occur for a document to score;
// minus terms exclude any document containing them.
type Query struct {
	PlusTerms  map[string]struct{}
	MinusTerms map[string]struct{}
}

// Parser classifies query tokens against a stop-word set.
type Parser struct {
	stopWords *stopwords.Set
}

// NewParser creates a Parser. A nil stop-word set is treated as empty.
func NewParser(stopWords *stopwords.Set) *Parser {
	return &Parser{stopWords: stopWords}
}

// Parse tokenizes raw, drops stop words, and classifies each remaining
// token. A token beginning with '-' is a minus word: the leading '-' is
// stripped and the remainder must be non-empty and must not itself begin
// with '-'. A minus word whose content is a stop word is dropped silently,
// so a stop word can never act as a filter.
func (p *Parser) Parse(raw string) (Query, error) {
	if err := tokenizer.Validate(raw); err != nil {
		return Query{}, fmt.Errorf("query: %w", err)
	}

	parsed := Query{
		PlusTerms:  make(map[string]struct{}),
		MinusTerms: make(map[string]struct{}),
	}
	for token := range tokenizer.Tokens(raw) {
		if p.stopWords.Contains(token) {
			continue
		}
		if strings.HasPrefix(token, "-") {
			word := token[1:]
			if word == "" {
				return Query{}, errors.NewArgumentError("query", "empty minus word")
			}
			if strings.HasPrefix(word, "-") {
				return Query{}, errors.NewArgumentError("query", fmt.Sprintf("double-dash minus word %q", token))
			}
			if !p.stopWords.Contains(word) {
				parsed.MinusTerms[word] = struct{}{}
			}
			continue
		}
		parsed.PlusTerms[token] = struct{}{}
	}
	return parsed, nil
}
