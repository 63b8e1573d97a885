package search

import (
	"sort"

	"github.com/avolkov/search-server/internal/errors"
	"github.com/avolkov/search-server/model"
)

// MatchDocument parses rawQuery and reports which of its plus terms occur
// in the given document, together with the document's status. If any minus
// term occurs in the document the matched-term list is empty: minus-word
// presence short-circuits all further matching.
func (s *Service) MatchDocument(rawQuery string, docID int) ([]string, model.DocumentStatus, error) {
	parsed, err := s.parser.Parse(rawQuery)
	if err != nil {
		return nil, model.StatusActual, err
	}

	s.invertedIndex.Mu.RLock()
	s.documentStore.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()
	defer s.invertedIndex.Mu.RUnlock()

	meta, ok := s.documentStore.Get(docID)
	if !ok {
		return nil, model.StatusActual, errors.NewDocumentNotFoundError(docID)
	}

	for term := range parsed.MinusTerms {
		if s.invertedIndex.Contains(term, docID) {
			return []string{}, meta.Status, nil
		}
	}

	matched := make([]string, 0, len(parsed.PlusTerms))
	for term := range parsed.PlusTerms {
		if s.invertedIndex.Contains(term, docID) {
			matched = append(matched, term)
		}
	}
	sort.Strings(matched)
	return matched, meta.Status, nil
}
