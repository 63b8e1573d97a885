// Package search implements TF-IDF relevance scoring, ranking, and document
// matching over the inverted index.
package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/avolkov/search-server/index"
	"github.com/avolkov/search-server/internal/query"
	"github.com/avolkov/search-server/internal/stopwords"
	"github.com/avolkov/search-server/model"
	"github.com/avolkov/search-server/services"
	"github.com/avolkov/search-server/store"
)

// MaxResultDocumentCount caps the number of documents FindTopDocuments
// returns.
const MaxResultDocumentCount = 5

// Service implements relevance scoring and matching for a single corpus.
// It fulfills the query side of the services.DocumentSearcher interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	parser        *query.Parser
}

// NewService creates a new search Service. A nil stop-word set is treated
// as empty.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, stopWords *stopwords.Set) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		parser:        query.NewParser(stopWords),
	}, nil
}

// FindTopDocuments scores the corpus against rawQuery, keeps documents for
// which predicate returns true, and returns at most MaxResultDocumentCount
// of them ordered by relevance descending with rating breaking near-ties.
func (s *Service) FindTopDocuments(rawQuery string, predicate services.DocumentPredicate) ([]model.Document, error) {
	parsed, err := s.parser.Parse(rawQuery)
	if err != nil {
		return nil, err
	}

	s.invertedIndex.Mu.RLock()
	s.documentStore.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()
	defer s.invertedIndex.Mu.RUnlock()

	relevance := s.scoreLocked(parsed)

	// Collect candidates in ascending id order so that full ties (relevance
	// within epsilon and equal rating) come out deterministically after the
	// stable sort.
	docIDs := make([]int, 0, len(relevance))
	for docID := range relevance {
		docIDs = append(docIDs, docID)
	}
	sort.Ints(docIDs)

	matched := make([]model.Document, 0, len(docIDs))
	for _, docID := range docIDs {
		meta, ok := s.documentStore.Get(docID)
		if !ok {
			continue
		}
		if !predicate(docID, meta.Status, meta.Rating) {
			continue
		}
		matched = append(matched, model.Document{
			ID:        docID,
			Relevance: relevance[docID],
			Rating:    meta.Rating,
			Status:    meta.Status,
		})
	}

	rankDocuments(matched)
	if len(matched) > MaxResultDocumentCount {
		matched = matched[:MaxResultDocumentCount]
	}
	return matched, nil
}

// scoreLocked accumulates idf*tf per document for every plus term present
// in the index, then removes every document containing a minus term. IDF is
// only computed for indexed terms, so its denominator is never zero. Caller
// must hold read locks on both the index and the store.
func (s *Service) scoreLocked(parsed query.Query) map[int]float64 {
	relevance := make(map[int]float64)
	totalDocuments := s.documentStore.Count()

	for term := range parsed.PlusTerms {
		postings, ok := s.invertedIndex.PostingsFor(term)
		if !ok {
			continue
		}
		idf := math.Log(float64(totalDocuments) / float64(len(postings)))
		for docID, weight := range postings {
			relevance[docID] += idf * weight
		}
	}
	for term := range parsed.MinusTerms {
		postings, ok := s.invertedIndex.PostingsFor(term)
		if !ok {
			continue
		}
		for docID := range postings {
			delete(relevance, docID)
		}
	}
	return relevance
}
