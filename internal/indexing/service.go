// Package indexing implements document ingestion: argument validation,
// rating aggregation, and term-weight accumulation into the inverted index
// and document store.
package indexing

import (
	"fmt"

	"github.com/avolkov/search-server/index"
	"github.com/avolkov/search-server/internal/errors"
	"github.com/avolkov/search-server/internal/stopwords"
	"github.com/avolkov/search-server/internal/tokenizer"
	"github.com/avolkov/search-server/model"
	"github.com/avolkov/search-server/store"
)

// Service ingests documents into an inverted index and document store.
// It fulfills the services.DocumentIndexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	stopWords     *stopwords.Set
}

// NewService creates a new indexing Service. A nil stop-word set is treated
// as empty.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, stopWords *stopwords.Set) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if invertedIndex.Postings == nil {
		invertedIndex.Postings = make(map[string]index.PostingList)
	}
	if documentStore.Meta == nil {
		documentStore.Meta = make(map[int]store.DocumentMeta)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		stopWords:     stopWords,
	}, nil
}

// AddDocument tokenizes text, discards stop words, and accumulates one
// weight step (1 / number of kept tokens) per term occurrence. The average
// rating is the truncated integer mean of ratings, 0 when none are given.
// On any validation failure no index state is touched.
//
// A document whose text is entirely stop words is still recorded: it indexes
// no terms, so the weight step is never computed.
func (s *Service) AddDocument(docID int, text string, status model.DocumentStatus, ratings []int) error {
	if docID < 0 {
		return errors.NewArgumentError("id", fmt.Sprintf("document id %d is negative", docID))
	}
	if err := tokenizer.Validate(text); err != nil {
		return fmt.Errorf("document %d: %w", docID, err)
	}

	var words []string
	for token := range tokenizer.Tokens(text) {
		if !s.stopWords.Contains(token) {
			words = append(words, token)
		}
	}

	// Lock order matches the query path: index first, then store.
	s.invertedIndex.Mu.Lock()
	s.documentStore.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	if s.documentStore.Has(docID) {
		return errors.NewArgumentError("id", fmt.Sprintf("document id %d already exists", docID))
	}

	if len(words) > 0 {
		step := 1.0 / float64(len(words))
		for _, word := range words {
			s.invertedIndex.Accumulate(word, docID, step)
		}
	}
	s.documentStore.Add(docID, store.DocumentMeta{
		Rating: averageRating(ratings),
		Status: status,
	})
	return nil
}

// averageRating truncates toward zero, matching integer division.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return sum / len(ratings)
}
