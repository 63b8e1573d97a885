// Package engine wires the indexing and search services into the public
// SearchServer facade.
package engine

import (
	"fmt"
	"time"

	"github.com/avolkov/search-server/index"
	"github.com/avolkov/search-server/internal/analytics"
	"github.com/avolkov/search-server/internal/errors"
	"github.com/avolkov/search-server/internal/indexing"
	"github.com/avolkov/search-server/internal/search"
	"github.com/avolkov/search-server/internal/stopwords"
	"github.com/avolkov/search-server/model"
	"github.com/avolkov/search-server/services"
	"github.com/avolkov/search-server/store"
)

// SearchServer is an in-memory full-text index ranking documents against
// free-text queries with TF-IDF scoring. It implements the
// services.DocumentIndexer and services.DocumentSearcher interfaces.
//
// Ingestion takes write locks and queries take read locks on the underlying
// index and store, so concurrent read-only queries are safe and ingestion
// interleaved with queries is linearized.
type SearchServer struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	indexer       *indexing.Service
	searcher      *search.Service
	collector     *analytics.Collector
}

// New creates a SearchServer with no stop words.
func New() *SearchServer {
	server, err := NewWithStopWordList(nil)
	if err != nil {
		// An empty stop-word list cannot fail validation.
		panic(fmt.Sprintf("engine: %v", err))
	}
	return server
}

// NewWithStopWords creates a SearchServer whose stop words are the
// whitespace-separated words of text. It fails with an invalid-input error
// when any word contains a control character.
func NewWithStopWords(text string) (*SearchServer, error) {
	set, err := stopwords.NewFromString(text)
	if err != nil {
		return nil, err
	}
	return newServer(set)
}

// NewWithStopWordList creates a SearchServer from an explicit stop-word
// collection. It fails with an invalid-input error when any word contains a
// control character.
func NewWithStopWordList(words []string) (*SearchServer, error) {
	set, err := stopwords.New(words)
	if err != nil {
		return nil, err
	}
	return newServer(set)
}

func newServer(set *stopwords.Set) (*SearchServer, error) {
	invertedIndex := index.NewInvertedIndex()
	documentStore := store.NewDocumentStore()

	indexer, err := indexing.NewService(invertedIndex, documentStore, set)
	if err != nil {
		return nil, fmt.Errorf("indexing service: %w", err)
	}
	searcher, err := search.NewService(invertedIndex, documentStore, set)
	if err != nil {
		return nil, fmt.Errorf("search service: %w", err)
	}

	return &SearchServer{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		indexer:       indexer,
		searcher:      searcher,
		collector:     analytics.NewCollector(),
	}, nil
}

// AddDocument ingests one document. It fails with an invalid-argument error
// when docID is negative or already known, and with an invalid-input error
// when text contains a control character. A failed call leaves the index
// untouched.
func (s *SearchServer) AddDocument(docID int, text string, status model.DocumentStatus, ratings []int) error {
	return s.indexer.AddDocument(docID, text, status, ratings)
}

// FindTopDocuments returns the top documents with status ACTUAL.
func (s *SearchServer) FindTopDocuments(rawQuery string) ([]model.Document, error) {
	return s.FindTopDocumentsWithStatus(rawQuery, model.StatusActual)
}

// FindTopDocumentsWithStatus returns the top documents with the given
// status.
func (s *SearchServer) FindTopDocumentsWithStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return s.FindTopDocumentsFunc(rawQuery, services.StatusPredicate(status))
}

// FindTopDocumentsFunc scores the corpus against rawQuery and returns at
// most five documents accepted by predicate, ordered by relevance
// descending with rating breaking near-ties.
func (s *SearchServer) FindTopDocumentsFunc(rawQuery string, predicate services.DocumentPredicate) ([]model.Document, error) {
	started := time.Now()
	docs, err := s.searcher.FindTopDocuments(rawQuery, predicate)
	if err != nil {
		return nil, err
	}
	s.collector.TrackQuery(rawQuery, len(docs), time.Since(started))
	return docs, nil
}

// MatchDocument reports which plus terms of rawQuery occur in the given
// document, together with the document's status. A minus-term hit yields an
// empty term list. It fails when docID is unknown.
func (s *SearchServer) MatchDocument(rawQuery string, docID int) ([]string, model.DocumentStatus, error) {
	started := time.Now()
	matched, status, err := s.searcher.MatchDocument(rawQuery, docID)
	if err != nil {
		return nil, status, err
	}
	s.collector.TrackQuery(rawQuery, len(matched), time.Since(started))
	return matched, status, nil
}

// GetDocumentCount returns the number of documents added so far.
func (s *SearchServer) GetDocumentCount() int {
	s.documentStore.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()
	return s.documentStore.Count()
}

// GetDocumentID returns the document id at the given insertion-order
// position. It fails when position is outside [0, GetDocumentCount()).
func (s *SearchServer) GetDocumentID(position int) (int, error) {
	s.documentStore.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()

	docID, ok := s.documentStore.IDAt(position)
	if !ok {
		return 0, errors.NewPositionOutOfRangeError(position, s.documentStore.Count())
	}
	return docID, nil
}

// Analytics returns a snapshot of the query statistics collected so far.
func (s *SearchServer) Analytics() analytics.Snapshot {
	return s.collector.Snapshot()
}

// AnalyticsEvents returns the retained per-query events, oldest first.
func (s *SearchServer) AnalyticsEvents() []analytics.Event {
	return s.collector.Events()
}
