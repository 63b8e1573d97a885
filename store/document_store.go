// Package store holds the per-document metadata recorded at ingestion time
// and the insertion order of document ids.
package store

import (
	"sync"

	"github.com/avolkov/search-server/model"
)

// DocumentMeta is the immutable metadata of one document: the truncated
// average of its ratings and its status.
type DocumentMeta struct {
	Rating int
	Status model.DocumentStatus
}

// DocumentStore maps document ids to their metadata and remembers the order
// in which documents were added. Mutating accessors require the write lock;
// read accessors require at least the read lock.
type DocumentStore struct {
	Mu    sync.RWMutex
	Meta  map[int]DocumentMeta
	Order []int
}

// NewDocumentStore creates an empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{Meta: make(map[int]DocumentMeta)}
}

// Add records metadata for docID and appends it to the insertion order.
// Caller must hold the write lock and must have checked Has first.
func (ds *DocumentStore) Add(docID int, meta DocumentMeta) {
	ds.Meta[docID] = meta
	ds.Order = append(ds.Order, docID)
}

// Has reports whether docID is known. Caller must hold at least the read
// lock.
func (ds *DocumentStore) Has(docID int) bool {
	_, ok := ds.Meta[docID]
	return ok
}

// Get returns the metadata recorded for docID. Caller must hold at least
// the read lock.
func (ds *DocumentStore) Get(docID int) (DocumentMeta, bool) {
	meta, ok := ds.Meta[docID]
	return meta, ok
}

// Count returns the number of documents added so far. Caller must hold at
// least the read lock.
func (ds *DocumentStore) Count() int {
	return len(ds.Order)
}

// IDAt returns the document id at the given insertion-order position and
// whether the position is within range. Caller must hold at least the read
// lock.
func (ds *DocumentStore) IDAt(position int) (int, bool) {
	if position < 0 || position >= len(ds.Order) {
		return 0, false
	}
	return ds.Order[position], true
}
