package index

import "sync"

// InvertedIndex maps each indexed term to the documents containing it and
// the term's frequency weight within each. Mutating accessors require the
// write lock; read accessors require at least the read lock.
type InvertedIndex struct {
	Mu       sync.RWMutex
	Postings map[string]PostingList
}

// NewInvertedIndex creates an empty InvertedIndex.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{Postings: make(map[string]PostingList)}
}

// Accumulate adds weight to the (term, docID) cell, creating the posting
// list on first use. Caller must hold the write lock.
func (ii *InvertedIndex) Accumulate(term string, docID int, weight float64) {
	postings, ok := ii.Postings[term]
	if !ok {
		postings = make(PostingList)
		ii.Postings[term] = postings
	}
	postings[docID] += weight
}

// PostingsFor returns the posting list for term and whether the term is
// indexed at all. Caller must hold at least the read lock.
func (ii *InvertedIndex) PostingsFor(term string) (PostingList, bool) {
	postings, ok := ii.Postings[term]
	return postings, ok
}

// Contains reports whether term occurs in document docID. Caller must hold
// at least the read lock.
func (ii *InvertedIndex) Contains(term string, docID int) bool {
	postings, ok := ii.Postings[term]
	if !ok {
		return false
	}
	_, ok = postings[docID]
	return ok
}

// TermCount returns the number of distinct indexed terms. Caller must hold
// at least the read lock.
func (ii *InvertedIndex) TermCount() int {
	return len(ii.Postings)
}
