// Package services defines the public interfaces of the search server and
// the shared callback types.
package services

import "github.com/avolkov/search-server/model"

// DocumentPredicate decides whether a scored document is kept in the result
// set.
type DocumentPredicate func(docID int, status model.DocumentStatus, rating int) bool

// StatusPredicate returns a predicate keeping only documents with the given
// status.
func StatusPredicate(status model.DocumentStatus) DocumentPredicate {
	return func(_ int, documentStatus model.DocumentStatus, _ int) bool {
		return documentStatus == status
	}
}

// DocumentIndexer ingests documents into the corpus.
type DocumentIndexer interface {
	AddDocument(docID int, text string, status model.DocumentStatus, ratings []int) error
}

// DocumentSearcher answers queries over the ingested corpus.
type DocumentSearcher interface {
	FindTopDocuments(rawQuery string) ([]model.Document, error)
	FindTopDocumentsWithStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error)
	FindTopDocumentsFunc(rawQuery string, predicate DocumentPredicate) ([]model.Document, error)
	MatchDocument(rawQuery string, docID int) ([]string, model.DocumentStatus, error)
	GetDocumentCount() int
	GetDocumentID(position int) (int, error)
}
