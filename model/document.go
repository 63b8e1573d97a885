// Package model defines the document result record and status types shared
// across the search server packages.
package model

import "fmt"

// DocumentStatus describes the lifecycle state assigned to a document at
// ingestion time. It never changes afterwards.
type DocumentStatus int

const (
	StatusActual DocumentStatus = iota
	StatusIrrelevant
	StatusBanned
	StatusRemoved
)

// String returns the canonical upper-case name of the status.
func (s DocumentStatus) String() string {
	switch s {
	case StatusActual:
		return "ACTUAL"
	case StatusIrrelevant:
		return "IRRELEVANT"
	case StatusBanned:
		return "BANNED"
	case StatusRemoved:
		return "REMOVED"
	default:
		return "<unknown>"
	}
}

// ParseDocumentStatus maps a canonical status name back to its value.
func ParseDocumentStatus(name string) (DocumentStatus, error) {
	switch name {
	case "ACTUAL":
		return StatusActual, nil
	case "IRRELEVANT":
		return StatusIrrelevant, nil
	case "BANNED":
		return StatusBanned, nil
	case "REMOVED":
		return StatusRemoved, nil
	default:
		return StatusActual, fmt.Errorf("unknown document status %q", name)
	}
}

// Document is a single ranked search result: the caller-supplied document
// id joined with its accumulated relevance and the metadata recorded at
// ingestion time.
type Document struct {
	ID        int
	Relevance float64
	Rating    int
	Status    DocumentStatus
}
