// Package console implements the line-oriented input protocol and result
// formatting used by the command line front end. It is glue around the
// engine: it parses lines into structured arguments and renders what comes
// back.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avolkov/search-server/model"
)

// Reader reads the line-oriented document and query protocol.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next input line without its trailing newline.
func (r *Reader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// ReadInt reads a line holding a single integer.
func (r *Reader) ReadInt() (int, error) {
	line, err := r.ReadLine()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", line)
	}
	return value, nil
}

// ReadRatings reads a line of the form "<count> r1 r2 ..." and returns the
// ratings.
func (r *Reader) ReadRatings() ([]int, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("expected a ratings line, got %q", line)
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad ratings count %q", fields[0])
	}
	if count != len(fields)-1 {
		return nil, fmt.Errorf("ratings line declares %d values but holds %d", count, len(fields)-1)
	}
	ratings := make([]int, 0, count)
	for _, field := range fields[1:] {
		rating, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad rating %q", field)
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

// ReadMatchRequest reads a line of the form "<document id> <query>" and
// returns its parts. The query may be empty.
func (r *Reader) ReadMatchRequest() (int, string, error) {
	line, err := r.ReadLine()
	if err != nil {
		return 0, "", err
	}
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	docID, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", fmt.Errorf("bad document id %q in match request", fields[0])
	}
	query := ""
	if len(fields) == 2 {
		query = fields[1]
	}
	return docID, query, nil
}

// FormatDocument renders one result record:
//
//	{ document_id = 2, relevance = 0.366204, rating = 4 }
func FormatDocument(doc model.Document) string {
	return fmt.Sprintf("{ document_id = %d, relevance = %g, rating = %d }", doc.ID, doc.Relevance, doc.Rating)
}

// FormatMatch renders one match-explanation record: the matched terms and
// the document status.
func FormatMatch(terms []string, status model.DocumentStatus) string {
	return fmt.Sprintf("{ matched_words = [%s], status = %s }", strings.Join(terms, ", "), status)
}
