package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/avolkov/search-server/model"
)

func TestReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("cat in the city\nsecond line\n"))

	line, err := r.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine returned error: %v", err)
	}
	if line != "cat in the city" {
		t.Errorf("ReadLine = %q, want %q", line, "cat in the city")
	}

	line, err = r.ReadLine()
	if err != nil || line != "second line" {
		t.Errorf("second ReadLine = (%q, %v)", line, err)
	}

	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine at end = %v, want io.EOF", err)
	}
}

func TestReadInt(t *testing.T) {
	r := NewReader(strings.NewReader("  3 \nnot-a-number\n"))

	value, err := r.ReadInt()
	if err != nil {
		t.Fatalf("ReadInt returned error: %v", err)
	}
	if value != 3 {
		t.Errorf("ReadInt = %d, want 3", value)
	}

	if _, err := r.ReadInt(); err == nil {
		t.Error("expected error for non-numeric line")
	}
}

func TestReadRatings(t *testing.T) {
	r := NewReader(strings.NewReader("3 5 7 12\n"))

	ratings, err := r.ReadRatings()
	if err != nil {
		t.Fatalf("ReadRatings returned error: %v", err)
	}
	want := []int{5, 7, 12}
	if len(ratings) != len(want) {
		t.Fatalf("got %d ratings, want %d", len(ratings), len(want))
	}
	for i := range want {
		if ratings[i] != want[i] {
			t.Errorf("ratings[%d] = %d, want %d", i, ratings[i], want[i])
		}
	}
}

func TestReadRatingsCountMismatch(t *testing.T) {
	r := NewReader(strings.NewReader("2 5\n"))
	if _, err := r.ReadRatings(); err == nil {
		t.Error("expected error when declared count does not match values")
	}
}

func TestReadMatchRequest(t *testing.T) {
	r := NewReader(strings.NewReader("2 fluffy cat -collar\n5\nbad request\n"))

	docID, query, err := r.ReadMatchRequest()
	if err != nil {
		t.Fatalf("ReadMatchRequest returned error: %v", err)
	}
	if docID != 2 || query != "fluffy cat -collar" {
		t.Errorf("ReadMatchRequest = (%d, %q), want (2, %q)", docID, query, "fluffy cat -collar")
	}

	docID, query, err = r.ReadMatchRequest()
	if err != nil || docID != 5 || query != "" {
		t.Errorf("bare-id ReadMatchRequest = (%d, %q, %v), want (5, \"\", nil)", docID, query, err)
	}

	if _, _, err := r.ReadMatchRequest(); err == nil {
		t.Error("expected error for a non-numeric document id")
	}
}

func TestFormatDocument(t *testing.T) {
	doc := model.Document{ID: 2, Relevance: 0.25, Rating: 4}
	got := FormatDocument(doc)
	want := "{ document_id = 2, relevance = 0.25, rating = 4 }"
	if got != want {
		t.Errorf("FormatDocument = %q, want %q", got, want)
	}
}

func TestFormatMatch(t *testing.T) {
	got := FormatMatch([]string{"brown", "dog"}, model.StatusBanned)
	want := "{ matched_words = [brown, dog], status = BANNED }"
	if got != want {
		t.Errorf("FormatMatch = %q, want %q", got, want)
	}
}
