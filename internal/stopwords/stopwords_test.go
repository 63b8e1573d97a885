package stopwords

import (
	"errors"
	"testing"

	pkgerrors "github.com/avolkov/search-server/internal/errors"
)

func TestNew(t *testing.T) {
	set, err := New([]string{"in", "the", "in", ""})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (deduplicated, empties dropped)", set.Len())
	}
	if !set.Contains("in") || !set.Contains("the") {
		t.Error("expected 'in' and 'the' to be stop words")
	}
	if set.Contains("cat") {
		t.Error("'cat' should not be a stop word")
	}
}

func TestNewFromString(t *testing.T) {
	set, err := NewFromString("  in the   a ")
	if err != nil {
		t.Fatalf("NewFromString returned error: %v", err)
	}
	for _, word := range []string{"in", "the", "a"} {
		if !set.Contains(word) {
			t.Errorf("expected %q to be a stop word", word)
		}
	}
}

func TestNewRejectsControlCharacters(t *testing.T) {
	_, err := New([]string{"in", "th\x01e"})
	if err == nil {
		t.Fatal("expected error for stop word with control character")
	}
	if !errors.Is(err, pkgerrors.ErrInvalidInput) {
		t.Errorf("error %v does not match ErrInvalidInput", err)
	}
}

func TestNilSetIsEmpty(t *testing.T) {
	var set *Set
	if set.Contains("anything") {
		t.Error("nil set should contain nothing")
	}
	if set.Len() != 0 {
		t.Errorf("nil set Len() = %d, want 0", set.Len())
	}
}
