package index

import (
	"math"
	"testing"
)

func TestAccumulate(t *testing.T) {
	ii := NewInvertedIndex()

	// "cat cat dog" indexed with step 1/3: "cat" accumulates twice.
	step := 1.0 / 3.0
	ii.Accumulate("cat", 0, step)
	ii.Accumulate("cat", 0, step)
	ii.Accumulate("dog", 0, step)

	postings, ok := ii.PostingsFor("cat")
	if !ok {
		t.Fatal("expected 'cat' to be indexed")
	}
	if got := postings[0]; math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("weight for ('cat', 0) = %v, want 2/3", got)
	}

	if ii.TermCount() != 2 {
		t.Errorf("TermCount() = %d, want 2", ii.TermCount())
	}
}

func TestContains(t *testing.T) {
	ii := NewInvertedIndex()
	ii.Accumulate("cat", 1, 0.5)

	if !ii.Contains("cat", 1) {
		t.Error("Contains('cat', 1) = false, want true")
	}
	if ii.Contains("cat", 2) {
		t.Error("Contains('cat', 2) = true, want false")
	}
	if ii.Contains("dog", 1) {
		t.Error("Contains('dog', 1) = true, want false")
	}
}

func TestPostingsForMissingTerm(t *testing.T) {
	ii := NewInvertedIndex()
	if _, ok := ii.PostingsFor("ghost"); ok {
		t.Error("PostingsFor on an empty index should report absence")
	}
}
