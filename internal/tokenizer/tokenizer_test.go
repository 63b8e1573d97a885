package tokenizer

import (
	"errors"
	"slices"
	"testing"

	pkgerrors "github.com/avolkov/search-server/internal/errors"
)

func TestTokens(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "cat in the city", []string{"cat", "in", "the", "city"}},
		{"extra spaces", "  cat   in  ", []string{"cat", "in"}},
		{"empty", "", nil},
		{"spaces only", "   ", nil},
		{"single token", "cat", []string{"cat"}},
		{"case preserved", "Cat CAT cat", []string{"Cat", "CAT", "cat"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(Tokens(tc.text))
			if !slices.Equal(got, tc.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tc.text, got, tc.want)
			}
			if !slices.Equal(Split(tc.text), got) {
				t.Errorf("Split(%q) disagrees with Tokens", tc.text)
			}
		})
	}
}

func TestTokensIsRestartable(t *testing.T) {
	seq := Tokens("one two three")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second iteration %v differs from first %v", second, first)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"", "cat in the city", "naïve café", "skip-word", "--"}
	for _, text := range valid {
		if err := Validate(text); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", text, err)
		}
	}

	invalid := []string{"cat\x00dog", "\x1fcat", "cat\tdog", "line\nbreak", "\x01"}
	for _, text := range invalid {
		err := Validate(text)
		if err == nil {
			t.Errorf("Validate(%q) = nil, want error", text)
			continue
		}
		if !errors.Is(err, pkgerrors.ErrInvalidInput) {
			t.Errorf("Validate(%q) error %v does not match ErrInvalidInput", text, err)
		}
	}
}
