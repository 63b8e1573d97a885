// Package tokenizer splits raw text into whitespace-delimited tokens and
// validates text against the control-character rule.
package tokenizer

import (
	"iter"
	"strings"

	"github.com/avolkov/search-server/internal/errors"
)

// Validate reports an invalid-input error when text contains an ASCII
// control character (code points 0-31).
func Validate(text string) error {
	for _, r := range text {
		if r < 32 {
			return errors.NewInputError("text contains a control character")
		}
	}
	return nil
}

// Tokens returns a lazy, restartable sequence of the whitespace-separated
// tokens of text, in left-to-right order. It performs no validation; callers
// are expected to run Validate on the raw text first.
func Tokens(text string) iter.Seq[string] {
	return strings.FieldsSeq(text)
}

// Split materializes Tokens into a slice.
func Split(text string) []string {
	return strings.Fields(text)
}
