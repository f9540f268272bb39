package highlights

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/forPelevin/goalcut/internal/types"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func wordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateWord reports ErrMalformedInput for a word with no text, a negative
// start, an end before its start or a confidence outside [0,1].
func ValidateWord(w types.TranscriptWord) error {
	if err := wordValidator().Struct(w); err != nil {
		return fmt.Errorf("%w: word %q at %.2fs: %v", ErrMalformedInput, w.Text, w.Start, err)
	}
	return nil
}

// ExtractKeywords returns the start time of every word whose text is in vocab,
// in transcript order. Confidence is ignored and nothing is deduplicated.
func ExtractKeywords(words []types.TranscriptWord, vocab Vocabulary) ([]float64, error) {
	var out []float64
	for i, w := range words {
		if err := ValidateWord(w); err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		if vocab.Contains(w.Text) {
			out = append(out, w.Start)
		}
	}
	return out, nil
}
