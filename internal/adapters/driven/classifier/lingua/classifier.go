// Package lingua adapts the lingua-go detection engine to the classifier
// port. It is the default engine: its confidence values arrive as a full
// ranked list, which is what allow-set filtering operates on.
package lingua

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
)

// Ensure Classifier implements the interface.
var _ driven.Classifier = (*Classifier)(nil)

// Classifier wraps a lingua language detector.
// lingua is deterministic by construction, so repeated calls on identical
// text yield identical output without any seed configuration.
type Classifier struct {
	detector lingua.LanguageDetector
}

// New creates a classifier over all languages lingua supports.
// Language models load lazily on first use.
func New() *Classifier {
	return &Classifier{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Classify returns the ranked candidate list for text. Candidates with zero
// probability are dropped so a zero-confidence entry can never masquerade as
// a detected language.
//
// lingua's raw confidence values are relative measures that do not sum to 1,
// which dilutes the top candidate below the score a probability model would
// give it. They are normalised here so the list carries probabilities
// summing to 1, preserving the engine's ranking.
func (c *Classifier) Classify(text string) ([]domain.Candidate, error) {
	values := c.detector.ComputeLanguageConfidenceValues(text)

	total := 0.0
	for _, v := range values {
		total += v.Value()
	}

	candidates := make([]domain.Candidate, 0, len(values))
	for _, v := range values {
		if v.Value() <= 0 {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Code:        strings.ToLower(v.Language().IsoCode639_1().String()),
			Probability: v.Value() / total,
		})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no language recognised", domain.ErrClassificationUnavailable)
	}
	return candidates, nil
}
