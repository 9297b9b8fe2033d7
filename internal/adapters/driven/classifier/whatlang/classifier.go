// Package whatlang adapts the whatlanggo trigram engine to the classifier
// port. The engine exposes only its top result, so the ranked list it
// produces always has exactly one element.
package whatlang

import (
	"fmt"

	"github.com/abadojack/whatlanggo"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
)

// Ensure Classifier implements the interface.
var _ driven.Classifier = (*Classifier)(nil)

// Classifier wraps whatlanggo. The engine is trigram-count based and holds
// no state, so the zero value is ready to use via New.
type Classifier struct{}

// New creates a whatlanggo-backed classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify detects the single most likely language of text.
func (c *Classifier) Classify(text string) ([]domain.Candidate, error) {
	info := whatlanggo.Detect(text)
	if info.Script == nil || info.Confidence <= 0 {
		return nil, fmt.Errorf("%w: no language recognised", domain.ErrClassificationUnavailable)
	}

	// Lang.String() yields the display name; the ISO accessors carry the
	// codes the rest of the pipeline filters and formats on.
	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	if code == "" {
		return nil, fmt.Errorf("%w: no language recognised", domain.ErrClassificationUnavailable)
	}

	return []domain.Candidate{{
		Code:        code,
		Probability: info.Confidence,
	}}, nil
}
