package driven

import "github.com/custodia-labs/whatlang-cli/internal/core/domain"

// Classifier wraps an external statistical language-detection engine.
//
// Implementations may include:
//   - lingua-go (default, returns a full ranked candidate list)
//   - whatlanggo (top-1 only, adapted as a single-element list)
//
// Implementations must be deterministic: repeated calls on identical text
// yield identical output. Any engine randomness is fixed at construction
// time, not per call.
type Classifier interface {
	// Classify returns candidates ordered by descending probability as
	// emitted by the engine. Every candidate carries a probability greater
	// than zero. A failed or empty classification returns an error, usually
	// wrapping domain.ErrClassificationUnavailable.
	Classify(text string) ([]domain.Candidate, error)
}
