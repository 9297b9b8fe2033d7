// Package driving provides interfaces for primary/inbound adapters.
package driving

import "github.com/custodia-labs/whatlang-cli/internal/core/domain"

// LanguageDetector is the primary port of the detection pipeline.
type LanguageDetector interface {
	// Detect resolves a request to a populated or fallback result.
	// It never returns an error; every failure path yields the request's
	// fallback result.
	Detect(req domain.Request) domain.Result
}
