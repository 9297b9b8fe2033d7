package services

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whatlang-cli/internal/logger"
)

// Ensure DetectionService implements the interface.
var _ driving.LanguageDetector = (*DetectionService)(nil)

// DetectionService is the decision core of the pipeline. It validates sample
// eligibility, invokes the classifier, applies optional allow-set filtering,
// resolves the winning code to a display name, and substitutes the caller's
// fallback values on any disqualifying condition.
//
// DetectionService is the error boundary for all detection failures: callers
// only ever observe a populated or fallback result, never an error.
type DetectionService struct {
	classifier driven.Classifier
	namer      driven.LanguageNamer
}

// NewDetectionService creates a new detection service.
// The namer parameter is optional (can be nil); without it, detected codes
// are echoed as their own names.
func NewDetectionService(classifier driven.Classifier, namer driven.LanguageNamer) *DetectionService {
	return &DetectionService{
		classifier: classifier,
		namer:      namer,
	}
}

// Detect resolves a request to a result. The branches are order-sensitive:
// emptiness, then minimum length, then classification, then allow-set
// filtering. A too-short text never reaches the classifier.
func (s *DetectionService) Detect(req domain.Request) (res domain.Result) {
	fallback := req.Fallback()

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("error detecting language: %v", r)
			res = fallback
		}
	}()

	trimmed := strings.TrimSpace(req.Text)
	if trimmed == "" {
		logger.Warn("empty text provided")
		return fallback
	}

	if utf8.RuneCountInString(trimmed) < domain.MinSampleChars {
		logger.Warn("text too short for reliable detection (minimum %d chars recommended)", domain.MinSampleChars)
		return fallback
	}

	// The classifier sees the full, untrimmed text.
	candidates, err := s.classifier.Classify(req.Text)
	if err != nil {
		logger.Warn("language classification failed: %v", err)
		return fallback
	}
	if len(candidates) == 0 {
		logger.Warn("classifier returned no candidates")
		return fallback
	}

	if len(req.AllowedLanguages) > 0 {
		candidates = filterAllowed(candidates, req.AllowedLanguages)
		if len(candidates) == 0 {
			logger.Warn("no languages in set [%s] detected", strings.Join(req.AllowedLanguages, ", "))
			return fallback
		}
	}

	// Selection is always "first in the (possibly filtered) ranked
	// sequence"; ties stand in whatever order the classifier emitted.
	top := candidates[0]

	return domain.Result{
		Code:       top.Code,
		Name:       s.resolveName(top.Code),
		Confidence: top.Probability,
	}
}

// filterAllowed keeps candidates whose code is in the allow-set, preserving
// the classifier's original relative order.
func filterAllowed(candidates []domain.Candidate, allowed []string) []domain.Candidate {
	set := make(map[string]struct{}, len(allowed))
	for _, code := range allowed {
		set[code] = struct{}{}
	}

	kept := candidates[:0:0]
	for _, c := range candidates {
		if _, ok := set[c.Code]; ok {
			kept = append(kept, c)
		}
	}
	return kept
}

// resolveName maps a selected code to a display name. A successful code
// selection always yields a real or code-echoing name, never the fallback
// name.
func (s *DetectionService) resolveName(code string) string {
	if s.namer == nil {
		return code
	}
	if name, ok := s.namer.Name(code); ok {
		return name
	}
	return code
}
