// Package whatlang is the embeddable interface to the detection pipeline.
//
//	code, name, confidence := whatlang.DetectLanguage(text)
//
// Detection never fails: when text is empty, too short or unrecognisable,
// the fallback code and name are returned with a confidence of 0.0.
// Diagnostics are off by default for library use; enable them with
// SetWarningOutput.
package whatlang

import (
	"sync"

	"github.com/custodia-labs/whatlang-cli/internal/adapters/driven/classifier/lingua"
	"github.com/custodia-labs/whatlang-cli/internal/adapters/driven/names"
	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatlang-cli/internal/core/services"
	"github.com/custodia-labs/whatlang-cli/internal/logger"
)

var (
	defaultOnce     sync.Once
	defaultDetector *services.DetectionService
)

type options struct {
	allowed      []string
	fallbackCode string
	fallbackName string
	classifier   driven.Classifier
}

// Option configures a single DetectLanguage call.
type Option func(*options)

// WithAllowedLanguages restricts acceptable outcomes to the given codes.
func WithAllowedLanguages(codes ...string) Option {
	return func(o *options) { o.allowed = codes }
}

// WithFallback sets the code and name reported when detection fails.
// Defaults are "unknown" and "Unknown".
func WithFallback(code, name string) Option {
	return func(o *options) {
		o.fallbackCode = code
		o.fallbackName = name
	}
}

// WithClassifier substitutes the classification engine, e.g. for
// deterministic tests.
func WithClassifier(c driven.Classifier) Option {
	return func(o *options) { o.classifier = c }
}

// DetectLanguage identifies the language of text.
func DetectLanguage(text string, opts ...Option) (code, name string, confidence float64) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	detector := sharedDetector()
	if o.classifier != nil {
		detector = services.NewDetectionService(o.classifier, names.NewDisplay())
	}

	res := detector.Detect(domain.Request{
		Text:             text,
		AllowedLanguages: o.allowed,
		FallbackCode:     o.fallbackCode,
		FallbackName:     o.fallbackName,
	})
	return res.Code, res.Name, res.Confidence
}

// SetWarningOutput enables or disables diagnostic messages on stderr.
func SetWarningOutput(enabled bool) {
	logger.SetWarnings(enabled)
}

// sharedDetector lazily builds the default lingua-backed pipeline once per
// process.
func sharedDetector() *services.DetectionService {
	defaultOnce.Do(func() {
		defaultDetector = services.NewDetectionService(lingua.New(), names.NewDisplay())
	})
	return defaultDetector
}
