package services

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/logger"
)

// --- Mock implementations ---

// mockClassifier implements driven.Classifier for testing.
type mockClassifier struct {
	candidates  []domain.Candidate
	classifyErr error
	calls       int
}

func (m *mockClassifier) Classify(_ string) ([]domain.Candidate, error) {
	m.calls++
	if m.classifyErr != nil {
		return nil, m.classifyErr
	}
	return m.candidates, nil
}

// panicClassifier implements driven.Classifier and always panics.
type panicClassifier struct{}

func (panicClassifier) Classify(_ string) ([]domain.Candidate, error) {
	panic("engine blew up")
}

// mockNamer implements driven.LanguageNamer for testing.
type mockNamer struct {
	names map[string]string
}

func (m *mockNamer) Name(code string) (string, bool) {
	name, ok := m.names[code]
	return name, ok
}

func englishNamer() *mockNamer {
	return &mockNamer{names: map[string]string{
		"en": "English",
		"fr": "French",
		"es": "Spanish",
	}}
}

// captureDiagnostics routes logger output to a buffer for the test.
func captureDiagnostics(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetWarnings(true)
	t.Cleanup(func() {
		logger.SetWarnings(false)
		logger.SetOutput(os.Stderr)
	})
	return &buf
}

// --- Tests ---

func TestDetect_EmptyText(t *testing.T) {
	diag := captureDiagnostics(t)
	classifier := &mockClassifier{}
	svc := NewDetectionService(classifier, englishNamer())

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		res := svc.Detect(domain.Request{Text: text})

		assert.Equal(t, domain.Result{Code: "unknown", Name: "Unknown", Confidence: 0.0}, res)
	}
	assert.Zero(t, classifier.calls, "classifier must not be invoked for empty text")
	assert.Contains(t, diag.String(), "empty text provided")
}

func TestDetect_TooShort(t *testing.T) {
	diag := captureDiagnostics(t)
	classifier := &mockClassifier{
		candidates: []domain.Candidate{{Code: "en", Probability: 0.99}},
	}
	svc := NewDetectionService(classifier, englishNamer())

	res := svc.Detect(domain.Request{Text: "Hi"})

	assert.Equal(t, domain.Result{Code: "unknown", Name: "Unknown", Confidence: 0.0}, res)
	assert.Zero(t, classifier.calls, "a too-short text must never reach the classifier")
	assert.Contains(t, diag.String(), "too short for reliable detection")
}

func TestDetect_TooShort_CustomFallback(t *testing.T) {
	captureDiagnostics(t)
	svc := NewDetectionService(&mockClassifier{}, englishNamer())

	res := svc.Detect(domain.Request{
		Text:         "Hi",
		FallbackCode: "und",
		FallbackName: "Undetermined",
	})

	assert.Equal(t, domain.Result{Code: "und", Name: "Undetermined", Confidence: 0.0}, res)
}

func TestDetect_Unrestricted_PicksFirstCandidate(t *testing.T) {
	classifier := &mockClassifier{
		candidates: []domain.Candidate{
			{Code: "fr", Probability: 0.9},
			{Code: "en", Probability: 0.8},
		},
	}
	svc := NewDetectionService(classifier, englishNamer())

	res := svc.Detect(domain.Request{Text: "ceci est un exemple de texte"})

	require.Equal(t, 1, classifier.calls)
	assert.Equal(t, "fr", res.Code)
	assert.Equal(t, "French", res.Name)
	assert.Equal(t, 0.9, res.Confidence)
}

func TestDetect_AllowSet_PreservesClassifierOrder(t *testing.T) {
	classifier := &mockClassifier{
		candidates: []domain.Candidate{
			{Code: "fr", Probability: 0.9},
			{Code: "en", Probability: 0.8},
			{Code: "es", Probability: 0.7},
		},
	}
	svc := NewDetectionService(classifier, englishNamer())

	res := svc.Detect(domain.Request{
		Text:             "a long enough sample of text",
		AllowedLanguages: []string{"en", "es"},
	})

	// First surviving candidate wins, not the highest remaining probability
	// under any re-ranking.
	assert.Equal(t, "en", res.Code)
	assert.Equal(t, "English", res.Name)
	assert.Equal(t, 0.8, res.Confidence)
}

func TestDetect_AllowSet_NoMatch(t *testing.T) {
	diag := captureDiagnostics(t)
	classifier := &mockClassifier{
		candidates: []domain.Candidate{{Code: "fr", Probability: 0.9}},
	}
	svc := NewDetectionService(classifier, englishNamer())

	res := svc.Detect(domain.Request{
		Text:             "a long enough sample of text",
		AllowedLanguages: []string{"de", "it"},
	})

	assert.True(t, res.IsFallback())
	assert.Equal(t, "unknown", res.Code)
	assert.Contains(t, diag.String(), "no languages in set [de, it] detected")
}

func TestDetect_ClassifierError(t *testing.T) {
	diag := captureDiagnostics(t)
	classifier := &mockClassifier{classifyErr: errors.New("model not loaded")}
	svc := NewDetectionService(classifier, englishNamer())

	res := svc.Detect(domain.Request{Text: "a long enough sample of text"})

	assert.Equal(t, domain.Result{Code: "unknown", Name: "Unknown", Confidence: 0.0}, res)
	assert.Contains(t, diag.String(), "model not loaded")
}

func TestDetect_NoCandidates(t *testing.T) {
	captureDiagnostics(t)
	svc := NewDetectionService(&mockClassifier{}, englishNamer())

	res := svc.Detect(domain.Request{Text: "a long enough sample of text"})

	assert.True(t, res.IsFallback())
}

func TestDetect_ClassifierPanic_ConvertedToFallback(t *testing.T) {
	diag := captureDiagnostics(t)
	svc := NewDetectionService(panicClassifier{}, englishNamer())

	var res domain.Result
	require.NotPanics(t, func() {
		res = svc.Detect(domain.Request{Text: "a long enough sample of text"})
	})

	assert.Equal(t, domain.Result{Code: "unknown", Name: "Unknown", Confidence: 0.0}, res)
	assert.Contains(t, diag.String(), "engine blew up")
}

func TestDetect_NameLookupMiss_EchoesCode(t *testing.T) {
	classifier := &mockClassifier{
		candidates: []domain.Candidate{{Code: "zz", Probability: 0.95}},
	}
	svc := NewDetectionService(classifier, englishNamer())

	res := svc.Detect(domain.Request{
		Text:         "a long enough sample of text",
		FallbackName: "Nope",
	})

	// A successful code selection never reports the fallback name.
	assert.Equal(t, "zz", res.Code)
	assert.Equal(t, "zz", res.Name)
	assert.Equal(t, 0.95, res.Confidence)
}

func TestDetect_NilNamer_EchoesCode(t *testing.T) {
	classifier := &mockClassifier{
		candidates: []domain.Candidate{{Code: "en", Probability: 0.9}},
	}
	svc := NewDetectionService(classifier, nil)

	res := svc.Detect(domain.Request{Text: "a long enough sample of text"})

	assert.Equal(t, "en", res.Code)
	assert.Equal(t, "en", res.Name)
}

func TestDetect_TrimmedLengthGate_UsesRunes(t *testing.T) {
	captureDiagnostics(t)
	classifier := &mockClassifier{
		candidates: []domain.Candidate{{Code: "ja", Probability: 0.9}},
	}
	svc := NewDetectionService(classifier, &mockNamer{names: map[string]string{"ja": "Japanese"}})

	// Five runes, many more bytes: passes the character gate.
	res := svc.Detect(domain.Request{Text: "こんにちは"})

	assert.Equal(t, "ja", res.Code)
	assert.Equal(t, 1, classifier.calls)
}
