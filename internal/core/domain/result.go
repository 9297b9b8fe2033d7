package domain

// Result is the outcome of one detection attempt.
// A Confidence of 0.0 means the result is a fallback: the code and name were
// supplied by the caller (or defaulted), not detected.
type Result struct {
	// Code is the ISO 639-1 language code (e.g. "en", "fr").
	Code string

	// Name is the full language name (e.g. "English", "French").
	Name string

	// Confidence is the detection confidence from 0.0 to 1.0.
	Confidence float64
}

// IsFallback reports whether the result carries fallback values rather than
// a detected language.
func (r Result) IsFallback() bool {
	return r.Confidence == 0.0
}

// Candidate is one entry from the classifier's ranked output.
// Candidates arrive ordered by descending probability and are never
// re-sorted locally.
type Candidate struct {
	// Code is the ISO 639-1 language code.
	Code string

	// Probability is the classifier's confidence for this language,
	// strictly greater than zero.
	Probability float64
}

// Request describes one detection attempt. It is constructed per call and
// not retained.
type Request struct {
	// Text is the content to analyse.
	Text string

	// AllowedLanguages restricts acceptable outcomes to the given codes.
	// Empty means no restriction.
	AllowedLanguages []string

	// FallbackCode is reported when detection cannot proceed or succeed.
	// Empty defaults to "unknown".
	FallbackCode string

	// FallbackName is reported when detection cannot proceed or succeed.
	// Empty defaults to "Unknown".
	FallbackName string
}

// Default fallback values, matching the CLI flag defaults.
const (
	DefaultFallbackCode = "unknown"
	DefaultFallbackName = "Unknown"
)

// Fallback returns the fallback Result for this request, applying the
// default code and name where the caller left them empty.
func (r Request) Fallback() Result {
	code := r.FallbackCode
	if code == "" {
		code = DefaultFallbackCode
	}
	name := r.FallbackName
	if name == "" {
		name = DefaultFallbackName
	}
	return Result{Code: code, Name: name, Confidence: 0.0}
}
