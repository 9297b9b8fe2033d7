package domain

// Sampling limits. Budgets outside the min/max range are clamped, not
// rejected, so every invocation reads a usable amount of input.
const (
	// MinSampleBytes is the smallest byte budget accepted for a read.
	MinSampleBytes = 50

	// MaxSampleBytes caps the byte budget for performance reasons.
	MaxSampleBytes = 4096

	// DefaultSampleBytes is used when the caller does not specify a budget.
	DefaultSampleBytes = 512

	// MinSampleChars is the minimum trimmed character count required before
	// classification is attempted. Shorter texts resolve to the fallback
	// result without invoking the classifier.
	MinSampleChars = 5

	// SniffBytes is the maximum number of leading bytes handed to the
	// encoding sniffer.
	SniffBytes = 1024

	// SniffConfidenceFloor is the sniffer confidence at or below which the
	// sniffed encoding is ignored in favour of UTF-8.
	SniffConfidenceFloor = 0.7
)

// Sample is a bounded, decoded text excerpt used for one detection attempt.
// Samples are created by the reader, consumed immediately and discarded.
type Sample struct {
	// Text is the decoded content.
	Text string

	// SourceLabel is the file path the sample came from, or empty for stdin.
	SourceLabel string

	// Encoding is the name of the encoding that ultimately decoded the bytes.
	Encoding string

	// BytesRead is the number of raw bytes actually consumed.
	BytesRead int
}

// ClampSampleSize forces a byte budget into [MinSampleBytes, MaxSampleBytes].
// The clamp is idempotent; it runs on the user-supplied value at the CLI
// boundary and again inside the reader.
func ClampSampleSize(n int) int {
	if n < MinSampleBytes {
		return MinSampleBytes
	}
	if n > MaxSampleBytes {
		return MaxSampleBytes
	}
	return n
}
