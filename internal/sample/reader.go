// Package sample produces bounded decoded text samples from files or stdin.
//
// The reader consults an encoding sniffer and layers a three-tier decode
// cascade on top of it: sniffed encoding, then UTF-8, then ISO-8859-1. The
// terminal tier maps every byte to a rune and cannot fail, so a read that
// opens successfully always yields text.
package sample

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatlang-cli/internal/logger"
)

const utf8Name = "utf-8"

// Reader produces bounded decoded samples from byte sources.
type Reader struct {
	sniffer driven.EncodingSniffer
}

// NewReader creates a reader. The sniffer is optional (can be nil); without
// it, every source is assumed to be UTF-8 until the cascade says otherwise.
func NewReader(sniffer driven.EncodingSniffer) *Reader {
	return &Reader{sniffer: sniffer}
}

// ReadFile reads a bounded sample from the file at path.
// An unopenable or unreadable file yields domain.ErrUnreadableSource wrapped
// around the cause; the reader never substitutes a default sample.
func (r *Reader) ReadFile(path string, byteBudget int) (domain.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err)
	}
	defer f.Close()

	smp, err := r.read(f, byteBudget)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: reading %s: %v", domain.ErrUnreadableSource, path, err)
	}
	smp.SourceLabel = path
	return smp, nil
}

// ReadStdin reads a bounded sample from the given stream. The returned
// sample carries no source label.
func (r *Reader) ReadStdin(in io.Reader, byteBudget int) (domain.Sample, error) {
	smp, err := r.read(in, byteBudget)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: reading stdin: %v", domain.ErrUnreadableSource, err)
	}
	return smp, nil
}

func (r *Reader) read(in io.Reader, byteBudget int) (domain.Sample, error) {
	byteBudget = domain.ClampSampleSize(byteBudget)

	raw := make([]byte, byteBudget)
	n, err := io.ReadFull(in, raw)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return domain.Sample{}, err
	}
	raw = raw[:n]

	text, encodingUsed := r.decode(raw)

	if n < domain.MinSampleBytes {
		logger.Warn("source is smaller than recommended minimum (%d < %d bytes)", n, domain.MinSampleBytes)
	}
	logger.Debug("read %d bytes using %s encoding", n, encodingUsed)

	return domain.Sample{
		Text:      text,
		Encoding:  encodingUsed,
		BytesRead: n,
	}, nil
}

// decode runs the three-tier cascade and returns the decoded text together
// with the name of the encoding that succeeded.
func (r *Reader) decode(raw []byte) (string, string) {
	sniffed := r.resolveEncoding(raw)

	if !strings.EqualFold(sniffed, utf8Name) {
		if enc, err := ianaindex.IANA.Encoding(sniffed); err == nil && enc != nil {
			if text, ok := decodeWith(raw, enc); ok {
				return text, sniffed
			}
		}
		logger.Debug("decoding as %s failed, falling back to %s", sniffed, utf8Name)
	}

	if text, ok := decodeUTF8(raw); ok {
		return text, utf8Name
	}
	logger.Debug("%s decoding failed, using iso-8859-1 as last resort", utf8Name)

	// ISO-8859-1 maps every byte to a rune; this tier cannot fail.
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(out), "iso-8859-1"
}

// resolveEncoding asks the sniffer for a best guess over the head of the
// sample. Sniffer failure or low confidence resolves to UTF-8.
func (r *Reader) resolveEncoding(raw []byte) string {
	if r.sniffer == nil {
		return utf8Name
	}

	head := raw
	if len(head) > domain.SniffBytes {
		head = head[:domain.SniffBytes]
	}

	name, confidence, err := r.sniffer.Sniff(head)
	if err != nil {
		logger.Debug("encoding detection failed: %v; using %s", err, utf8Name)
		return utf8Name
	}
	if confidence <= domain.SniffConfidenceFloor {
		logger.Debug("encoding guess %s below confidence floor (%.2f); using %s", name, confidence, utf8Name)
		return utf8Name
	}

	logger.Debug("detected encoding: %s (confidence: %.2f)", name, confidence)
	return name
}

// decodeWith decodes raw with the given encoding. x/text decoders substitute
// U+FFFD for bytes the charset cannot map rather than erroring, so a
// replacement rune in the output counts as a failure and advances the
// cascade.
func decodeWith(raw []byte, enc encoding.Encoding) (string, bool) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	text := string(out)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

// decodeUTF8 validates raw as UTF-8, tolerating a trailing rune cut in half
// by the byte budget.
func decodeUTF8(raw []byte) (string, bool) {
	raw = trimPartialRune(raw)
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// trimPartialRune drops an incomplete multi-byte sequence at the end of b.
// The byte budget cuts on a byte boundary, not a rune boundary, so a valid
// UTF-8 source may end mid-rune.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(b); i++ {
		c := b[len(b)-i]
		if c < utf8.RuneSelf {
			return b
		}
		if utf8.RuneStart(c) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			return b
		}
	}
	return b
}
