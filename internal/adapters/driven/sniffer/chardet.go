// Package sniffer guesses byte-source encodings.
package sniffer

import (
	"github.com/saintfish/chardet"

	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
)

// Ensure Chardet implements the interface.
var _ driven.EncodingSniffer = (*Chardet)(nil)

// Chardet sniffs encodings with the chardet charset recognisers.
type Chardet struct {
	detector *chardet.Detector
}

// NewChardet creates a plain-text encoding sniffer.
func NewChardet() *Chardet {
	return &Chardet{detector: chardet.NewTextDetector()}
}

// Sniff returns the best-guess charset name for head and a confidence scaled
// to [0, 1]. An undetectable input returns an error; the reader treats that
// the same as low confidence and falls back to UTF-8.
func (c *Chardet) Sniff(head []byte) (string, float64, error) {
	result, err := c.detector.DetectBest(head)
	if err != nil {
		return "", 0, err
	}
	return result.Charset, float64(result.Confidence) / 100, nil
}
