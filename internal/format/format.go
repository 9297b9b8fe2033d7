// Package format renders detection results into the four supported wire
// formats. Rendering is a pure function of its inputs.
package format

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
)

// Format identifies an output rendering.
type Format string

// Supported output formats.
const (
	Text Format = "text"
	JSON Format = "json"
	CSV  Format = "csv"
	Bash Format = "bash"
)

// Parse validates a format name from the CLI.
func Parse(name string) (Format, error) {
	switch Format(name) {
	case Text, JSON, CSV, Bash:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q (expected text, json, csv or bash)", domain.ErrUnsupportedFormat, name)
	}
}

type jsonResult struct {
	File         string  `json:"file,omitempty"`
	LanguageCode string  `json:"language_code"`
	LanguageName string  `json:"language_name"`
	Confidence   float64 `json:"confidence"`
}

// Render formats a result for output. sourceLabel is the file path the
// sample came from, or empty for stdin; the file variants include its final
// path segment, computed here.
func Render(sourceLabel string, res domain.Result, f Format) (string, error) {
	confidence := round2(res.Confidence)

	base := ""
	if sourceLabel != "" {
		base = filepath.Base(sourceLabel)
	}

	switch f {
	case Text:
		if base != "" {
			return fmt.Sprintf("%s: %s\t%s\t%.2f", base, res.Code, res.Name, confidence), nil
		}
		return fmt.Sprintf("%s\t%s\t%.2f", res.Code, res.Name, confidence), nil

	case JSON:
		data, err := json.Marshal(jsonResult{
			File:         base,
			LanguageCode: res.Code,
			LanguageName: res.Name,
			Confidence:   confidence,
		})
		if err != nil {
			return "", err
		}
		return string(data), nil

	case CSV:
		if base != "" {
			return fmt.Sprintf("%s,%s,%s,%.2f", base, res.Code, res.Name, confidence), nil
		}
		return fmt.Sprintf("%s,%s,%.2f", res.Code, res.Name, confidence), nil

	case Bash:
		if base != "" {
			return fmt.Sprintf(`declare -A LANG_INFO=([file]=%q [code]=%q [name]=%q [confidence]="%.2f")`,
				base, res.Code, res.Name, confidence), nil
		}
		return fmt.Sprintf(`declare -A LANG_INFO=([code]=%q [name]=%q [confidence]="%.2f")`,
			res.Code, res.Name, confidence), nil

	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, string(f))
	}
}

// round2 rounds half away from zero to two decimal places, so every format
// renders the same digits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
