// Package names resolves language codes to display names.
package names

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/custodia-labs/whatlang-cli/internal/core/ports/driven"
)

// Ensure Display implements the interface.
var _ driven.LanguageNamer = (*Display)(nil)

// Display maps language codes to English display names using the CLDR data
// shipped with x/text.
type Display struct {
	namer display.Namer
}

// NewDisplay creates a new display-name lookup.
func NewDisplay() *Display {
	return &Display{namer: display.English.Languages()}
}

// Name returns the English display name for code ("en" -> "English").
// Codes that do not parse, or parse to a language the CLDR tables have no
// name for, report ok=false.
func (d *Display) Name(code string) (string, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	name := d.namer.Name(tag)
	if name == "" {
		return "", false
	}
	return name, true
}
