package driven

// LanguageNamer maps a language code to a human-readable display name.
type LanguageNamer interface {
	// Name returns the display name for code, or ok=false when the code has
	// no known name. Callers fall back to echoing the code itself.
	Name(code string) (name string, ok bool)
}
