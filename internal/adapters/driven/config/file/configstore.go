// Package file loads optional user defaults from a TOML config file.
// Flags always win over the file; the file wins over compiled defaults.
package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the user-configurable defaults. Zero values mean "not set";
// the CLI keeps its compiled default for those.
type Settings struct {
	// Engine selects the detection backend: "lingua" or "whatlang".
	Engine string `toml:"engine"`

	// Format is the default output format.
	Format string `toml:"format"`

	// SampleSize is the default byte budget.
	SampleSize int `toml:"sample_size"`

	// FallbackCode is the default code reported when detection fails.
	FallbackCode string `toml:"fallback_code"`

	// FallbackName is the default name reported when detection fails.
	FallbackName string `toml:"fallback_name"`
}

// Load reads settings from configDir/config.toml.
// If configDir is empty, defaults to ~/.whatlang. A missing file is not an
// error: zero settings are returned so compiled defaults apply.
func Load(configDir string) (Settings, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Settings{}, err
		}
		configDir = filepath.Join(home, ".whatlang")
	}

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
