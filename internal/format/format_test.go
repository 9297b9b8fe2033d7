package format

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
)

var english = domain.Result{Code: "en", Name: "English", Confidence: 0.987}

func TestParse(t *testing.T) {
	for _, name := range []string{"text", "json", "csv", "bash"} {
		f, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := Parse("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRender_Text(t *testing.T) {
	line, err := Render("", english, Text)
	require.NoError(t, err)
	assert.Equal(t, "en\tEnglish\t0.99", line)

	line, err = Render("/data/docs/readme.txt", english, Text)
	require.NoError(t, err)
	assert.Equal(t, "readme.txt: en\tEnglish\t0.99", line)
}

func TestRender_CSV(t *testing.T) {
	line, err := Render("", english, CSV)
	require.NoError(t, err)
	assert.Equal(t, "en,English,0.99", line)

	line, err = Render("notes.txt", english, CSV)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt,en,English,0.99", line)
}

func TestRender_Bash(t *testing.T) {
	line, err := Render("", english, Bash)
	require.NoError(t, err)
	assert.Equal(t, `declare -A LANG_INFO=([code]="en" [name]="English" [confidence]="0.99")`, line)

	line, err = Render("/tmp/a/b.txt", english, Bash)
	require.NoError(t, err)
	assert.Equal(t, `declare -A LANG_INFO=([file]="b.txt" [code]="en" [name]="English" [confidence]="0.99")`, line)
}

func TestRender_JSON_RoundTrip(t *testing.T) {
	line, err := Render("/data/readme.txt", english, JSON)
	require.NoError(t, err)

	var decoded struct {
		File         string  `json:"file"`
		LanguageCode string  `json:"language_code"`
		LanguageName string  `json:"language_name"`
		Confidence   float64 `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))

	assert.Equal(t, "readme.txt", decoded.File)
	assert.Equal(t, "en", decoded.LanguageCode)
	assert.Equal(t, "English", decoded.LanguageName)
	assert.Equal(t, 0.99, decoded.Confidence)
}

func TestRender_JSON_StdinOmitsFile(t *testing.T) {
	line, err := Render("", english, JSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))

	assert.NotContains(t, decoded, "file")
	assert.Equal(t, "en", decoded["language_code"])
}

func TestRender_Idempotent(t *testing.T) {
	for _, f := range []Format{Text, JSON, CSV, Bash} {
		first, err := Render("sample.txt", english, f)
		require.NoError(t, err)
		second, err := Render("sample.txt", english, f)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestRender_FallbackResult(t *testing.T) {
	fallback := domain.Result{Code: "unknown", Name: "Unknown", Confidence: 0.0}

	line, err := Render("", fallback, Text)
	require.NoError(t, err)
	assert.Equal(t, "unknown\tUnknown\t0.00", line)
}

func TestRender_RoundingHalfUp(t *testing.T) {
	res := domain.Result{Code: "en", Name: "English", Confidence: 0.995}

	line, err := Render("", res, CSV)
	require.NoError(t, err)
	assert.Equal(t, "en,English,1.00", line)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render("", english, Format("yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
