package whatlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatlang-cli/internal/core/domain"
)

func TestClassify_English(t *testing.T) {
	c := New()

	candidates, err := c.Classify("The quick brown fox jumps over the lazy dog. This is a sample text in English.")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "en", candidates[0].Code)
	assert.Greater(t, candidates[0].Probability, 0.0)
}

func TestClassify_EmitsISOCodesNotDisplayNames(t *testing.T) {
	c := New()

	tests := []struct {
		text string
		want string
	}{
		{"Ceci est un exemple de texte écrit en français pour le test.", "fr"},
		{"Dies ist ein Beispieltext in deutscher Sprache für den Test.", "de"},
		{"Este es un texto de ejemplo escrito en español para la prueba.", "es"},
	}

	for _, tt := range tests {
		candidates, err := c.Classify(tt.text)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, tt.want, candidates[0].Code)
	}
}

func TestClassify_Empty(t *testing.T) {
	c := New()

	_, err := c.Classify("")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassificationUnavailable)
}
