package sheetio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterURLColumnDropsHeader(t *testing.T) {
	urls := FilterURLColumn([]string{"URL", "https://a.example", "https://b.example"})

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
}

func TestFilterURLColumnHeaderCasingAndWhitespace(t *testing.T) {
	urls := FilterURLColumn([]string{"  Url ", "https://a.example"})

	assert.Equal(t, []string{"https://a.example"}, urls)
}

func TestFilterURLColumnNoHeader(t *testing.T) {
	urls := FilterURLColumn([]string{"https://a.example", "https://b.example"})

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
}

func TestFilterURLColumnSkipsEmptyCells(t *testing.T) {
	urls := FilterURLColumn([]string{"url", "https://a.example", "", "https://b.example", ""})

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, urls)
}

func TestFilterURLColumnEmpty(t *testing.T) {
	assert.Empty(t, FilterURLColumn(nil))
	assert.Empty(t, FilterURLColumn([]string{"url"}))
}

func TestNewClientMissingCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), "does-not-exist.json", "sheet-id", "URLS")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service account")
}
