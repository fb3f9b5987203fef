package testkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "XTR.xlsm")

	err := WriteTemplate(path, TemplateSpec{
		Stale: [][]any{
			{99, 1.0, 2.0, 3.0, "stale"},
		},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := OpenResult(content)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inputs"}, f.GetSheetList())

	header, err := f.GetCellValue("Inputs", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Points", header)

	stale, err := f.GetCellValue("Inputs", "E2")
	require.NoError(t, err)
	assert.Equal(t, "stale", stale)
}

func TestWriteTemplateCustomSheetAndHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.xlsm")

	err := WriteTemplate(path, TemplateSpec{
		Sheet:   " inputs ",
		Headers: []string{"X", "Y"},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := OpenResult(content)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{" inputs "}, f.GetSheetList())

	first, err := f.GetCellValue(" inputs ", "A1")
	require.NoError(t, err)
	assert.Equal(t, "X", first)
}
