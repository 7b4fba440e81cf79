package puttloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

func TestBundledClassic(t *testing.T) {
	loader, err := NewBundled(DatasetClassic)
	require.NoError(t, err)
	loader.Load()
	require.Empty(t, loader.Errors())

	dataset := loader.Dataset()
	require.NotNil(t, dataset)
	assert.Equal(t, DatasetClassic, dataset.Name)
	require.Len(t, dataset.Points, 19)
	assert.Equal(t, puttingv1.DataPoint{Distance: 2, Attempts: 1443, Successes: 1346}, dataset.Points[0])
	assert.Equal(t, puttingv1.DataPoint{Distance: 20, Attempts: 152, Successes: 24}, dataset.Points[18])

	for _, pt := range dataset.Points {
		assert.NoError(t, pt.Validate())
	}
}

func TestBundledTracking(t *testing.T) {
	loader, err := NewBundled(DatasetTracking)
	require.NoError(t, err)
	loader.Load()
	require.Empty(t, loader.Errors())

	dataset := loader.Dataset()
	require.NotNil(t, dataset)
	require.Len(t, dataset.Points, 32)
	assert.InDelta(t, 0.28, dataset.Points[0].Distance, 1e-9)
	// tap-ins almost never miss
	assert.Greater(t, dataset.Points[0].SuccessRate(), 0.999)
	// 75-footers almost always do
	assert.Less(t, dataset.Points[31].SuccessRate(), 0.05)
}

func TestBundledUnknown(t *testing.T) {
	_, err := NewBundled("amateur")
	assert.Error(t, err)
}

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		expectedRows   int
		expectedErrors int
	}{
		{
			name:         "valid table",
			content:      "title line\nx n y\n2 100 90\n3 50 30\n",
			expectedRows: 2,
		},
		{
			name:         "blank lines skipped",
			content:      "title line\nx n y\n2 100 90\n\n3 50 30\n",
			expectedRows: 2,
		},
		{
			name:           "successes exceed attempts",
			content:        "title line\nx n y\n2 100 101\n",
			expectedErrors: 1,
		},
		{
			name:           "non-positive distance",
			content:        "title line\nx n y\n0 100 90\n",
			expectedErrors: 1,
		},
		{
			name:           "wrong column count",
			content:        "title line\nx n y\n2 100\n",
			expectedErrors: 1,
		},
		{
			name:           "non-numeric field",
			content:        "title line\nx n y\n2 abc 90\n",
			expectedErrors: 1,
		},
		{
			name:           "every bad row reported",
			content:        "title line\nx n y\n-1 100 90\n2 100 101\n3 50 30\n",
			expectedErrors: 2,
		},
		{
			name:           "header only",
			content:        "title line\nx n y\n",
			expectedErrors: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loader := New(writeTable(t, tc.content))
			loader.Load()

			assert.Len(t, loader.Errors(), tc.expectedErrors)
			if tc.expectedErrors > 0 {
				assert.Nil(t, loader.Dataset())
				return
			}
			require.NotNil(t, loader.Dataset())
			assert.Len(t, loader.Dataset().Points, tc.expectedRows)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := New(filepath.Join(t.TempDir(), "missing.txt"))
	loader.Load()

	assert.NotEmpty(t, loader.Errors())
	assert.Nil(t, loader.Dataset())
}
