package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

func TestGetDataSetBundledDefault(t *testing.T) {
	f := NewDataFlags()
	dataset, err := f.GetDataSet()
	require.NoError(t, err)
	assert.Equal(t, "classic", dataset.Name)
	assert.Len(t, dataset.Points, 19)
}

func TestGetDataSetUnknownBundled(t *testing.T) {
	f := NewDataFlags()
	f.Dataset = "nope"
	_, err := f.GetDataSet()
	assert.Error(t, err)
}

func TestGetDataSetFileOverridesBundled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.txt")
	require.NoError(t, os.WriteFile(path, []byte("title\nx n y\n4 10 5\n"), 0o644))

	f := NewDataFlags()
	f.DataFile = path
	dataset, err := f.GetDataSet()
	require.NoError(t, err)
	require.Len(t, dataset.Points, 1)
	assert.Equal(t, puttingv1.DataPoint{Distance: 4, Attempts: 10, Successes: 5}, dataset.Points[0])
}

func TestGetGeometry(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr bool
		check       func(t *testing.T, g puttingv1.Geometry)
	}{
		{
			name: "defaults without a file",
			check: func(t *testing.T, g puttingv1.Geometry) {
				assert.Equal(t, puttingv1.DefaultGeometry(), g)
			},
		},
		{
			name:    "partial override keeps defaults",
			content: "overshot: 1.5\n",
			check: func(t *testing.T, g puttingv1.Geometry) {
				assert.Equal(t, 1.5, g.Overshot)
				assert.Equal(t, puttingv1.DefaultGeometry().HoleRadius, g.HoleRadius)
			},
		},
		{
			name:        "hole smaller than ball rejected",
			content:     "holeRadius: 0.01\n",
			expectedErr: true,
		},
		{
			name:        "malformed yaml rejected",
			content:     "overshot: [\n",
			expectedErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewDataFlags()
			if tc.content != "" {
				path := filepath.Join(t.TempDir(), "geometry.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
				f.GeometryFile = path
			}

			g, err := f.GetGeometry()
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, g)
		})
	}
}
