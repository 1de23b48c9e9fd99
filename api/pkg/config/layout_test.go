package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessLayoutYAML(t *testing.T) {
	yamlContent := `
name: picture in picture
surfaces:
  - name: background
    width: 640
    height: 360
    color: "#202020"
  - name: camera
    width: 320
    height: 240
    format: ARGB8888
    color: "#ff0000"
    label: cam0
    display: {x: 0.75, y: 0.75, w: 0.25, h: 0.25}
    roi: {x: 0, y: 0, w: 0.5, h: 0.5}
    properties:
      COLOR_ENCODING: BT.709
`

	layout, err := ProcessLayoutYAML([]byte(yamlContent))
	require.NoError(t, err)
	require.NotNil(t, layout)

	assert.Equal(t, "picture in picture", layout.Name)
	require.Len(t, layout.Surfaces, 2)

	bg := layout.Surfaces[0]
	assert.Equal(t, "background", bg.Name)
	assert.Equal(t, "XRGB8888", bg.Format)
	assert.Equal(t, FullFrame, *bg.Display)
	assert.Equal(t, FullFrame, *bg.ROI)

	cam := layout.Surfaces[1]
	assert.Equal(t, uint32(320), cam.Width)
	assert.Equal(t, "ARGB8888", cam.Format)
	assert.Equal(t, "cam0", cam.Label)
	assert.Equal(t, Rect{X: 0.75, Y: 0.75, W: 0.25, H: 0.25}, *cam.Display)
	assert.Equal(t, Rect{W: 0.5, H: 0.5}, *cam.ROI)
	assert.Equal(t, map[string]string{"COLOR_ENCODING": "BT.709"}, cam.Properties)
}

func TestProcessLayoutYAML_Wrapped(t *testing.T) {
	yamlContent := `
apiVersion: preview.helix.ml/v1alpha1
kind: PreviewLayout
metadata:
  name: wrapped
spec:
  surfaces:
    - width: 200
      height: 200
`

	layout, err := ProcessLayoutYAML([]byte(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, "wrapped", layout.Name)
	require.Len(t, layout.Surfaces, 1)
	assert.Equal(t, "surface-0", layout.Surfaces[0].Name)
}

func TestProcessLayoutYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not yaml",
			content: "surfaces: [",
		},
		{
			name:    "no surfaces",
			content: "name: empty\n",
		},
		{
			name:    "missing size",
			content: "surfaces:\n  - name: a\n    width: 10\n",
		},
		{
			name:    "unknown field",
			content: "surfaces:\n  - width: 10\n    height: 10\n    colour: red\n",
		},
		{
			name:    "wrong kind",
			content: "apiVersion: v1\nkind: ConfigMap\nspec:\n  surfaces:\n    - width: 10\n      height: 10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProcessLayoutYAML([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("surfaces:\n  - width: 200\n    height: 100\n"), 0o644))

	layout, err := LoadLayoutFile(path)
	require.NoError(t, err)
	require.Len(t, layout.Surfaces, 1)
	assert.Equal(t, uint32(100), layout.Surfaces[0].Height)

	_, err = LoadLayoutFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
