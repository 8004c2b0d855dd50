package pov

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tschijnmo/ccpoviz/internal/scene"
)

func sampleScene() *scene.Scene {
	return &scene.Scene{
		Camera: []scene.Setting{
			{Name: "location", Value: "<0, 0, 25>"},
			{Name: "look_at", Value: "<0, 0, 0>"},
		},
		Light: scene.Light{
			Location: "<0, 1, 25>",
			Colour:   "White",
			AreaVec1: "<2, 0, 0>",
			AreaVec2: "<0, 2, 0>",
			Number:   5,
			Adaptive: 1,
			Jitter:   true,
		},
		Atoms: []scene.Sphere{
			{
				Location: "<0, 0, 0>",
				Radius:   0.5,
				Texture: scene.Texture{
					Pigment: []string{"colour rgb <1.00, 0.05, 0.05>"},
					Finish:  []string{"ambient .2"},
				},
			},
		},
		Bonds: []scene.Cylinder{
			{
				Beg:    "<0, 0, 0>",
				End:    "<1, 0, 0>",
				Radius: 0.1,
				Texture: scene.Texture{
					Pigment: []string{"colour Grey"},
				},
			},
		},
		Background: []string{"colour White"},
	}
}

func TestRender(t *testing.T) {
	content, err := Render(sampleScene())
	require.NoError(t, err)

	rendered := string(content)
	assert.Contains(t, rendered, `#include "colors.inc"`)
	assert.Contains(t, rendered, "background {\n    colour White\n}")
	assert.Contains(t, rendered, "location <0, 0, 25>")
	assert.Contains(t, rendered, "area_light <2, 0, 0>, <0, 2, 0>, 5, 5")
	assert.Contains(t, rendered, "jitter")
	assert.Contains(t, rendered, "sphere {\n    <0, 0, 0>,  0.5000")
	assert.Contains(t, rendered, "cylinder {\n    <0, 0, 0>, <1, 0, 0>,  0.1000")
	assert.Contains(t, rendered, "colour rgb <1.00, 0.05, 0.05>")
	assert.Contains(t, rendered, "ambient .2")

	// No axes were asked for.
	assert.NotContains(t, rendered, "cone")
}

func TestRenderTransparentBackground(t *testing.T) {
	sc := sampleScene()
	sc.Background = nil

	content, err := Render(sc)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "background")
}

func TestRenderAxes(t *testing.T) {
	sc := sampleScene()
	sc.Axes = []scene.Axis{
		{
			Begin:         "<0, 0, 0>",
			End:           "<5, 0, 0>",
			Tip:           "<6, 0, 0>",
			Radius:        0.05,
			TipBaseRadius: 0.15,
			Colour:        "Red",
		},
	}

	content, err := Render(sc)
	require.NoError(t, err)

	rendered := string(content)
	assert.Contains(t, rendered, "cone {\n    <5, 0, 0>,  0.1500, <6, 0, 0>, 0.0")
	assert.Contains(t, rendered, "pigment { colour Red }")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "water.pov", FileName("water.png"))
	assert.Equal(t, "water.pov", FileName("water"))
	assert.Equal(t, filepath.Join("out", "a.pov"), FileName(filepath.Join("out", "a.png")))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "mol.png")

	name, err := WriteFile(context.Background(), output, sampleScene())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mol.pov"), name)

	content, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(content), "camera {")
}
