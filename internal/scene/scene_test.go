package scene

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tschijnmo/ccpoviz/internal/optfile"
	"github.com/tschijnmo/ccpoviz/internal/options"
	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// defaultSceneOptions chains the built-in defaults on their own and
// decodes them, the way the application does before building a scene.
func defaultSceneOptions(t *testing.T, overrides ...options.Map) *Options {
	t.Helper()

	defaults, err := optfile.Defaults()
	require.NoError(t, err)

	layers := append(append([]options.Map{}, overrides...), defaults)
	merged, err := options.NewChainer().Chain(layers...)
	require.NoError(t, err)

	opts, err := DecodeOptions(options.StripMeta(merged))
	require.NoError(t, err)
	return opts
}

func water() *structure.Structure {
	return &structure.Structure{
		Atoms: []structure.Atom{
			{Symbol: "O", Coord: structure.Vec3{0, 0, 0.119}},
			{Symbol: "H", Coord: structure.Vec3{0, 0.763, -0.477}},
			{Symbol: "H", Coord: structure.Vec3{0, -0.763, -0.477}},
		},
	}
}

func TestDecodeDefaultOptions(t *testing.T) {
	opts := defaultSceneOptions(t)

	assert.Equal(t, "povray", opts.PovRayProgram)
	assert.Equal(t, 800.0, opts.GraphWidth)
	assert.Equal(t, 25.0, opts.CameraDistance)
	assert.Equal(t, 5, opts.LightNumber)
	assert.Equal(t, 0.5, opts.ElementRadii["default"])
	assert.True(t, opts.ComputeBonds)
	assert.False(t, opts.DrawAxes)

	deftex, ok := opts.ElementTextures["default"]
	require.True(t, ok)
	assert.True(t, deftex.UseColour)
	assert.NotEmpty(t, deftex.Finish)
}

func TestDecodeRejectsBadType(t *testing.T) {
	defaults, err := optfile.Defaults()
	require.NoError(t, err)

	merged := options.StripMeta(defaults)
	merged["graph-width"] = options.String("wide")

	_, err = DecodeOptions(merged)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph-width")
}

func TestCameraPlacement(t *testing.T) {
	opts := defaultSceneOptions(t)
	mol := water()

	settings, loc, foc := buildCamera(opts, mol)

	wantFoc := structure.Centroid(mol.Coords())
	assert.InDelta(t, wantFoc[0], foc[0], 1e-10)
	assert.InDelta(t, wantFoc[1], foc[1], 1e-10)
	assert.InDelta(t, wantFoc[2], foc[2], 1e-10)

	// theta = phi = 0 puts the camera straight above the focus on z.
	assert.InDelta(t, foc[0], loc[0], 1e-10)
	assert.InDelta(t, foc[1], loc[1], 1e-10)
	assert.InDelta(t, foc[2]+opts.CameraDistance, loc[2], 1e-10)

	names := make([]string, 0, len(settings))
	for _, s := range settings {
		names = append(names, s.Name)
	}
	assert.Equal(t,
		[]string{"location", "up", "right", "sky", "look_at"}, names)
}

func TestCameraSphericalPlacement(t *testing.T) {
	opts := defaultSceneOptions(t, options.Map{
		"camera-theta":    options.Number(90),
		"camera-phi":      options.Number(0),
		"camera-distance": options.Number(10),
	})
	mol := water()

	_, loc, foc := buildCamera(opts, mol)

	// theta = 90 with phi = 0 puts the camera on the x axis.
	assert.InDelta(t, foc[0]+10, loc[0], 1e-9)
	assert.InDelta(t, foc[1], loc[1], 1e-9)
	assert.InDelta(t, foc[2], loc[2], 1e-9)
}

func TestLightAreaVectors(t *testing.T) {
	opts := defaultSceneOptions(t)

	camLoc := structure.Vec3{0, 0, 25}
	camFoc := structure.Vec3{0, 0, 0}
	light := buildLight(opts, camLoc, camFoc)

	assert.Equal(t, "White", light.Colour)
	assert.Equal(t, 5, light.Number)
	assert.True(t, light.Jitter)

	// The light sits one unit above the camera and shines at the camera
	// focus. Its area vectors must stay perpendicular to that direction
	// and keep the configured size.
	loc := camLoc.Add(opts.LightLocation)
	direction := camFoc.Sub(loc)

	rot := structure.RotationBetween(structure.Vec3{0, 0, 1}, direction)
	vec1 := rot.MulVec(structure.Vec3{opts.LightSize, 0, 0})
	vec2 := rot.MulVec(structure.Vec3{0, opts.LightSize, 0})

	assert.InDelta(t, 0, vec1.Dot(direction), 1e-9)
	assert.InDelta(t, 0, vec2.Dot(direction), 1e-9)
	assert.InDelta(t, opts.LightSize, vec1.Norm(), 1e-9)
	assert.Equal(t, vec1.Pov(), light.AreaVec1)
	assert.Equal(t, vec2.Pov(), light.AreaVec2)
}

func TestColourTable(t *testing.T) {
	opts := defaultSceneOptions(t)

	colours, err := colourTable(opts)
	require.NoError(t, err)
	assert.Equal(t, "rgb <1.00, 1.00, 1.00>", colours["H"])

	opts.ColourChange = map[string]string{"H": "rgb <0.00, 0.00, 0.00>"}
	colours, err = colourTable(opts)
	require.NoError(t, err)
	assert.Equal(t, "rgb <0.00, 0.00, 0.00>", colours["H"])

	opts.ColourScheme = "no-such-scheme"
	_, err = colourTable(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-scheme")
}

func TestAtomRadiusFallback(t *testing.T) {
	opts := defaultSceneOptions(t)

	assert.Equal(t, 0.3, atomRadius("H", opts))
	assert.Equal(t, 0.5, atomRadius("Og", opts))
}

func TestAtomTextureColour(t *testing.T) {
	opts := defaultSceneOptions(t)

	colours, err := colourTable(opts)
	require.NoError(t, err)

	texture, err := atomTexture("O", colours, opts)
	require.NoError(t, err)
	require.NotEmpty(t, texture.Pigment)
	assert.Equal(t, "colour "+colours["O"], texture.Pigment[len(texture.Pigment)-1])

	// The shared default texture must not accumulate the colours.
	assert.Empty(t, opts.ElementTextures["default"].Pigment)
}

func TestMoveAmounts(t *testing.T) {
	assert.Equal(t, []float64{0}, moveAmounts(0.25, 1))
	assert.Equal(t, []float64{0.125, -0.125}, moveAmounts(0.25, 2))
	assert.Equal(t, []float64{0, 0.25, -0.25}, moveAmounts(0.25, 3))
}

func TestMoveDirection(t *testing.T) {
	beg := structure.Vec3{-1, 0, 0}
	end := structure.Vec3{1, 0, 0}
	camera := structure.Vec3{0, 0, 10}

	dir := moveDirection(beg, end, camera)

	assert.InDelta(t, 1, dir.Norm(), 1e-10)
	assert.InDelta(t, 0, dir.Dot(end.Sub(beg)), 1e-10)
	assert.InDelta(t, 0, dir.Dot(beg.Add(end).Scale(0.5).Sub(camera)), 1e-10)
}

func TestToDashes(t *testing.T) {
	dashes := toDashes(structure.Vec3{0, 0, 0}, structure.Vec3{1, 0, 0}, 0.2)

	// Dashes alternate with gaps of the same size along the bond.
	require.Len(t, dashes, 3)
	assert.InDelta(t, 0.0, dashes[0][0][0], 1e-10)
	assert.InDelta(t, 0.2, dashes[0][1][0], 1e-10)
	assert.InDelta(t, 0.4, dashes[1][0][0], 1e-10)
	assert.InDelta(t, 0.6, dashes[1][1][0], 1e-10)
	assert.InDelta(t, 0.8, dashes[2][0][0], 1e-10)
	assert.InDelta(t, 1.0, dashes[2][1][0], 1e-10)
}

func TestResolveBondDouble(t *testing.T) {
	atoms := []structure.Atom{
		{Symbol: "C", Coord: structure.Vec3{-0.67, 0, 0}},
		{Symbol: "C", Coord: structure.Vec3{0.67, 0, 0}},
	}
	camera := structure.Vec3{0, 0, 25}

	cylinders := resolveBond(
		structure.Bond{Beg: 0, End: 1, Order: 2}, atoms, camera, 0.25, 0.2,
	)

	require.Len(t, cylinders, 2)
	sep := cylinders[0].beg.Sub(cylinders[1].beg).Norm()
	assert.InDelta(t, 0.25, sep, 1e-9)
	for _, cyl := range cylinders {
		assert.False(t, cyl.partial)
		assert.InDelta(t, 1.34, cyl.end.Sub(cyl.beg).Norm(), 1e-9)
	}
}

func TestResolveBondPartial(t *testing.T) {
	atoms := []structure.Atom{
		{Symbol: "C", Coord: structure.Vec3{0, 0, 0}},
		{Symbol: "C", Coord: structure.Vec3{1, 0, 0}},
	}
	camera := structure.Vec3{0, 0, 25}

	cylinders := resolveBond(
		structure.Bond{Beg: 0, End: 1, Order: 1.5}, atoms, camera, 0.25, 0.2,
	)

	// Two cylinders, the last one broken into dashes.
	var full, dashes int
	for _, cyl := range cylinders {
		if cyl.partial {
			dashes++
		} else {
			full++
		}
	}
	assert.Equal(t, 1, full)
	assert.Greater(t, dashes, 1)
}

func TestComputeBonds(t *testing.T) {
	opts := defaultSceneOptions(t)
	mol := water()

	bonds, err := computeBonds(mol, opts)
	require.NoError(t, err)
	assert.Equal(t, []structure.Bond{
		{Beg: 0, End: 1, Order: 1},
		{Beg: 0, End: 2, Order: 1},
	}, bonds)
}

func TestComputeBondsUnknownElement(t *testing.T) {
	opts := defaultSceneOptions(t)
	mol := &structure.Structure{
		Atoms: []structure.Atom{{Symbol: "Xx", Coord: structure.Vec3{}}},
	}

	_, err := computeBonds(mol, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Xx")
}

func TestComputeBondsRadiusOverride(t *testing.T) {
	opts := defaultSceneOptions(t)
	opts.CovalentRadii = map[string]float64{"H": 0, "O": 0}
	mol := water()

	bonds, err := computeBonds(mol, opts)
	require.NoError(t, err)
	assert.Empty(t, bonds)
}

func TestUpdateBonds(t *testing.T) {
	existing := []structure.Bond{
		{Beg: 0, End: 1, Order: 1},
		{Beg: 0, End: 2, Order: 1},
	}

	updated := updateBonds(existing, []structure.Bond{
		{Beg: 1, End: 0, Order: 2},   // raise the order, reversed pair
		{Beg: 0, End: 2, Order: 0},   // remove the bond
		{Beg: 2, End: 1, Order: 1.5}, // add a new partial bond
	})

	assert.Equal(t, []structure.Bond{
		{Beg: 0, End: 1, Order: 2},
		{Beg: 1, End: 2, Order: 1.5},
	}, updated)

	// The input slice stays untouched.
	assert.Equal(t, 1.0, existing[0].Order)
}

func TestBuildAxes(t *testing.T) {
	opts := defaultSceneOptions(t)
	focus := structure.Vec3{1, 2, 3}

	axes := buildAxes(opts, focus)

	require.Len(t, axes, 3)
	assert.Equal(t, "Red", axes[0].Colour)
	assert.Equal(t, "Green", axes[1].Colour)
	assert.Equal(t, "Blue", axes[2].Colour)

	wantEnd := structure.Vec3{1 + opts.AxesLength, 2, 3}
	wantTip := structure.Vec3{1 + opts.AxesLength*(1+tipLengthFactor), 2, 3}
	assert.Equal(t, wantEnd.Pov(), axes[0].End)
	assert.Equal(t, wantTip.Pov(), axes[0].Tip)
	assert.Equal(t, opts.AxesRadius*tipBaseFactor, axes[0].TipBaseRadius)
}

func TestBuildScene(t *testing.T) {
	opts := defaultSceneOptions(t)
	mol := water()

	sc, err := Build(context.Background(), opts, mol)
	require.NoError(t, err)

	assert.Len(t, sc.Atoms, 3)
	assert.Len(t, sc.Bonds, 2)
	assert.Empty(t, sc.Axes)
	assert.True(t, sc.UseBackground())
	assert.Equal(t, []string{"colour White"}, sc.Background)
}

func TestBuildSceneTransparentBackground(t *testing.T) {
	opts := defaultSceneOptions(t, options.Map{
		"background-colour": options.String(""),
		"draw-axes":         options.Bool(true),
	})
	mol := water()

	sc, err := Build(context.Background(), opts, mol)
	require.NoError(t, err)

	assert.False(t, sc.UseBackground())
	assert.Len(t, sc.Axes, 3)
}
