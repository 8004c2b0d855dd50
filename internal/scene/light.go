package scene

import (
	"math"

	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// Light is an area light placed relative to the camera, with the square
// source spanned by the two area vectors.
type Light struct {
	Location string
	Colour   string
	AreaVec1 string
	AreaVec2 string
	Number   int
	Adaptive int
	Jitter   bool
}

// buildLight places the area light. The location and focus options are
// offsets relative to the camera location and focus, so the light follows
// the camera by default. The square source is laid out in the xy plane,
// rolled by the rotation option, and then rotated so its normal points
// along the light direction.
func buildLight(opts *Options, camLoc, camFoc structure.Vec3) Light {
	loc := camLoc.Add(opts.LightLocation)
	foc := camFoc.Add(opts.LightFocus)
	direction := foc.Sub(loc)

	rotation := opts.LightRotation * toRadian
	size := opts.LightSize
	base1 := structure.Vec3{math.Cos(rotation), math.Sin(rotation), 0}.Scale(size)
	base2 := structure.Vec3{-math.Sin(rotation), math.Cos(rotation), 0}.Scale(size)

	rot := structure.RotationBetween(structure.Vec3{0, 0, 1}, direction)

	return Light{
		Location: loc.Pov(),
		Colour:   opts.LightColour,
		AreaVec1: rot.MulVec(base1).Pov(),
		AreaVec2: rot.MulVec(base2).Pov(),
		Number:   opts.LightNumber,
		Adaptive: opts.LightAdaptive,
		Jitter:   opts.LightJitter,
	}
}
