package scene

import (
	"math"

	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// Setting is one named camera option, rendered verbatim into the camera
// block of the scene file.
type Setting struct {
	Name  string
	Value string
}

const toRadian = math.Pi / 180

// buildCamera places the camera. The focus is the centroid of the atoms
// shifted by the user-supplied offset; the camera itself sits at the
// spherical coordinate (distance, theta, phi) around the focus, with an
// optional roll of the sky vector within the picture plane. The camera
// location and focus are also returned for the light source and the
// bond placement, which both depend on the viewing direction.
func buildCamera(opts *Options, mol *structure.Structure) ([]Setting, structure.Vec3, structure.Vec3) {
	focus := structure.Centroid(mol.Coords()).Add(opts.CameraFocus)

	theta := opts.CameraTheta * toRadian
	phi := opts.CameraPhi * toRadian
	rotation := opts.CameraRotation * toRadian

	location := structure.Vec3{
		math.Sin(theta) * math.Cos(phi),
		math.Sin(theta) * math.Sin(phi),
		math.Cos(theta),
	}.Scale(opts.CameraDistance).Add(focus)

	skyVec := structure.Vec3{math.Sin(rotation), math.Cos(rotation), 0}
	upVec := structure.Vec3{0, 1, 0}
	rightVec := structure.Vec3{-opts.AspectRatio, 0, 0}

	settings := []Setting{
		{Name: "location", Value: location.Pov()},
		{Name: "up", Value: upVec.Pov()},
		{Name: "right", Value: rightVec.Pov()},
		{Name: "sky", Value: skyVec.Pov()},
		{Name: "look_at", Value: focus.Pov()},
	}
	return settings, location, focus
}
