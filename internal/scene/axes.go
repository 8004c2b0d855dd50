package scene

import (
	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// Axis is one coordinate axis rendered as a line with a conical tip.
// The axes are a tuning aid for the camera angles, not publication
// material, so they are kept to plain red, green and blue arrows.
type Axis struct {
	Begin         string
	End           string
	Tip           string
	Radius        float64
	TipBaseRadius float64
	Colour        string
}

const (
	tipLengthFactor = 0.2
	tipBaseFactor   = 3
)

var axisColours = [3]string{"Red", "Green", "Blue"}

// buildAxes draws the three coordinate axes from the camera focus.
func buildAxes(opts *Options, focus structure.Vec3) []Axis {
	length := opts.AxesLength
	tipLength := length * tipLengthFactor

	axes := make([]Axis, 0, 3)
	for i := 0; i < 3; i++ {
		end := focus
		end[i] += length
		tip := focus
		tip[i] += length + tipLength

		axes = append(axes, Axis{
			Begin:         focus.Pov(),
			End:           end.Pov(),
			Tip:           tip.Pov(),
			Radius:        opts.AxesRadius,
			TipBaseRadius: opts.AxesRadius * tipBaseFactor,
			Colour:        axisColours[i],
		})
	}
	return axes
}
