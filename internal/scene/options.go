package scene

import (
	"fmt"

	"github.com/tschijnmo/ccpoviz/internal/options"
	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// Texture holds the POV-Ray texture attributes applied to a sphere or a
// cylinder. Each slice carries raw POV-Ray statements copied verbatim
// into the corresponding block of the scene file.
type Texture struct {
	Texture []string
	Pigment []string
	Normal  []string
	Finish  []string

	// UseColour appends the element or bond colour to the pigment.
	UseColour bool
}

// Options is the typed view of the resolved option tree that the scene
// and renderer code works with. It is decoded once, right after the
// option layers are chained; the default tree guarantees the types, so
// any decode failure is a defect in the defaults rather than user
// input.
type Options struct {
	BackgroundColour string
	PovRayProgram    string
	GraphWidth       float64
	AspectRatio      float64

	CameraFocus    structure.Vec3
	CameraDistance float64
	CameraTheta    float64
	CameraPhi      float64
	CameraRotation float64

	LightLocation structure.Vec3
	LightFocus    structure.Vec3
	LightColour   string
	LightSize     float64
	LightRotation float64
	LightNumber   int
	LightAdaptive int
	LightJitter   bool

	ElementRadii     map[string]float64
	ColourScheme     string
	ColourChange     map[string]string
	ElementTextures  map[string]Texture

	ComputeBonds   bool
	CovalentRadii  map[string]float64
	BondRadius     float64
	BondSeparation float64
	BondDashSize   float64
	BondColour     string
	BondTexture    Texture

	DrawAxes   bool
	AxesLength float64
	AxesRadius float64
}

// DecodeOptions converts the chained option tree into the typed form.
func DecodeOptions(m options.Map) (*Options, error) {
	d := decoder{m: m}
	opts := &Options{
		BackgroundColour: d.str("background-colour"),
		PovRayProgram:    d.str("pov-ray-program"),
		GraphWidth:       d.num("graph-width"),
		AspectRatio:      d.num("aspect-ratio"),

		CameraFocus:    d.vec3("camera-focus"),
		CameraDistance: d.num("camera-distance"),
		CameraTheta:    d.num("camera-theta"),
		CameraPhi:      d.num("camera-phi"),
		CameraRotation: d.num("camera-rotation"),

		LightLocation: d.vec3("light-location"),
		LightFocus:    d.vec3("light-focus"),
		LightColour:   d.str("light-colour"),
		LightSize:     d.num("light-size"),
		LightRotation: d.num("light-rotation"),
		LightNumber:   int(d.num("light-number")),
		LightAdaptive: int(d.num("light-adaptive")),
		LightJitter:   d.boolean("light-jitter"),

		ElementRadii: d.numMap("element-radii"),
		ColourScheme: d.str("element-colour-scheme"),
		ColourChange: d.strMap("element-colour-change"),

		ComputeBonds:   d.boolean("compute-bonds"),
		CovalentRadii:  d.numMap("covalent-radii"),
		BondRadius:     d.num("bond-radius"),
		BondSeparation: d.num("bond-separation"),
		BondDashSize:   d.num("bond-dash-size"),
		BondColour:     d.str("bond-colour"),

		DrawAxes:   d.boolean("draw-axes"),
		AxesLength: d.num("axes-length"),
		AxesRadius: d.num("axes-radius"),
	}

	opts.BondTexture = d.texture(d.lookup("bond-texture"))
	opts.ElementTextures = map[string]Texture{}
	if textures, ok := d.lookup("element-textures").(options.Map); ok {
		for symb, raw := range textures {
			opts.ElementTextures[symb] = d.texture(raw)
		}
	} else {
		d.fail("element-textures", "map")
	}

	if d.err != nil {
		return nil, d.err
	}
	return opts, nil
}

// decoder accumulates the first failure so that the field extraction
// above can stay flat.
type decoder struct {
	m   options.Map
	err error
}

func (d *decoder) fail(key, want string) {
	if d.err == nil {
		d.err = fmt.Errorf("option %q is missing or is not a %s in the default tree", key, want)
	}
}

func (d *decoder) lookup(key string) options.Value {
	return d.m[key]
}

func (d *decoder) num(key string) float64 {
	if n, ok := d.m[key].(options.Number); ok {
		return float64(n)
	}
	d.fail(key, "number")
	return 0
}

func (d *decoder) str(key string) string {
	if s, ok := d.m[key].(options.String); ok {
		return string(s)
	}
	d.fail(key, "string")
	return ""
}

func (d *decoder) boolean(key string) bool {
	if b, ok := d.m[key].(options.Bool); ok {
		return bool(b)
	}
	d.fail(key, "boolean")
	return false
}

func (d *decoder) vec3(key string) structure.Vec3 {
	list, ok := d.m[key].(options.List)
	if !ok || len(list) != 3 {
		d.fail(key, "list of three numbers")
		return structure.Vec3{}
	}
	var out structure.Vec3
	for i, elem := range list {
		n, ok := elem.(options.Number)
		if !ok {
			d.fail(key, "list of three numbers")
			return structure.Vec3{}
		}
		out[i] = float64(n)
	}
	return out
}

func (d *decoder) numMap(key string) map[string]float64 {
	m, ok := d.m[key].(options.Map)
	if !ok {
		d.fail(key, "map of numbers")
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		n, ok := v.(options.Number)
		if !ok {
			d.fail(key, "map of numbers")
			return nil
		}
		out[k] = float64(n)
	}
	return out
}

func (d *decoder) strMap(key string) map[string]string {
	m, ok := d.m[key].(options.Map)
	if !ok {
		d.fail(key, "map of strings")
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(options.String)
		if !ok {
			d.fail(key, "map of strings")
			return nil
		}
		out[k] = string(s)
	}
	return out
}

func (d *decoder) strList(v options.Value) []string {
	if v == nil {
		return nil
	}
	list, ok := v.(options.List)
	if !ok {
		if d.err == nil {
			d.err = fmt.Errorf("texture attribute is not a list of strings")
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, elem := range list {
		s, ok := elem.(options.String)
		if !ok {
			if d.err == nil {
				d.err = fmt.Errorf("texture attribute is not a list of strings")
			}
			return nil
		}
		out = append(out, string(s))
	}
	return out
}

func (d *decoder) texture(v options.Value) Texture {
	m, ok := v.(options.Map)
	if !ok {
		if d.err == nil {
			d.err = fmt.Errorf("texture definition is not a map")
		}
		return Texture{}
	}
	useColour := false
	if b, ok := m["use-colour"].(options.Bool); ok {
		useColour = bool(b)
	}
	return Texture{
		Texture:   d.strList(m["texture"]),
		Pigment:   d.strList(m["pigment"]),
		Normal:    d.strList(m["normal"]),
		Finish:    d.strList(m["finish"]),
		UseColour: useColour,
	}
}
