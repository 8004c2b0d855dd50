package scene

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/tschijnmo/ccpoviz/internal/structure"
)

//go:embed data/defaultcolour.json
var colourSchemesJSON []byte

// Sphere is one atom rendered as a POV-Ray sphere.
type Sphere struct {
	Location string
	Radius   float64
	Texture  Texture
}

// colourTable resolves the colour scheme selected in the options and
// overlays the per-element changes on top of it.
func colourTable(opts *Options) (map[string]string, error) {
	var schemes map[string]map[string]string
	if err := json.Unmarshal(colourSchemesJSON, &schemes); err != nil {
		return nil, fmt.Errorf("corrupt colour scheme data: %w", err)
	}

	scheme, ok := schemes[opts.ColourScheme]
	if !ok {
		return nil, fmt.Errorf("the element colour scheme %s does not exist", opts.ColourScheme)
	}

	colours := make(map[string]string, len(scheme)+len(opts.ColourChange))
	for symb, colour := range scheme {
		colours[symb] = colour
	}
	for symb, colour := range opts.ColourChange {
		colours[symb] = colour
	}
	return colours, nil
}

// atomRadius falls back to the "default" entry, which the default
// option tree always carries.
func atomRadius(symb string, opts *Options) float64 {
	if r, ok := opts.ElementRadii[symb]; ok {
		return r
	}
	return opts.ElementRadii["default"]
}

// atomTexture picks the texture for an element. Explicit per-element
// textures extend the shared default; the element colour goes into the
// pigment when the texture asks for it.
func atomTexture(symb string, colours map[string]string, opts *Options) (Texture, error) {
	texture, ok := opts.ElementTextures[symb]
	if !ok {
		texture = opts.ElementTextures["default"]
	}

	if texture.UseColour {
		colour, ok := colours[symb]
		if !ok {
			return Texture{}, fmt.Errorf(
				"no colour for element %s in scheme %s", symb, opts.ColourScheme,
			)
		}
		pigment := make([]string, 0, len(texture.Pigment)+1)
		pigment = append(pigment, texture.Pigment...)
		texture.Pigment = append(pigment, "colour "+colour)
	}
	return texture, nil
}

func buildAtoms(opts *Options, mol *structure.Structure) ([]Sphere, error) {
	colours, err := colourTable(opts)
	if err != nil {
		return nil, err
	}

	spheres := make([]Sphere, 0, len(mol.Atoms))
	for _, atom := range mol.Atoms {
		texture, err := atomTexture(atom.Symbol, colours, opts)
		if err != nil {
			return nil, err
		}
		spheres = append(spheres, Sphere{
			Location: atom.Coord.Pov(),
			Radius:   atomRadius(atom.Symbol, opts),
			Texture:  texture,
		})
	}
	return spheres, nil
}
