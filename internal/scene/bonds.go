package scene

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/tschijnmo/ccpoviz/internal/structure"
)

//go:embed data/covradius.json
var covalentRadiiJSON []byte

// Cylinder is one bond cylinder rendered into the scene file.
type Cylinder struct {
	Beg     string
	End     string
	Radius  float64
	Texture Texture
}

// computeBonds derives the connectivity from the covalent radii: any
// two atoms closer than the sum of their radii are bonded with order
// one. The radii from the options override the built-in table.
func computeBonds(mol *structure.Structure, opts *Options) ([]structure.Bond, error) {
	var radii map[string]float64
	if err := json.Unmarshal(covalentRadiiJSON, &radii); err != nil {
		return nil, fmt.Errorf("corrupt covalent radius data: %w", err)
	}
	for symb, r := range opts.CovalentRadii {
		radii[symb] = r
	}

	var bonds []structure.Bond
	for i, atm1 := range mol.Atoms {
		r1, ok := radii[atm1.Symbol]
		if !ok {
			return nil, fmt.Errorf("no covalent radius for element %s", atm1.Symbol)
		}
		for j := i + 1; j < len(mol.Atoms); j++ {
			atm2 := mol.Atoms[j]
			r2, ok := radii[atm2.Symbol]
			if !ok {
				return nil, fmt.Errorf("no covalent radius for element %s", atm2.Symbol)
			}
			if atm1.Coord.Sub(atm2.Coord).Norm() < r1+r2 {
				bonds = append(bonds, structure.Bond{Beg: i, End: j, Order: 1})
			}
		}
	}
	return bonds, nil
}

// updateBonds reconciles the computed bonds with the explicit ones from
// the input. Bonds on new atom pairs are added; bonds on known pairs
// take the explicit order, with an order near zero removing the bond.
func updateBonds(existing, explicit []structure.Bond) []structure.Bond {
	bonds := make([]structure.Bond, len(existing))
	copy(bonds, existing)

	for _, b := range explicit {
		b = b.Canonical()
		idx := -1
		for i, old := range bonds {
			if old.Beg == b.Beg && old.End == b.End {
				idx = i
				break
			}
		}
		switch {
		case idx < 0:
			if b.Order > 0.1 {
				bonds = append(bonds, b)
			}
		case b.Order < 0.1:
			bonds = append(bonds[:idx], bonds[idx+1:]...)
		default:
			bonds[idx] = b
		}
	}
	return bonds
}

// formBonds gives the final bond list: the computed connectivity, when
// asked for, updated by the explicit bonds of the input.
func formBonds(mol *structure.Structure, opts *Options) ([]structure.Bond, error) {
	var bonds []structure.Bond
	if opts.ComputeBonds {
		computed, err := computeBonds(mol, opts)
		if err != nil {
			return nil, err
		}
		bonds = computed
	}
	return updateBonds(bonds, mol.Bonds), nil
}

func buildBonds(opts *Options, mol *structure.Structure, camera structure.Vec3) ([]Cylinder, error) {
	bonds, err := formBonds(mol, opts)
	if err != nil {
		return nil, err
	}

	texture := opts.BondTexture
	if texture.UseColour {
		pigment := make([]string, 0, len(texture.Pigment)+1)
		pigment = append(pigment, texture.Pigment...)
		texture.Pigment = append(pigment, "colour "+opts.BondColour)
	}

	var cylinders []Cylinder
	for _, bond := range bonds {
		for _, cyl := range resolveBond(bond, mol.Atoms, camera, opts.BondSeparation, opts.BondDashSize) {
			cylinders = append(cylinders, Cylinder{
				Beg:     cyl.beg.Pov(),
				End:     cyl.end.Pov(),
				Radius:  opts.BondRadius,
				Texture: texture,
			})
		}
	}
	return cylinders, nil
}
