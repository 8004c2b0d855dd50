package scene

import (
	"context"
	"log/slog"

	"github.com/tschijnmo/ccpoviz/internal/ctxlog"
	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// Scene is the fully resolved description of the picture, ready to be
// written out as a POV-Ray file.
type Scene struct {
	Camera     []Setting
	Light      Light
	Atoms      []Sphere
	Bonds      []Cylinder
	Axes       []Axis
	Background []string
}

// UseBackground reports whether an opaque background is drawn; an empty
// background colour keeps the picture transparent.
func (s *Scene) UseBackground() bool {
	return len(s.Background) > 0
}

// Build assembles the scene for a molecule under the given options.
func Build(ctx context.Context, opts *Options, mol *structure.Structure) (*Scene, error) {
	log := ctxlog.FromContext(ctx)

	camera, camLoc, camFoc := buildCamera(opts, mol)
	light := buildLight(opts, camLoc, camFoc)

	atoms, err := buildAtoms(opts, mol)
	if err != nil {
		return nil, err
	}

	bonds, err := buildBonds(opts, mol, camLoc)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved scene primitives",
		slog.Int("atoms", len(atoms)),
		slog.Int("bond_cylinders", len(bonds)),
	)

	var axes []Axis
	if opts.DrawAxes {
		axes = buildAxes(opts, camFoc)
	}

	var background []string
	if opts.BackgroundColour != "" {
		background = []string{"colour " + opts.BackgroundColour}
	}

	return &Scene{
		Camera:     camera,
		Light:      light,
		Atoms:      atoms,
		Bonds:      bonds,
		Axes:       axes,
		Background: background,
	}, nil
}
