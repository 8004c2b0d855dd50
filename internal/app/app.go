package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/tschijnmo/ccpoviz/internal/ctxlog"
	"github.com/tschijnmo/ccpoviz/internal/gjf"
	"github.com/tschijnmo/ccpoviz/internal/optfile"
	"github.com/tschijnmo/ccpoviz/internal/options"
	"github.com/tschijnmo/ccpoviz/internal/pov"
	"github.com/tschijnmo/ccpoviz/internal/povray"
	"github.com/tschijnmo/ccpoviz/internal/scene"
	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a
// fully initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Run renders the picture for the configured input file. Option errors
// raised by user configuration come back formatted for the user.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config

	mol, err := a.readStructure()
	if err != nil {
		return err
	}
	a.logger.Debug("Structure read.",
		"atoms", len(mol.Atoms), "bonds", len(mol.Bonds))

	opts, err := a.resolveOptions(ctx, mol)
	if err != nil {
		return err
	}

	output := cfg.OutputFile
	if output == "" {
		output = strings.TrimSuffix(
			cfg.InputFile, filepath.Ext(cfg.InputFile),
		) + ".png"
	}

	sc, err := scene.Build(ctx, opts, mol)
	if err != nil {
		return err
	}

	sceneFile, err := pov.WriteFile(ctx, output, sc)
	if err != nil {
		return err
	}

	return povray.Run(ctx, &povray.Request{
		Program:     opts.PovRayProgram,
		InputFile:   sceneFile,
		OutputFile:  output,
		Width:       opts.GraphWidth,
		AspectRatio: opts.AspectRatio,
		Transparent: opts.BackgroundColour == "",
		Keep:        cfg.KeepScene,
	})
}

// readStructure dispatches on the configured reader. NewConfig has
// already vetted the reader name.
func (a *App) readStructure() (*structure.Structure, error) {
	switch a.config.Reader {
	case "gjf":
		return gjf.ParseFile(a.config.InputFile)
	default:
		return nil, fmt.Errorf("unknown input reader %q", a.config.Reader)
	}
}

// resolveOptions chains the molecule and project layers onto the
// built-in defaults and decodes the merged tree.
func (a *App) resolveOptions(ctx context.Context, mol *structure.Structure) (*scene.Options, error) {
	defaults, err := optfile.Defaults()
	if err != nil {
		return nil, err
	}

	var layers []options.Map

	switch a.config.MoleculeOption {
	case "":
	case TitleSentinel:
		layer, err := optfile.FromTitle(mol.Title)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	default:
		layer, err := optfile.Load(ctx, a.config.MoleculeOption)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	if a.config.ProjectOption != "" {
		layer, err := optfile.Load(ctx, a.config.ProjectOption)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	layers = append(layers, defaults)
	merged, err := options.NewChainer().Chain(layers...)
	if err != nil {
		var uerr *options.UpdateError
		if errors.As(err, &uerr) {
			return nil, errors.New(uerr.Format())
		}
		return nil, err
	}

	return scene.DecodeOptions(options.StripMeta(merged))
}
