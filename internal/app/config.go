package app

import (
	"errors"
	"fmt"
)

// TitleSentinel is the molecule-option value that asks for the options
// to be read from the title section of the input file instead of a
// separate configuration file.
const TitleSentinel = "input-title"

// readers lists the supported input file readers.
var readers = map[string]bool{
	"gjf": true,
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputFile string
	Reader    string

	// OutputFile is the picture to write; empty derives it from the
	// input file name with the extension changed to png.
	OutputFile string

	// KeepScene leaves the generated POV-Ray input file behind.
	KeepScene bool

	// ProjectOption and MoleculeOption name the two configuration
	// layers applied on top of the built-in defaults. Either can be
	// empty. MoleculeOption can also be TitleSentinel.
	ProjectOption  string
	MoleculeOption string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputFile == "" {
		return nil, errors.New("InputFile is a required configuration field and cannot be empty")
	}
	if !readers[cfg.Reader] {
		return nil, fmt.Errorf("unknown input reader %q", cfg.Reader)
	}

	return &cfg, nil
}
