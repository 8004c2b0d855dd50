package optfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tschijnmo/ccpoviz/internal/ctxlog"
	"github.com/tschijnmo/ccpoviz/internal/options"
)

// Load reads one configuration layer from the named file, picking the
// parser from the file extension: .yml/.yaml is YAML, .hcl is HCL, and
// anything else is treated as JSON.
func Load(ctx context.Context, name string) (options.Map, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading option layer.", "path", name)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("cannot open the configuration file %s: %w", name, err)
		}
		return ParseYAML(content)
	case ".hcl":
		return ParseHCLFile(name)
	default:
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("cannot open the configuration file %s: %w", name, err)
		}
		layer, err := ParseJSON(content)
		if err != nil {
			return nil, fmt.Errorf("parsing configuration file %s: %w", name, err)
		}
		return layer, nil
	}
}

// ParseJSON parses a JSON document into a configuration layer.
func ParseJSON(content []byte) (options.Map, error) {
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return options.MapFromNative(raw)
}

// ParseYAML parses a YAML document into a configuration layer.
func ParseYAML(content []byte) (options.Map, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return options.MapFromNative(raw)
}
