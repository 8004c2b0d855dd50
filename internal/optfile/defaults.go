package optfile

import (
	_ "embed"
	"fmt"

	"github.com/tschijnmo/ccpoviz/internal/options"
)

//go:embed defaultoptions.json
var defaultOptionsJSON []byte

// Defaults gives the built-in option tree that every chain starts
// from. The tree carries the meta-options that govern how the project
// and molecule layers are applied onto it, so it has to be the lowest
// layer of the chain. A fresh copy is returned on every call.
func Defaults() (options.Map, error) {
	layer, err := ParseJSON(defaultOptionsJSON)
	if err != nil {
		return nil, fmt.Errorf("corrupt built-in default options: %w", err)
	}
	return layer, nil
}
