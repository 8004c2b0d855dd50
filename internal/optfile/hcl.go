package optfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/tschijnmo/ccpoviz/internal/options"
)

// ParseHCLFile parses an HCL option file into a configuration layer.
// The file is a flat body of attributes; nested maps are written as
// object constructor expressions. Only constant expressions are
// accepted, since an option layer is plain data.
func ParseHCLFile(name string) (options.Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}
	return layerFromBody(file.Body)
}

// ParseHCL parses in-memory HCL source, with name used in diagnostics.
func ParseHCL(src []byte, name string) (options.Map, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", name, diags)
	}
	return layerFromBody(file.Body)
}

func layerFromBody(body hcl.Body) (options.Map, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL option file must contain only attributes: %w", diags)
	}

	layer := make(options.Map, len(attrs))
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("evaluating option %q: %w", name, valDiags)
		}
		converted, err := ctyToValue(val)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		layer[name] = converted
	}
	return layer, nil
}

// ctyToValue converts an evaluated cty value into the options tree
// model. Tuples, lists and sets all become lists; objects and maps both
// become maps.
func ctyToValue(val cty.Value) (options.Value, error) {
	if !val.IsKnown() {
		return nil, fmt.Errorf("option value is not known")
	}
	if val.IsNull() {
		return nil, fmt.Errorf("null is not a legal option value; omit the option instead")
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return options.Number(f), nil
	case ty == cty.String:
		return options.String(val.AsString()), nil
	case ty == cty.Bool:
		return options.Bool(val.True()), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		list := make(options.List, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			converted, err := ctyToValue(elem)
			if err != nil {
				return nil, err
			}
			list = append(list, converted)
		}
		return list, nil
	case ty.IsObjectType() || ty.IsMapType():
		m := make(options.Map, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			converted, err := ctyToValue(elem)
			if err != nil {
				return nil, err
			}
			m[key.AsString()] = converted
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported option value type %s", ty.FriendlyName())
	}
}
