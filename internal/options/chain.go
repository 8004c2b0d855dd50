package options

import "strings"

// Default values for the reserved vocabulary and the merge policies.
const (
	DefaultSeparator = "..."
	DefaultProtoTag  = "prototype"
)

// Chainer folds an ordered stack of configuration layers into one
// resolved tree. The zero value is not usable; construct with
// NewChainer and adjust the fields before the first Chain call if a
// different policy is needed. A Chainer holds no per-merge state, so one
// instance can serve concurrent Chain calls as long as the layers
// themselves are not mutated.
type Chainer struct {
	// Separator joins an option key with a meta tag, "..." by default.
	// It is reserved: no user-supplied option key may contain it.
	Separator string

	// ProtoTag is the meta tag naming the prototype of extensible
	// collections, "prototype" by default.
	ProtoTag string

	// DefaultListUpdate and DefaultMapUpdate are the update strategies
	// applied when a node carries no "update" meta-option. Both default
	// to overwrite, which for maps behaves the same as modify: existing
	// keys merge, new keys are rejected.
	DefaultListUpdate string
	DefaultMapUpdate  string

	// DefaultCoercion controls whether mismatched atom kinds are
	// converted to the default's kind when no "coercion" meta-option is
	// present. Off by default.
	DefaultCoercion bool
}

// NewChainer returns a chainer with the documented default policy.
func NewChainer() *Chainer {
	return &Chainer{
		Separator:         DefaultSeparator,
		ProtoTag:          DefaultProtoTag,
		DefaultListUpdate: UpdateOverwrite,
		DefaultMapUpdate:  UpdateOverwrite,
	}
}

// Chain folds the layers into one resolved tree. Layers are ordered from
// the highest priority to the lowest; the last layer is the mandatory
// default tree that defines the shape everything else is validated
// against. The fold starts from the default and applies each higher
// layer in turn, so the first layer's values win.
//
// The root merge of each step uses the accumulated tree as its own
// meta-option context: the root has no siblings, so root-level
// meta-options are declared with an empty option key, e.g. "...update".
// Meta-option keys declared in the default are carried through the fold,
// which is what keeps every intermediate tree a valid merge target for
// the next layer.
func (c *Chainer) Chain(layers ...Map) (Map, error) {
	if len(layers) == 0 {
		return nil, &DefaultError{
			Message: "at least one configuration layer, the default, is required",
		}
	}

	result := layers[len(layers)-1]
	for i := len(layers) - 2; i >= 0; i-- {
		merged, err := c.mergeNode(result, layers[i], Path{}, "", result)
		if err != nil {
			return nil, err
		}
		result = merged.(Map)
	}
	return result, nil
}

// StripMeta strips the meta-option keys from a tree resolved under the
// default vocabulary.
func StripMeta(m Map) Map {
	return NewChainer().StripMeta(m)
}

// StripMeta returns a copy of the tree with every meta-option key
// removed, for handing the resolved options to code that should only
// ever see plain data.
func (c *Chainer) StripMeta(m Map) Map {
	out := make(Map, len(m))
	for k, v := range m {
		if strings.Contains(k, c.Separator) {
			continue
		}
		out[k] = c.stripMetaValue(v)
	}
	return out
}

func (c *Chainer) stripMetaValue(v Value) Value {
	switch node := v.(type) {
	case Map:
		return c.StripMeta(node)
	case List:
		out := make(List, 0, len(node))
		for _, elem := range node {
			out = append(out, c.stripMetaValue(elem))
		}
		return out
	default:
		return v
	}
}
