package options

import "fmt"

// Meta tags recognised beside an option key. The full meta key is the
// option key, the separator and the tag, e.g. "items...update".
const (
	metaUpdate   = "update"
	metaCoercion = "coercion"
	protoKeyTag  = "-key"
)

// Update strategies accepted under the "update" meta-option.
const (
	UpdateOverwrite = "overwrite"
	UpdateModify    = "modify"
	UpdateAppend    = "append"
	UpdatePrepend   = "prepend"
	UpdateUnique    = "unique"
	UpdateExtend    = "extend"
)

// updateFor resolves the "update" strategy for the option key from its
// enclosing context, falling back to def when the meta-option is absent.
func (c *Chainer) updateFor(key string, context Map, def string) (string, error) {
	raw, ok := context[key+c.Separator+metaUpdate]
	if !ok {
		return def, nil
	}
	s, ok := raw.(String)
	if !ok {
		return "", &DefaultError{
			Message: fmt.Sprintf("update meta-option for %q must be a string, got %s", key, raw.Kind()),
		}
	}
	return string(s), nil
}

// coercionFor resolves the "coercion" flag for the option key, falling
// back to the chainer-wide default.
func (c *Chainer) coercionFor(key string, context Map) (bool, error) {
	raw, ok := context[key+c.Separator+metaCoercion]
	if !ok {
		return c.DefaultCoercion, nil
	}
	b, ok := raw.(Bool)
	if !ok {
		return false, &DefaultError{
			Message: fmt.Sprintf("coercion meta-option for %q must be a boolean, got %s", key, raw.Kind()),
		}
	}
	return bool(b), nil
}
