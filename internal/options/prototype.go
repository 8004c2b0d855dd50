package options

import (
	"fmt"
	"sort"
	"strings"
)

// prototypeFor derives the template value that a newly introduced list
// element or map entry for the option key is merged against.
//
// Resolution order: an explicit "key...prototype" value, an indexed
// "key...prototype-key" lookup into the existing node (a string key into
// a map, an integer index into a list), then a structural fallback to
// the first element of a non-empty existing list or an arbitrary value
// of a non-empty existing map. Having both explicit forms at once, or an
// empty collection with no explicit prototype, is a defect in the
// default tree.
//
// The returned virtual context carries the meta-options for the
// prototype's own contents. They are declared beside the prototype's
// source under a doubled separator ("key...prototype...update") and are
// re-keyed here ("prototype...update") so that they are found at the
// expected relative location when the prototype plays the role of the
// existing node one level down.
func (c *Chainer) prototypeFor(key string, context Map, existing Value) (Value, Map, error) {
	var proto Value

	for _, tag := range []string{c.ProtoTag, c.ProtoTag + protoKeyTag} {
		metaKey := key + c.Separator + tag
		raw, ok := context[metaKey]
		if !ok {
			continue
		}
		if proto != nil {
			return nil, nil, &DefaultError{
				Message: fmt.Sprintf("meta-option %s duplicates another prototype setting", metaKey),
			}
		}

		if !strings.HasSuffix(tag, protoKeyTag) {
			proto = raw
			continue
		}

		indexed, err := indexByProtoKey(existing, raw)
		if err != nil {
			return nil, nil, &DefaultError{
				Message: fmt.Sprintf("the prototype key %s cannot be found for %s", formatProtoKey(raw), key),
			}
		}
		proto = indexed
	}

	if proto == nil {
		proto = structuralPrototype(existing)
		if proto == nil {
			return nil, nil, &DefaultError{
				Message: fmt.Sprintf("no prototype or basis given for empty list/map %s", key),
			}
		}
	}

	virtPrefix := key + c.Separator + c.ProtoTag + c.Separator
	virtContext := Map{}
	for k, v := range context {
		if strings.HasPrefix(k, virtPrefix) {
			virtContext[k[len(key+c.Separator):]] = v
		}
	}

	return proto, virtContext, nil
}

// indexByProtoKey resolves a "prototype-key" value against the existing
// node: a string key indexes a map, an integral number indexes a list,
// and anything else fails.
func indexByProtoKey(existing, rawKey Value) (Value, error) {
	switch node := existing.(type) {
	case Map:
		key, ok := rawKey.(String)
		if !ok {
			return nil, fmt.Errorf("map prototype key must be a string")
		}
		val, ok := node[string(key)]
		if !ok {
			return nil, fmt.Errorf("key not present")
		}
		return val, nil
	case List:
		num, ok := rawKey.(Number)
		if !ok || num != Number(int(num)) {
			return nil, fmt.Errorf("list prototype key must be an integer")
		}
		idx := int(num)
		if idx < 0 || idx >= len(node) {
			return nil, fmt.Errorf("index out of range")
		}
		return node[idx], nil
	default:
		// Atoms cannot be indexed.
		return nil, fmt.Errorf("atom cannot be indexed")
	}
}

// structuralPrototype falls back to a representative entry of the
// existing collection, or nil when there is none to fall back to. The
// smallest map key is picked to keep the choice deterministic.
func structuralPrototype(existing Value) Value {
	switch node := existing.(type) {
	case List:
		if len(node) > 0 {
			return node[0]
		}
	case Map:
		if len(node) > 0 {
			keys := make([]string, 0, len(node))
			for k := range node {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return node[keys[0]]
		}
	}
	return nil
}

func formatProtoKey(v Value) string {
	switch n := v.(type) {
	case String:
		return string(n)
	case Number:
		if n == Number(int(n)) {
			return fmt.Sprintf("%d", int(n))
		}
		return fmt.Sprintf("%v", float64(n))
	default:
		return fmt.Sprintf("%v", ToNative(v))
	}
}
