package options

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// mergeNode merges one override node into one existing node, dispatching
// on the kind of the existing node. The existing node's kind is the
// contract: the override must match it, subject only to the opt-in atom
// coercion. key is the name under which the node's meta-options are
// looked up in context, which is the map enclosing the existing node (or
// a virtual context when the existing node is a prototype).
//
// Each call is a pure function of its arguments; neither the existing
// nor the override tree is ever written to.
func (c *Chainer) mergeNode(existing, override Value, path Path, key string, context Map) (Value, error) {
	switch node := existing.(type) {
	case Number, Bool, String:
		return c.mergeAtom(existing, override, path, key, context)
	case List:
		return c.mergeList(node, override, path, key, context)
	case Map:
		return c.mergeMap(node, override, path, key, context)
	default:
		return nil, &DefaultError{
			Message: fmt.Sprintf("unacceptable node of type %T in configuration tree", existing),
		}
	}
}

// mergeAtom applies the override atom over the existing one. Matching
// kinds overwrite outright; mismatched kinds are only accepted when the
// coercion meta-option is enabled for this key and the conversion to the
// existing kind succeeds.
func (c *Chainer) mergeAtom(existing, override Value, path Path, key string, context Map) (Value, error) {
	if override.Kind() == existing.Kind() {
		return override, nil
	}

	coerce, err := c.coercionFor(key, context)
	if err != nil {
		return nil, err
	}
	if coerce {
		if converted, ok := coerceAtom(override, existing.Kind()); ok {
			return converted, nil
		}
	}
	return nil, typeError(path, existing)
}

// coerceAtom attempts to convert an atom to the target kind, reporting
// whether the conversion succeeded.
func coerceAtom(v Value, to Kind) (Value, bool) {
	switch to {
	case KindNumber:
		switch n := v.(type) {
		case String:
			f, err := strconv.ParseFloat(string(n), 64)
			if err != nil {
				return nil, false
			}
			return Number(f), true
		case Bool:
			if n {
				return Number(1), true
			}
			return Number(0), true
		}
	case KindString:
		switch n := v.(type) {
		case Number:
			return String(strconv.FormatFloat(float64(n), 'g', -1, 64)), true
		case Bool:
			return String(strconv.FormatBool(bool(n))), true
		}
	case KindBool:
		switch n := v.(type) {
		case Number:
			return Bool(n != 0), true
		case String:
			b, err := strconv.ParseBool(string(n))
			if err != nil {
				return nil, false
			}
			return Bool(b), true
		}
	}
	return nil, false
}

// mergeList validates every override element against the list's
// prototype and then combines the result with the existing list
// according to the update strategy. Override elements are never merged
// positionally against existing elements: each one is treated as a fresh
// prototype-based addition.
func (c *Chainer) mergeList(existing List, override Value, path Path, key string, context Map) (Value, error) {
	newElems, ok := override.(List)
	if !ok {
		return nil, typeError(path, existing)
	}

	proto, protoCtx, err := c.prototypeFor(key, context, existing)
	if err != nil {
		return nil, err
	}

	merged := make(List, 0, len(newElems))
	for i, elem := range newElems {
		elemPath := path.child(IndexSegment(i)).child(protoSegment(c.ProtoTag))
		val, err := c.mergeNode(proto, elem, elemPath, c.ProtoTag, protoCtx)
		if err != nil {
			return nil, err
		}
		merged = append(merged, val)
	}

	update, err := c.updateFor(key, context, c.DefaultListUpdate)
	if err != nil {
		return nil, err
	}
	switch update {
	case UpdateOverwrite:
		return merged, nil
	case UpdatePrepend:
		return concatLists(merged, existing), nil
	case UpdateAppend:
		return concatLists(existing, merged), nil
	case UpdateUnique:
		return uniqueList(existing, merged)
	default:
		return nil, &DefaultError{
			Message: fmt.Sprintf("invalid list update value %s", update),
		}
	}
}

func concatLists(a, b List) List {
	out := make(List, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// uniqueList merges the two lists keeping each atom once, in
// first-seen order of the concatenation. Lists and maps are not
// comparable, so the strategy is restricted to atom lists.
func uniqueList(existing, merged List) (List, error) {
	seen := make(map[Value]struct{}, len(existing)+len(merged))
	out := make(List, 0, len(existing)+len(merged))
	for _, elem := range concatLists(existing, merged) {
		if !elem.Kind().IsAtom() {
			return nil, &DefaultError{
				Message: "update method unique is for atom lists only",
			}
		}
		if _, dup := seen[elem]; dup {
			continue
		}
		seen[elem] = struct{}{}
		out = append(out, elem)
	}
	return out, nil
}

// mergeMap merges an override map into the existing one. Keys already
// present recurse with the existing map as their meta-option context.
// New keys are only accepted under the "extend" strategy, in which case
// they are merged against the map's prototype; any other strategy
// rejects them. An override key containing the separator is always
// rejected, so user data can never spoof a meta-option.
func (c *Chainer) mergeMap(existing Map, override Value, path Path, key string, context Map) (Value, error) {
	newMap, ok := override.(Map)
	if !ok {
		return nil, typeError(path, existing)
	}

	update, err := c.updateFor(key, context, c.DefaultMapUpdate)
	if err != nil {
		return nil, err
	}

	// The prototype is resolved eagerly so that a malformed default is
	// reported even when the override adds no new keys.
	var proto Value
	var protoCtx Map
	if update == UpdateExtend {
		proto, protoCtx, err = c.prototypeFor(key, context, existing)
		if err != nil {
			return nil, err
		}
	}

	merged := make(Map, len(existing)+len(newMap))
	for k, v := range existing {
		merged[k] = v
	}

	// Sorted iteration keeps error reporting deterministic.
	keys := make([]string, 0, len(newMap))
	for k := range newMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.Contains(k, c.Separator) {
			return nil, &UpdateError{
				Path:    path,
				Message: fmt.Sprintf("override key %q must not contain the meta-option separator %q", k, c.Separator),
			}
		}

		if old, present := existing[k]; present {
			val, err := c.mergeNode(old, newMap[k], path.child(KeySegment(k)), k, existing)
			if err != nil {
				return nil, err
			}
			merged[k] = val
			continue
		}

		if update != UpdateExtend {
			return nil, &UpdateError{
				Path:    path.child(KeySegment(k)),
				Message: "invalid option",
			}
		}
		elemPath := path.child(KeySegment(k)).child(protoSegment(c.ProtoTag))
		val, err := c.mergeNode(proto, newMap[k], elemPath, c.ProtoTag, protoCtx)
		if err != nil {
			return nil, err
		}
		merged[k] = val
	}
	return merged, nil
}
