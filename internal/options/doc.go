// Package options implements the layered option configuration engine.
//
// A configuration is modelled as a tree of values: atoms (number, boolean,
// string), uniform lists, and string-keyed maps, with a map at the root.
// Several such trees, ordered by priority, are folded into one resolved
// tree by the Chainer. The lowest-priority tree is the mandatory default
// configuration; it defines the shape and the types that every later
// layer is validated against, so a single default tree doubles as both
// the default values and the schema.
//
// How an individual option is merged can be tuned by meta-options, which
// are declared as specially named siblings of the option inside the same
// map. The meta key is the option key, the separator ("..." by default)
// and a meta tag:
//
//	{
//	    "highlight-patterns": ["spam", "eggs"],
//	    "highlight-patterns...update": "append"
//	}
//
// Supported meta tags are "update" (how lists and maps combine),
// "coercion" (opt-in atom type conversion), and "prototype" /
// "prototype-key" (the template that newly introduced list elements and
// map entries are validated against). Meta-options for the contents of a
// prototype use a second separator under the prototype tag, e.g.
// "option...prototype...update".
//
// Failures split into two kinds. An UpdateError means a higher layer is
// incompatible with the default tree; it carries the exact path of the
// offending node and is meant to be shown to the user. A DefaultError
// means the default tree itself is malformed and is a programmer error.
package options
