package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one component of the path locating a node within a
// configuration tree: a map key, a list index, or the synthetic
// prototype marker inserted when a new entry is merged against a
// prototype.
type Segment struct {
	Key   string
	Index int
	proto bool
}

// KeySegment returns a path segment for a map key.
func KeySegment(key string) Segment {
	return Segment{Key: key, Index: -1}
}

// IndexSegment returns a path segment for a list index.
func IndexSegment(index int) Segment {
	return Segment{Index: index}
}

func protoSegment(tag string) Segment {
	return Segment{Key: tag, Index: -1, proto: true}
}

// String renders the segment for diagnostics.
func (s Segment) String() string {
	if s.Index >= 0 {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Path locates a node from the root of a configuration tree. It is used
// for diagnostics only, never for identity. Paths are treated as
// immutable; child always allocates.
type Path []Segment

func (p Path) child(seg Segment) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, seg)
}

// String joins the path segments with " / ", keeping any prototype
// markers.
func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, seg := range p {
		parts = append(parts, seg.String())
	}
	return strings.Join(parts, " / ")
}

// stripProto returns the path with the synthetic prototype markers
// removed, which reads closer to what the user actually wrote.
func (p Path) stripProto() Path {
	out := make(Path, 0, len(p))
	for _, seg := range p {
		if seg.proto {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// UpdateError reports a layer that is incompatible with the shape or the
// types established by the default tree. It always carries the full path
// of the offending node and is meant to be caught and shown to the user.
type UpdateError struct {
	Path    Path
	Message string
}

// Error implements the error interface.
func (e *UpdateError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Path, e.Message)
}

// Format renders the error into the multi-line user-facing form, with
// the prototype markers stripped from the path.
func (e *UpdateError) Format() string {
	return fmt.Sprintf(
		"At option setting\n   %s\nerror occurred since %s",
		e.Path.stripProto(), e.Message,
	)
}

// DefaultError reports a defect in the default tree itself, such as an
// empty collection without a resolvable prototype. It is a programmer
// error in the default configuration, not user input, so it carries no
// path and is not expected to be recovered from.
type DefaultError struct {
	Message string
}

// Error implements the error interface.
func (e *DefaultError) Error() string {
	return e.Message
}

func typeError(path Path, existing Value) error {
	return &UpdateError{
		Path:    path,
		Message: fmt.Sprintf("a value of type %s is expected", existing.Kind()),
	}
}
