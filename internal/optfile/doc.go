// Package optfile loads option configuration layers from their source
// formats into the tree model of the options package. Layers can come
// from JSON, YAML or HCL files, or from an option document embedded in
// the title section of the molecular input file. The merge engine itself
// is format-agnostic; everything format-specific lives here.
package optfile
