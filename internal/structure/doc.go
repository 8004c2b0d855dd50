// Package structure holds the chemical structure model shared between
// the input readers and the scene generators: atoms with element symbols
// and Cartesian coordinates, bonds as index pairs with a possibly
// fractional order, and optional lattice vectors for periodic systems.
// The small amount of vector algebra the program needs lives here as
// well.
package structure
