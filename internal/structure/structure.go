package structure

// Atom is one atom in a structure: an element symbol and a Cartesian
// coordinate.
type Atom struct {
	Symbol string
	Coord  Vec3
}

// Bond connects two atoms, identified by their zero-based indices into
// the atom list. Order may be fractional to indicate a partial bond; an
// order of zero removes a previously derived bond during
// reconciliation.
type Bond struct {
	Beg   int
	End   int
	Order float64
}

// Canonical returns the bond with the smaller atom index first, the
// form all bond lists are kept in.
func (b Bond) Canonical() Bond {
	if b.Beg > b.End {
		return Bond{Beg: b.End, End: b.Beg, Order: b.Order}
	}
	return b
}

// Structure is a chemical structure with just enough information for
// rendering: readers produce instances from input files and the scene
// generators consume them.
type Structure struct {
	// Title holds the title lines of the input file. Besides being
	// descriptive it may carry an embedded option document.
	Title []string

	Atoms []Atom
	Bonds []Bond

	// LattVecs holds the lattice vectors for crystalline systems and is
	// empty for isolated molecules.
	LattVecs []Vec3
}

// Coords returns the coordinates of all atoms, in atom order.
func (s *Structure) Coords() []Vec3 {
	out := make([]Vec3, 0, len(s.Atoms))
	for _, a := range s.Atoms {
		out = append(out, a.Coord)
	}
	return out
}
