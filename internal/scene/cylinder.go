package scene

import (
	"math"

	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// bondCylinder is one cylinder resolved from a bond. Multiple bonds
// resolve into several parallel cylinders, and partial bonds into a
// series of dashes, so one bond can yield many cylinders. The atom
// indices and the serial number within the bond are kept for further
// processing like per-bond colouring.
type bondCylinder struct {
	beg, end   structure.Vec3
	begAtom    int
	endAtom    int
	serial     int
	totalOrder float64
	partial    bool
}

// moveDirection gives the direction along which the cylinders of a
// multiple bond are spread out. The bonds should stay visually
// separated for the viewer, so the direction is perpendicular to both
// the bond and the sight line from the camera to the bond centre.
func moveDirection(beg, end, camera structure.Vec3) structure.Vec3 {
	centre := beg.Add(end).Scale(0.5)
	return end.Sub(beg).Cross(centre.Sub(camera)).Normalize()
}

// moveAmounts spreads n cylinders symmetrically about the original bond
// line, so the centre of the group stays on it.
func moveAmounts(separation float64, n int) []float64 {
	var amts []float64
	var beg float64
	if n%2 == 0 {
		beg = separation / 2
	} else {
		amts = append(amts, 0)
		beg = separation
	}

	for i := 0; i < n/2; i++ {
		shift := beg + float64(i)*separation
		amts = append(amts, shift, -shift)
	}
	return amts
}

// toDashes breaks a full cylinder into the dashes of a partial bond,
// alternating dash and gap of the given size along the cylinder.
func toDashes(beg, end structure.Vec3, dashSize float64) [][2]structure.Vec3 {
	vec := end.Sub(beg)
	length := vec.Norm()
	step := vec.Scale(dashSize / length)

	var dashes [][2]structure.Vec3
	drawing := true
	covered := 0.0
	cur := beg
	for covered+dashSize < length {
		next := cur.Add(step)
		if drawing {
			dashes = append(dashes, [2]structure.Vec3{cur, next})
		}
		cur = next
		covered += dashSize
		drawing = !drawing
	}
	if drawing {
		dashes = append(dashes, [2]structure.Vec3{cur, end})
	}
	return dashes
}

// resolveBond turns one bond into its cylinders. The integral part of
// the order gives the number of parallel cylinders; a fractional
// remainder makes the last of them partial.
func resolveBond(bond structure.Bond, atoms []structure.Atom, camera structure.Vec3, separation, dashSize float64) []bondCylinder {
	beg := atoms[bond.Beg].Coord
	end := atoms[bond.End].Coord

	n := int(math.Ceil(bond.Order))
	partial := float64(n)-bond.Order > 0.1
	dir := moveDirection(beg, end, camera)
	amts := moveAmounts(separation, n)

	var cylinders []bondCylinder
	for i, amt := range amts {
		cylBeg := beg.Add(dir.Scale(amt))
		cylEnd := end.Add(dir.Scale(amt))
		last := i == len(amts)-1

		segments := [][2]structure.Vec3{{cylBeg, cylEnd}}
		if partial && last {
			segments = toDashes(cylBeg, cylEnd, dashSize)
		}
		for _, seg := range segments {
			cylinders = append(cylinders, bondCylinder{
				beg:        seg[0],
				end:        seg[1],
				begAtom:    bond.Beg,
				endAtom:    bond.End,
				serial:     i,
				totalOrder: bond.Order,
				partial:    partial && last,
			})
		}
	}
	return cylinders
}
