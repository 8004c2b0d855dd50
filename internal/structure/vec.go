package structure

import (
	"fmt"
	"math"
)

// Vec3 is a three-dimensional Cartesian vector.
type Vec3 [3]float64

// Add returns the component-wise sum of the two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns the component-wise difference of the two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of the two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product of the two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Norm returns the Euclidean length of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Norm())
}

// Pov formats the vector in the POV-Ray angle-bracket form with six
// decimal places.
func (v Vec3) Pov() string {
	return fmt.Sprintf("<%11.6f, %11.6f, %11.6f>", v[0], v[1], v[2])
}

// Mat3 is a 3x3 matrix in row-major order.
type Mat3 [3]Vec3

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// mulMat returns the matrix product m * o.
func (m Mat3) mulMat(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

// addMat returns the component-wise sum m + o.
func (m Mat3) addMat(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		out[i] = m[i].Add(o[i])
	}
	return out
}

// scaleMat returns the matrix scaled by s.
func (m Mat3) scaleMat(s float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		out[i] = m[i].Scale(s)
	}
	return out
}

var identity = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// RotationBetween computes the rotation matrix that takes the direction
// of beg onto the direction of end by the shortest rotation, via the
// Rodrigues cross-product construction. Antiparallel inputs have no
// unique shortest rotation; for them a half-turn about any perpendicular
// axis is returned.
func RotationBetween(beg, end Vec3) Mat3 {
	bn := beg.Normalize()
	en := end.Normalize()

	v := bn.Cross(en)
	s := v.Norm()
	c := bn.Dot(en)

	if s < 1e-12 {
		if c > 0 {
			return identity
		}
		// Antiparallel: rotate half a turn about an axis
		// perpendicular to beg.
		perp := bn.Cross(Vec3{1, 0, 0})
		if perp.Norm() < 1e-12 {
			perp = bn.Cross(Vec3{0, 1, 0})
		}
		return rotationAbout(perp.Normalize(), math.Pi)
	}

	vCross := Mat3{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
	return identity.
		addMat(vCross).
		addMat(vCross.mulMat(vCross).scaleMat((1 - c) / (s * s)))
}

// rotationAbout builds the rotation matrix for the given unit axis and
// angle.
func rotationAbout(axis Vec3, angle float64) Mat3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	return Mat3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

// Centroid returns the arithmetic mean of the given points.
func Centroid(points []Vec3) Vec3 {
	var sum Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
