package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Below this ratio between the Gram determinant and the product of the squared
// edge lengths, the edges are considered parallel. A relative test catches
// collinear triples whose determinant isn't exactly zero after rounding.
const degenerateRatio = 1e-12

// Barycentric coordinates of a point relative to triangle (a, b, c). U weights
// c, V weights b and W weights a, so that p = W*a + V*b + U*c and U+V+W = 1.
type Barycentric struct {
	U, V, W float64
}

// Solve for the barycentric coordinates of p by projecting onto the two edges
// leaving a. Collinear or coincident triangles have no solution and return
// ErrDegenerateTriangle rather than infinities.
func BarycentricCoords(p, a, b, c Point) (Barycentric, error) {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if math.IsNaN(denom) || math.IsInf(denom, 0) || math.Abs(denom) <= degenerateRatio*dot00*dot11 {
		return Barycentric{}, errors.Wrapf(ErrDegenerateTriangle, "triangle %v %v %v", a, b, c)
	}

	u := (dot11*dot02 - dot01*dot12) / denom
	v := (dot00*dot12 - dot01*dot02) / denom
	return Barycentric{U: u, V: v, W: 1 - u - v}, nil
}

// Closed test: points on an edge or at a vertex are inside.
func (b Barycentric) Inside() bool {
	return b.U >= 0 && b.V >= 0 && b.W >= 0
}

func PointInTriangle(p, a, b, c Point) (bool, error) {
	coords, err := BarycentricCoords(p, a, b, c)
	if err != nil {
		return false, err
	}
	return coords.Inside(), nil
}

type Triangle struct {
	A, B, C Point
}

func (tri Triangle) Contains(p Point) (bool, error) {
	return PointInTriangle(p, tri.A, tri.B, tri.C)
}

// Positive for counterclockwise triangles
func (tri Triangle) SignedArea() float64 {
	ab := tri.B.Sub(tri.A)
	ac := tri.C.Sub(tri.A)
	return (ab.X*ac.Y - ab.Y*ac.X) / 2
}

func (tri Triangle) IsCCW() bool {
	return tri.SignedArea() > 0
}
