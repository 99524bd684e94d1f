package internal

import (
	"fmt"
	"math"
)

// Points are plain values. Nothing in the package mutates a point after it has
// been produced, so they can be shared freely between polygons and frames.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Euclidean length of the vector
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit vector in the same direction. The zero vector stays zero.
func (p Point) Normalize() Point {
	length := p.Norm()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// Manhattan distance is what the expansion loop uses to decide that the center
// has stopped moving.
func (p Point) Manhattan(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}
