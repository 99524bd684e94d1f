package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// A regular polygon described by center, side count, circumradius and the
// angle of the first vertex. Polygons are immutable; the "With" methods build
// new ones. Always construct with NewRegularPolygon, since the zero value has
// no vertex cache.
type RegularPolygon struct {
	center   Point
	sides    int
	radius   float64
	rotation float64

	vertices *lazy[[]Point]
	area     *lazy[float64]
}

// One side of a polygon, from a vertex to the next one counterclockwise.
type Edge struct {
	Start, End Point
}

func (e Edge) Midpoint() Point {
	return e.Start.Midpoint(e.End)
}

func NewRegularPolygon(center Point, sides int, radius, rotation float64) (*RegularPolygon, error) {
	if sides < 3 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "polygon needs at least 3 sides, got %d", sides)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, errors.Wrapf(ErrInvalidGeometry, "polygon radius must be positive and finite, got %v", radius)
	}
	if math.IsNaN(center.X) || math.IsNaN(center.Y) || math.IsNaN(rotation) {
		return nil, errors.Wrapf(ErrInvalidGeometry, "polygon center %v / rotation %v is not a number", center, rotation)
	}
	poly := &RegularPolygon{
		center:   center,
		sides:    sides,
		radius:   radius,
		rotation: rotation,
	}
	poly.vertices = newLazy(poly.computeVertices)
	poly.area = newLazy(poly.computeArea)
	return poly, nil
}

func (poly *RegularPolygon) Center() Point     { return poly.center }
func (poly *RegularPolygon) Sides() int        { return poly.sides }
func (poly *RegularPolygon) Radius() float64   { return poly.radius }
func (poly *RegularPolygon) Rotation() float64 { return poly.rotation }

// Distance from the center to the middle of each edge
func (poly *RegularPolygon) Apothem() float64 {
	return poly.radius * math.Cos(math.Pi/float64(poly.sides))
}

// Same polygon, scaled about its center
func (poly *RegularPolygon) WithRadius(radius float64) (*RegularPolygon, error) {
	return NewRegularPolygon(poly.center, poly.sides, radius, poly.rotation)
}

// Same polygon, moved
func (poly *RegularPolygon) WithCenter(center Point) (*RegularPolygon, error) {
	return NewRegularPolygon(center, poly.sides, poly.radius, poly.rotation)
}

// Same polygon, turned about its center
func (poly *RegularPolygon) WithRotation(rotation float64) (*RegularPolygon, error) {
	return NewRegularPolygon(poly.center, poly.sides, poly.radius, rotation)
}

// Vertices in counterclockwise order, starting at the rotation angle. The list
// is computed once per polygon; callers get their own copy.
func (poly *RegularPolygon) Vertices() []Point {
	cached := poly.cachedVertices()
	result := make([]Point, len(cached))
	copy(result, cached)
	return result
}

func (poly *RegularPolygon) cachedVertices() []Point {
	if poly.vertices == nil {
		fatalf("polygon %v was not built with NewRegularPolygon", poly)
	}
	return poly.vertices.get()
}

func (poly *RegularPolygon) computeVertices() []Point {
	angle := math.Pi * 2 / float64(poly.sides)
	points := make([]Point, poly.sides)
	for i := range points {
		theta := poly.rotation + angle*float64(i)
		points[i] = Point{
			X: poly.center.X + poly.radius*math.Cos(theta),
			Y: poly.center.Y + poly.radius*math.Sin(theta),
		}
	}
	return points
}

// Area from a single edge: side length times the distance from the center to
// the edge midpoint, times the side count, halved. This only matches the true
// polygon area because every polygon here is regular about its own center.
// It's used to compare sizes across frames, not as a certified area.
func (poly *RegularPolygon) Area() float64 {
	if poly.area == nil {
		fatalf("polygon %v was not built with NewRegularPolygon", poly)
	}
	return poly.area.get()
}

func (poly *RegularPolygon) computeArea() float64 {
	vertices := poly.cachedVertices()
	side := vertices[0].Distance(vertices[1])
	height := poly.center.Distance(vertices[0].Midpoint(vertices[1]))
	return float64(poly.sides) * side * height / 2
}

// Every edge (v[i], v[i+1 mod N]) in vertex order.
func (poly *RegularPolygon) CircularEdgePairs() []Edge {
	vertices := poly.cachedVertices()
	edges := make([]Edge, len(vertices))
	for i, vertex := range vertices {
		edges[i] = Edge{vertex, vertices[CircularIndex(i+1, len(vertices))]}
	}
	return edges
}

// Containment by triangle fan around the center. Points within Tolerance of
// the boundary count as inside, so a vertex that the expansion placed exactly
// on an edge is still contained.
func (poly *RegularPolygon) Contains(p Point) bool {
	for _, edge := range poly.CircularEdgePairs() {
		coords, err := BarycentricCoords(p, poly.center, edge.Start, edge.End)
		if err != nil {
			fatalf("fan triangle of %v: %v", poly, err)
		}
		if coords.U >= -Tolerance && coords.V >= -Tolerance && coords.W >= -Tolerance {
			return true
		}
	}
	return false
}

// Fan triangles (center, v[i], v[i+1]). All of them are counterclockwise.
func (poly *RegularPolygon) Triangles() []Triangle {
	edges := poly.CircularEdgePairs()
	triangles := make([]Triangle, len(edges))
	for i, edge := range edges {
		triangles[i] = Triangle{poly.center, edge.Start, edge.End}
	}
	return triangles
}

func (poly *RegularPolygon) String() string {
	return fmt.Sprintf("RegularPolygon{sides: %d, radius: %.4f, center: %v, rotation: %.4f}",
		poly.sides, poly.radius, poly.center, poly.rotation)
}
