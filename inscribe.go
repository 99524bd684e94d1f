// Fit one regular polygon tightly around another.
//
// Given an outer template (side count, rotation and a starting center) and an
// inner regular polygon, Expand finds the scaled and re-centered copy of the
// template that just encloses the inner polygon. The barycentric helpers used
// for containment are exported as well.
package inscribe

import (
	"log/slog"

	"github.com/osuushi/inscribe/internal"
)

type Point = internal.Point
type RegularPolygon = internal.RegularPolygon
type Edge = internal.Edge
type Barycentric = internal.Barycentric
type Triangle = internal.Triangle
type Expander = internal.Expander
type Expansion = internal.Expansion

// Errors returned by the package. Test for them with errors.Is.
var (
	ErrDegenerateTriangle = internal.ErrDegenerateTriangle
	ErrInvalidGeometry    = internal.ErrInvalidGeometry
	ErrConvergenceFailure = internal.ErrConvergenceFailure
)

// Fixed-point tolerance on the Manhattan displacement of the center.
const Eps = internal.Eps

// Sides must be at least 3 and the radius positive. Rotation is the angle of
// the first vertex, in radians.
func NewRegularPolygon(center Point, sides int, radius, rotation float64) (*RegularPolygon, error) {
	return internal.NewRegularPolygon(center, sides, radius, rotation)
}

// Find the copy of outer (same sides and rotation, new radius and center) that
// tightly encloses inner. Use NewExpander for a custom tolerance or iteration
// bound.
func Expand(outer, inner *RegularPolygon) (*RegularPolygon, error) {
	return internal.Expand(outer, inner)
}

func NewExpander() *Expander {
	return internal.NewExpander()
}

func BarycentricCoords(p, a, b, c Point) (Barycentric, error) {
	return internal.BarycentricCoords(p, a, b, c)
}

func PointInTriangle(p, a, b, c Point) (bool, error) {
	return internal.PointInTriangle(p, a, b, c)
}

// Route the package's logs (and those of render and animate) to l. Silent by
// default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
