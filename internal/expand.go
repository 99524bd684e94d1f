package internal

// The expansion engine. Given an outer template (which supplies the side
// count, rotation and starting center) and an inner polygon, find the copy of
// the template that tightly circumscribes the inner polygon.
//
// The approach alternates two moves until the center stops moving:
//
//  1. Scale about the current center until the tightest (vertex, edge) pair
//     touches (ExpandFixedCenter).
//  2. Shift the center toward the edge with the most slack relative to the
//     edge across from it (TranslateFramed).
//
// Slack is measured with barycentric coordinates. For an edge (v1, v2) and a
// point e, the U coordinate of e relative to (v1, v2, center) is the weight of
// the center: 0 on the edge's line, 1 at the center, negative outside. It is
// therefore the fraction of the apothem left between e and that edge.

import (
	"log/slog"
	"math"
	"sort"

	"github.com/pkg/errors"
)

const (
	// Manhattan displacement of the center below which the iteration has
	// reached its fixed point. Canvas units.
	Eps = 0.005

	DefaultMaxIterations = 5000
)

type Expander struct {
	Eps           float64
	MaxIterations int
	// Falls back to the package logger when nil
	Logger *slog.Logger
}

type Expansion struct {
	Polygon    *RegularPolygon
	Iterations int
}

func NewExpander() *Expander {
	return &Expander{Eps: Eps, MaxIterations: DefaultMaxIterations}
}

// Expand with the default tolerance and iteration bound.
func Expand(outer, inner *RegularPolygon) (*RegularPolygon, error) {
	expansion, err := NewExpander().Run(outer, inner)
	if err != nil {
		return nil, err
	}
	return expansion.Polygon, nil
}

// Iterate scale and re-center steps to the fixed point. The returned polygon
// is the scaled candidate of the final iteration, not its translated
// successor. If the center is still moving after MaxIterations, the result is
// ErrConvergenceFailure.
func (x *Expander) Run(outer, inner *RegularPolygon) (result *Expansion, err error) {
	defer func() {
		if recovered := HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()

	eps := x.Eps
	if eps <= 0 {
		eps = Eps
	}
	maxIterations := x.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	logger := x.Logger
	if logger == nil {
		logger = Logger()
	}

	current := outer
	for i := 1; i <= maxIterations; i++ {
		candidate, err := ExpandFixedCenter(current, inner)
		if err != nil {
			return nil, err
		}
		translated, err := TranslateFramed(candidate, inner)
		if err != nil {
			return nil, err
		}

		displacement := candidate.Center().Manhattan(translated.Center())
		logger.Debug("expansion step",
			"iteration", i,
			"radius", candidate.Radius(),
			"center", candidate.Center(),
			"displacement", displacement)

		if displacement < eps {
			return &Expansion{Polygon: candidate, Iterations: i}, nil
		}
		current = translated
	}

	return nil, errors.Wrapf(ErrConvergenceFailure, "center still moving after %d iterations (outer %v, inner %v)",
		maxIterations, outer, inner)
}

// Step A: keep the center and rotation, and pick the radius at which the inner
// polygon just fits. The binding constraint is the smallest U over every
// (inner vertex, outer edge) pair.
func ExpandFixedCenter(outer, inner *RegularPolygon) (*RegularPolygon, error) {
	slacks, err := EdgeSlacks(outer, inner)
	if err != nil {
		return nil, err
	}
	minSlack := math.Inf(1)
	for _, slack := range slacks {
		minSlack = math.Min(minSlack, slack)
	}
	return outer.WithRadius(outer.Radius() - outer.Radius()*minSlack)
}

type edgeImbalance struct {
	edge  int
	delta float64
}

// Step B: compare each edge's slack with the slack of the edge across from it,
// and shift the polygon toward the most lopsided edge by half the difference.
// For an odd side count there is no single opposite edge, so the smaller slack
// of the two nearest-opposite edges is used. The radius is unchanged.
func TranslateFramed(outer, inner *RegularPolygon) (*RegularPolygon, error) {
	slacks, err := EdgeSlacks(outer, inner)
	if err != nil {
		return nil, err
	}
	edges := outer.CircularEdgePairs()

	imbalances := make([]edgeImbalance, len(edges))
	for i := range edges {
		imbalances[i] = edgeImbalance{edge: i, delta: slacks[i] - oppositeSlack(slacks, i)}
	}
	sort.SliceStable(imbalances, func(a, b int) bool {
		return imbalances[a].delta > imbalances[b].delta
	})
	worst := imbalances[0]

	// Slack is a fraction of the apothem. Converting it to canvas units keeps
	// the step independent of the polygon's size.
	direction := outer.Center().Sub(edges[worst.edge].Midpoint()).Normalize()
	shift := direction.Scale(worst.delta / 2 * outer.Apothem())
	return outer.WithCenter(outer.Center().Add(shift))
}

func oppositeSlack(slacks []float64, i int) float64 {
	n := len(slacks)
	if n%2 == 0 {
		return slacks[CircularIndex(i+n/2, n)]
	}
	return math.Min(
		slacks[CircularIndex(i+(n-1)/2, n)],
		slacks[CircularIndex(i+(n+1)/2, n)],
	)
}

// Slack of every outer edge: the smallest U of any inner vertex against the
// triangle formed by that edge and the outer center. Zero means some inner
// vertex touches the edge's line.
func EdgeSlacks(outer, inner *RegularPolygon) ([]float64, error) {
	edges := outer.CircularEdgePairs()
	innerVertices := inner.cachedVertices()
	slacks := make([]float64, len(edges))
	for i, edge := range edges {
		slack := math.Inf(1)
		for _, vertex := range innerVertices {
			coords, err := BarycentricCoords(vertex, edge.Start, edge.End, outer.Center())
			if err != nil {
				return nil, errors.Wrapf(err, "edge %d of %v", i, outer)
			}
			slack = math.Min(slack, coords.U)
		}
		slacks[i] = slack
	}
	return slacks, nil
}
