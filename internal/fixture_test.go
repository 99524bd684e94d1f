package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into regular polygons. This is not a full
// (or even correct) svg parser. Each fixture holds one <polygon id="outer"> and
// one <polygon id="inner">, and each is fitted back to a RegularPolygon from
// its points: the center is the vertex mean, the radius and rotation come from
// the first vertex. If anything goes wrong, it dies.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (outer, inner *RegularPolygon) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	for _, polygonEl := range polygons {
		poly := fitRegularPolygon(name, parsePoints(name, polygonEl.Attributes["points"]))
		switch polygonEl.Attributes["id"] {
		case "outer":
			outer = poly
		case "inner":
			inner = poly
		default:
			log.Fatalf("Unexpected polygon id %q in fixture %q", polygonEl.Attributes["id"], name)
		}
	}
	if outer == nil || inner == nil {
		log.Fatalf("Fixture %q needs both an outer and an inner polygon", name)
	}
	return outer, inner
}

func parsePoints(name, pointString string) []Point {
	pointStrings := strings.Fields(pointString)
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

func fitRegularPolygon(name string, points []Point) *RegularPolygon {
	var center Point
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Scale(1 / float64(len(points)))
	first := points[0].Sub(center)
	poly, err := NewRegularPolygon(center, len(points), first.Norm(), math.Atan2(first.Y, first.X))
	if err != nil {
		log.Fatalf("Fixture %q is not a regular polygon: %v", name, err)
	}
	return poly
}

// Some ad hoc polygons shared by the tests
func mustPolygon(center Point, sides int, radius, rotation float64) *RegularPolygon {
	poly, err := NewRegularPolygon(center, sides, radius, rotation)
	if err != nil {
		panic(err)
	}
	return poly
}

func Square(radius float64) *RegularPolygon {
	return mustPolygon(Point{}, 4, radius, 0)
}

func EquilateralTriangle(radius, rotation float64) *RegularPolygon {
	return mustPolygon(Point{}, 3, radius, rotation)
}
