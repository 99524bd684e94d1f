package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/osuushi/inscribe/internal"
)

// A polygon to place in an SVG frame. Role ends up in a data-role attribute
// so frames can be picked apart again later.
type Shape struct {
	Polygon *internal.RegularPolygon
	Role    string
	Style   string
}

// Write one frame as SVG, using the same centered, y-up mapping as Canvas.
func WriteSVG(w io.Writer, width, height, scale float64, shapes ...Shape) {
	s := svg.New(w)
	s.Start(width, height)
	s.Rect(0, 0, width, height, "fill:black")
	for _, shape := range shapes {
		vertices := shape.Polygon.Vertices()
		xs := make([]float64, len(vertices))
		ys := make([]float64, len(vertices))
		for i, p := range vertices {
			xs[i] = width/2 + p.X*scale
			ys[i] = height/2 - p.Y*scale
		}
		style := shape.Style
		if style == "" {
			style = "fill:none;stroke:white;stroke-width:1"
		}
		s.Polygon(xs, ys, fmt.Sprintf(`data-role="%s"`, shape.Role), style)
	}
	s.End()
}
