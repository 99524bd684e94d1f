package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

const graphPadding = 40

// Plot of area ratio against rotation angle. The x axis covers one full turn,
// the y axis runs from 1 (no bigger than the inner polygon) to MaxRatio.
type Graph struct {
	surface
	width, height int
	maxRatio      float64
}

func NewGraph(width, height int, maxRatio float64) (*Graph, error) {
	if maxRatio <= 1 {
		return nil, errors.Errorf("graph ratio range must exceed 1, got %v", maxRatio)
	}
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing label font")
	}

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 12}))

	g := &Graph{surface: surface{c}, width: width, height: height, maxRatio: maxRatio}
	g.drawAxes()
	return g, nil
}

// Map a (angle, ratio) pair to pixel coordinates
func (g *Graph) toPixel(angle, ratio float64) (float64, float64) {
	plotWidth := float64(g.width - 2*graphPadding)
	plotHeight := float64(g.height - 2*graphPadding)
	x := graphPadding + angle/(2*math.Pi)*plotWidth
	y := float64(g.height-graphPadding) - (ratio-1)/(g.maxRatio-1)*plotHeight
	return x, y
}

func (g *Graph) drawAxes() {
	c := g.c
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)

	x0, y0 := g.toPixel(0, 1)
	x1, _ := g.toPixel(2*math.Pi, 1)
	_, y1 := g.toPixel(0, g.maxRatio)
	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x0, y0, x0, y1)
	c.Stroke()

	for i, label := range []string{"0", "π/2", "π", "3π/2", "2π"} {
		x, y := g.toPixel(float64(i)*math.Pi/2, 1)
		c.DrawLine(x, y, x, y+4)
		c.Stroke()
		c.DrawStringAnchored(label, x, y+6, 0.5, 1)
	}

	const ticks = 4
	for i := 0; i <= ticks; i++ {
		ratio := 1 + (g.maxRatio-1)*float64(i)/ticks
		x, y := g.toPixel(0, ratio)
		c.DrawLine(x-4, y, x, y)
		c.Stroke()
		c.DrawStringAnchored(fmt.Sprintf("%.2f", ratio), x-6, y, 1, 0.5)
	}
}

// Plot one sample. Ratios beyond the axis are clamped to its top.
func (g *Graph) Plot(angle, ratio float64, col color.Color) {
	x, y := g.toPixel(math.Mod(angle, 2*math.Pi), math.Min(ratio, g.maxRatio))
	g.c.DrawCircle(x, y, 2)
	g.c.SetColor(col)
	g.c.Fill()
}
