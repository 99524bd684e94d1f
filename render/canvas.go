// Package render draws the geometry core's output: polygon outlines and fills
// on a raster canvas, a ratio-vs-angle graph, and SVG frames. It only reads
// polygons; nothing here feeds back into the computation.
package render

import (
	"image"
	"image/color"
	"io"
	"math/rand"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/inscribe/internal"
)

// surface is the part shared by everything that ends up as a PNG.
type surface struct {
	c *gg.Context
}

func (s *surface) Image() image.Image {
	return s.c.Image()
}

func (s *surface) SavePNG(path string) error {
	return errors.Wrapf(s.c.SavePNG(path), "saving %s", path)
}

// Print the image to the terminal (iTerm only).
func (s *surface) Preview(w io.Writer) error {
	f, err := os.CreateTemp("", "inscribe-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := s.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

// A canvas in geometry coordinates: the origin sits in the middle of the image
// and y points up.
type Canvas struct {
	surface
	width, height int
}

func NewCanvas(width, height int, scale float64) *Canvas {
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so y points up, with the origin at the center
	c.Translate(float64(width)/2, float64(height)/2)
	c.Scale(scale, -scale)

	return &Canvas{surface: surface{c}, width: width, height: height}
}

func (canvas *Canvas) tracePolygon(poly *internal.RegularPolygon) {
	vertices := poly.Vertices()
	canvas.c.NewSubPath()
	canvas.c.MoveTo(vertices[0].X, vertices[0].Y)
	for _, p := range vertices[1:] {
		canvas.c.LineTo(p.X, p.Y)
	}
	canvas.c.ClosePath()
}

// Line width is in pixels, not geometry units.
func (canvas *Canvas) StrokePolygon(poly *internal.RegularPolygon, col color.Color, lineWidth float64) {
	canvas.tracePolygon(poly)
	canvas.c.SetColor(col)
	canvas.c.SetLineWidth(lineWidth)
	canvas.c.Stroke()
}

func (canvas *Canvas) FillPolygon(poly *internal.RegularPolygon, col color.Color) {
	canvas.tracePolygon(poly)
	canvas.c.SetColor(col)
	canvas.c.Fill()
}

// Small dot, for marking polygon centers.
func (canvas *Canvas) Mark(p internal.Point, col color.Color) {
	x, y := canvas.c.TransformPoint(p.X, p.Y)
	canvas.c.Push()
	canvas.c.Identity()
	canvas.c.DrawCircle(x, y, 3)
	canvas.c.SetColor(col)
	canvas.c.Fill()
	canvas.c.Pop()
}

// Random opaque color, like the fills of the old sketches.
func RandomColor(r *rand.Rand) color.Color {
	return color.RGBA{
		R: uint8(r.Intn(256)),
		G: uint8(r.Intn(256)),
		B: uint8(r.Intn(256)),
		A: 255,
	}
}
