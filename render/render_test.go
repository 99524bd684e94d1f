package render

import (
	"bytes"
	"image/color"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/inscribe/internal"
)

func testPolygon(t *testing.T, sides int, radius float64) *internal.RegularPolygon {
	poly, err := internal.NewRegularPolygon(internal.Point{}, sides, radius, 0)
	require.NoError(t, err)
	return poly
}

func pixel(c *Canvas, x, y int) color.RGBA {
	r, g, b, a := c.Image().At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestCanvasStartsBlack(t *testing.T) {
	c := NewCanvas(20, 20, 1)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 10, 10))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 0, 0))
}

func TestFillPolygon(t *testing.T) {
	c := NewCanvas(100, 100, 2)
	c.FillPolygon(testPolygon(t, 4, 10), color.RGBA{255, 0, 0, 255})

	// Center is filled, corners of the image are not
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, pixel(c, 50, 50))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 2, 2))
	// Radius 10 at scale 2 reaches 20 pixels out along the x axis
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, pixel(c, 65, 50))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 75, 50))
}

func TestCanvasYPointsUp(t *testing.T) {
	// Positive y in geometry is the top half of the image
	poly, err := internal.NewRegularPolygon(internal.Point{X: 0, Y: 10}, 4, 5, 0)
	require.NoError(t, err)
	c := NewCanvas(100, 100, 1)
	c.FillPolygon(poly, color.White)

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(c, 50, 40))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 50, 60))
}

func TestStrokePolygon(t *testing.T) {
	c := NewCanvas(100, 100, 1)
	c.StrokePolygon(testPolygon(t, 4, 30), color.White, 3)

	// Outline is drawn but the interior stays empty
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 50, 50))
	// Midpoint of the upper right edge, from (30, 0) to (0, 30)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(c, 65, 35))
}

func TestMark(t *testing.T) {
	c := NewCanvas(100, 100, 4)
	c.Mark(internal.Point{X: 5, Y: 5}, color.White)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(c, 70, 30))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(c, 50, 50))
}

func TestSavePNG(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	path := filepath.Join(t.TempDir(), "frame.png")
	assert.NoError(t, c.SavePNG(path))

	err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestRandomColor(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		_, _, _, a := RandomColor(r).RGBA()
		assert.Equal(t, uint32(0xffff), a)
	}

	// Same seed, same sequence
	a := RandomColor(rand.New(rand.NewSource(7)))
	b := RandomColor(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestGraph(t *testing.T) {
	_, err := NewGraph(200, 100, 1)
	assert.Error(t, err)

	g, err := NewGraph(240, 200, 3)
	require.NoError(t, err)

	x, y := g.toPixel(0, 1)
	assert.Equal(t, float64(graphPadding), x)
	assert.Equal(t, float64(200-graphPadding), y)
	x, y = g.toPixel(2*math.Pi, 3)
	assert.InDelta(t, float64(240-graphPadding), x, 1e-9)
	assert.InDelta(t, float64(graphPadding), y, 1e-9)

	g.Plot(math.Pi, 2, color.RGBA{0, 0, 255, 255})
	px, py := g.toPixel(math.Pi, 2)
	r, gr, b, _ := g.Image().At(int(px), int(py)).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff}, []uint32{r, gr, b})

	// Out of range ratios land on the top of the axis instead of off the image
	g.Plot(math.Pi/2, 10, color.RGBA{0, 0, 255, 255})
	px, py = g.toPixel(math.Pi/2, 3)
	_, _, b, _ = g.Image().At(int(px), int(py)).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, 200, 100, 2,
		Shape{Polygon: testPolygon(t, 4, 10), Role: "outer"},
		Shape{Polygon: testPolygon(t, 3, 5), Role: "inner", Style: "fill:red"},
	)

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 2)

	assert.Equal(t, "outer", polygons[0].Attributes["data-role"])
	assert.Equal(t, "inner", polygons[1].Attributes["data-role"])
	assert.Len(t, strings.Fields(polygons[0].Attributes["points"]), 4)
	assert.Len(t, strings.Fields(polygons[1].Attributes["points"]), 3)
	assert.Contains(t, polygons[0].Attributes["style"], "stroke:white")
	assert.Equal(t, "fill:red", polygons[1].Attributes["style"])

	// First square vertex is (10, 0), which maps to (100+20, 50)
	first := strings.Fields(polygons[0].Attributes["points"])[0]
	assert.True(t, strings.HasPrefix(first, "120"), first)
}
