// Package render draws a pair of polygons and their verdict as an image.
package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/akmonengine/gjk2d/actor"
)

const (
	DEFAULT_SIZE    = 400
	DEFAULT_PADDING = 20
)

var ErrNothingToDraw = errors.New("render: no vertex to draw")

type Options struct {
	// Scale in pixels per unit. Zero fits the largest extent in DEFAULT_SIZE pixels.
	Scale   float64
	Padding int
}

// Pair draws a and b, y axis up, on a black background. The outlines are red
// when the polygons collide and green otherwise.
func Pair(a, b actor.Polygon, collision bool, options Options) (image.Image, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, ErrNothingToDraw
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, polygon := range []actor.Polygon{a, b} {
		for _, p := range polygon {
			minX = math.Min(minX, p.X())
			minY = math.Min(minY, p.Y())
			maxX = math.Max(maxX, p.X())
			maxY = math.Max(maxY, p.Y())
		}
	}

	padding := options.Padding
	if padding <= 0 {
		padding = DEFAULT_PADDING
	}
	scale := options.Scale
	if scale <= 0 {
		scale = 1
		if extent := math.Max(maxX-minX, maxY-minY); extent > 0 {
			scale = DEFAULT_SIZE / extent
		}
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Origin at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(padding), float64(padding))
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	drawPolygon(c, a, scale, 0.2, 0.4, 1)
	drawPolygon(c, b, scale, 1, 0.6, 0.1)

	if collision {
		c.SetRGB(1, 0, 0)
	} else {
		c.SetRGB(0, 1, 0)
	}
	for _, polygon := range []actor.Polygon{a, b} {
		tracePolygon(c, polygon)
		c.Stroke()
	}

	return c.Image(), nil
}

func drawPolygon(c *gg.Context, polygon actor.Polygon, scale, r, g, b float64) {
	if len(polygon) == 0 {
		return
	}
	c.SetRGBA(r, g, b, 0.5)

	// A single vertex has no area to fill
	if len(polygon) == 1 {
		c.DrawCircle(polygon[0].X(), polygon[0].Y(), 3/scale)
		c.Fill()
		return
	}

	tracePolygon(c, polygon)
	c.Fill()
}

func tracePolygon(c *gg.Context, polygon actor.Polygon) {
	if len(polygon) == 0 {
		return
	}

	c.MoveTo(polygon[0].X(), polygon[0].Y())
	for _, p := range polygon[1:] {
		c.LineTo(p.X(), p.Y())
	}
	c.ClosePath()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "render: %s", path)
}

// Preview prints the image file inline, for terminals supporting it (iTerm2).
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "render: preview %s", path)
}
