package render

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas is the mutable raster surface a card template draws onto. Each
// render allocates its own Canvas, so concurrent renders share no state.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a transparent surface and paints a rounded-rectangle
// background covering it.
func NewCanvas(width, height int, background color.Color, cornerRadius int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.FillRoundedRect(0, 0, width, height, cornerRadius, background)
	return c
}

// Image exposes the backing raster for encoding and compositing.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// filler returns a fresh scanline filler over the canvas. Fillers are not
// reused across draw calls so shapes never leak into each other.
func (c *Canvas) filler() *rasterx.Filler {
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	return rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
}

// stroker returns a dasher configured for an outline of the given width.
// A nil dash slice draws a continuous stroke.
func (c *Canvas) stroker(width float64, dashes []float64) *rasterx.Dasher {
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	dasher := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.I(4),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round,
		dashes, 0,
	)
	return dasher
}

// FillRoundedRect fills a rounded rectangle spanning (x1,y1)-(x2,y2).
func (c *Canvas) FillRoundedRect(x1, y1, x2, y2, radius int, fill color.Color) {
	f := c.filler()
	f.Scanner.SetColor(fill)
	r := float64(radius)
	rasterx.AddRoundRect(float64(x1), float64(y1), float64(x2), float64(y2), r, r, 0, rasterx.RoundGap, f)
	f.Draw()
}

// StrokeRoundedRect outlines a rounded rectangle.
func (c *Canvas) StrokeRoundedRect(x1, y1, x2, y2, radius int, outline color.Color, width float64) {
	d := c.stroker(width, nil)
	d.Scanner.SetColor(outline)
	r := float64(radius)
	rasterx.AddRoundRect(float64(x1), float64(y1), float64(x2), float64(y2), r, r, 0, rasterx.RoundGap, d)
	d.Draw()
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x1, y1, x2, y2 int, fill color.Color) {
	f := c.filler()
	f.Scanner.SetColor(fill)
	rasterx.AddRect(float64(x1), float64(y1), float64(x2), float64(y2), 0, f)
	f.Draw()
}

// StrokeRect outlines an axis-aligned rectangle.
func (c *Canvas) StrokeRect(x1, y1, x2, y2 int, outline color.Color, width float64) {
	d := c.stroker(width, nil)
	d.Scanner.SetColor(outline)
	rasterx.AddRect(float64(x1), float64(y1), float64(x2), float64(y2), 0, d)
	d.Draw()
}

// FillCircle fills a circle centered at (cx,cy).
func (c *Canvas) FillCircle(cx, cy, radius int, fill color.Color) {
	f := c.filler()
	f.Scanner.SetColor(fill)
	rasterx.AddCircle(float64(cx), float64(cy), float64(radius), f)
	f.Draw()
}

// StrokeCircle outlines a circle centered at (cx,cy).
func (c *Canvas) StrokeCircle(cx, cy, radius int, outline color.Color, width float64) {
	d := c.stroker(width, nil)
	d.Scanner.SetColor(outline)
	rasterx.AddCircle(float64(cx), float64(cy), float64(radius), d)
	d.Draw()
}

// Line draws a straight segment, optionally dashed.
func (c *Canvas) Line(x1, y1, x2, y2 int, col color.Color, width float64, dashes []float64) {
	d := c.stroker(width, dashes)
	d.Scanner.SetColor(col)
	d.Start(fixp(float64(x1), float64(y1)))
	d.Line(fixp(float64(x2), float64(y2)))
	d.Stop(false)
	d.Draw()
}

// FillPolygon fills a closed polygon through the given points.
func (c *Canvas) FillPolygon(points []image.Point, fill color.Color) {
	if len(points) < 3 {
		return
	}
	f := c.filler()
	f.Scanner.SetColor(fill)
	addPolygon(f, points)
	f.Draw()
}

// StrokePolygon outlines a closed polygon through the given points.
func (c *Canvas) StrokePolygon(points []image.Point, outline color.Color, width float64) {
	if len(points) < 3 {
		return
	}
	d := c.stroker(width, nil)
	d.Scanner.SetColor(outline)
	addPolygon(d, points)
	d.Draw()
}

func addPolygon(p rasterx.Adder, points []image.Point) {
	p.Start(fixp(float64(points[0].X), float64(points[0].Y)))
	for _, pt := range points[1:] {
		p.Line(fixp(float64(pt.X), float64(pt.Y)))
	}
	p.Stop(true)
}

// pieSliceStep is the arc flattening granularity in degrees.
const pieSliceStep = 2.0

// FillPieSlice fills a circular sector. Angles are in degrees, measured
// clockwise from three o'clock, matching screen coordinates.
func (c *Canvas) FillPieSlice(cx, cy, radius int, startDeg, endDeg float64, fill color.Color) {
	f := c.filler()
	f.Scanner.SetColor(fill)
	addPieSlice(f, float64(cx), float64(cy), float64(radius), startDeg, endDeg)
	f.Draw()
}

// StrokePieSlice outlines a circular sector.
func (c *Canvas) StrokePieSlice(cx, cy, radius int, startDeg, endDeg float64, outline color.Color, width float64) {
	d := c.stroker(width, nil)
	d.Scanner.SetColor(outline)
	addPieSlice(d, float64(cx), float64(cy), float64(radius), startDeg, endDeg)
	d.Draw()
}

// addPieSlice traces center -> arc start -> arc -> back to center. The arc
// is flattened into short line segments.
func addPieSlice(p rasterx.Adder, cx, cy, r, startDeg, endDeg float64) {
	p.Start(fixp(cx, cy))
	for deg := startDeg; deg < endDeg; deg += pieSliceStep {
		p.Line(fixp(arcPoint(cx, cy, r, deg)))
	}
	p.Line(fixp(arcPoint(cx, cy, r, endDeg)))
	p.Stop(true)
}

func arcPoint(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

func fixp(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
