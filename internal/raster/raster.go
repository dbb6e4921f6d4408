// Package raster draws canvas shapes into an RGBA image with the rasterx
// scan converter.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"PaintBrush/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

const miterLimit = 10

// Surface is a state.Surface backed by an *image.RGBA.
type Surface struct {
	img *image.RGBA
	bg  color.Color
}

var _ state.Surface = (*Surface)(nil)

// New returns a width x height surface filled with bg.
func New(width, height int, bg color.Color) *Surface {
	if bg == nil {
		bg = color.White
	}
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height)), bg: bg}
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return s
}

// Render flattens the canvas, background included, into a new image.
func Render(c *state.Canvas, width, height int) *image.RGBA {
	s := New(width, height, c.Background())
	c.Render(s)
	return s.img
}

func (s *Surface) RGBA() *image.RGBA { return s.img }

func (s *Surface) Background() color.Color { return s.bg }

func (s *Surface) Polyline(points []image.Point, st state.Stroke) {
	s.stroke(points, false, st)
}

func (s *Surface) Rect(box image.Rectangle, st state.Stroke, filled bool) {
	if filled {
		draw.Draw(s.img, box, &image.Uniform{C: st.Color}, image.Point{}, draw.Over)
		return
	}
	if box.Dx() == 0 || box.Dy() == 0 {
		s.stroke([]image.Point{box.Min, box.Max}, false, st)
		return
	}
	s.stroke([]image.Point{
		box.Min,
		image.Pt(box.Max.X, box.Min.Y),
		box.Max,
		image.Pt(box.Min.X, box.Max.Y),
	}, true, st)
}

func (s *Surface) Ellipse(box image.Rectangle, st state.Stroke, filled bool) {
	if box.Dx() == 0 || box.Dy() == 0 {
		// A flat ellipse is a segment along its box; it has no area to fill.
		if !filled {
			s.stroke([]image.Point{box.Min, box.Max}, false, st)
		}
		return
	}
	rx, ry := float64(box.Dx())/2, float64(box.Dy())/2
	cx, cy := float64(box.Min.X)+rx, float64(box.Min.Y)+ry
	if filled {
		f := rasterx.NewFiller(s.img.Bounds().Dx(), s.img.Bounds().Dy(), s.scanner())
		f.SetColor(st.Color)
		rasterx.AddEllipse(cx, cy, rx, ry, 0, f)
		f.Draw()
		return
	}
	d := s.dasher(st)
	rasterx.AddEllipse(cx, cy, rx, ry, 0, d)
	d.Draw()
}

func (s *Surface) Image(img image.Image, at image.Point) {
	b := img.Bounds()
	draw.Draw(s.img, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
}

// stroke outlines the path through points. Repeated points are dropped; a
// path that never moves draws nothing.
func (s *Surface) stroke(points []image.Point, closed bool, st state.Stroke) {
	path := make([]image.Point, 0, len(points))
	for _, p := range points {
		if len(path) == 0 || path[len(path)-1] != p {
			path = append(path, p)
		}
	}
	if len(path) < 2 {
		return
	}
	d := s.dasher(st)
	d.Start(toFixed(path[0]))
	for _, p := range path[1:] {
		d.Line(toFixed(p))
	}
	d.Stop(closed)
	d.Draw()
}

func (s *Surface) scanner() *rasterx.ScannerGV {
	b := s.img.Bounds()
	return rasterx.NewScannerGV(b.Dx(), b.Dy(), s.img, b)
}

func (s *Surface) dasher(st state.Stroke) *rasterx.Dasher {
	b := s.img.Bounds()
	d := rasterx.NewDasher(b.Dx(), b.Dy(), s.scanner())
	var capFn rasterx.CapFunc = rasterx.ButtCap
	if st.Cap == state.CapSquare {
		capFn = rasterx.SquareCap
	}
	d.SetStroke(
		fixed.Int26_6(st.Width*64),
		fixed.Int26_6(miterLimit*64),
		capFn, capFn, nil, rasterx.Miter,
		st.Dash, 0)
	d.SetColor(st.Color)
	return d
}

func toFixed(p image.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(p.X), Y: fixed.I(p.Y)}
}
