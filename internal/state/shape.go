package state

import (
	"image"
	"image/color"
)

// Kind identifies a shape variant.
type Kind int

const (
	KindLine Kind = iota
	KindRectangle
	KindOval
	KindFreehand
	KindErase
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindOval:
		return "oval"
	case KindFreehand:
		return "freehand"
	case KindErase:
		return "erase"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Stroke widths and dash pattern used by the shapes.
const (
	ShapeWidth    = 2.0
	FreehandWidth = 5.0
	EraseWidth    = 20.0
)

var dotPattern = []float64{3, 3}

// Cap selects how open stroke ends are drawn.
type Cap int

const (
	CapButt Cap = iota
	CapSquare
)

// Stroke describes how an outline is drawn.
type Stroke struct {
	Color color.Color
	Width float64
	Dash  []float64 // nil for a solid stroke
	Cap   Cap
}

// Surface is a drawing target that shapes render onto.
type Surface interface {
	Background() color.Color
	Polyline(points []image.Point, st Stroke)
	Rect(box image.Rectangle, st Stroke, filled bool)
	Ellipse(box image.Rectangle, st Stroke, filled bool)
	Image(img image.Image, at image.Point)
}

// Shape is an immutable drawn primitive.
type Shape interface {
	Kind() Kind
	Render(s Surface)
}

func strokeFor(c color.Color, width float64, dotted bool, capMode Cap) Stroke {
	st := Stroke{Color: c, Width: width, Cap: capMode}
	if dotted {
		st.Dash = append([]float64(nil), dotPattern...)
	}
	return st
}

// Line is a straight segment.
type Line struct {
	Start, End image.Point
	Color      color.Color
	Dotted     bool
}

func NewLine(start, end image.Point, c color.Color, dotted bool) Line {
	return Line{Start: start, End: end, Color: c, Dotted: dotted}
}

func (l Line) Kind() Kind { return KindLine }

func (l Line) Render(s Surface) {
	s.Polyline([]image.Point{l.Start, l.End}, strokeFor(l.Color, ShapeWidth, l.Dotted, CapButt))
}

// Rectangle is an axis aligned box spanned by two corners.
type Rectangle struct {
	Start, End image.Point
	Color      color.Color
	Dotted     bool
	Filled     bool
}

func NewRectangle(start, end image.Point, c color.Color, dotted, filled bool) Rectangle {
	return Rectangle{Start: start, End: end, Color: c, Dotted: dotted, Filled: filled}
}

func (r Rectangle) Kind() Kind { return KindRectangle }

// Box returns the normalized rectangle; it does not depend on which corner
// the gesture started from.
func (r Rectangle) Box() image.Rectangle { return image.Rect(r.Start.X, r.Start.Y, r.End.X, r.End.Y) }

func (r Rectangle) Render(s Surface) {
	s.Rect(r.Box(), strokeFor(r.Color, ShapeWidth, r.Dotted, CapButt), r.Filled)
}

// Oval is the ellipse inscribed in the box spanned by two corners.
type Oval struct {
	Start, End image.Point
	Color      color.Color
	Dotted     bool
	Filled     bool
}

func NewOval(start, end image.Point, c color.Color, dotted, filled bool) Oval {
	return Oval{Start: start, End: end, Color: c, Dotted: dotted, Filled: filled}
}

func (o Oval) Kind() Kind { return KindOval }

func (o Oval) Box() image.Rectangle { return image.Rect(o.Start.X, o.Start.Y, o.End.X, o.End.Y) }

func (o Oval) Render(s Surface) {
	s.Ellipse(o.Box(), strokeFor(o.Color, ShapeWidth, o.Dotted, CapButt), o.Filled)
}

// Freehand is a polyline through the points of a freehand gesture.
type Freehand struct {
	points []image.Point
	Color  color.Color
	Dotted bool
}

// NewFreehand copies points, so later changes to the caller's buffer do not
// leak into the shape.
func NewFreehand(points []image.Point, c color.Color, dotted bool) Freehand {
	return Freehand{points: clonePoints(points), Color: c, Dotted: dotted}
}

func (f Freehand) Kind() Kind { return KindFreehand }

func (f Freehand) Points() []image.Point { return clonePoints(f.points) }

func (f Freehand) Render(s Surface) {
	if len(f.points) < 2 {
		return
	}
	s.Polyline(f.points, freehandStroke(f.Color, f.Dotted))
}

// freehandStroke uses square caps for solid strokes and butt caps for
// dotted ones.
func freehandStroke(c color.Color, dotted bool) Stroke {
	capMode := CapSquare
	if dotted {
		capMode = CapButt
	}
	return strokeFor(c, FreehandWidth, dotted, capMode)
}

// Erase paints its stroke in the surface background color. It covers what
// is below it instead of clearing pixels.
type Erase struct {
	points []image.Point
}

func NewErase(points []image.Point) Erase {
	return Erase{points: clonePoints(points)}
}

func (e Erase) Kind() Kind { return KindErase }

func (e Erase) Points() []image.Point { return clonePoints(e.points) }

func (e Erase) Render(s Surface) {
	if len(e.points) < 2 {
		return
	}
	s.Polyline(e.points, eraseStroke(s.Background()))
}

func eraseStroke(bg color.Color) Stroke {
	return Stroke{Color: bg, Width: EraseWidth, Cap: CapSquare}
}

// Image is a bitmap blitted unscaled at At.
type Image struct {
	Bitmap image.Image
	At     image.Point
}

func NewImage(img image.Image, at image.Point) Image {
	return Image{Bitmap: img, At: at}
}

func (i Image) Kind() Kind { return KindImage }

func (i Image) Render(s Surface) {
	if i.Bitmap == nil {
		return
	}
	s.Image(i.Bitmap, i.At)
}

func clonePoints(points []image.Point) []image.Point {
	out := make([]image.Point, len(points))
	copy(out, points)
	return out
}
