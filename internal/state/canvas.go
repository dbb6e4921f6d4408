package state

import (
	"image"
	"image/color"
	"log"
)

// Tool is the drawing tool used by the next gesture.
type Tool int

const (
	ToolLine Tool = iota
	ToolRectangle
	ToolOval
	ToolFreehand
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	case ToolOval:
		return "oval"
	case ToolFreehand:
		return "freehand"
	case ToolErase:
		return "erase"
	}
	return "unknown"
}

// GestureState is the phase of the pointer gesture in progress.
type GestureState int

const (
	Idle GestureState = iota
	DrawingShape
	DrawingFreehand
	Erasing
)

func (g GestureState) String() string {
	switch g {
	case Idle:
		return "idle"
	case DrawingShape:
		return "drawing-shape"
	case DrawingFreehand:
		return "drawing-freehand"
	case Erasing:
		return "erasing"
	}
	return "unknown"
}

// Canvas owns the committed shapes and turns press/drag/release gestures
// into new shapes. It is driven from the UI goroutine and is not safe for
// concurrent use.
type Canvas struct {
	shapes []Shape

	tool       Tool
	color      color.Color
	dotted     bool
	filled     bool
	background color.Color

	gesture    GestureState
	start      image.Point
	last       image.Point
	points     []image.Point
	preview    Shape
	savedColor color.Color
}

func NewCanvas() *Canvas {
	return &Canvas{
		shapes:     make([]Shape, 0),
		tool:       ToolLine,
		color:      color.Black,
		background: color.White,
	}
}

func (c *Canvas) Tool() Tool { return c.tool }
func (c *Canvas) Color() color.Color { return c.color }
func (c *Canvas) Dotted() bool { return c.dotted }
func (c *Canvas) Filled() bool { return c.filled }
func (c *Canvas) Background() color.Color { return c.background }
func (c *Canvas) State() GestureState { return c.gesture }
func (c *Canvas) SetColor(clr color.Color) { c.color = clr }
func (c *Canvas) SetDotted(dotted bool) { c.dotted = dotted }
func (c *Canvas) SetFilled(filled bool) { c.filled = filled }
func (c *Canvas) SetBackground(bg color.Color) { c.background = bg }

// SetTool switches the tool. A gesture in progress is finished at the last
// pointer position first, as if the pointer had been released there.
func (c *Canvas) SetTool(t Tool) {
	if c.gesture != Idle {
		c.Release(c.last)
	}
	c.tool = t
}

// Len is the number of committed shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// Committed returns a copy of the committed shapes in insertion order.
func (c *Canvas) Committed() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// Last returns the most recently committed shape, or nil on an empty canvas.
func (c *Canvas) Last() Shape {
	if len(c.shapes) == 0 {
		return nil
	}
	return c.shapes[len(c.shapes)-1]
}

// Shapes returns the visible shape list: the committed shapes followed by
// the live preview of a line, rectangle or oval gesture.
func (c *Canvas) Shapes() []Shape {
	out := c.Committed()
	if c.preview != nil {
		out = append(out, c.preview)
	}
	return out
}

// Points returns a copy of the freehand or erase buffer of the active gesture.
func (c *Canvas) Points() []image.Point { return clonePoints(c.points) }

func (c *Canvas) Press(p image.Point) {
	if c.gesture != Idle {
		// A press without a release in between ends the previous gesture.
		c.Release(c.last)
	}
	c.start, c.last = p, p
	c.savedColor = c.color

	switch c.tool {
	case ToolFreehand:
		c.gesture = DrawingFreehand
		c.points = append(c.points[:0], p)
	case ToolErase:
		c.gesture = Erasing
		c.points = append(c.points[:0], p)
	default:
		c.gesture = DrawingShape
		c.preview = c.newShape(p, p)
	}
}

func (c *Canvas) Drag(p image.Point) {
	switch c.gesture {
	case Idle:
		return
	case DrawingShape:
		c.preview = c.newShape(c.start, p)
	case DrawingFreehand, Erasing:
		c.points = append(c.points, p)
	}
	c.last = p
}

func (c *Canvas) Release(p image.Point) {
	switch c.gesture {
	case Idle:
		return
	case DrawingShape:
		c.commit(c.newShape(c.start, p))
	case DrawingFreehand:
		c.commit(NewFreehand(c.points, c.color, c.dotted))
	case Erasing:
		c.commit(NewErase(c.points))
		c.color = c.savedColor
	}
	c.reset()
}

// Undo removes the most recent visible shape. During a line, rectangle or
// oval gesture that is the live preview, so the gesture is dropped.
func (c *Canvas) Undo() {
	if c.preview != nil {
		c.reset()
		return
	}
	if len(c.shapes) == 0 {
		return
	}
	c.shapes[len(c.shapes)-1] = nil
	c.shapes = c.shapes[:len(c.shapes)-1]
}

func (c *Canvas) ClearAll() {
	c.reset()
	c.shapes = make([]Shape, 0)
	log.Println("[CANVAS] Cleared all shapes")
}

// LoadImage appends img as an Image shape placed at the origin.
func (c *Canvas) LoadImage(img image.Image) {
	c.commit(NewImage(img, image.Point{}))
	b := img.Bounds()
	log.Printf("[CANVAS] Loaded image %dx%d", b.Dx(), b.Dy())
}

// Render draws the committed shapes in order, then whatever the active
// gesture shows.
func (c *Canvas) Render(s Surface) {
	for _, shape := range c.shapes {
		shape.Render(s)
	}
	switch {
	case c.preview != nil:
		c.preview.Render(s)
	case c.gesture == DrawingFreehand && len(c.points) > 1:
		s.Polyline(c.points, freehandStroke(c.color, c.dotted))
	case c.gesture == Erasing && len(c.points) > 1:
		s.Polyline(c.points, eraseStroke(s.Background()))
	}
}

func (c *Canvas) newShape(start, end image.Point) Shape {
	switch c.tool {
	case ToolRectangle:
		return NewRectangle(start, end, c.color, c.dotted, c.filled)
	case ToolOval:
		return NewOval(start, end, c.color, c.dotted, c.filled)
	default:
		return NewLine(start, end, c.color, c.dotted)
	}
}

func (c *Canvas) commit(s Shape) {
	c.shapes = append(c.shapes, s)
}

func (c *Canvas) reset() {
	c.gesture = Idle
	c.preview = nil
	c.points = c.points[:0]
}
