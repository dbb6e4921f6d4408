package state

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestRectangleDragScenario(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolRectangle)

	c.Press(image.Pt(10, 10))
	c.Drag(image.Pt(50, 50))

	shapes := c.Shapes()
	require.Len(t, shapes, 1)
	rect, ok := shapes[0].(Rectangle)
	require.True(t, ok)
	assert.Equal(t, image.Rect(10, 10, 50, 50), rect.Box())
	assert.Equal(t, 40, rect.Box().Dx())
	assert.False(t, rect.Filled)
	assert.False(t, rect.Dotted)
	assert.Equal(t, color.Black, rect.Color)
	assert.Equal(t, 0, c.Len(), "preview is not committed before release")

	c.Release(image.Pt(60, 30))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, image.Rect(10, 10, 60, 30), c.Committed()[0].(Rectangle).Box())
	assert.Equal(t, Idle, c.State())
}

func TestDragReplacesPreview(t *testing.T) {
	c := NewCanvas()
	c.Press(image.Pt(0, 0))
	for i := 1; i <= 5; i++ {
		c.Drag(image.Pt(i*10, i))
	}

	shapes := c.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, image.Pt(50, 5), shapes[0].(Line).End)
}

func TestPressReleaseWithoutMovementCommitsZeroSizeShape(t *testing.T) {
	for _, tool := range []Tool{ToolLine, ToolRectangle, ToolOval} {
		t.Run(tool.String(), func(t *testing.T) {
			c := NewCanvas()
			c.SetTool(tool)
			c.Press(image.Pt(7, 7))
			c.Release(image.Pt(7, 7))

			require.Equal(t, 1, c.Len())
			s := c.Committed()[0]
			switch v := s.(type) {
			case Line:
				assert.Equal(t, v.Start, v.End)
			case Rectangle:
				assert.True(t, v.Box().Empty())
			case Oval:
				assert.True(t, v.Box().Empty())
			default:
				t.Fatalf("unexpected shape %T", s)
			}
		})
	}
}

func TestFreehandScenario(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolFreehand)

	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(5, 0))
	c.Drag(image.Pt(5, 5))
	assert.Equal(t, DrawingFreehand, c.State())
	assert.Empty(t, c.Shapes(), "no freehand shape exists before release")
	c.Release(image.Pt(5, 5))

	require.Equal(t, 1, c.Len())
	f, ok := c.Committed()[0].(Freehand)
	require.True(t, ok)
	assert.Equal(t, []image.Point{{0, 0}, {5, 0}, {5, 5}}, f.Points())
	assert.Empty(t, c.Points())
}

func TestFreehandPressReleaseCommitsSinglePoint(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolFreehand)
	c.Press(image.Pt(3, 4))
	c.Release(image.Pt(3, 4))

	require.Equal(t, 1, c.Len())
	f := c.Committed()[0].(Freehand)
	assert.Equal(t, []image.Point{{3, 4}}, f.Points())

	s := newRecordSurface()
	c.Render(s)
	assert.Empty(t, s.calls)
}

func TestEraseRestoresColor(t *testing.T) {
	c := NewCanvas()
	c.SetColor(red)
	c.SetTool(ToolErase)

	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(10, 0))
	assert.Equal(t, Erasing, c.State())
	c.SetColor(blue)
	c.Release(image.Pt(10, 0))

	require.Equal(t, 1, c.Len())
	e, ok := c.Committed()[0].(Erase)
	require.True(t, ok)
	assert.Equal(t, []image.Point{{0, 0}, {10, 0}}, e.Points())
	assert.Equal(t, red, c.Color())
}

func TestUndoUntilEmpty(t *testing.T) {
	c := NewCanvas()
	for _, tool := range []Tool{ToolLine, ToolRectangle, ToolOval, ToolFreehand, ToolErase} {
		c.SetTool(tool)
		c.Press(image.Pt(1, 1))
		c.Drag(image.Pt(20, 20))
		c.Release(image.Pt(20, 20))
	}
	c.LoadImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.Equal(t, 6, c.Len())

	assert.Equal(t, KindImage, c.Committed()[5].Kind())
	c.Undo()
	assert.Equal(t, KindErase, c.Committed()[4].Kind(), "undo removes the most recently appended shape")

	for c.Len() > 0 {
		c.Undo()
	}
	assert.Empty(t, c.Shapes())
}

func TestUndoOnEmptyCanvasIsNoop(t *testing.T) {
	c := NewCanvas()
	assert.NotPanics(t, c.Undo)
	assert.Equal(t, 0, c.Len())
}

func TestUndoDuringShapeGestureDropsPreview(t *testing.T) {
	c := NewCanvas()
	c.Press(image.Pt(0, 0))
	c.Release(image.Pt(4, 4))

	c.Press(image.Pt(10, 10))
	c.Drag(image.Pt(20, 20))
	c.Undo()

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, c.Len(), "committed shapes survive")

	c.Drag(image.Pt(30, 30))
	c.Release(image.Pt(30, 30))
	assert.Equal(t, 1, c.Len())
}

func TestClearAll(t *testing.T) {
	c := NewCanvas()
	c.ClearAll()
	assert.Equal(t, 0, c.Len())

	c.Press(image.Pt(0, 0))
	c.Release(image.Pt(4, 4))
	c.SetTool(ToolFreehand)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(1, 1))
	c.ClearAll()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Points())
}

func TestStrayEventsAreIgnored(t *testing.T) {
	c := NewCanvas()
	assert.NotPanics(t, func() {
		c.Drag(image.Pt(5, 5))
		c.Release(image.Pt(5, 5))
	})
	assert.Equal(t, 0, c.Len())
}

func TestSetToolFinishesGesture(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolOval)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(8, 6))
	c.SetTool(ToolFreehand)

	assert.Equal(t, Idle, c.State())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, image.Rect(0, 0, 8, 6), c.Committed()[0].(Oval).Box())
	assert.Equal(t, ToolFreehand, c.Tool())
}

func TestSetToolFinishesFreehandGesture(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolFreehand)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(4, 0))
	c.Drag(image.Pt(4, 4))
	c.SetTool(ToolLine)

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, ToolLine, c.Tool())
	assert.Empty(t, c.Points())
	require.Equal(t, 1, c.Len())
	f, ok := c.Committed()[0].(Freehand)
	require.True(t, ok)
	assert.Equal(t, []image.Point{{0, 0}, {4, 0}, {4, 4}}, f.Points())
}

func TestSetToolFinishesEraseGesture(t *testing.T) {
	c := NewCanvas()
	c.SetColor(red)
	c.SetTool(ToolErase)
	c.Press(image.Pt(1, 1))
	c.Drag(image.Pt(9, 1))
	c.SetTool(ToolRectangle)

	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Points())
	require.Equal(t, 1, c.Len())
	e, ok := c.Committed()[0].(Erase)
	require.True(t, ok)
	assert.Equal(t, []image.Point{{1, 1}, {9, 1}}, e.Points())
	assert.Equal(t, red, c.Color())
}

func TestSecondPressFinishesGesture(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolRectangle)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(10, 8))
	c.Press(image.Pt(20, 20))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, image.Rect(0, 0, 10, 8), c.Committed()[0].(Rectangle).Box())
	assert.Equal(t, DrawingShape, c.State())

	shapes := c.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, image.Rect(20, 20, 20, 20), shapes[1].(Rectangle).Box())

	c.Release(image.Pt(30, 25))
	require.Equal(t, 2, c.Len())
	assert.Equal(t, image.Rect(20, 20, 30, 25), c.Last().(Rectangle).Box())
}

func TestSecondPressFinishesFreehandGesture(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolFreehand)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(3, 3))
	c.Press(image.Pt(7, 7))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, []image.Point{{0, 0}, {3, 3}}, c.Last().(Freehand).Points())
	assert.Equal(t, DrawingFreehand, c.State())
	assert.Equal(t, []image.Point{{7, 7}}, c.Points())
}

func TestLastShape(t *testing.T) {
	c := NewCanvas()
	assert.Nil(t, c.Last())

	c.SetTool(ToolOval)
	c.Press(image.Pt(0, 0))
	c.Release(image.Pt(4, 4))
	c.SetTool(ToolLine)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(2, 2))
	assert.Equal(t, KindOval, c.Last().Kind(), "preview is not the last committed shape")

	c.Release(image.Pt(2, 2))
	assert.Equal(t, KindLine, c.Last().Kind())
	c.Undo()
	assert.Equal(t, KindOval, c.Last().Kind())
}

func TestStyleChangesDoNotTouchCommittedShapes(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolRectangle)
	c.Press(image.Pt(0, 0))
	c.Release(image.Pt(4, 4))

	c.SetColor(red)
	c.SetFilled(true)
	c.SetDotted(true)

	r := c.Committed()[0].(Rectangle)
	assert.Equal(t, color.Black, r.Color)
	assert.False(t, r.Filled)
	assert.False(t, r.Dotted)
}

func TestRenderOrderAndGesturePreview(t *testing.T) {
	c := NewCanvas()
	c.LoadImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	c.SetTool(ToolRectangle)
	c.Press(image.Pt(0, 0))
	c.Release(image.Pt(3, 3))

	c.SetTool(ToolFreehand)
	c.SetDotted(true)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(5, 0))

	s := newRecordSurface()
	c.Render(s)
	require.Len(t, s.calls, 3)
	assert.Equal(t, "image", s.calls[0].op)
	assert.Equal(t, image.Point{}, s.calls[0].at)
	assert.Equal(t, "rect", s.calls[1].op)
	assert.Equal(t, "polyline", s.calls[2].op)
	assert.Equal(t, FreehandWidth, s.calls[2].stroke.Width)
	assert.NotNil(t, s.calls[2].stroke.Dash)
}

func TestRenderErasePreviewUsesBackground(t *testing.T) {
	c := NewCanvas()
	c.SetTool(ToolErase)
	c.Press(image.Pt(0, 0))
	c.Drag(image.Pt(5, 5))

	s := newRecordSurface()
	s.bg = red
	c.Render(s)

	require.Len(t, s.calls, 1)
	assert.Equal(t, red, s.calls[0].stroke.Color)
	assert.Equal(t, EraseWidth, s.calls[0].stroke.Width)
}
