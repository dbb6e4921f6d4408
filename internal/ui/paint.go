package ui

import (
	"image"
	"image/color"
	"log"

	"PaintBrush/internal/raster"
	"PaintBrush/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// PaintWidget shows a state.Canvas and feeds it the pointer gestures made
// on it. Toolbar buttons call its command methods.
type PaintWidget struct {
	widget.BaseWidget
	canvas        *state.Canvas
	width, height int
	statusBar     *widget.Label

	// OnChange is called with the flattened canvas after every change to
	// the committed shapes or the background.
	OnChange func(img image.Image)
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)

func NewPaintWidget(width, height int) *PaintWidget {
	p := &PaintWidget{
		canvas:    state.NewCanvas(),
		width:     width,
		height:    height,
		statusBar: widget.NewLabel("Ready"),
	}
	p.ExtendBaseWidget(p)
	return p
}

// Canvas exposes the engine for read access, e.g. in tests.
func (p *PaintWidget) Canvas() *state.Canvas { return p.canvas }

func (p *PaintWidget) StatusBar() *widget.Label { return p.statusBar }

func (p *PaintWidget) SetStatus(text string) {
	p.statusBar.SetText(text)
}

// Snapshot flattens the canvas, background included, at the widget's
// canvas size.
func (p *PaintWidget) Snapshot() *image.RGBA {
	return raster.Render(p.canvas, p.width, p.height)
}

func (p *PaintWidget) SetTool(t state.Tool) {
	committed := p.canvas.Len()
	p.canvas.SetTool(t)
	p.afterCommand(committed != p.canvas.Len())
}

func (p *PaintWidget) SetColor(c color.Color) { p.canvas.SetColor(c) }
func (p *PaintWidget) SetDotted(dotted bool) { p.canvas.SetDotted(dotted) }
func (p *PaintWidget) SetFilled(filled bool) { p.canvas.SetFilled(filled) }

func (p *PaintWidget) SetBackground(c color.Color) {
	p.canvas.SetBackground(c)
	p.afterCommand(true)
}

func (p *PaintWidget) Undo() {
	p.canvas.Undo()
	p.afterCommand(true)
}

func (p *PaintWidget) ClearAll() {
	p.canvas.ClearAll()
	p.afterCommand(true)
}

func (p *PaintWidget) LoadImage(img image.Image) {
	p.canvas.LoadImage(img)
	p.afterCommand(true)
}

func (p *PaintWidget) afterCommand(changed bool) {
	p.Refresh()
	if changed {
		p.notifyChange()
	}
}

func (p *PaintWidget) notifyChange() {
	if p.OnChange != nil {
		p.OnChange(p.Snapshot())
	}
}

func toPoint(pos fyne.Position) image.Point {
	return image.Pt(int(pos.X), int(pos.Y))
}

func (p *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.canvas.Press(toPoint(e.Position))
	p.Refresh()
}

func (p *PaintWidget) Dragged(e *fyne.DragEvent) {
	p.canvas.Drag(toPoint(e.Position))
	p.Refresh()
}

func (p *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || p.canvas.State() == state.Idle {
		return
	}
	p.canvas.Release(toPoint(e.Position))
	log.Printf("[CANVAS] Committed shape %d (%s)", p.canvas.Len(), p.canvas.Last().Kind())
	p.Refresh()
	p.notifyChange()
}

func (p *PaintWidget) MouseIn(*desktop.MouseEvent) {}
func (p *PaintWidget) MouseOut() {}
func (p *PaintWidget) MouseMoved(*desktop.MouseEvent) {}
func (p *PaintWidget) DragEnd() {}

func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &paintRenderer{paint: p}
	r.image = canvas.NewRaster(func(w, h int) image.Image {
		return p.Snapshot()
	})
	return r
}

type paintRenderer struct {
	paint *PaintWidget
	image *canvas.Raster
}

func (r *paintRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

// Layout keeps the raster at the canvas size, so widget positions are
// canvas pixel coordinates.
func (r *paintRenderer) Layout(fyne.Size) {
	r.image.Resize(r.MinSize())
}

func (r *paintRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.paint.width), float32(r.paint.height))
}

func (r *paintRenderer) Refresh() {
	r.image.Refresh()
}

func (r *paintRenderer) Destroy() {}
