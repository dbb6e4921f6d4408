package ui

import (
	"image/color"

	"PaintBrush/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette offered for both the brush and the background.
var palette = []color.Color{
	color.Black,
	color.White,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 200, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 255, A: 255},
	color.NRGBA{R: 255, G: 128, A: 255},
	color.NRGBA{R: 128, B: 200, A: 255},
}

var openExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func swatches(onTapped func(color.Color)) *fyne.Container {
	box := container.NewHBox()
	for _, c := range palette {
		box.Add(newColorSwatch(c, onTapped))
	}
	return box
}

// NewToolbar builds the controls for board. Dialogs are parented to win.
func NewToolbar(board *PaintWidget, win fyne.Window) fyne.CanvasObject {
	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { board.SetTool(state.ToolFreehand) }),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), func() { board.SetTool(state.ToolLine) }),
		widget.NewToolbarAction(theme.CheckButtonIcon(), func() { board.SetTool(state.ToolRectangle) }),
		widget.NewToolbarAction(theme.RadioButtonIcon(), func() { board.SetTool(state.ToolOval) }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { board.SetTool(state.ToolErase) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.ClearAll),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { showSave(board, win) }),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { showOpen(board, win) }),
	)

	dotted, filled := styleChecks(board)

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Tool:"),
			tools,
			widget.NewSeparator(),
			dotted,
			filled,
			layout.NewSpacer(),
		),
		container.NewHBox(
			widget.NewLabel("Brush:"),
			swatches(board.SetColor),
			widget.NewSeparator(),
			widget.NewLabel("Background:"),
			swatches(board.SetBackground),
			layout.NewSpacer(),
		),
	)
}

// styleChecks returns the Dotted and Filled boxes. Ticking one unticks the
// other, which also clears that flag on the board.
func styleChecks(board *PaintWidget) (dotted, filled *widget.Check) {
	dotted = widget.NewCheck("Dotted", nil)
	filled = widget.NewCheck("Filled", nil)
	dotted.OnChanged = func(on bool) {
		board.SetDotted(on)
		if on {
			filled.SetChecked(false)
		}
	}
	filled.OnChanged = func(on bool) {
		board.SetFilled(on)
		if on {
			dotted.SetChecked(false)
		}
	}
	return dotted, filled
}

func showSave(board *PaintWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		if err := board.SaveTo(writer); err != nil {
			dialog.ShowError(err, win)
			return
		}
		dialog.ShowInformation("Save", "Drawing saved successfully!", win)
	}, win)
	d.SetFileName("drawing.png")
	d.Show()
}

func showOpen(board *PaintWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return // cancelled
		}
		if err := board.LoadFrom(reader); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter(openExtensions))
	d.Show()
}
