package ui

import (
	"PaintBrush/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// NewBoard creates the paint widget with the configured size and colors.
func NewBoard(cfg config.Config) *PaintWidget {
	board := NewPaintWidget(cfg.CanvasWidth, cfg.CanvasHeight)
	board.canvas.SetBackground(cfg.Background)
	board.canvas.SetColor(cfg.BrushColor)
	return board
}

// RunApp shows the main window and blocks until it is closed.
func RunApp(a fyne.App, board *PaintWidget) {
	myWindow := a.NewWindow("Local Paint")
	myWindow.Resize(fyne.NewSize(float32(board.width), float32(board.height)+120))

	// The toolbar gets the board it drives at construction.
	toolbar := NewToolbar(board, myWindow)

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, container.NewScroll(board))

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
