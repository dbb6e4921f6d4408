package main

import (
	"image"
	"log"

	"PaintBrush/internal/config"
	"PaintBrush/internal/share"
	"PaintBrush/internal/ui"

	"fyne.io/fyne/v2/app"
)

const appID = "io.localpaint.app"

func main() {
	a := app.NewWithID(appID)
	cfg := config.Load(a.Preferences())
	board := ui.NewBoard(cfg)

	if cfg.ShareEnabled {
		srv := share.NewServer(cfg.ShareThumbWidth)
		if err := srv.Start(cfg.SharePort); err != nil {
			log.Printf("Live view disabled: %v", err)
			board.SetStatus("Live view unavailable")
		} else {
			defer srv.Close()
			board.OnChange = func(img image.Image) {
				if err := srv.Publish(img); err != nil {
					log.Printf("[SHARE] Publish failed: %v", err)
				}
			}
			if err := srv.Publish(board.Snapshot()); err != nil {
				log.Printf("[SHARE] Publish failed: %v", err)
			}
			board.SetStatus("Live view at " + share.Link(cfg.SharePort))
		}
	}

	ui.RunApp(a, board)
}
