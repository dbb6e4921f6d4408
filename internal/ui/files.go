package ui

import (
	"fmt"
	"log"

	"PaintBrush/internal/export"

	"fyne.io/fyne/v2"
)

// SaveTo writes the flattened canvas to writer, as PDF when the target name
// ends in .pdf and as PNG otherwise. The canvas is not modified.
func (p *PaintWidget) SaveTo(writer fyne.URIWriteCloser) (err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", writer.URI().Name(), cerr)
		}
	}()

	name := writer.URI().Name()
	log.Printf("[FILE] Saving canvas to %s", name)
	if err := export.Write(writer, name, p.Snapshot()); err != nil {
		log.Printf("[FILE] Error saving %s: %v", name, err)
		return err
	}
	p.SetStatus("Drawing saved successfully!")
	return nil
}

// LoadFrom decodes the image in reader and appends it at the origin. On
// failure the canvas is left as it was.
func (p *PaintWidget) LoadFrom(reader fyne.URIReadCloser) error {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("[FILE] Error closing reader: %v", err)
		}
	}()

	name := reader.URI().Name()
	img, format, err := export.Decode(reader)
	if err != nil {
		log.Printf("[FILE] Error loading %s: %v", name, err)
		return fmt.Errorf("open %s: %w", name, err)
	}
	p.LoadImage(img)
	p.SetStatus(fmt.Sprintf("Opened %s (%s)", name, format))
	return nil
}
