package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes img as a single page PDF whose page is exactly the image
// size, one point per pixel.
func WritePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return err
	}

	size := gofpdf.SizeType{Wd: float64(b.Dx()), Ht: float64(b.Dy())}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)
	p.ImageOptions("canvas", 0, 0, size.Wd, size.Ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
