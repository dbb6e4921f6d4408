package config

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Preference keys.
const (
	KeyCanvasWidth     = "canvas.width"
	KeyCanvasHeight    = "canvas.height"
	KeyBackground      = "canvas.background"
	KeyBrushColor      = "canvas.brush"
	KeyShareEnabled    = "share.enabled"
	KeySharePort       = "share.port"
	KeyShareThumbWidth = "share.thumbWidth"
)

// Config holds the application settings. Colors are stored as 0xRRGGBB.
type Config struct {
	CanvasWidth     int
	CanvasHeight    int
	Background      color.NRGBA
	BrushColor      color.NRGBA
	ShareEnabled    bool
	SharePort       int
	ShareThumbWidth int
}

func Default() Config {
	return Config{
		CanvasWidth:     1024,
		CanvasHeight:    700,
		Background:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		BrushColor:      color.NRGBA{A: 255},
		SharePort:       8888,
		ShareThumbWidth: 256,
	}
}

// Load reads the settings from the app preferences, falling back to the
// defaults for anything unset or out of range.
func Load(p fyne.Preferences) Config {
	d := Default()
	c := Config{
		CanvasWidth:     positive(p.IntWithFallback(KeyCanvasWidth, d.CanvasWidth), d.CanvasWidth),
		CanvasHeight:    positive(p.IntWithFallback(KeyCanvasHeight, d.CanvasHeight), d.CanvasHeight),
		Background:      FromHex(p.IntWithFallback(KeyBackground, ToHex(d.Background))),
		BrushColor:      FromHex(p.IntWithFallback(KeyBrushColor, ToHex(d.BrushColor))),
		ShareEnabled:    p.BoolWithFallback(KeyShareEnabled, d.ShareEnabled),
		SharePort:       p.IntWithFallback(KeySharePort, d.SharePort),
		ShareThumbWidth: positive(p.IntWithFallback(KeyShareThumbWidth, d.ShareThumbWidth), d.ShareThumbWidth),
	}
	if c.SharePort <= 0 || c.SharePort > 65535 {
		c.SharePort = d.SharePort
	}
	return c
}

// Save writes the settings back to the preferences.
func (c Config) Save(p fyne.Preferences) {
	p.SetInt(KeyCanvasWidth, c.CanvasWidth)
	p.SetInt(KeyCanvasHeight, c.CanvasHeight)
	p.SetInt(KeyBackground, ToHex(c.Background))
	p.SetInt(KeyBrushColor, ToHex(c.BrushColor))
	p.SetBool(KeyShareEnabled, c.ShareEnabled)
	p.SetInt(KeySharePort, c.SharePort)
	p.SetInt(KeyShareThumbWidth, c.ShareThumbWidth)
}

func FromHex(v int) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func ToHex(c color.Color) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R)<<16 | int(n.G)<<8 | int(n.B)
}

func positive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
