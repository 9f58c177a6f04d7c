//go:build oled_native && !oled_periph

package gfx

import (
	"image"
	"image/color"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/draw"
	"github.com/BeatGlow/oled/pixel"
)

const backendName = "native"

var (
	nativeOn  color.Color = pixel.On
	nativeOff color.Color = pixel.Off
)

// nativeBackend draws with the in-tree rasterisers straight into the driver's page buffer.
type nativeBackend struct {
	config  *Config
	display oled.Display
}

func newBackend(config *Config) backend {
	return &nativeBackend{config: config}
}

func (b *nativeBackend) init() (err error) {
	var c oled.Conn
	switch {
	case b.config.I2C != nil:
		c = oled.NewI2C(b.config.I2C, b.config.Addr)
	case b.config.SPI != nil:
		if c, err = oled.NewSPI(b.config.SPI, &oled.SPIConfig{DC: b.config.DC}); err != nil {
			return
		}
	default:
		return ErrNoBus
	}

	config := &oled.Config{
		Width:  b.config.Width,
		Height: b.config.Height,
	}
	if b.config.Flip {
		config.Rotation = oled.Rotate180
	}

	switch b.config.Controller {
	case SSD1306:
		b.display, err = oled.SSD1306(c, config)
	case SSD1305:
		b.display, err = oled.SSD1305(c, config)
	case SH1106:
		b.display, err = oled.SH1106(c, config)
	default:
		err = ErrController
	}
	if err != nil {
		_ = c.Close()
	}
	return
}

func (b *nativeBackend) clear() {
	b.display.Clear()
}

func (b *nativeBackend) update() error {
	return b.display.Refresh()
}

func (b *nativeBackend) fillRoundRect(x, y, w, h, r int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.RoundedBox(b.display, image.Rect(x, y, x+w, y+h), r, c)
}

func (b *nativeBackend) fillTriangle(x0, y0, x1, y1, x2, y2 int, c color.Color) {
	draw.FillTriangle(b.display, image.Pt(x0, y0), image.Pt(x1, y1), image.Pt(x2, y2), c)
}

func (b *nativeBackend) frame() image.Image {
	return b.display
}

func (b *nativeBackend) close() error {
	return b.display.Close()
}
