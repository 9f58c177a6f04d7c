//go:build oled_periph && !oled_native

package gfx

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/BeatGlow/oled/draw"
)

const backendName = "periph"

var (
	nativeOn  color.Color = image1bit.On
	nativeOff color.Color = image1bit.Off
)

// periphBackend draws into an image1bit buffer with the same rasterisers as the native
// backend and lets the periph.io driver push it to the panel.
type periphBackend struct {
	config *Config
	dev    *ssd1306.Dev
	img    *image1bit.VerticalLSB
}

func newBackend(config *Config) backend {
	return &periphBackend{config: config}
}

// addrBus sends every transaction to the configured address, whatever the driver asks for.
type addrBus struct {
	i2c.Bus
	addr uint16
}

func (b addrBus) Tx(_ uint16, w, r []byte) error {
	return b.Bus.Tx(b.addr, w, r)
}

func (b *periphBackend) init() (err error) {
	if b.config.Controller != SSD1306 {
		return ErrController
	}

	opts := ssd1306.DefaultOpts
	opts.W = b.config.Width
	opts.H = b.config.Height
	opts.Rotated = b.config.Flip
	opts.Sequential = b.config.Height == 32

	switch {
	case b.config.I2C != nil:
		b.dev, err = ssd1306.NewI2C(addrBus{Bus: b.config.I2C, addr: uint16(b.config.Addr)}, &opts)
	case b.config.SPI != nil:
		b.dev, err = ssd1306.NewSPI(b.config.SPI, b.config.DC, &opts)
	default:
		err = ErrNoBus
	}
	if err != nil {
		return
	}

	bounds := b.dev.Bounds()
	b.img = image1bit.NewVerticalLSB(bounds)
	return nil
}

func (b *periphBackend) clear() {
	for i := range b.img.Pix {
		b.img.Pix[i] = 0
	}
}

func (b *periphBackend) update() error {
	return b.dev.Draw(b.dev.Bounds(), b.img, image.Point{})
}

func (b *periphBackend) fillRoundRect(x, y, w, h, r int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.RoundedBox(b.img, image.Rect(x, y, x+w, y+h), r, c)
}

func (b *periphBackend) fillTriangle(x0, y0, x1, y1, x2, y2 int, c color.Color) {
	draw.FillTriangle(b.img, image.Pt(x0, y0), image.Pt(x1, y1), image.Pt(x2, y2), c)
}

func (b *periphBackend) frame() image.Image {
	return b.img
}

func (b *periphBackend) close() error {
	return b.dev.Halt()
}
