// Package gfx is a small drawing surface over a monochrome OLED panel.
//
// The backend that talks to the panel is picked when the program is built, with exactly one
// of these build tags:
//
//	oled_native   in-tree SSD1306/SH1106 driver (github.com/BeatGlow/oled)
//	oled_periph   periph.io/x/devices/v3/ssd1306
//
// Building without a tag, or with both, fails to compile. Code using a [Device] never needs
// to know which backend is active; colors are the backend neutral [On] and [Off] tokens.
//
// Drawing goes to an in-memory buffer, [Device.Update] sends it to the panel. A Device is not
// safe for concurrent use.
package gfx

import (
	"errors"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// Panel defaults.
const (
	DefaultWidth  = 128
	DefaultHeight = 64

	// DefaultAddr is the 7-bit I²C address of the controller. Libraries that take the 8-bit
	// write address expect DefaultAddr<<1 (0x78).
	DefaultAddr = 0x3C
)

// Errors
var (
	ErrNotInitialized = errors.New("gfx: device used before Init")
	ErrInitialized    = errors.New("gfx: device already initialized")
	ErrNoBus          = errors.New("gfx: no I²C bus or SPI port configured")
	ErrNoDC           = errors.New("gfx: SPI needs a data/command pin")
	ErrController     = errors.New("gfx: controller not supported by backend")
)

// Color is a backend neutral pixel color.
type Color uint8

// Colors. Any value other than Off draws lit pixels.
const (
	Off Color = iota
	On
)

func (c Color) String() string {
	if c == Off {
		return "off"
	}
	return "on"
}

// Native returns the active backend's own color value for c.
func (c Color) Native() color.Color {
	if c == Off {
		return nativeOff
	}
	return nativeOn
}

// Controller is the display controller chip.
type Controller string

// Supported controllers.
const (
	SSD1306 Controller = "SSD1306"
	SSD1305 Controller = "SSD1305"
	SH1106  Controller = "SH1106"
)

// Config is the panel and bus configuration. It is fixed once the Device is created.
type Config struct {
	// Width and Height of the panel in pixels, zero selects DefaultWidth x DefaultHeight.
	Width  int
	Height int

	// Controller chip, zero selects SSD1306.
	Controller Controller

	// Flip rotates the output by 180°.
	Flip bool

	// Addr is the 7-bit I²C address, zero selects DefaultAddr.
	Addr uint8

	// Reset is the optional reset line; nil or gpio.INVALID means the panel has none.
	Reset gpio.PinOut

	// I2C bus the panel is on. Takes precedence over SPI.
	I2C i2c.Bus

	// SPI port and data/command line for 4-wire SPI panels. DC is required with SPI.
	SPI spi.Port
	DC  gpio.PinOut
}

// backend is implemented once per build tag.
type backend interface {
	init() error
	clear()
	update() error
	fillRoundRect(x, y, w, h, r int, c color.Color)
	fillTriangle(x0, y0, x1, y1, x2, y2 int, c color.Color)
	frame() image.Image
	close() error
}

// Device is a panel driven by the backend selected at build time.
type Device struct {
	config  Config
	backend backend
	ready   bool
}

// New returns an uninitialized Device; no bus traffic happens until Init.
func New(config Config) *Device {
	if config.Width == 0 {
		config.Width = DefaultWidth
	}
	if config.Height == 0 {
		config.Height = DefaultHeight
	}
	if config.Addr == 0 {
		config.Addr = DefaultAddr
	}
	if config.Controller == "" {
		config.Controller = SSD1306
	}
	return &Device{
		config:  config,
		backend: newBackend(&config),
	}
}

// Backend is the name of the backend compiled in.
func (d *Device) Backend() string {
	return backendName
}

// Bounds of the panel.
func (d *Device) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.config.Width, d.config.Height)
}

// Init resets the panel, if it has a reset line, and brings up the controller with an empty
// buffer. It may only be called once.
func (d *Device) Init() error {
	if d.ready {
		return ErrInitialized
	}
	if d.config.I2C == nil && d.config.SPI == nil {
		return ErrNoBus
	}
	if d.config.I2C == nil && (d.config.DC == nil || d.config.DC == gpio.INVALID) {
		return ErrNoDC
	}
	if err := pulseReset(d.config.Reset); err != nil {
		return err
	}
	if err := d.backend.init(); err != nil {
		return err
	}
	d.ready = true
	return nil
}

// Clear sets the whole buffer to Off. The panel is not touched until Update.
func (d *Device) Clear() error {
	if !d.ready {
		return ErrNotInitialized
	}
	d.backend.clear()
	return nil
}

// Update sends the buffer to the panel.
func (d *Device) Update() error {
	if !d.ready {
		return ErrNotInitialized
	}
	return d.backend.update()
}

// FillRoundRect draws a w x h rectangle at (x,y) with corners rounded by radius r. The
// radius is clamped to half the shorter side; pixels outside the panel are clipped.
func (d *Device) FillRoundRect(x, y, w, h, r int, c Color) error {
	if !d.ready {
		return ErrNotInitialized
	}
	d.backend.fillRoundRect(x, y, w, h, r, c.Native())
	return nil
}

// FillTriangle draws a filled triangle. Collinear points have no area and draw nothing.
func (d *Device) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) error {
	if !d.ready {
		return ErrNotInitialized
	}
	d.backend.fillTriangle(x0, y0, x1, y1, x2, y2, c.Native())
	return nil
}

// Frame is the live draw buffer, nil before Init. It must not be modified.
func (d *Device) Frame() image.Image {
	if !d.ready {
		return nil
	}
	return d.backend.frame()
}

// Close switches the panel off. The buses in Config are left open.
func (d *Device) Close() error {
	if !d.ready {
		return nil
	}
	d.ready = false
	return d.backend.close()
}

// IsOn reports whether c is a lit pixel color, for any backend's native colors.
func IsOn(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a != 0 && r+g+b >= 3*0x8000
}

func pulseReset(pin gpio.PinOut) error {
	if pin == nil || pin == gpio.INVALID {
		return nil
	}
	if err := pin.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	if err := pin.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}
