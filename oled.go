// Package oled contains drivers for monochrome SSD1306 and SH1106 OLED display controllers.
//
// A driver keeps a [pixel.MonoVerticalLSBImage] draw buffer in the controller's own memory
// layout; drawing only touches the buffer, Refresh sends it to the panel.
package oled

import (
	"errors"
	"image/draw"
	"log"
	"os"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oled/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf("oled: "+format, args...)
	}
}

// Errors
var (
	ErrRotation = errors.New("oled: rotation not supported by controller")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Display is an OLED display.
type Display interface {
	draw.Image

	// Close turns the display off and closes the connection.
	Close() error

	// Clear the display buffer.
	Clear()

	// Show toggles the display on or off.
	Show(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// Invert switches between lit pixels on black and unlit pixels on white.
	Invert(bool) error

	// SetRotation adjusts the pixel rotation.
	SetRotation(Rotation) error

	// Refresh sends the display buffer to the panel.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// Reset pin, optional. Leave nil (or [gpio.INVALID]) if the panel has no reset line.
	Reset gpio.PinOut
}

type baseDisplay struct {
	*pixel.MonoVerticalLSBImage
	c Conn
}

func (d *baseDisplay) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *baseDisplay) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}
