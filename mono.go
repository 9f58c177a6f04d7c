package oled

import (
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oled/pixel"
)

// monoDisplay holds the parts shared by the page addressed 1-bit controllers.
type monoDisplay struct {
	baseDisplay
	width    int
	height   int
	pages    int
	rotation Rotation
	halted   bool
}

func (d *monoDisplay) init(config *Config) error {
	d.MonoVerticalLSBImage = pixel.NewMonoVerticalLSBImage(config.Width, config.Height)
	d.width = config.Width
	d.height = config.Height
	d.pages = d.MonoVerticalLSBImage.Pages()
	d.rotation = config.Rotation
	return pulseReset(config.Reset)
}

func (d *monoDisplay) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}

func (d *monoDisplay) Show(show bool) error {
	if show {
		d.halted = false
		return d.command(ssd1xxxSetDisplayOn)
	}
	return d.command(ssd1xxxSetDisplayOff)
}

func (d *monoDisplay) SetContrast(level uint8) error {
	return d.command(ssd1xxxSetContrast, level)
}

// SetRotation flips the panel using the segment remap and COM scan direction, only 0° and
// 180° can be done by the controller.
func (d *monoDisplay) SetRotation(rotation Rotation) error {
	var segment, scan byte
	switch rotation % 4 {
	case NoRotation:
		segment, scan = ssd1xxxSetSegmentRemap, ssd1xxxSetComScanDec
	case Rotate180:
		segment, scan = ssd1xxxSetSegmentRemapOff, ssd1xxxSetComScanInc
	default:
		return ErrRotation
	}
	if err := d.command(segment); err != nil {
		return err
	}
	if err := d.command(scan); err != nil {
		return err
	}
	d.rotation = rotation % 4
	return nil
}

// Invert the display (black on white vs white on black).
func (d *monoDisplay) Invert(invert bool) error {
	if invert {
		return d.command(ssd1xxxSetInvertDisplay)
	}
	return d.command(ssd1xxxSetNormalDisplay)
}

// pulseReset toggles the optional reset line low for 10ms.
func pulseReset(pin gpio.PinOut) error {
	if pin == nil || pin == gpio.INVALID {
		return nil
	}
	if err := pin.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	if err := pin.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	return pin.Out(gpio.High)
}
