package oled

import (
	"fmt"
)

const (
	sh1106DefaultWidth  = 128
	sh1106DefaultHeight = 64

	// The SH1106 has 132 columns of RAM, panels are wired to the middle 128.
	sh1106ColumnOffset = 2
)

type sh1106 struct {
	monoDisplay
}

// SH1106 is a driver for the Sino Wealth SH1106 OLED display.
//
// A zero width or height in config selects the 128x64 panel.
func SH1106(conn Conn, config *Config) (Display, error) {
	d := &sh1106{
		monoDisplay: monoDisplay{
			baseDisplay: baseDisplay{
				c: conn,
			},
		},
	}

	if config.Width == 0 {
		config.Width = sh1106DefaultWidth
	}
	if config.Height == 0 {
		config.Height = sh1106DefaultHeight
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *sh1106) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("SH1106 OLED %dx%d", bounds.Dx(), bounds.Dy())
}

func (d *sh1106) init(config *Config) (err error) {
	var (
		multiplexRatio byte
		displayOffset  byte
	)
	switch {
	case config.Width == 128 && config.Height == 32:
		multiplexRatio, displayOffset = 0x1f, 0x0f
	case config.Width == 128 && config.Height == 64:
		multiplexRatio, displayOffset = 0x3f, 0x00
	case config.Width == 128 && config.Height == 128:
		multiplexRatio, displayOffset = 0x7f, 0x02
	default:
		return fmt.Errorf("oled: SH1106 unsupported size %dx%d", config.Width, config.Height)
	}

	// init base
	if err = d.monoDisplay.init(config); err != nil {
		return
	}

	// init display
	if err = d.command(ssd1xxxSetDisplayOff); err != nil {
		return
	}
	for _, cmd := range [][]byte{
		{ssd1xxxSetDisplayClockDiv, 0x80},
		{ssd1xxxSetMultiplexRatio, multiplexRatio},
		{ssd1xxxSetDisplayOffset, displayOffset},
		{ssd1xxxSetStartLine},
		{ssd1xxxSetChargePump, 0x14},
		{ssd1xxxSetComPins, 0x12},
		{ssd1xxxSetPrecharge, 0x22},
		{ssd1xxxSetVCOMDeselect, 0x35},
		{ssd1xxxSetDisplayAllOnResume},
		{ssd1xxxSetNormalDisplay},
	} {
		if err = d.command(cmd[0], cmd[1:]...); err != nil {
			return
		}
	}

	if err = d.SetRotation(config.Rotation); err != nil {
		return
	}
	if err = d.SetContrast(0x7F); err != nil {
		return
	}
	if err = d.Refresh(); err != nil {
		return
	}
	if err = d.Show(true); err != nil {
		return
	}

	debugf("%s initialized", d)
	return
}

// Refresh sends the buffer one page at a time; the SH1106 only supports page addressing.
func (d *sh1106) Refresh() (err error) {
	for page := 0; page < d.pages; page++ {
		if err = d.command(ssd1xxxSetPageStart | byte(page&0xf)); err != nil {
			return
		}
		if err = d.command(ssd1xxxSetLowColumn | sh1106ColumnOffset&0xf); err != nil {
			return
		}
		if err = d.command(ssd1xxxSetHighColumn | sh1106ColumnOffset>>4); err != nil {
			return
		}
		if err = d.data(d.Page(page)...); err != nil {
			return
		}
	}
	return nil
}
