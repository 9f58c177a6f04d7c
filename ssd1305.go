package oled

import (
	"fmt"
)

const (
	ssd1305DefaultWidth    = 128
	ssd1305DefaultHeight   = 32
	ssd1305SetLUT          = 0x91
	ssd1305SetMasterConfig = 0xAD
	ssd1305SetAreaColor    = 0xD8
)

type ssd1305 struct {
	monoDisplay
	colOffset byte
}

// SSD1305 is a driver for the Solomon Systech SSD1305 OLED display.
//
// A zero width or height in config selects the 128x32 panel.
func SSD1305(conn Conn, config *Config) (Display, error) {
	d := &ssd1305{
		monoDisplay: monoDisplay{
			baseDisplay: baseDisplay{
				c: conn,
			},
		},
	}

	if config.Width == 0 {
		config.Width = ssd1305DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1305DefaultHeight
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *ssd1305) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("SSD1305 OLED %dx%d", bounds.Dx(), bounds.Dy())
}

func (d *ssd1305) init(config *Config) (err error) {
	switch {
	case config.Width == 128 && config.Height == 32:
		d.colOffset = 0
	case config.Width == 128 && config.Height == 64:
		d.colOffset = 4
	default:
		return fmt.Errorf("oled: SSD1305 unsupported size %dx%d", config.Width, config.Height)
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
		{ssd1xxxSetStartLine},
		{ssd1xxxSetNormalDisplay},
		{ssd1xxxSetMultiplexRatio, byte(config.Height - 1)},
		{ssd1305SetMasterConfig, 0x8E},
		{ssd1xxxSetDisplayOffset, 0x40},
		{ssd1xxxSetDisplayClockDiv, 0xF0},
		{ssd1305SetAreaColor, 0x05},
		{ssd1xxxSetPrecharge, 0xF1},
		{ssd1xxxSetComPins, 0x12},
		{ssd1305SetLUT, 0x3F, 0x3F, 0x3F, 0x3F},
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

// Refresh sends the buffer one page at a time.
func (d *ssd1305) Refresh() (err error) {
	for page := 0; page < d.pages; page++ {
		if err = d.command(ssd1xxxSetPageStart | byte(page&0x7)); err != nil {
			return
		}
		if err = d.command(ssd1xxxSetLowColumn | d.colOffset&0xf); err != nil {
			return
		}
		if err = d.command(ssd1xxxSetHighColumn | d.colOffset>>4); err != nil {
			return
		}
		if err = d.data(d.Page(page)...); err != nil {
			return
		}
	}
	return nil
}
