//go:build oled_periph && !oled_native

package gfx

import (
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestPeriphColors(t *testing.T) {
	if v := On.Native(); v != image1bit.On {
		t.Errorf("expected On to be image1bit.On, got %#+v", v)
	}
	if v := Off.Native(); v != image1bit.Off {
		t.Errorf("expected Off to be image1bit.Off, got %#+v", v)
	}
	if v := New(Config{}).Backend(); v != "periph" {
		t.Errorf("expected periph backend, got %q", v)
	}
}

func TestPeriphFrame(t *testing.T) {
	d, _ := newTestDevice(t, Config{})
	if _, ok := d.Frame().(*image1bit.VerticalLSB); !ok {
		t.Errorf("expected an image1bit frame, got %T", d.Frame())
	}
}

func TestPeriphController(t *testing.T) {
	d := New(Config{I2C: &i2ctest.Record{}, Controller: SH1106})
	if err := d.Init(); err != ErrController {
		t.Fatalf("expected ErrController, got %v", err)
	}
}
