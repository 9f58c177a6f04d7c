package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled/gfx"
	"github.com/BeatGlow/oled/pixel"
)

func main() {
	widthFlag := flag.Int("width", gfx.DefaultWidth, "Display width")
	heightFlag := flag.Int("height", gfx.DefaultHeight, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", -1, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", gfx.DefaultAddr, "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	flipFlag := flag.Bool("flip", false, "Rotate the display by 180°")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bus> <driver>\n", os.Args[0])
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	config := gfx.Config{
		Width:      *widthFlag,
		Height:     *heightFlag,
		Controller: gfx.Controller(strings.ToUpper(flag.Arg(1))),
		Flip:       *flipFlag,
		Addr:       uint8(*i2cAddrFlag),
	}
	if *resetPinFlag != "" {
		config.Reset = gpioreg.ByName(*resetPinFlag)
	}

	switch busType := flag.Arg(0); busType {
	case "i2c":
		name := ""
		if *i2cDeviceFlag >= 0 {
			name = strconv.Itoa(*i2cDeviceFlag)
		}
		bus, err := i2creg.Open(name)
		if err != nil {
			fatal(err)
		}
		defer bus.Close()
		config.I2C = bus
	case "spi":
		port, err := spireg.Open(fmt.Sprintf("SPI%d.%d", *spiBusFlag, *spiDeviceFlag))
		if err != nil {
			fatal(err)
		}
		defer port.Close()
		config.SPI = port
		config.DC = gpioreg.ByName(*dcPinFlag)
	default:
		fatal(fmt.Errorf("unsupported bus type %q", busType))
	}

	output := gfx.New(config)
	if err := output.Init(); err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using %s backend, %s at %s\n", output.Backend(), config.Controller, output.Bounds())

	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
		r      = output.Bounds()
		name   = label(output.Backend())
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for {
		if err := output.Clear(); err != nil {
			fatal(err)
		}

		// Frame with a hollow center
		must(output.FillRoundRect(0, 0, r.Dx(), r.Dy(), 8, gfx.On))
		must(output.FillRoundRect(2, 2, r.Dx()-4, r.Dy()-4, 6, gfx.Off))

		// Bouncing box and a spinning-ish triangle
		x := offset % (2 * (r.Dx() - 24))
		if x > r.Dx()-24 {
			x = 2*(r.Dx()-24) - x
		}
		must(output.FillRoundRect(x+4, 6, 16, 16, offset%9, gfx.On))

		cx, cy, s := r.Dx()/2, r.Dy()*2/3, r.Dy()/5
		d := offset%(2*s) - s
		must(output.FillTriangle(cx-s, cy+s, cx+s, cy+s, cx+d, cy-s, gfx.On))

		// Backend name in the bottom left corner
		for _, p := range name {
			must(output.FillRoundRect(6+p.X, r.Dy()-name.height()-4+p.Y, 1, 1, 0, gfx.On))
		}

		if err := output.Update(); err != nil {
			fatal(err)
		}

		offset++
		<-ticker.C
	}
}

type glyphs []image.Point

func (g glyphs) height() (h int) {
	for _, p := range g {
		h = max(h, p.Y+1)
	}
	return
}

// label renders text in the 7x13 bitmap font and returns the lit pixels.
func label(text string) glyphs {
	face := basicfont.Face7x13
	img := pixel.NewMonoImage(font.MeasureString(face, text).Ceil(), face.Height)
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pixel.On),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	var out glyphs
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if gfx.IsOn(img.At(x, y)) {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}

func must(err error) {
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
