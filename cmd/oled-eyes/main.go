// Command oled-eyes animates robot eyes on an OLED panel, driven by a host over a serial line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/antigloss/go/logger"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled/eyes"
	"github.com/BeatGlow/oled/gfx"
	"github.com/BeatGlow/oled/internal/config"
	"github.com/BeatGlow/oled/internal/logging"
	"github.com/BeatGlow/oled/internal/serial"
	"github.com/BeatGlow/oled/remote"
)

type stdio struct {
	io.Reader
	io.Writer
}

func main() {
	configFlag := flag.String("config", "/etc/oled-eyes.yaml", "Configuration file")
	portFlag := flag.String("port", "", "Serial port (default: from config, or stdin/stdout)")
	playFlag := flag.String("play", "", "Play a single animation by name or index and exit")
	consoleFlag := flag.Bool("console", false, "Also log to the console")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil && !errors.Is(err, config.ErrNotSaved) {
		logging.Fatal(err)
	}
	saveErr := err
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}
	if err = logging.Init(cfg.LogDir, *consoleFlag); err != nil {
		logging.Fatal(err)
	}
	logger.Info("oled-eyes starting")
	if saveErr != nil {
		logger.Warnf("running with default configuration: %v", saveErr)
	}

	if _, err = host.Init(); err != nil {
		logging.Fatal(err)
	}

	bus, err := i2creg.Open(cfg.Display.Bus)
	if err != nil {
		logging.Fatal(fmt.Errorf("open I²C bus %q: %w", cfg.Display.Bus, err))
	}
	defer bus.Close()

	var reset gpio.PinOut
	if cfg.Display.Reset != "" {
		if reset = gpioreg.ByName(cfg.Display.Reset); reset == nil {
			logging.Fatal(fmt.Errorf("reset pin %q not found", cfg.Display.Reset))
		}
	}

	device := gfx.New(gfx.Config{
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Controller: gfx.Controller(cfg.Display.Controller),
		Flip:       cfg.Display.Flip,
		Addr:       cfg.Display.Addr,
		Reset:      reset,
		I2C:        bus,
	})
	logger.Infof("using %s backend, %s %dx%d at %#02x", device.Backend(),
		cfg.Display.Controller, cfg.Display.Width, cfg.Display.Height, cfg.Display.Addr)
	if err = device.Init(); err != nil {
		logging.Fatal(fmt.Errorf("display init: %w", err))
	}
	defer func() {
		if err := device.Close(); err != nil {
			logger.Warnf("display close: %v", err)
		}
	}()

	face := eyes.New(device)
	face.FrameDelay = cfg.FrameDelay

	if *playFlag != "" {
		a, err := eyes.ParseAnimation(*playFlag)
		if err != nil {
			logging.Fatal(err)
		}
		if err = face.Play(a); err != nil {
			logging.Fatal(err)
		}
		return
	}

	if err = face.Play(eyes.Wakeup); err != nil {
		logging.Fatal(fmt.Errorf("wakeup: %w", err))
	}

	var rw io.ReadWriter = stdio{Reader: os.Stdin, Writer: os.Stdout}
	if cfg.Serial.Port != "" {
		port, err := serial.Open(cfg.Serial.Port, cfg.Serial.Baud)
		if err != nil {
			logging.Fatal(fmt.Errorf("open serial port: %w", err))
		}
		rw = port
		logger.Infof("serving on %s at %d baud", cfg.Serial.Port, cfg.Serial.Baud)
	} else {
		logger.Info("serving on stdin/stdout")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdin can't be interrupted, don't wait for Serve once cancelled
	done := make(chan error, 1)
	go func() { done <- remote.NewServer(face).Serve(ctx, rw) }()
	select {
	case err = <-done:
		if err != nil {
			logger.Errorf("serve: %v", err)
		}
	case <-ctx.Done():
	}
	logger.Info("oled-eyes stopped")
}
