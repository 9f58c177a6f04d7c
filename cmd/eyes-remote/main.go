// Command eyes-remote plays every eye animation on a device running oled-eyes, each one
// followed by a reset.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/antigloss/go/logger"

	"github.com/BeatGlow/oled/eyes"
	"github.com/BeatGlow/oled/internal/logging"
	"github.com/BeatGlow/oled/internal/serial"
	"github.com/BeatGlow/oled/remote"
)

func main() {
	portFlag := flag.String("port", "/dev/ttyUSB0", "Serial port of the device")
	baudFlag := flag.Int("baud", serial.DefaultBaud, "Baud rate")
	timeoutFlag := flag.Duration("timeout", 10*time.Second, "Reply timeout")
	pauseFlag := flag.Duration("pause", 500*time.Millisecond, "Pause after every reset")
	logFlag := flag.String("log", filepath.Join(os.TempDir(), "eyes-remote"), "Log directory")
	flag.Parse()

	if err := logging.Init(*logFlag, true); err != nil {
		logging.Fatal(err)
	}

	logger.Infof("connecting to %s at %d baud", *portFlag, *baudFlag)
	port, err := serial.Open(*portFlag, *baudFlag)
	if err != nil {
		logging.Fatal(err)
	}
	defer port.Close()

	client := remote.NewClient(port)
	client.Timeout = *timeoutFlag

	logger.Info("waiting for the device to become ready")
	if err = client.WaitReady(); err != nil {
		logging.Fatal(err)
	}

	for _, a := range eyes.Animations() {
		if a == eyes.Reset {
			continue
		}
		play(client, a)
		play(client, eyes.Reset)
		time.Sleep(*pauseFlag)
	}
	logger.Info("animation cycle complete")
}

func play(client *remote.Client, a eyes.Animation) {
	logger.Tracef("sending %s", a)
	reply, err := client.Play(a)
	if err != nil {
		logger.Warnf("%s: %v", a, err)
		return
	}
	logger.Infof("device: %s", reply)
}
