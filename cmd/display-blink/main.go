// Command display-blink opens a display connection and switches the panel off and on again.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
)

const (
	displayOff = 0xAE
	displayOn  = 0xAF
)

func main() {
	i2cFlag := flag.Bool("i2c", true, "Use I²C, SPI otherwise")
	deviceFlag := flag.Int("device", oled.DefaultI2CConfig.Device, "I²C device number, or SPI device")
	addrFlag := flag.Uint("addr", uint(oled.DefaultI2CConfig.Addr), "I²C device address")
	busFlag := flag.Int("bus", 0, "SPI bus")
	dcFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalln("host init failed:", err)
	}

	var (
		c   oled.Conn
		err error
	)
	if *i2cFlag {
		c, err = oled.OpenI2C(&oled.I2CConfig{
			Device: *deviceFlag,
			Addr:   uint8(*addrFlag),
		})
	} else {
		config := oled.DefaultSPIConfig
		config.Bus = *busFlag
		if *deviceFlag >= 0 {
			config.Device = *deviceFlag
		}
		config.DC = gpioreg.ByName(*dcFlag)
		c, err = oled.OpenSPI(&config)
	}
	if err != nil {
		log.Fatalln("open failed:", err)
	}
	fmt.Println("connected using", c)

	if err = c.Command(displayOff); err != nil {
		log.Fatalln("display off failed:", err)
	}
	time.Sleep(time.Second)
	if err = c.Command(displayOn); err != nil {
		log.Fatalln("display on failed:", err)
	}
	if err = c.Close(); err != nil {
		log.Fatalln("close failed:", err)
	}
}
