package oled

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/oled/conn"
)

// Conn errors.
var (
	ErrDCPin = errors.New("oled: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// I²C control bytes: Co=0 followed by D/C#.
const (
	i2cControlCommand = 0x00
	i2cControlData    = 0x40
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the 7-bit I²C address.
	Addr uint8
}

// DefaultI2CConfig is the first bus with the controller at its default address.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cConn struct {
	*conn.I2C
}

// NewI2C returns a connection to the controller at addr on an open bus.
func NewI2C(bus i2c.Bus, addr uint8) Conn {
	return &i2cConn{I2C: conn.NewI2C(bus, addr)}
}

// OpenI2C opens the configured bus from the periph registry.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{I2C: c}, nil
}

func (c *i2cConn) Command(cmnd byte, args ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{i2cControlCommand, cmnd}, args...))
	return
}

func (c *i2cConn) Data(data ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{i2cControlData}, data...))
	return
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	Mode      spi.Mode
	Speed     physic.Frequency
	DataLow   bool
	BatchSize int
	DC        gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	Mode:      spi.Mode0,
	Speed:     8 * physic.MegaHertz,
	BatchSize: 4096,
}

type spiConn struct {
	bus       *conn.SPI
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcSet     bool
	dataLow   bool
	batchSize int
}

// NewSPI returns a 4-wire SPI connection on an open port; dc selects data or command.
func NewSPI(port spi.Port, config *SPIConfig) (Conn, error) {
	config = spiDefaults(config)
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	c, err := conn.NewSPI(port, config.Speed, config.Mode)
	if err != nil {
		return nil, err
	}
	return newSPIConn(c, config), nil
}

// OpenSPI opens the configured port from the periph registry.
func OpenSPI(config *SPIConfig) (Conn, error) {
	config = spiDefaults(config)
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	c, err := conn.OpenSPI(config.Bus, config.Device, config.Speed, config.Mode)
	if err != nil {
		return nil, err
	}
	return newSPIConn(c, config), nil
}

func spiDefaults(config *SPIConfig) *SPIConfig {
	out := DefaultSPIConfig
	if config != nil {
		out = *config
	}
	if out.Speed == 0 {
		out.Speed = DefaultSPIConfig.Speed
	}
	if out.BatchSize <= 0 {
		out.BatchSize = DefaultSPIConfig.BatchSize
	}
	return &out
}

func newSPIConn(c *conn.SPI, config *SPIConfig) *spiConn {
	batchSize := config.BatchSize
	if limit := c.MaxTxSize(); limit > 0 && limit < batchSize {
		batchSize = limit
	}
	return &spiConn{
		bus:       c,
		dc:        config.DC,
		dataLow:   config.DataLow,
		batchSize: batchSize,
	}
}

func (c *spiConn) String() string {
	return c.bus.String()
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcSet || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcSet = true
	}
	return nil
}

func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	if err = c.updateDC(gpio.Level(c.dataLow)); err != nil {
		return
	}
	// SSD1xxx command arguments are clocked in with D/C# low as well.
	return c.writeChunked(append([]byte{cmnd}, args...))
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
		return
	}
	return c.writeChunked(data)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	for len(data) > 0 {
		n := len(data)
		if n > c.batchSize {
			n = c.batchSize
		}
		if _, err = c.bus.Write(data[:n]); err != nil {
			return
		}
		data = data[n:]
	}
	return
}
