// Package conn wraps periph.io buses as plain byte streams for the display drivers.
package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2C is a device on an I²C bus, Write sends one transaction.
type I2C struct {
	bus    i2c.Bus
	closer func() error
	conn   conn.Conn
	addr   uint16
}

// NewI2C wraps a device at the 7-bit addr on an already opened bus. Closing the returned I2C
// does not close the bus.
func NewI2C(bus i2c.Bus, addr uint8) *I2C {
	return &I2C{
		bus:  bus,
		conn: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
		addr: uint16(addr),
	}
}

// OpenI2C opens the numbered I²C bus from the periph registry, use a negative device to open
// the first available bus.
func OpenI2C(device int, addr uint8) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	c := NewI2C(bus, addr)
	c.closer = bus.Close
	return c, nil
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s addr %#02x", c.bus, c.addr)
}

func (c *I2C) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

func (c *I2C) Read(p []byte) (int, error) {
	if err := c.conn.Tx(nil, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *I2C) Write(p []byte) (int, error) {
	if err := c.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
