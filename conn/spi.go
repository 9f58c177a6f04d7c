package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	10 * physic.MegaHertz,
	16 * physic.MegaHertz,
}

// SPI is a connected SPI port. Write sends one transaction.
type SPI struct {
	port   spi.Port
	conn   spi.Conn
	closer func() error
	speed  physic.Frequency
	mode   spi.Mode
}

// NewSPI connects to an already opened port in 8 bits per word mode.
func NewSPI(port spi.Port, speed physic.Frequency, mode spi.Mode) (*SPI, error) {
	var valid bool
	for _, s := range ValidSPISpeeds {
		if valid = s == speed; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("conn: invalid SPI speed %s", speed)
	}

	c, err := port.Connect(speed, mode, 8)
	if err != nil {
		return nil, err
	}
	return &SPI{
		port:  port,
		conn:  c,
		speed: speed,
		mode:  mode,
	}, nil
}

// OpenSPI opens the SPI port for bus and chip select device from the periph registry.
func OpenSPI(bus, device int, speed physic.Frequency, mode spi.Mode) (*SPI, error) {
	port, err := spireg.Open("SPI" + strconv.Itoa(bus) + "." + strconv.Itoa(device))
	if err != nil {
		return nil, err
	}
	c, err := NewSPI(port, speed, mode)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	c.closer = port.Close
	return c, nil
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI port %s mode=%d speed=%s", c.port, c.mode, c.speed)
}

func (c *SPI) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// MaxTxSize is the largest transaction the port accepts, 0 if unlimited.
func (c *SPI) MaxTxSize() int {
	if l, ok := c.conn.(interface{ MaxTxSize() int }); ok {
		return l.MaxTxSize()
	}
	return 0
}

func (c *SPI) Write(p []byte) (int, error) {
	if err := c.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
