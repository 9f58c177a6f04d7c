package conn

import (
	"bytes"
	"strings"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

type testPort struct {
	speed physic.Frequency
	mode  spi.Mode
	bits  int
	tx    [][]byte
}

func (p *testPort) String() string                      { return "SPI0.0" }
func (p *testPort) LimitSpeed(f physic.Frequency) error { return nil }

func (p *testPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.speed, p.mode, p.bits = f, mode, bits
	return &testSPIConn{p}, nil
}

type testSPIConn struct {
	p *testPort
}

func (c *testSPIConn) String() string               { return c.p.String() }
func (c *testSPIConn) Duplex() conn.Duplex          { return conn.Half }
func (c *testSPIConn) TxPackets([]spi.Packet) error { return nil }
func (c *testSPIConn) MaxTxSize() int               { return 16 }

func (c *testSPIConn) Tx(w, r []byte) error {
	c.p.tx = append(c.p.tx, append([]byte(nil), w...))
	return nil
}

func TestI2C(t *testing.T) {
	bus := &i2ctest.Record{}
	c := NewI2C(bus, 0x3c)
	if n, err := c.Write([]byte{0x00, 0xaf}); err != nil || n != 2 {
		t.Fatalf("write returned %d, %v", n, err)
	}
	if len(bus.Ops) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(bus.Ops))
	}
	if op := bus.Ops[0]; op.Addr != 0x3c || !bytes.Equal(op.W, []byte{0x00, 0xaf}) {
		t.Errorf("unexpected transaction %+v", op)
	}
	if v := c.String(); !strings.Contains(v, "0x3c") {
		t.Errorf("expected address in %q", v)
	}
	if err := c.Close(); err != nil {
		t.Errorf("expected borrowed bus close to be a no-op, got %v", err)
	}
}

func TestSPI(t *testing.T) {
	p := new(testPort)
	c, err := NewSPI(p, 8*physic.MegaHertz, spi.Mode0)
	if err != nil {
		t.Fatal(err)
	}
	if p.speed != 8*physic.MegaHertz || p.bits != 8 {
		t.Errorf("expected 8 MHz 8 bit connection, got %s %d bit", p.speed, p.bits)
	}
	if v := c.MaxTxSize(); v != 16 {
		t.Errorf("expected max tx size 16, got %d", v)
	}
	if _, err = c.Write([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if len(p.tx) != 1 || !bytes.Equal(p.tx[0], []byte{1, 2, 3}) {
		t.Errorf("unexpected transactions %v", p.tx)
	}

	if _, err = NewSPI(new(testPort), 3*physic.MegaHertz, spi.Mode0); err == nil {
		t.Error("expected invalid speed to be rejected")
	}
}
