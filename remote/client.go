package remote

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BeatGlow/oled/eyes"
)

// Client is the host side of the protocol.
type Client struct {
	rw io.ReadWriter
	r  *bufio.Reader

	// Timeout bounds every read if the connection supports read deadlines, zero waits forever.
	Timeout time.Duration
}

// NewClient returns a client talking to a device over rw.
func NewClient(rw io.ReadWriter) *Client {
	return &Client{
		rw: rw,
		r:  bufio.NewReader(rw),
	}
}

type readDeadliner interface {
	SetReadDeadline(time.Time) error
}

func (c *Client) readLine() (string, error) {
	if d, ok := c.rw.(readDeadliner); ok && c.Timeout > 0 {
		if err := d.SetReadDeadline(time.Now().Add(c.Timeout)); err != nil {
			return "", err
		}
	}
	line, err := c.r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WaitReady waits for the device's READY line. Blank lines are skipped.
func (c *Client) WaitReady() error {
	for {
		line, err := c.readLine()
		if err != nil {
			return err
		}
		switch line {
		case "":
			continue
		case Ready:
			return nil
		default:
			return fmt.Errorf("%w, got %q", ErrNotReady, line)
		}
	}
}

// Play sends animation a and waits for the device's reply.
func (c *Client) Play(a eyes.Animation) (Reply, error) {
	if _, err := fmt.Fprintf(c.rw, "%c%d", Prefix, int(a)); err != nil {
		return Reply{}, err
	}
	line, err := c.readLine()
	if err != nil {
		return Reply{}, err
	}
	return ParseReply(line)
}
