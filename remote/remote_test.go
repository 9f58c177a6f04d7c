package remote

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/BeatGlow/oled/eyes"
)

type testPlayer struct {
	played []eyes.Animation
	err    error
}

func (p *testPlayer) Play(a eyes.Animation) error {
	if !a.Valid() {
		return eyes.ErrUnknownAnimation
	}
	p.played = append(p.played, a)
	return p.err
}

// testReadWriter feeds a fixed input and collects the output.
type testReadWriter struct {
	io.Reader
	strings.Builder
}

func testServe(t *testing.T, input string, p Player) string {
	t.Helper()
	rw := &testReadWriter{Reader: strings.NewReader(input)}
	if err := NewServer(p).Serve(context.Background(), rw); err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	return rw.String()
}

func TestServe(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Want   string
		Played []eyes.Animation
	}{
		{"empty", "", "READY\n", nil},
		{"single", "A4", "READY\nOK 4 blink_long\n", []eyes.Animation{eyes.BlinkLong}},
		{"newline", "A1\r\n", "READY\nOK 1 reset\n", []eyes.Animation{eyes.Reset}},
		{"back to back", "A6A1", "READY\nOK 6 happy\nOK 1 reset\n", []eyes.Animation{eyes.Happy, eyes.Reset}},
		{"noise", "xyz A7", "READY\nOK 7 sleep\n", []eyes.Animation{eyes.Sleep}},
		{"unknown", "A42", "READY\nERR eyes: unknown animation\n", nil},
		{"syntax", "Ax A8", "READY\nERR remote: expected digit after command prefix\nOK 8 saccade_random\n", []eyes.Animation{eyes.SaccadeRandom}},
		{"truncated", "A", "READY\n", nil},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			p := new(testPlayer)
			if v := testServe(it, test.Input, p); v != test.Want {
				it.Errorf("expected %q, got %q", test.Want, v)
			}
			if len(p.played) != len(test.Played) {
				it.Fatalf("expected %v played, got %v", test.Played, p.played)
			}
			for i := range p.played {
				if p.played[i] != test.Played[i] {
					it.Errorf("expected %v played, got %v", test.Played, p.played)
				}
			}
		})
	}
}

func TestServePlayError(t *testing.T) {
	p := &testPlayer{err: errors.New("i2c: no ack")}
	if v, want := testServe(t, "A0", p), "READY\nERR i2c: no ack\n"; v != want {
		t.Errorf("expected %q, got %q", want, v)
	}
}

func TestServeCancel(t *testing.T) {
	device, host := net.Pipe()
	defer host.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer(new(testPlayer)).Serve(ctx, device) }()

	if line, err := bufio.NewReader(host).ReadString('\n'); err != nil || line != "READY\n" {
		t.Fatalf("expected READY, got %q (%v)", line, err)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestClient(t *testing.T) {
	device, host := net.Pipe()
	defer host.Close()

	p := new(testPlayer)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewServer(p).Serve(ctx, device) }()

	c := NewClient(host)
	c.Timeout = time.Second
	if err := c.WaitReady(); err != nil {
		t.Fatal(err)
	}

	for _, a := range eyes.Animations() {
		reply, err := c.Play(a)
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}
		if reply.Index != int(a) || reply.Name != a.String() {
			t.Errorf("%s: unexpected reply %s", a, reply)
		}
	}
	if len(p.played) != len(eyes.Animations()) {
		t.Errorf("expected every animation played, got %v", p.played)
	}

	_, err := c.Play(eyes.Animation(12))
	var deviceErr Error
	if !errors.As(err, &deviceErr) {
		t.Errorf("expected a device error, got %v", err)
	}
}

func TestClientNotReady(t *testing.T) {
	c := NewClient(&testReadWriter{Reader: strings.NewReader("\r\nboot v1\n")})
	if err := c.WaitReady(); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
}

func TestParseReply(t *testing.T) {
	if v, err := ParseReply("OK 2 move_right_big\r\n"); err != nil || v != (Reply{2, "move_right_big"}) {
		t.Errorf("unexpected reply %+v (%v)", v, err)
	}
	if _, err := ParseReply("ERR busy"); err != Error("busy") {
		t.Errorf("expected device error, got %v", err)
	}
	for _, line := range []string{"", "OK", "OK x reset", "HELLO 1 reset"} {
		if _, err := ParseReply(line); err != ErrReply {
			t.Errorf("%q: expected ErrReply, got %v", line, err)
		}
	}
}
