package remote

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/BeatGlow/oled/eyes"
)

// Player plays animations, satisfied by *eyes.Face.
type Player interface {
	Play(eyes.Animation) error
}

// Server is the device side of the protocol.
type Server struct {
	player Player
}

// NewServer returns a server playing animations on p.
func NewServer(p Player) *Server {
	return &Server{player: p}
}

// Serve announces READY on rw and handles commands until the input ends or ctx is done. If rw
// is an io.Closer it is closed when ctx is done, to unblock a pending read.
func (s *Server) Serve(ctx context.Context, rw io.ReadWriter) error {
	if c, ok := rw.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stop()
	}

	if _, err := io.WriteString(rw, Ready+"\n"); err != nil {
		return err
	}

	r := bufio.NewReader(rw)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		index, err := readCommand(r)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if !errors.Is(err, errSyntax) {
				return err
			}
			debugf("%v", err)
			if _, err = fmt.Fprintf(rw, "%s %v\n", ReplyErr, err); err != nil {
				return err
			}
			continue
		}

		if err = s.handle(rw, index); err != nil {
			return err
		}
	}
}

func (s *Server) handle(w io.Writer, index int) (err error) {
	a := eyes.Animation(index)
	debugf("play %d", index)
	if err = s.player.Play(a); err != nil {
		debugf("play %d: %v", index, err)
		_, err = fmt.Fprintf(w, "%s %v\n", ReplyErr, err)
		return
	}
	_, err = fmt.Fprintln(w, Reply{Index: index, Name: a.String()})
	return
}

var errSyntax = errors.New("remote: expected digit after command prefix")

// readCommand skips input up to the next command prefix and reads its index.
func readCommand(r *bufio.Reader) (int, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == Prefix {
			break
		}
	}

	// the first digit may still be in flight
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if !isDigit(b) {
		_ = r.UnreadByte()
		return 0, errSyntax
	}

	index := int(b - '0')
	for r.Buffered() > 0 {
		next, _ := r.Peek(1)
		if !isDigit(next[0]) {
			break
		}
		_, _ = r.ReadByte()
		if index > 1<<20 {
			continue
		}
		index = index*10 + int(next[0]-'0')
	}
	return index, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
