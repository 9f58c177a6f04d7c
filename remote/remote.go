// Package remote implements the serial line protocol used to trigger eye animations.
//
// The device announces itself with a READY line. The host then sends commands of the form
// A<index>, without a terminator; a command ends at the first non-digit byte, or when no
// more input is buffered. Every command is answered with a single line:
//
//	OK <index> <name>
//	ERR <message>
package remote

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
)

var debug = os.Getenv("DISPLAY_DEBUG") != ""

func debugf(format string, args ...any) {
	if debug {
		log.Printf("remote: "+format, args...)
	}
}

// Protocol tokens.
const (
	Ready    = "READY"
	Prefix   = 'A'
	ReplyOK  = "OK"
	ReplyErr = "ERR"
)

// Errors
var (
	ErrNotReady = errors.New("remote: device did not send READY")
	ErrReply    = errors.New("remote: malformed reply")
)

// Error is an ERR reply from the device.
type Error string

func (err Error) Error() string {
	return "remote: device error: " + string(err)
}

// Reply is a successful command reply.
type Reply struct {
	Index int
	Name  string
}

func (r Reply) String() string {
	return ReplyOK + " " + strconv.Itoa(r.Index) + " " + r.Name
}

// ParseReply parses a reply line, ERR replies are returned as Error.
func ParseReply(line string) (Reply, error) {
	line = strings.TrimRight(line, "\r\n")
	if msg, ok := strings.CutPrefix(line, ReplyErr+" "); ok {
		return Reply{}, Error(msg)
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != ReplyOK {
		return Reply{}, ErrReply
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return Reply{}, ErrReply
	}
	return Reply{Index: index, Name: fields[2]}, nil
}
