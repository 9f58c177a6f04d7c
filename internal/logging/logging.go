// Package logging sets up the rotating file logger shared by the commands.
package logging

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/antigloss/go/logger"
)

// Log file rotation.
const (
	maxFileSize = 2 // MB
	maxFiles    = 30
	filesToDel  = 10
)

var ready atomic.Bool

// Config returns the logger configuration writing to dir, and to the console as well if
// console is set.
func Config(dir string, console bool) *logger.Config {
	dest := logger.LogDestFile
	if console {
		dest = logger.LogDestBoth
	}
	return &logger.Config{
		LogDir:          dir,
		LogFileMaxSize:  maxFileSize,
		LogFileMaxNum:   maxFiles,
		LogFileNumToDel: filesToDel,
		LogLevel:        logger.LogLevelTrace,
		LogDest:         dest,
	}
}

// Init creates the global logger. Until it succeeds, Fatal only writes to stderr.
func Init(dir string, console bool) error {
	if err := logger.Init(Config(dir, console)); err != nil {
		return fmt.Errorf("logging: %s: %w", dir, err)
	}
	ready.Store(true)
	return nil
}

// Ready reports whether Init succeeded.
func Ready() bool {
	return ready.Load()
}

// Fatal logs err, if the logger is up, prints it to stderr and exits.
func Fatal(err error) {
	if Ready() {
		logger.Errorf("fatal: %v", err)
	}
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
