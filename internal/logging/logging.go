package logging

import (
	"log"
	"os"
)

// NewStdLogger returns the shared logger shape used by every command:
// stdout, UTC timestamps, a fixed per-binary prefix.
func NewStdLogger(prefix string) *log.Logger {
	return log.New(os.Stdout, prefix, log.LstdFlags|log.LUTC)
}
