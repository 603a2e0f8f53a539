package rindex

import (
	"io"
	"log"
)

// Logger receives progress messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Discard is a Logger that drops every message.
var Discard Logger = log.New(io.Discard, "", 0)
