package suite

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Context carries what a run needs besides the suite itself.
type Context struct {
	Logger *slog.Logger
	// Witness asks Run to search a distinguishing word for every
	// non-equivalent pair.
	Witness bool
	// Normalize NFC-normalizes both regexes of a case before compiling.
	Normalize bool
	// NewRunID defaults to a UUIDv7 string.
	NewRunID func() string
}

func (c Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func (c Context) runID() string {
	if c.NewRunID == nil {
		return uuid.Must(uuid.NewV7()).String()
	}
	return c.NewRunID()
}
