// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Connection
	OpConnect Op = "connect to mpd"
	OpStatus  Op = "read mpd status"

	// Queue edits
	OpQueueAdd    Op = "add to playlist"
	OpQueueInsert Op = "insert into playlist"
	OpQueueDelete Op = "delete from playlist"
	OpQueueClear  Op = "clear playlist"
	OpQueueLoad   Op = "load playlist"

	// Database
	OpDatabaseLoad Op = "load music database"

	// Transport
	OpPlay   Op = "start playback"
	OpPause  Op = "pause"
	OpStop   Op = "stop"
	OpRandom Op = "toggle random"
	OpSkip   Op = "skip"

	// Session persistence
	OpSessionLoad Op = "load session"
	OpSessionSave Op = "save session"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Error ties a failure to the operation that produced it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return Format(e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err tagged with op, or nil when err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// OpOf returns the operation err was wrapped with, if any.
func OpOf(err error) (Op, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Op, true
	}
	return "", false
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
