package ats

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSystem = errors.New("ATS system label is required")
	ErrUnknownSystem = errors.New("unknown ATS system")
	ErrNoContracts   = errors.New("no contracts available")
	ErrNoJobs        = errors.New("no open jobs available")
	ErrNoCandidates  = errors.New("no candidates available")
)

// UserError wraps errors with user-friendly messages
type UserError struct {
	Message string
	Hint    string
	Err     error
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n\nDetails: %v", e.Err)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// WrapError converts ATS lookup and fetch errors to user-friendly messages
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrMissingSystem) || errors.Is(err, ErrUnknownSystem) {
		return &UserError{
			Message: "ATS system not recognized",
			Hint:    "Supported systems: " + strings.Join(Known(), ", ") + "\n  Set ATS_SYSTEM or pass the system name as an argument.",
			Err:     err,
		}
	}

	if errors.Is(err, ErrNoContracts) || errors.Is(err, ErrNoJobs) || errors.Is(err, ErrNoCandidates) {
		return &UserError{
			Message: "ATS returned no data",
			Hint:    "The workflow needs at least one contract, one open job and one candidate.",
			Err:     err,
		}
	}

	return err
}
