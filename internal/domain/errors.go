package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors surfaced directly to the caller as user-facing messages.
// They are raised before any computation or network fetch proceeds and are
// never retried internally.
var (
	ErrUnknownMode    = errors.New("unknown transport mode")
	ErrInvalidTime    = errors.New("arrival time must be HH:MM with hour 0-23 and minute 0-59")
	ErrTooFarInFuture = errors.New("arrival time is more than 24 hours away")

	// ErrDestinationNotFound is the planner-level condition for a free-text
	// destination that neither the popular-destination table nor the geocoder
	// could resolve.
	ErrDestinationNotFound = errors.New("could not resolve destination")
)

// MissingInputError names the plan input field(s) that were absent.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", strings.Join(e.Fields, ", "))
}
