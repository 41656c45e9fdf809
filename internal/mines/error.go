package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("out of bounds")
	ErrIgnored              = errors.New("action ignored")
)

type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is %s of %dx%d board", e.X, e.Y, ErrOutOfBounds, e.Width, e.Height)
}

func (e OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

type IgnoreReason uint8

const (
	NotPlaying IgnoreReason = iota + 1
	NotHidden
	AlreadyRevealed
	NotChordable
)

func (r IgnoreReason) String() string {
	switch r {
	case NotPlaying:
		return "not playing"
	case NotHidden:
		return "cell is not hidden"
	case AlreadyRevealed:
		return "cell is already revealed"
	case NotChordable:
		return "cell cannot be chorded"
	default:
		return "unknown reason"
	}
}

// IgnoredError reports a well-formed action that had no effect. It is a
// signal for the caller, not a failure of the game.
type IgnoredError struct {
	Reason IgnoreReason
}

// [IgnoredError] implements [error]
func (e IgnoredError) Error() string {
	return ErrIgnored.Error() + ": " + e.Reason.String()
}

func (e IgnoredError) Unwrap() error {
	return ErrIgnored
}
