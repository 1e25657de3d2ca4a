package tabulatedfunction

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrIndexOutOfRange    = errors.New("point index out of range")
	ErrInappropriatePoint = errors.New("inappropriate point")
	ErrIllegalState       = errors.New("illegal state")
	ErrDecode             = errors.New("cannot decode tabulated function")
)

// IndexError is returned when a point index is outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("point index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Is(target error) bool {
	if target == ErrIndexOutOfRange {
		return true
	}
	_, ok := target.(*IndexError)
	return ok
}

// PointError is returned when an edit would break the ordering of the table.
type PointError struct {
	X      float64
	Reason string
}

func (e *PointError) Error() string {
	return fmt.Sprintf("inappropriate point x=%v: %s", e.X, e.Reason)
}

func (e *PointError) Is(target error) bool {
	if target == ErrInappropriatePoint {
		return true
	}
	_, ok := target.(*PointError)
	return ok
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// decodeError wraps cause so that it matches both ErrDecode and cause.
func decodeError(format string, cause error, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrDecode, msg)
	}
	return fmt.Errorf("%w: %s: %w", ErrDecode, msg, cause)
}
