package ir

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrStructural reports a document whose containers do not balance.
	ErrStructural = errors.New("structural error")
	// ErrType reports a strict accessor used on a missing or mismatched field.
	ErrType = errors.New("type error")
	// ErrMergeType reports a merge between incompatible kinds.
	ErrMergeType = errors.New("merge type error")
)

type TypeError struct {
	Field   string
	Want    string
	Got     Type
	Missing bool
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

func (e *TypeError) Error() string {
	field := "field"
	if e.Field != "" {
		field = fmt.Sprintf("field %q", e.Field)
	}
	if e.Missing {
		return fmt.Sprintf("%s: %s does not exist", ErrType, field)
	}
	return fmt.Sprintf("%s: %s is not a %s (got %s)", ErrType, field, e.Want, e.Got)
}

// Reporter decides what happens to an error raised while parsing or
// merging. Returning a non-nil error aborts the operation with that error.
// Returning nil lets the operation recover with its documented fallback.
type Reporter func(error) error

// Report passes err to r. A nil Reporter behaves like [Abort].
func (r Reporter) Report(err error) error {
	if r == nil {
		return err
	}
	return r(err)
}

// Abort is the default Reporter.
func Abort(err error) error {
	return err
}

// Logged returns a Reporter which logs errors and recovers.
func Logged(l *slog.Logger) Reporter {
	if l == nil {
		l = slog.Default()
	}
	return func(err error) error {
		l.Warn("gon: recovered", "error", err)
		return nil
	}
}

type MergeTypeError struct {
	Op       string
	Dst, Src Type
	// Missing is set when the destination is the shared missing node.
	Missing bool
}

func (e *MergeTypeError) Unwrap() error {
	return ErrMergeType
}

func (e *MergeTypeError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: %s: destination does not exist", ErrMergeType, e.Op)
	}
	return fmt.Sprintf("%s: %s: cannot combine %s into %s", ErrMergeType, e.Op, e.Src, e.Dst)
}
