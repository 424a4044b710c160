// Package errors is the single errors import for the tracker: matching and
// joining come from the standard library, wrapping from pkg/errors so that
// every wrapped error carries the stack of the frame that wrapped it.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// Wrap returns nil when err is nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

// Wrapf returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Errorf records a stack trace, unlike fmt.Errorf.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
