// Copyright 2016 Aleksandr Demakin. All rights reserved.

package cli

import (
	"context"

	"github.com/nxgtw/go-fifo"

	"github.com/pkg/errors"
)

// Exit codes of fifotool.
const (
	ExitFailure = 1
	ExitTimeout = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	code int
	err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.err
}

// Code returns the process exit code.
func (e *ExitError) Code() int {
	if e == nil {
		return ExitFailure
	}
	return e.code
}

// exitError maps timeouts, including a poll loop giving up on its context, to ExitTimeout
// and everything else to ExitFailure.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && !fifo.IsTimeout(err) {
		err = errors.Wrap(fifo.ErrTimeout, err.Error())
	}
	if fifo.IsTimeout(err) {
		return &ExitError{code: ExitTimeout, err: err}
	}
	return &ExitError{code: ExitFailure, err: errors.WithMessage(err, "fifotool")}
}
