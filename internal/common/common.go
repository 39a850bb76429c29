// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package common holds syscall error helpers shared by the fifo backends.
package common

import (
	"syscall"

	"github.com/pkg/errors"
)

// SyscallErrHasCode returns true, if err is or wraps the given errno.
// It looks through *os.SyscallError, *os.PathError and pkg/errors wrappers.
func SyscallErrHasCode(err error, code syscall.Errno) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == code
	}
	return false
}
