// Copyright 2016 Aleksandr Demakin. All rights reserved.

package fifo

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a Fifo is constructed with an unknown role or mode.
	// No OS resource is touched in that case.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrWouldBlock is returned by reads on a NoWait Fifo when there is nothing to read.
	ErrWouldBlock = errors.New("fifo is empty, operation would block")
	// ErrWrongRole is returned when reading from a Writer or writing to a Reader.
	ErrWrongRole = errors.New("operation is not permitted for the fifo role")
	// ErrTimeout is returned by Await and OpenContext when the deadline expires.
	// I/O operations never return it.
	ErrTimeout = errors.New("timeout exceeded")
	// ErrUnsupported is returned on platforms without a fifo backend.
	ErrUnsupported = errors.New("fifo is not supported on this platform")
)

// IsTimeout returns true, if err was caused by an exceeded deadline in Await or OpenContext.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsWouldBlock returns true, if a NoWait read found the fifo empty.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}
