// Copyright 2015 Aleksandr Demakin. All rights reserved.

package fifo

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Role selects the end of the pipe a Fifo is opened for.
type Role int

// Mode selects whether opening and reading block until a peer or data is present.
type Mode int

const (
	// Reader opens the reading end. On windows it is the pipe server.
	Reader Role = iota
	// Writer opens the writing end. On windows it is the pipe client.
	Writer
)

const (
	// NoWait makes open and read operations return immediately.
	NoWait Mode = iota
	// Wait makes open block until the other end is opened, and reads block until data arrives.
	Wait
)

const (
	// DefaultPerm is the permission set of a newly created FIFO.
	DefaultPerm = 0666
	// DefaultBufferSize is the size of the write buffer drained by Flush.
	DefaultBufferSize = 4096
)

func (r Role) String() string {
	switch r {
	case Reader:
		return "reader"
	case Writer:
		return "writer"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func (m Mode) String() string {
	switch m {
	case NoWait:
		return "nowait"
	case Wait:
		return "wait"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (r Role) valid() bool {
	return r == Reader || r == Writer
}

func (m Mode) valid() bool {
	return m == NoWait || m == Wait
}

// ParseRole converts "r"/"reader" and "w"/"writer" into a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "reader":
		return Reader, nil
	case "w", "writer":
		return Writer, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown role %q: must be either r or w", s)
}

// ParseMode converts "wait" and "nowait" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wait":
		return Wait, nil
	case "nowait", "no-wait":
		return NoWait, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown mode %q: must be either wait or nowait", s)
}

func validate(role Role, mode Mode) error {
	if !role.valid() {
		return errors.Wrapf(ErrInvalidArgument, "unknown role %v: must be either Reader or Writer", role)
	}
	if !mode.valid() {
		return errors.Wrapf(ErrInvalidArgument, "unknown mode %v: must be either Wait or NoWait", mode)
	}
	return nil
}
