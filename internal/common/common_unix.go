// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package common

import "golang.org/x/sys/unix"

// IsInterruptedSyscallErr returns true, if a syscall was interrupted by a signal.
func IsInterruptedSyscallErr(err error) bool {
	return SyscallErrHasCode(err, unix.EINTR)
}

// IsWouldBlockErr returns true, if a non-blocking syscall could not complete immediately.
func IsWouldBlockErr(err error) bool {
	return SyscallErrHasCode(err, unix.EAGAIN) || SyscallErrHasCode(err, unix.EWOULDBLOCK)
}
