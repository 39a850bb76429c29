// Copyright 2016 Aleksandr Demakin. All rights reserved.

package common

import (
	"os"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSyscallErrHasCode(t *testing.T) {
	a := assert.New(t)
	code := syscall.Errno(4)
	a.True(SyscallErrHasCode(code, code))
	a.True(SyscallErrHasCode(os.NewSyscallError("open", code), code))
	a.True(SyscallErrHasCode(&os.PathError{Op: "open", Path: "/tmp/x", Err: code}, code))
	a.True(SyscallErrHasCode(errors.Wrap(os.NewSyscallError("open", code), "failed"), code))
	a.False(SyscallErrHasCode(syscall.Errno(5), code))
	a.False(SyscallErrHasCode(errors.New("plain"), code))
	a.False(SyscallErrHasCode(nil, code))
}
