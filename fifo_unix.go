// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package fifo

import (
	"io"
	"os"

	"github.com/nxgtw/go-fifo/internal/common"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// sysOpen is replaced in tests.
var sysOpen = unix.Open

type posixPipe struct {
	file *os.File
	mode Mode
}

func openPipe(path string, role Role, mode Mode, perm os.FileMode, log *zap.Logger) (Pipe, error) {
	if err := ensureFifo(path, perm, log); err != nil {
		return nil, err
	}
	fd, err := openRetry(path, openFlag(role, mode), log)
	if err != nil {
		return nil, err
	}
	return &posixPipe{file: os.NewFile(uintptr(fd), path), mode: mode}, nil
}

// ensureFifo creates a FIFO special file, if nothing exists at path.
func ensureFifo(path string, perm os.FileMode, log *zap.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := unix.Mkfifo(path, uint32(perm)); err != nil {
		if os.IsExist(err) {
			return nil
		}
		return &os.PathError{Op: "mkfifo", Path: path, Err: err}
	}
	// mkfifo applies the umask.
	if err := os.Chmod(path, perm); err != nil {
		return err
	}
	log.Debug("fifo created", zap.Stringer("perm", perm))
	return nil
}

// openFlag returns open(2) flags for the given role and mode.
// A read-write open of a FIFO never blocks and never fails with ENXIO,
// which is what NoWait needs for both ends.
func openFlag(role Role, mode Mode) int {
	flag := unix.O_CLOEXEC
	switch {
	case mode == NoWait:
		flag |= unix.O_RDWR | unix.O_NONBLOCK
	case role == Writer:
		flag |= unix.O_WRONLY
	default:
		flag |= unix.O_RDONLY
	}
	return flag
}

// openRetry opens the fifo, restarting the call if it was interrupted by a signal.
// Blocking opens of a FIFO may be interrupted, see golang.org/issue/11180.
func openRetry(path string, flag int, log *zap.Logger) (int, error) {
	for {
		fd, err := sysOpen(path, flag, 0)
		if err == nil {
			return fd, nil
		}
		if common.IsInterruptedSyscallErr(err) {
			log.Debug("fifo open interrupted, retrying")
			continue
		}
		return -1, &os.PathError{Op: "open", Path: path, Err: err}
	}
}

func (p *posixPipe) Read(b []byte) (n int, err error) {
	if p.mode == Wait {
		return p.file.Read(b)
	}
	return p.readNoWait(b)
}

// readNoWait performs a single non-blocking read without parking in the poller.
func (p *posixPipe) readNoWait(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	rc, err := p.file.SyscallConn()
	if err != nil {
		return 0, err
	}
	var n int
	var readErr error
	if err = rc.Read(func(fd uintptr) bool {
		n, readErr = unix.Read(int(fd), b)
		return true
	}); err != nil {
		return 0, err
	}
	switch {
	case readErr != nil && common.IsWouldBlockErr(readErr):
		return 0, ErrWouldBlock
	case readErr != nil:
		return 0, &os.PathError{Op: "read", Path: p.file.Name(), Err: readErr}
	case n == 0:
		return 0, io.EOF
	}
	return n, nil
}

func (p *posixPipe) Write(b []byte) (n int, err error) {
	return p.file.Write(b)
}

// Flush is a no-op: writes to a FIFO are not buffered by the OS file object.
func (p *posixPipe) Flush() error {
	return nil
}

func (p *posixPipe) Close() error {
	return p.file.Close()
}

func (p *posixPipe) Raw() io.ReadWriteCloser {
	return p.file
}

func removePipe(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
