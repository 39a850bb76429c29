// Copyright 2015 Aleksandr Demakin. All rights reserved.

package fifo

import (
	"bufio"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Pipe is the raw byte stream provided by a platform backend.
type Pipe interface {
	io.ReadWriteCloser
	// Flush pushes written data to the OS object.
	Flush() error
	// Raw returns the underlying OS stream.
	Raw() io.ReadWriteCloser
}

// Fifo represents a First-In-First-Out object opened for reading or writing.
// A Fifo is not safe for concurrent use.
type Fifo struct {
	path   string
	role   Role
	mode   Mode
	pipe   Pipe
	w      *bufio.Writer
	log    *zap.Logger
	closed bool
}

// New creates or opens a FIFO object.
//
//	path - filesystem path on unix, pipe name on windows.
//	role - Reader or Writer.
//	mode - Wait or NoWait. In Wait mode New blocks until the other end is opened.
//
// On unix the FIFO is created with DefaultPerm if nothing exists at path.
func New(path string, role Role, mode Mode, opts ...Option) (*Fifo, error) {
	if err := validate(role, mode); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	log := o.log.With(zap.String("path", path), zap.Stringer("role", role), zap.Stringer("mode", mode))
	pipe, err := openPipe(path, role, mode, o.perm, log)
	if err != nil {
		return nil, err
	}
	log.Debug("fifo opened")
	return &Fifo{
		path: path,
		role: role,
		mode: mode,
		pipe: pipe,
		w:    bufio.NewWriterSize(pipe, o.bufferSize),
		log:  log,
	}, nil
}

// Open opens a non-blocking reader Fifo.
func Open(path string, opts ...Option) (*Fifo, error) {
	return New(path, Reader, NoWait, opts...)
}

// Remove permanently removes the FIFO at path.
// It is not an error if nothing exists there.
func Remove(path string) error {
	return removePipe(path)
}

// Path returns the path the fifo was opened with.
func (f *Fifo) Path() string {
	return f.path
}

// Role returns the role the fifo was opened with.
func (f *Fifo) Role() Role {
	return f.role
}

// Mode returns the mode the fifo was opened with.
func (f *Fifo) Mode() Mode {
	return f.mode
}

// Raw returns the underlying stream. It can be used for polling,
// but data written through it bypasses the write buffer.
func (f *Fifo) Raw() io.ReadWriteCloser {
	return f.pipe.Raw()
}

// Read reads up to len(b) bytes from the fifo.
// In NoWait mode it returns ErrWouldBlock if the fifo is empty.
func (f *Fifo) Read(b []byte) (n int, err error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if f.role != Reader {
		return 0, ErrWrongRole
	}
	return f.pipe.Read(b)
}

// Write writes b into the write buffer. The peer sees the data after Flush.
func (f *Fifo) Write(b []byte) (n int, err error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if f.role != Writer {
		return 0, ErrWrongRole
	}
	return f.w.Write(b)
}

// Flush writes buffered data into the fifo.
func (f *Fifo) Flush() error {
	if f.closed {
		return os.ErrClosed
	}
	if err := f.w.Flush(); err != nil {
		return err
	}
	return f.pipe.Flush()
}

// Close flushes buffered data and closes the fifo. The fifo cannot be used after that.
func (f *Fifo) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true
	var err error
	if f.w.Buffered() > 0 {
		err = f.w.Flush()
	}
	err = multierr.Append(err, f.pipe.Close())
	f.log.Debug("fifo closed", zap.Error(err))
	return err
}
