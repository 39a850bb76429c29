// Copyright 2015 Aleksandr Demakin. All rights reserved.

package fifo

import (
	"context"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/nxgtw/go-fifo/internal/common"

	"github.com/Microsoft/go-winio"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	pipePrefix       = `\\.\pipe\`
	pipeBufferSize   = 64 * 1024
	dialRetryDelay   = 100 * time.Millisecond
	noWaitDialWindow = 100 * time.Millisecond
	noWaitReadWindow = 10 * time.Millisecond
)

// namedPipe is a windows named pipe. Readers own the server end, writers the client end.
type namedPipe struct {
	listener net.Listener
	conn     net.Conn
	mode     Mode
	log      *zap.Logger
}

func openPipe(path string, role Role, mode Mode, _ os.FileMode, log *zap.Logger) (Pipe, error) {
	name := namedPipePath(path)
	if role == Writer {
		conn, err := dialPipe(name, mode, log)
		if err != nil {
			return nil, err
		}
		return &namedPipe{conn: conn, mode: mode, log: log}, nil
	}
	listener, err := winio.ListenPipe(name, &winio.PipeConfig{
		InputBufferSize:  pipeBufferSize,
		OutputBufferSize: pipeBufferSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "listen pipe failed")
	}
	p := &namedPipe{listener: listener, mode: mode, log: log}
	if mode == Wait {
		if err = p.connect(); err != nil {
			listener.Close()
			return nil, err
		}
	}
	return p, nil
}

// dialPipe connects to an existing pipe server. Unlike unix, we can't wait for a server
// to create the pipe, so in Wait mode we are looping and waiting with a delay.
func dialPipe(name string, mode Mode, log *zap.Logger) (net.Conn, error) {
	if mode == NoWait {
		timeout := noWaitDialWindow
		conn, err := winio.DialPipe(name, &timeout)
		if err != nil {
			return nil, errors.Wrap(err, "dial pipe failed")
		}
		return conn, nil
	}
	for {
		conn, err := winio.DialPipeContext(context.Background(), name)
		if err == nil {
			return conn, nil
		}
		if !retryDial(err) {
			return nil, errors.Wrap(err, "dial pipe failed")
		}
		log.Debug("pipe server is missing or busy, retrying", zap.Error(err))
		time.Sleep(dialRetryDelay)
	}
}

// retryDial returns true, if a Wait mode writer should try to connect again:
// the server has not created the pipe yet, or all its instances are taken.
func retryDial(err error) bool {
	return common.IsPipeMissingErr(err) || common.IsPipeBusyErr(err) || errors.Is(err, os.ErrNotExist)
}

// connect waits for a client on the server end.
func (p *namedPipe) connect() error {
	if p.conn != nil {
		return nil
	}
	conn, err := p.listener.Accept()
	if err != nil {
		return errors.Wrap(err, "accept pipe client failed")
	}
	p.log.Debug("pipe client connected")
	p.conn = conn
	return nil
}

func (p *namedPipe) Read(b []byte) (int, error) {
	if err := p.connect(); err != nil {
		return 0, err
	}
	if p.mode == Wait {
		return p.conn.Read(b)
	}
	if err := p.conn.SetReadDeadline(time.Now().Add(noWaitReadWindow)); err != nil {
		return 0, err
	}
	n, err := p.conn.Read(b)
	if resetErr := p.conn.SetReadDeadline(time.Time{}); err == nil {
		err = resetErr
	}
	if n == 0 && isTimeout(err) {
		return 0, ErrWouldBlock
	}
	return n, err
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (p *namedPipe) Write(b []byte) (int, error) {
	if err := p.connect(); err != nil {
		return 0, err
	}
	return p.conn.Write(b)
}

// Flush is a no-op: pipe writes are not buffered in user space, and
// FlushFileBuffers would block until the reader has consumed everything.
func (p *namedPipe) Flush() error {
	return nil
}

func (p *namedPipe) Close() error {
	var err error
	if p.conn != nil {
		err = p.conn.Close()
	}
	if p.listener != nil {
		err = multierr.Append(err, p.listener.Close())
	}
	return err
}

func (p *namedPipe) Raw() io.ReadWriteCloser {
	if p.conn == nil {
		return nil
	}
	return p.conn
}

// removePipe is a no-op on windows.
// The OS destroys a named pipe when all its handles are closed.
func removePipe(string) error {
	return nil
}

func namedPipePath(name string) string {
	if strings.HasPrefix(name, `\\`) {
		return name
	}
	return pipePrefix + strings.NewReplacer(`\`, "-", "/", "-", ":", "").Replace(name)
}
