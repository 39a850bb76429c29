// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nxgtw/go-fifo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	root := NewRoot("test")
	out := bytes.NewBuffer(nil)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// holdFifo keeps a reader open, so data written by commands stays in the fifo.
func holdFifo(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "go-fifo-test")
	f, err := fifo.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return path
}

func exitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code()
	}
	return 0
}

func TestWriteAndRead(t *testing.T) {
	a := assert.New(t)
	path := holdFifo(t)
	_, err := run("write", path, "first", "second\n")
	a.NoError(err)
	out, err := run("read", path, "--lines", "2", "--timeout", "2s")
	a.NoError(err)
	a.Equal("first\nsecond\n", out)
}

func TestPrintAndRead(t *testing.T) {
	a := assert.New(t)
	path := holdFifo(t)
	_, err := run("print", path, "Multiple", "Arguments")
	a.NoError(err)
	out, err := run("read", path, "--timeout", "2s")
	a.NoError(err)
	a.Equal("MultipleArguments\n", out)
}

func TestReadTimeout(t *testing.T) {
	a := assert.New(t)
	path := holdFifo(t)
	_, err := run("--timeout", "100ms", "read", path)
	a.Equal(ExitTimeout, exitCode(err))
	a.True(fifo.IsTimeout(err))
}

func TestReadInvalidLines(t *testing.T) {
	_, err := run("read", holdFifo(t), "--lines", "0")
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestOpenBlockingTimeout(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "go-fifo-test")
	_, err := run("--timeout", "100ms", "open", path, "--role", "w", "--wait")
	a.Equal(ExitTimeout, exitCode(err))
	// release the open left behind.
	f, err := fifo.Open(path)
	require.NoError(t, err)
	a.NoError(f.Close())
}

func TestOpenInvalidRole(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "go-fifo-test")
	_, err := run("open", path, "--role", "rw")
	a.Equal(ExitFailure, exitCode(err))
	a.True(errors.Is(err, fifo.ErrInvalidArgument))
	_, statErr := os.Stat(path)
	a.True(os.IsNotExist(statErr))
}

func TestOpenUsesEnvPerm(t *testing.T) {
	a := assert.New(t)
	t.Setenv("FIFOTOOL_PERM", "0600")
	path := filepath.Join(t.TempDir(), "go-fifo-test")
	_, err := run("open", path)
	a.NoError(err)
	info, err := os.Stat(path)
	if a.NoError(err) {
		a.Equal(os.FileMode(0600), info.Mode().Perm())
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run("--log-level", "loud", "rm", filepath.Join(t.TempDir(), "x"))
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestRm(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "go-fifo-test")
	_, err := run("open", path)
	a.NoError(err)
	_, err = run("rm", path)
	a.NoError(err)
	_, err = os.Stat(path)
	a.True(os.IsNotExist(err))
}
