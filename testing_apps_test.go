// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package fifo

import (
	"os/exec"
	"strconv"
	"testing"
	"time"

	"github.com/nxgtw/go-fifo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 'go run' compiles the tool first, so waits for it are generous.
const toolTimeout = "20s"

func argsForToolRead(path string, lines int, wait bool) []string {
	args := []string{"--timeout=" + toolTimeout, "read", path, "--lines", strconv.Itoa(lines)}
	if wait {
		args = append(args, "--wait")
	}
	return args
}

func argsForToolWrite(path string, lines ...string) []string {
	return append([]string{"--timeout=" + toolTimeout, "write", path}, lines...)
}

func argsForToolOpen(path, role string, wait bool, timeout string) []string {
	args := []string{"--timeout=" + timeout, "open", path, "--role", role}
	if wait {
		args = append(args, "--wait")
	}
	return args
}

func skipWithoutTool(t *testing.T) {
	if testing.Short() {
		t.Skip("cross-process test in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool is not available")
	}
}

// 1) write a line into a fifo in our process
// 2) read that line in another process
// 3) compare the results
func TestFifoReadFromAnotherProcess(t *testing.T) {
	skipWithoutTool(t)
	path := testPath(t)
	w, err := New(path, Writer, NoWait)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Puts("Hey!"))
	result := testutil.RunTool(argsForToolRead(path, 1, false), nil)
	if assert.NoError(t, result.Err, result.Output) {
		assert.Equal(t, "Hey!\n", result.Output)
	}
}

// 1) write lines into a fifo in another process
// 2) read them in our process
// 3) compare the results
func TestFifoWriteFromAnotherProcess(t *testing.T) {
	skipWithoutTool(t)
	a := assert.New(t)
	path := testPath(t)
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	result := testutil.RunTool(argsForToolWrite(path, "Hey!", "Test 2"), nil)
	if !a.NoError(result.Err, result.Output) {
		return
	}
	for _, want := range []string{"Hey!\n", "Test 2\n"} {
		line, err := r.Gets()
		a.NoError(err)
		a.Equal(want, line)
	}
}

// 1) open a blocking reader in another process
// 2) open a blocking writer in our process
// 3) both opens must complete
func TestFifoBlockAnotherProcess(t *testing.T) {
	skipWithoutTool(t)
	path := testPath(t)
	appKillChan := make(chan bool, 1)
	defer func() { appKillChan <- true }()
	ch := testutil.RunToolAsync(argsForToolRead(path, 1, true), appKillChan)
	var w *Fifo
	var err error
	success := testutil.WaitForFunc(func() {
		w, err = New(path, Writer, Wait)
	}, time.Second*20)
	if !assert.True(t, success) || !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, w.Puts("blocking"))
	assert.NoError(t, w.Close())
	appResult, success := testutil.WaitForAppResultChan(ch, time.Second*20)
	if assert.True(t, success) && assert.NoError(t, appResult.Err, appResult.Output) {
		assert.Equal(t, "blocking\n", appResult.Output)
	}
}

// a blocking open without a peer must be reported as a timeout by the tool.
func TestFifoToolTimeout(t *testing.T) {
	skipWithoutTool(t)
	path := testPath(t)
	result := testutil.RunTool(argsForToolOpen(path, "w", true, "300ms"), nil)
	assert.Error(t, result.Err)
	assert.Contains(t, result.Output, ErrTimeout.Error())
}
