// Copyright 2015 Aleksandr Demakin. All rights reserved.

// Package testutil runs fifotool as a separate process and bounds waits in tests.
package testutil

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
	"time"
)

// AppResult is a result of a fifotool launch.
type AppResult struct {
	Output string
	Err    error
}

// ToolPackage returns the import directory of fifotool relative to the module root.
func ToolPackage() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "./cmd/fifotool"
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "cmd", "fifotool")
}

func startTool(args []string, killChan <-chan bool) (*exec.Cmd, *bytes.Buffer, error) {
	args = append([]string{"run", ToolPackage()}, args...)
	cmd := exec.Command("go", args...)
	buff := bytes.NewBuffer(nil)
	cmd.Stderr = buff
	cmd.Stdout = buff
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}
	if killChan != nil {
		go func() {
			if kill, ok := <-killChan; kill && ok {
				if cmd.ProcessState == nil || !cmd.ProcessState.Exited() {
					cmd.Process.Kill()
				}
			}
		}()
	}
	return cmd, buff, nil
}

func waitForCommand(cmd *exec.Cmd, buff *bytes.Buffer) (result AppResult) {
	if result.Err = cmd.Wait(); result.Err != nil {
		if exiterr, ok := result.Err.(*exec.ExitError); ok {
			if status, ok := exiterr.Sys().(syscall.WaitStatus); ok {
				result.Err = fmt.Errorf("%v, status code = %d", result.Err, status.ExitStatus())
			}
		}
	} else if !cmd.ProcessState.Success() {
		result.Err = fmt.Errorf("process has exited with an error")
	}
	result.Output = buff.String()
	return
}

// RunTool starts fifotool via 'go run' and waits for it to finish.
// To kill the process, send to killChan.
func RunTool(args []string, killChan <-chan bool) (result AppResult) {
	if cmd, buff, err := startTool(args, killChan); err == nil {
		result = waitForCommand(cmd, buff)
	} else {
		result.Err = err
	}
	return
}

// RunToolAsync starts fifotool via 'go run' and returns immediately.
// To kill the process, send to killChan.
// To wait for the program to finish, receive on the AppResult chan.
func RunToolAsync(args []string, killChan <-chan bool) <-chan AppResult {
	ch := make(chan AppResult, 1)
	if cmd, buff, err := startTool(args, killChan); err != nil {
		ch <- AppResult{Err: err}
	} else {
		go func() {
			ch <- waitForCommand(cmd, buff)
		}()
	}
	return ch
}

// WaitForFunc calls f asynchronously leaving it some time to finish.
// It returns true, if f completed.
func WaitForFunc(f func(), d time.Duration) bool {
	ch := make(chan bool, 1)
	go func() {
		f()
		ch <- true
	}()
	select {
	case <-ch:
		return true
	case <-time.After(d):
		return false
	}
}

// WaitForAppResultChan waits for a value from ch with a timeout.
func WaitForAppResultChan(ch <-chan AppResult, d time.Duration) (AppResult, bool) {
	select {
	case value := <-ch:
		return value, true
	case <-time.After(d):
		return AppResult{}, false
	}
}
