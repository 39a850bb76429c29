// Copyright 2016 Aleksandr Demakin. All rights reserved.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	a := assert.New(t)
	for in, want := range map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"ERROR": zapcore.ErrorLevel,
	} {
		l, err := ParseLevel(in)
		if a.NoError(err, in) {
			a.Equal(want, l, in)
		}
	}
	_, err := ParseLevel("loud")
	a.Error(err)
}

func TestNewWritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Config{Level: "debug", OutputPaths: []string{out}})
	require.NoError(t, err)
	log.Debug("fifo opened")
	require.NoError(t, log.Sync())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"fifo opened"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}
