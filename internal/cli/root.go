// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package cli implements the fifotool commands.
package cli

import (
	"context"
	"time"

	"github.com/nxgtw/go-fifo"
	"github.com/nxgtw/go-fifo/internal/config"
	"github.com/nxgtw/go-fifo/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// toolEnv is shared by all sub-commands and is filled in before any of them runs.
type toolEnv struct {
	cfg     *config.Config
	log     *zap.Logger
	timeout time.Duration
}

// NewRoot returns the fifotool root command.
func NewRoot(version string) *cobra.Command {
	env := &toolEnv{cfg: config.Default(), log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:           "fifotool",
		Short:         "fifotool: read and write named pipes line by line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			env.log.Sync()
		},
	}
	cmd.Version = version
	cmd.SetVersionTemplate("fifotool {{.Version}}\n")

	cmd.PersistentFlags().Duration("timeout", 0, "give up after this long (0 waits forever); env FIFOTOOL_TIMEOUT")
	cmd.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error; env FIFOTOOL_LOG_LEVEL")

	cmd.AddCommand(newWriteCmd(env))
	cmd.AddCommand(newPrintCmd(env))
	cmd.AddCommand(newReadCmd(env))
	cmd.AddCommand(newOpenCmd(env))
	cmd.AddCommand(newRmCmd(env))
	return cmd
}

// init loads the environment configuration and applies flag overrides.
func (env *toolEnv) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return exitError(err)
	}
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		return exitError(err)
	}
	env.cfg, env.log, env.timeout = cfg, log, cfg.Timeout
	return nil
}

// context returns a context bounded by the configured timeout.
func (env *toolEnv) context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if env.timeout > 0 {
		return context.WithTimeout(parent, env.timeout)
	}
	return context.WithCancel(parent)
}

func (env *toolEnv) options() []fifo.Option {
	return []fifo.Option{
		fifo.WithLogger(env.log),
		fifo.WithPerm(env.cfg.FileMode()),
		fifo.WithBufferSize(env.cfg.BufferSize),
	}
}

func (env *toolEnv) open(ctx context.Context, path string, role fifo.Role, mode fifo.Mode) (*fifo.Fifo, error) {
	return fifo.OpenContext(ctx, path, role, mode, env.options()...)
}

func modeFlag(wait bool) fifo.Mode {
	if wait {
		return fifo.Wait
	}
	return fifo.NoWait
}
