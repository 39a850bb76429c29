// Copyright 2016 Aleksandr Demakin. All rights reserved.

package cli

import (
	"context"
	"io"
	"time"

	"github.com/nxgtw/go-fifo"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// pollInterval is the delay between reads of an empty NoWait fifo.
const pollInterval = 10 * time.Millisecond

func newWriteCmd(env *toolEnv) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "write PATH LINE...",
		Short: "Write each LINE to the fifo as a separate line",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(env.withWriter(cmd.Context(), args[0], wait, func(f *fifo.Fifo) error {
				return f.Puts(toValues(args[1:])...)
			}))
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "block until a reader opens the fifo")
	return cmd
}

func newPrintCmd(env *toolEnv) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "print PATH VALUE...",
		Short: "Write all VALUEs to the fifo as a single line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(env.withWriter(cmd.Context(), args[0], wait, func(f *fifo.Fifo) error {
				return f.Print(toValues(args[1:])...)
			}))
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "block until a reader opens the fifo")
	return cmd
}

func newReadCmd(env *toolEnv) *cobra.Command {
	var (
		wait  bool
		lines int
	)
	cmd := &cobra.Command{
		Use:   "read PATH",
		Short: "Read lines from the fifo and print them to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 1 {
				return exitError(errors.Errorf("invalid number of lines %d", lines))
			}
			ctx, cancel := env.context(cmd.Context())
			defer cancel()
			f, err := env.open(ctx, args[0], fifo.Reader, modeFlag(wait))
			if err != nil {
				return exitError(err)
			}
			err = fifo.Await(ctx, func() error {
				return readLines(ctx, f, lines, cmd.OutOrStdout())
			})
			if fifo.IsTimeout(err) {
				// a blocked read still owns the fifo.
				return exitError(err)
			}
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			return exitError(err)
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "block until a writer opens the fifo and data arrives")
	cmd.Flags().IntVarP(&lines, "lines", "n", 1, "number of lines to read")
	return cmd
}

func newOpenCmd(env *toolEnv) *cobra.Command {
	var (
		wait bool
		role string
	)
	cmd := &cobra.Command{
		Use:   "open PATH",
		Short: "Open and close the fifo, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := fifo.ParseRole(role)
			if err != nil {
				return exitError(err)
			}
			ctx, cancel := env.context(cmd.Context())
			defer cancel()
			f, err := env.open(ctx, args[0], r, modeFlag(wait))
			if err != nil {
				return exitError(err)
			}
			return exitError(f.Close())
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "block until the other end is opened")
	cmd.Flags().StringVar(&role, "role", "r", "fifo end to open: r|w")
	return cmd
}

func newRmCmd(env *toolEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH",
		Short: "Remove the fifo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(fifo.Remove(args[0]))
		},
	}
}

func (env *toolEnv) withWriter(parent context.Context, path string, wait bool, fn func(*fifo.Fifo) error) error {
	ctx, cancel := env.context(parent)
	defer cancel()
	f, err := env.open(ctx, path, fifo.Writer, modeFlag(wait))
	if err != nil {
		return err
	}
	err = fifo.Await(ctx, func() error {
		return fn(f)
	})
	if fifo.IsTimeout(err) {
		return err
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// readLines copies n lines from f to out. On an empty NoWait fifo it polls until ctx is done.
func readLines(ctx context.Context, f *fifo.Fifo, n int, out io.Writer) error {
	for i := 0; i < n; i++ {
		var line string
		for {
			part, err := f.ReadLine()
			line += part
			if err == nil {
				break
			}
			if !fifo.IsWouldBlock(err) {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollInterval):
			}
		}
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
	}
	return nil
}

func toValues(args []string) []interface{} {
	values := make([]interface{}, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return values
}
