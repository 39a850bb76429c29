// Copyright 2016 Aleksandr Demakin. All rights reserved.

package fifo

import (
	"context"

	"github.com/pkg/errors"
)

// Await calls fn asynchronously and waits for it to finish or for ctx to be done.
// If the deadline of ctx expires first, the returned error satisfies IsTimeout.
// If ctx is cancelled, ctx.Err() is returned. In both cases fn keeps running
// in the background until the call it is blocked in returns.
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	err := fifo.Await(ctx, func() error {
//		line, err = r.Gets()
//		return err
//	})
func Await(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return contextErr(ctx)
	}
}

// OpenContext works as New, but gives up when ctx is done.
// Invalid arguments are reported immediately. A fifo that gets opened
// after ctx is done is closed.
func OpenContext(ctx context.Context, path string, role Role, mode Mode, opts ...Option) (*Fifo, error) {
	if err := validate(role, mode); err != nil {
		return nil, err
	}
	type result struct {
		f   *Fifo
		err error
	}
	done := make(chan result, 1)
	go func() {
		f, err := New(path, role, mode, opts...)
		done <- result{f: f, err: err}
	}()
	select {
	case r := <-done:
		return r.f, r.err
	case <-ctx.Done():
		go func() {
			if r := <-done; r.err == nil {
				r.f.Close()
			}
		}()
		return nil, contextErr(ctx)
	}
}

func contextErr(ctx context.Context) error {
	err := ctx.Err()
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(ErrTimeout, err.Error())
	}
	return err
}
