// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package fifo

import (
	"os"

	"go.uber.org/zap"
)

func openPipe(string, Role, Mode, os.FileMode, *zap.Logger) (Pipe, error) {
	return nil, ErrUnsupported
}

func removePipe(string) error {
	return ErrUnsupported
}
