// Copyright 2016 Aleksandr Demakin. All rights reserved.

// fifotool reads and writes fifos from the command line.
//
//	fifotool write /tmp/my-fifo "first line" "second line"
//	fifotool read --lines 2 /tmp/my-fifo
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nxgtw/go-fifo/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRoot(version).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		var ee *cli.ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.Code())
		}
		os.Exit(cli.ExitFailure)
	}
}
