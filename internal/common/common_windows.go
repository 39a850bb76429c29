// Copyright 2016 Aleksandr Demakin. All rights reserved.

package common

import "golang.org/x/sys/windows"

// IsPipeBusyErr returns true, if all instances of a named pipe are busy.
func IsPipeBusyErr(err error) bool {
	return SyscallErrHasCode(err, windows.ERROR_PIPE_BUSY)
}

// IsPipeMissingErr returns true, if the named pipe server does not exist yet.
func IsPipeMissingErr(err error) bool {
	return SyscallErrHasCode(err, windows.ERROR_FILE_NOT_FOUND)
}
