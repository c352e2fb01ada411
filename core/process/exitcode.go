package process

import (
	"errors"
	"os"
	"syscall"
)

// Exit statuses reported when a command couldn't be run.
const (
	ExitArgListTooLong   = 1
	ExitPermissionDenied = 2
	ExitInvalidArgument  = 3
	ExitSymlinkLoop      = 4
	ExitNameTooLong      = 5
	ExitNotDirectory     = 6
	ExitExecFormat       = 7
	ExitOutOfMemory      = 8
	ExitTextFileBusy     = 9

	ExitUnknown        = 125
	ExitRedirectFailed = 126
	ExitNotFound       = 127

	ExitSignalBase = 128
)

// ExecFailureCode maps the error from a failed exec to the exit status
// reported for the command.
func ExecFailureCode(err error) int {
	if errors.Is(err, ErrNotFound) {
		return ExitNotFound
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return ExitUnknown
	}
	if code, ok := errnoExitCodes[errno]; ok {
		return code
	}
	return ExitUnknown
}

func signaled(state *os.ProcessState) (int, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return int(ws.Signal()), true
}
