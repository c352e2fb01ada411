//go:build unix

package process

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var errnoExitCodes = map[syscall.Errno]int{
	unix.E2BIG:        ExitArgListTooLong,
	unix.EACCES:       ExitPermissionDenied,
	unix.EINVAL:       ExitInvalidArgument,
	unix.ELOOP:        ExitSymlinkLoop,
	unix.ENAMETOOLONG: ExitNameTooLong,
	unix.ENOENT:       ExitNotFound,
	unix.ENOTDIR:      ExitNotDirectory,
	unix.ENOEXEC:      ExitExecFormat,
	unix.ENOMEM:       ExitOutOfMemory,
	unix.ETXTBSY:      ExitTextFileBusy,
}
