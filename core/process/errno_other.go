//go:build !unix

package process

import "syscall"

var errnoExitCodes = map[syscall.Errno]int{
	syscall.ENOENT: ExitNotFound,
}
