// Package process runs external programs for the shell: it applies
// redirections, searches the PATH and turns exec failures into exit codes.
package process

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/josephlewis42/dcshell/core/command"
	"github.com/josephlewis42/dcshell/core/vos"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// Executor runs a parsed command as a child process and blocks until it
// exits. There is no cancellation: a child that never exits blocks the
// caller.
type Executor struct {
	// SearchPath holds the directories probed, in order, for program names
	// that don't contain a slash. An empty list searches nothing.
	SearchPath []string

	// Stdin, Stdout and Stderr are inherited by the child for any stream that
	// isn't redirected. A nil stream is connected to the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives debug information, it may be nil.
	Logger *log.Logger
}

// Execute runs cmd to completion and always sets cmd.ExitCode.
func (e *Executor) Execute(cmd *command.Command) {
	files, err := openRedirections(cmd)
	if err != nil {
		e.logf("redirection failed for %s: %v", cmd, err)
		if e.Stderr != nil {
			fmt.Fprintf(e.Stderr, "%s: %v\n", cmd.Program, err)
		}
		cmd.ExitCode = ExitRedirectFailed
		return
	}
	defer files.Close()

	cmd.ExitCode = e.run(cmd, files)
	e.logf("%s exited with %d", cmd, cmd.ExitCode)
}

func (e *Executor) run(cmd *command.Command, files *redirections) int {
	var lastErr error = ErrNotFound
	for _, candidate := range e.candidates(cmd.Program) {
		child := &exec.Cmd{
			Path:   candidate,
			Args:   cmd.Argv(),
			Stdin:  e.Stdin,
			Stdout: e.Stdout,
			Stderr: e.Stderr,
		}
		files.apply(child)

		err := child.Start()
		if err == nil {
			if err := child.Wait(); err != nil {
				e.logf("wait %s: %v", candidate, err)
			}
			return ExitStatus(child.ProcessState)
		}

		e.logf("exec %s: %v", candidate, err)
		lastErr = err
		// Any failure other than a missing file means the program exists but
		// can't run, so later directories are irrelevant.
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}

	return ExecFailureCode(lastErr)
}

// candidates lists the paths to try in order.
func (e *Executor) candidates(program string) []string {
	if vos.DontSearch(program) {
		return []string{program}
	}

	out := make([]string, 0, len(e.SearchPath))
	for _, dir := range e.SearchPath {
		out = append(out, filepath.Join(dir, program))
	}
	return out
}

func (e *Executor) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// ExitStatus converts the result of waiting on a child into a shell exit
// status. Children killed by a signal report 128 plus the signal number.
func ExitStatus(state *os.ProcessState) int {
	if state == nil {
		return ExitUnknown
	}

	if signal, ok := signaled(state); ok {
		return ExitSignalBase + signal
	}

	if code := state.ExitCode(); code >= 0 {
		return code
	}
	return ExitUnknown
}
