package process

import (
	"os"
	"os/exec"

	"github.com/josephlewis42/dcshell/core/command"
)

const redirectPerm = 0644

// redirections holds the files opened for a command's redirected streams.
// They're owned by the executor for the lifetime of the child only.
type redirections struct {
	stdin  *os.File
	stdout *os.File
	stderr *os.File
}

// openRedirections opens every redirection target of cmd. Standard input
// must exist, output files are created if missing and truncated unless
// appending.
func openRedirections(cmd *command.Command) (*redirections, error) {
	r := &redirections{}

	var err error
	if cmd.StdinFile != "" {
		if r.stdin, err = os.Open(cmd.StdinFile); err != nil {
			r.Close()
			return nil, err
		}
	}

	if cmd.StdoutFile != "" {
		if r.stdout, err = os.OpenFile(cmd.StdoutFile, outputFlags(cmd.StdoutAppend), redirectPerm); err != nil {
			r.Close()
			return nil, err
		}
	}

	if cmd.StderrFile != "" {
		if r.stderr, err = os.OpenFile(cmd.StderrFile, outputFlags(cmd.StderrAppend), redirectPerm); err != nil {
			r.Close()
			return nil, err
		}
	}

	return r, nil
}

func outputFlags(appendMode bool) int {
	flag := os.O_CREATE | os.O_WRONLY
	if appendMode {
		return flag | os.O_APPEND
	}
	return flag | os.O_TRUNC
}

// apply replaces the child's inherited streams with the opened files.
func (r *redirections) apply(child *exec.Cmd) {
	if r.stdin != nil {
		child.Stdin = r.stdin
	}
	if r.stdout != nil {
		child.Stdout = r.stdout
	}
	if r.stderr != nil {
		child.Stderr = r.stderr
	}
}

// Close closes every opened file, it is safe to call more than once.
func (r *redirections) Close() error {
	var lastErr error
	for _, f := range []**os.File{&r.stdin, &r.stdout, &r.stderr} {
		if *f == nil {
			continue
		}
		if err := (*f).Close(); err != nil {
			lastErr = err
		}
		*f = nil
	}
	return lastErr
}
