// Package command holds the parsed form of a single command line.
package command

import (
	"fmt"
	"strings"
)

// Command is one parsed invocation.
//
// Program is stored once and Args never contain it; the native argument
// vector is only built by Argv at the exec boundary. Empty redirection
// targets mean the stream is inherited from the shell.
type Command struct {
	// Line holds the original input, it isn't modified by parsing.
	Line string

	// Program is the executable name or path, it becomes argv[0].
	Program string
	// Args holds the positional arguments, excluding the program.
	Args []string

	StdinFile  string
	StdoutFile string
	StderrFile string

	// StdoutAppend and StderrAppend select append mode over truncate-create.
	StdoutAppend bool
	StderrAppend bool

	// ExitCode is populated after execution.
	ExitCode int
}

// New creates an unparsed command for the line.
func New(line string) *Command {
	return &Command{Line: line}
}

// Argv builds the argument vector passed to exec: the program followed by
// its arguments.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}

// String renders the command for logs.
func (c *Command) String() string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%q", c.Argv())
	if c.StdinFile != "" {
		fmt.Fprintf(sb, " <%q", c.StdinFile)
	}
	if c.StdoutFile != "" {
		fmt.Fprintf(sb, " %s%q", redirOp(c.StdoutAppend, ">"), c.StdoutFile)
	}
	if c.StderrFile != "" {
		fmt.Fprintf(sb, " %s%q", redirOp(c.StderrAppend, "2>"), c.StderrFile)
	}
	return sb.String()
}

func redirOp(appendMode bool, op string) string {
	if appendMode {
		return op + ">"
	}
	return op
}
