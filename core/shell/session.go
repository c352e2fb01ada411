package shell

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"

	"github.com/josephlewis42/dcshell/core/command"
	"github.com/josephlewis42/dcshell/core/process"
	"github.com/josephlewis42/dcshell/core/vos"
)

// DefaultPrompt is used when PS1 is unset or empty.
const DefaultPrompt = "$ "

// Options configures a Session.
type Options struct {
	// IO holds the shell's streams, nil means the process's own.
	IO vos.VIO
	// Env is snapshotted when the session starts, nil means the process
	// environment.
	Env vos.VEnv
	// Reader supplies input lines, nil prompts on IO's stdout and reads
	// lines from IO's stdin.
	Reader LineReader
	// Logger receives state machine traces, nil discards them.
	Logger *log.Logger

	// Color highlights diagnostics on stderr.
	Color bool
	// RecoverParseErrors reports parse errors and continues with the next
	// line instead of ending the session.
	RecoverParseErrors bool
}

// Session is the shell's state. It's owned by a single goroutine and only
// mutated by the state handlers.
type Session struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	reader LineReader
	logger *log.Logger

	envSource          vos.VEnv
	errColor           *color.Color
	recoverParseErrors bool

	// Configuration captured by the init state.
	env        vos.VEnv
	patterns   *Patterns
	parser     *Parser
	executor   *process.Executor
	searchPath []string
	prompt     string
	home       string

	// Transient per-line state, cleared by Reset.
	currentLine string
	hasLine     bool
	command     *command.Command
	fatal       bool
	err         *Error
	exiting     bool

	result error
}

// NewSession creates a session that hasn't started yet.
func NewSession(opts Options) *Session {
	vio := opts.IO
	if vio == nil {
		vio = vos.NewOSIO()
	}

	s := &Session{
		stdin:              vio.Stdin(),
		stdout:             vio.Stdout(),
		stderr:             vio.Stderr(),
		reader:             opts.Reader,
		logger:             opts.Logger,
		envSource:          opts.Env,
		recoverParseErrors: opts.RecoverParseErrors,
	}

	if s.reader == nil {
		s.reader = NewPromptReader(s.stdin, s.stdout)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.envSource == nil {
		s.envSource = &vos.OSEnv{}
	}
	if opts.Color {
		s.errColor = color.New(color.FgRed)
		s.errColor.EnableColor()
	}

	return s
}

// RunShell runs a session to completion.
func RunShell(opts Options) error {
	return NewSession(opts).Run()
}

// Reset clears the per-line state. Calling it more than once is harmless.
func (s *Session) Reset() {
	s.currentLine = ""
	s.hasLine = false
	s.command = nil
	s.fatal = false
	s.err = nil
	s.exiting = false
}

// CurrentLine returns the line being processed, if any.
func (s *Session) CurrentLine() (string, bool) {
	return s.currentLine, s.hasLine
}

// Command returns the command being processed, if any.
func (s *Session) Command() *command.Command {
	return s.command
}

// Fatal reports whether the session will end after the current line.
func (s *Session) Fatal() bool {
	return s.fatal
}

// String dumps the transient state for debugging.
func (s *Session) String() string {
	sb := &strings.Builder{}
	if s.hasLine {
		fmt.Fprintf(sb, "current_line = %q", s.currentLine)
	} else {
		sb.WriteString("current_line = NULL")
	}

	fatal := 0
	if s.fatal {
		fatal = 1
	}
	fmt.Fprintf(sb, ", fatal_error = %d", fatal)

	if s.command != nil {
		fmt.Fprintf(sb, ", command = %v", s.command)
	}
	return sb.String()
}

// fail records err and moves to the error state.
func (s *Session) fail(err error, fatal bool) State {
	s.err = newError(err)
	if fatal {
		s.fatal = true
	}
	return StateError
}

// diagnostic writes a line to stderr, highlighted if color is enabled.
func (s *Session) diagnostic(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if s.errColor != nil {
		msg = s.errColor.Sprint(msg)
	}
	fmt.Fprintln(s.stderr, msg)
}
