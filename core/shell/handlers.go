package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephlewis42/dcshell/core/command"
	"github.com/josephlewis42/dcshell/core/process"
	"github.com/josephlewis42/dcshell/core/vos"
)

// initState captures the environment, search path and prompt the session
// uses until it ends.
func (s *Session) initState() State {
	patterns, err := CompilePatterns()
	if err != nil {
		return s.fail(err, true)
	}

	s.env = vos.NewMapEnvFrom(s.envSource)
	s.patterns = patterns
	s.searchPath = vos.SearchPath(s.env)
	s.prompt = s.env.Getenv(vos.EnvPrompt)
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	// An unset HOME leaves cd without an argument failing.
	s.home, _ = s.env.UserHomeDir()

	s.parser = &Parser{
		Patterns: patterns,
		Expander: &WordExpander{Env: s.env},
	}
	s.executor = &process.Executor{
		SearchPath: s.searchPath,
		Stdout:     s.stdout,
		Stderr:     s.stderr,
		Logger:     s.logger,
	}
	// Children only share the shell's input if it's a real file, otherwise
	// they'd race the line reader for buffered data.
	if f := vos.File(s.stdin); f != nil {
		s.executor.Stdin = f
	}

	s.Reset()
	return StateReadLine
}

// readLine prompts for and reads the next line.
func (s *Session) readLine() State {
	line, err := s.reader.ReadLine(s.promptString())
	atEOF := errors.Is(err, io.EOF)
	if err != nil && !atEOF {
		return s.fail(fmt.Errorf("read: %w", err), true)
	}

	line = strings.TrimSpace(line)
	blank := strings.TrimSpace(stripComment(line)) == ""
	switch {
	case blank && atEOF:
		return StateExit
	case blank:
		return StateReset
	}

	s.currentLine, s.hasLine = line, true
	return StateSeparate
}

func (s *Session) promptString() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	return fmt.Sprintf("[%s] %s", cwd, s.prompt)
}

func (s *Session) separate() State {
	s.command = command.New(s.currentLine)
	return StateParse
}

func (s *Session) parse() State {
	if err := s.parser.Parse(s.command); err != nil {
		s.logger.Printf("parse %q: %v", s.currentLine, err)
		return s.fail(err, !s.recoverParseErrors)
	}
	return StateExecute
}

// execute runs a builtin or external program and reports its exit status.
func (s *Session) execute() State {
	cmd := s.command
	if builtin, ok := AllBuiltins[cmd.Program]; ok {
		cmd.ExitCode = builtin.Main(s, cmd)
	} else {
		s.executor.Execute(cmd)
	}

	if s.exiting {
		return StateExit
	}

	if _, err := fmt.Fprintf(s.stdout, "%d\n", cmd.ExitCode); err != nil {
		return s.fail(fmt.Errorf("write exit status: %w", err), true)
	}

	if s.fatal {
		return StateError
	}
	return StateReset
}

// errorState reports the recorded error, then recovers or tears down.
func (s *Session) errorState() State {
	if s.err == nil {
		s.err = newError(errors.New("unknown error"))
	}

	if s.hasLine {
		s.diagnostic("%v: \"%s\"", s.err, s.currentLine)
	} else {
		s.diagnostic("%v", s.err)
	}

	if s.fatal {
		s.result = fmt.Errorf("%w: %w", ErrFatal, s.err)
		return StateDestroy
	}
	return StateReset
}

func (s *Session) resetState() State {
	s.Reset()
	return StateReadLine
}

func (s *Session) exitState() State {
	s.Reset()
	return StateDestroy
}

// destroy releases everything captured by init.
func (s *Session) destroy() State {
	if closer, ok := s.reader.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			s.logger.Printf("close reader: %v", err)
		}
	}

	s.Reset()
	s.env = nil
	s.patterns = nil
	s.parser = nil
	s.executor = nil
	s.searchPath = nil
	s.prompt = ""
	s.home = ""
	return stateDone
}
