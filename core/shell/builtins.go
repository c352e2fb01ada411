package shell

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/pborman/getopt/v2"

	"github.com/josephlewis42/dcshell/core/command"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

// ShellBuiltin is a command run inside the shell process. It returns the
// command's exit status.
type ShellBuiltin interface {
	Main(s *Session, cmd *command.Command) int
}

type ShellBuiltinFunc func(s *Session, cmd *command.Command) int

func (f ShellBuiltinFunc) Main(s *Session, cmd *command.Command) int {
	return f(s, cmd)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
}

// Cd is the cd shell builtin, with no directory it changes to HOME.
func Cd(s *Session, cmd *command.Command) int {
	opts := getopt.New()
	opts.SetProgram(cmd.Program)
	opts.SetParameters("[DIR]")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(cmd.Argv(), nil); err != nil {
		s.diagnostic("%s: %v", cmd.Program, err)
		opts.PrintUsage(s.stderr)
		return 1
	}

	if *helpOpt {
		opts.PrintUsage(s.stdout)
		return 0
	}

	var dir string
	switch args := opts.Args(); len(args) {
	case 0:
		if s.home == "" {
			s.diagnostic("%s: HOME not set", cmd.Program)
			return 1
		}
		dir = s.home
	case 1:
		dir = args[0]
	default:
		s.diagnostic("%s: too many arguments", cmd.Program)
		return 1
	}

	if err := os.Chdir(dir); err != nil {
		s.diagnostic("%s: %s", dir, chdirFailure(err))
		return 1
	}
	return 0
}

func chdirFailure(err error) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, syscall.ELOOP):
		return "loop exists in symbolic links"
	case errors.Is(err, syscall.ENAMETOOLONG):
		return "file name too long"
	case errors.Is(err, fs.ErrNotExist):
		return "does not exist"
	case errors.Is(err, syscall.ENOTDIR):
		return "is not a directory"
	default:
		return "fatal error"
	}
}

// Exit quits the shell, arguments are ignored.
func Exit(s *Session, cmd *command.Command) int {
	s.exiting = true
	return 0
}
