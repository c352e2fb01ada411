package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Argv(t *testing.T) {
	cases := map[string]struct {
		cmd      Command
		expected []string
	}{
		"no-args":   {Command{Program: "ls"}, []string{"ls"}},
		"with-args": {Command{Program: "ls", Args: []string{"-l", "/tmp"}}, []string{"ls", "-l", "/tmp"}},
		"path":      {Command{Program: "./a.out", Args: []string{""}}, []string{"./a.out", ""}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			argv := tc.cmd.Argv()
			assert.Equal(t, tc.expected, argv)

			// The argument vector must not alias the command's own args.
			if len(tc.cmd.Args) > 0 {
				argv[1] = "changed"
				assert.NotEqual(t, "changed", tc.cmd.Args[0])
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	cmd := &Command{
		Program:      "./a.out",
		Args:         []string{"x"},
		StdinFile:    "in.txt",
		StdoutFile:   "out.txt",
		StderrFile:   "err.txt",
		StderrAppend: true,
	}

	assert.Equal(t, `["./a.out" "x"] <"in.txt" >"out.txt" 2>>"err.txt"`, cmd.String())
}

func TestNew(t *testing.T) {
	cmd := New("ls -l")

	assert.Equal(t, "ls -l", cmd.Line)
	assert.Empty(t, cmd.Program)
	assert.Empty(t, cmd.StdoutFile)
	assert.False(t, cmd.StdoutAppend)
	assert.Equal(t, 0, cmd.ExitCode)
}
