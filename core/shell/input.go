package shell

import (
	"bufio"
	"errors"
	"io"

	"github.com/abiosoft/readline"

	"github.com/josephlewis42/dcshell/core/vos"
)

// LineReader supplies the shell's input one line at a time. At the end of
// input it returns io.EOF, possibly along with a final unterminated line.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type promptReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptReader creates a LineReader that writes the prompt to out and
// reads up to the next newline from in.
func NewPromptReader(in io.Reader, out io.Writer) LineReader {
	return &promptReader{in: bufio.NewReader(in), out: out}
}

func (r *promptReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	return r.in.ReadString('\n')
}

// ReadlineReader reads lines with editing and history.
type ReadlineReader struct {
	instance *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)
var _ io.Closer = (*ReadlineReader)(nil)

// NewReadlineReader creates an editing line reader over the streams. History
// is persisted to historyFile if it's not empty.
func NewReadlineReader(vio vos.VIO, historyFile string) (*ReadlineReader, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(vio.Stdin()),
		Stdout:      vio.Stdout(),
		Stderr:      vio.Stderr(),
		HistoryFile: historyFile,

		FuncIsTerminal: func() bool {
			return vos.IsTerminal(vio.Stdout())
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineReader{instance: instance}, nil
}

// ReadLine reads a line, an interrupt discards the line being edited.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.instance.Close()
}
