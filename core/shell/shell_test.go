package shell

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/dcshell/core/vos"
)

type transcriptData struct {
	Cwd string
}

type transcriptTest struct {
	Input string
	Env   []string
}

type transcriptSuite map[string]transcriptTest

// Run feeds each input to a new session and compares stdout with the golden
// transcript. Sessions change the working directory so tests can't be
// parallel.
func (ts transcriptSuite) Run(t *testing.T) {
	t.Helper()

	// Sessions run in temporary directories so fixtures need an absolute path.
	fixtures, err := filepath.Abs(filepath.Join("testdata", "golden"))
	require.NoError(t, err)

	g := goldie.New(
		t,
		goldie.WithFixtureDir(fixtures),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	for tn, tc := range ts {
		t.Run(tn, func(t *testing.T) {
			cwd := chdir(t, t.TempDir())
			stdout, _, err := runTranscript(t, tc.Input, Options{Env: vos.NewMapEnvFromEnvList(tc.Env)})
			require.NoError(t, err)

			g.AssertWithTemplate(t, tn, transcriptData{Cwd: cwd}, stdout)
		})
	}
}

func runTranscript(t *testing.T, input string, opts Options) ([]byte, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	opts.IO = vos.NewVIOAdapter(strings.NewReader(input), stdout, stderr)

	err := RunShell(opts)
	return stdout.Bytes(), stderr.String(), err
}

func TestShell_Transcripts(t *testing.T) {
	path := "PATH=/bin:/usr/bin"

	transcriptSuite{
		"exit-default-prompt": {Input: "exit\n"},
		"exit-custom-prompt":  {Input: "exit\n", Env: []string{"PS1=>>>>"}},
		"cd-root":             {Input: "cd /\nexit\n"},
		"blank-lines":         {Input: "\n   \n\t\nexit\n"},
		"external":            {Input: "echo hello\nexit\n", Env: []string{path}},
		"not-found":           {Input: "nosuchprogram\nexit\n", Env: []string{path}},
		"no-path":             {Input: "echo hello\nexit\n"},
		"exit-status":         {Input: "sh -c 'exit 7'\nexit\n", Env: []string{path}},
		"eof":                 {Input: "echo hi", Env: []string{path}},
		"comments":            {Input: "# only a comment\n   # indented\necho hi # trailing\nexit\n", Env: []string{path}},
		"expansion":           {Input: "echo $GREETING ~/x\nexit\n", Env: []string{path, "GREETING=hello", "HOME=/home/dc"}},
	}.Run(t)
}

func TestShell_Redirection(t *testing.T) {
	dir := chdir(t, t.TempDir())

	stdout, _, err := runTranscript(t, "echo one > out\necho two >> out\ncat < out 2> err\nexit\n", Options{
		Env: vos.NewMapEnvFromEnvList([]string{"PATH=/bin:/usr/bin"}),
	})
	require.NoError(t, err)

	assert.Contains(t, string(stdout), "one\ntwo\n0\n")
	contents, err := os.ReadFile(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(contents))
	assert.FileExists(t, filepath.Join(dir, "err"))
}

func TestShell_ParseErrorIsFatal(t *testing.T) {
	cwd := chdir(t, t.TempDir())

	stdout, stderr, err := runTranscript(t, "echo \"unterminated\nexit\n", Options{Env: vos.NewMapEnv()})

	assert.ErrorIs(t, err, ErrFatal)
	assert.ErrorIs(t, err, ErrExpansion)
	assert.Equal(t, "["+cwd+"] $ ", string(stdout))
	assert.True(t, strings.HasPrefix(stderr, "internal error (1) "), stderr)
	assert.True(t, strings.HasSuffix(stderr, ": \"echo \"unterminated\"\n"), stderr)
}

func TestShell_RecoverParseErrors(t *testing.T) {
	cwd := chdir(t, t.TempDir())
	prompt := "[" + cwd + "] $ "

	stdout, stderr, err := runTranscript(t, "cmd > a > b\nexit\n", Options{
		Env:                vos.NewMapEnv(),
		RecoverParseErrors: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, prompt+prompt, string(stdout))
	assert.Contains(t, stderr, "duplicate redirection")
	assert.Contains(t, stderr, `: "cmd > a > b"`)
}

func TestShell_EmptyInput(t *testing.T) {
	chdir(t, t.TempDir())

	_, stderr, err := runTranscript(t, "", Options{Env: vos.NewMapEnv()})

	assert.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestShell_EnvironmentSnapshot(t *testing.T) {
	cwd := chdir(t, t.TempDir())
	env := vos.NewMapEnvFromEnvList([]string{"PS1=% "})
	reader := &scriptedReader{
		lines: []string{"exit\n"},
		before: func() {
			env.Setenv(vos.EnvPrompt, "changed ")
		},
	}

	err := RunShell(Options{IO: vos.NewNullIO(), Env: env, Reader: reader})

	assert.NoError(t, err)
	assert.Equal(t, []string{"[" + cwd + "] % "}, reader.prompts)
}

func TestShell_Color(t *testing.T) {
	chdir(t, t.TempDir())

	_, stderr, _ := runTranscript(t, "cd a b\nexit\n", Options{Env: vos.NewMapEnv(), Color: true})

	assert.Contains(t, stderr, "\x1b[31m")
	assert.Contains(t, stderr, "cd: too many arguments")
}

// scriptedReader replays lines and records the prompts it was given. Once
// the lines run out it returns err, or io.EOF if err is nil.
type scriptedReader struct {
	lines   []string
	err     error
	prompts []string
	before  func()
	closed  bool
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	if r.before != nil {
		r.before()
	}
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func TestShell_ClosesReader(t *testing.T) {
	chdir(t, t.TempDir())
	reader := &scriptedReader{lines: []string{"exit"}}

	require.NoError(t, RunShell(Options{IO: vos.NewNullIO(), Env: vos.NewMapEnv(), Reader: reader}))

	assert.True(t, reader.closed)
}

func TestShell_ReadErrorIsFatal(t *testing.T) {
	chdir(t, t.TempDir())
	stderr := &bytes.Buffer{}
	reader := &scriptedReader{lines: []string{"\n"}, err: errors.New("boom")}

	err := RunShell(Options{
		IO:                 vos.NewVIOAdapter(nil, nil, stderr),
		Env:                vos.NewMapEnv(),
		Reader:             reader,
		RecoverParseErrors: true,
	})

	assert.ErrorIs(t, err, ErrFatal)
	assert.Equal(t, "internal error (1) read: boom\n", stderr.String())
	assert.Len(t, reader.prompts, 2)
	assert.True(t, reader.closed)
}
