package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptReader(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewPromptReader(strings.NewReader("first\nsecond"), out)

	line, err := r.ReadLine("1> ")
	assert.NoError(t, err)
	assert.Equal(t, "first\n", line)

	line, err = r.ReadLine("2> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "second", line)

	line, err = r.ReadLine("3> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, line)

	assert.Equal(t, "1> 2> 3> ", out.String())
}
