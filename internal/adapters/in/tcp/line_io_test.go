package tcp

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pipeRW struct {
	io.Reader
	io.Writer
}

func TestLineIO_ReadLine(t *testing.T) {
	input := "menu\r\n" +
		strings.Repeat("x", maxLineLength+10) + "\r\n" +
		"add 1\n" +
		"cart"
	l := newLineIO(pipeRW{Reader: strings.NewReader(input), Writer: io.Discard})

	line, err := l.readLine()
	require.NoError(t, err)
	assert.Equal(t, "menu", line)

	_, err = l.readLine()
	assert.ErrorIs(t, err, errLineTooLong)

	line, err = l.readLine()
	require.NoError(t, err)
	assert.Equal(t, "add 1", line)

	line, err = l.readLine()
	require.NoError(t, err)
	assert.Equal(t, "cart", line)

	_, err = l.readLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineIO_OverlongLineAtEndOfInput(t *testing.T) {
	l := newLineIO(pipeRW{Reader: strings.NewReader(strings.Repeat("x", 2*maxLineLength)), Writer: io.Discard})

	_, err := l.readLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineIO_WritesCRLF(t *testing.T) {
	var out bytes.Buffer
	l := newLineIO(pipeRW{Reader: strings.NewReader(""), Writer: &out})

	require.NoError(t, l.writeLines("a", "b\nc"))
	require.NoError(t, l.prompt("cmd> "))
	assert.Equal(t, "a\r\nb\r\nc\r\n\r\ncmd> ", out.String())
}
