package tcp

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// maxLineLength bounds a single command line.
const maxLineLength = 4096

// errLineTooLong is returned by readLine after it has discarded a line
// longer than maxLineLength. The connection stays usable.
var errLineTooLong = errors.New("line too long")

// lineIO frames a telnet-style connection: lines are read up to LF with a
// trailing CR dropped, and written with CRLF endings.
type lineIO struct {
	r *bufio.Reader
	w *bufio.Writer
}

func newLineIO(rw io.ReadWriter) *lineIO {
	return &lineIO{
		r: bufio.NewReaderSize(rw, maxLineLength),
		w: bufio.NewWriter(rw),
	}
}

// readLine returns the next line, or io.EOF once the peer stops sending.
// A final line without LF is still returned.
func (l *lineIO) readLine() (string, error) {
	data, err := l.r.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = l.r.ReadSlice('\n')
		}
		if err != nil {
			return "", err
		}
		return "", errLineTooLong
	}

	line := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (l *lineIO) writeLines(lines ...string) error {
	for _, line := range lines {
		if _, err := l.w.WriteString(strings.ReplaceAll(line, "\n", "\r\n") + "\r\n"); err != nil {
			return err
		}
	}
	return l.w.Flush()
}

// prompt writes a blank line and the prompt, leaving the cursor after it.
func (l *lineIO) prompt(p string) error {
	if _, err := l.w.WriteString("\r\n" + p); err != nil {
		return err
	}
	return l.w.Flush()
}
