// Package prompt asks the user for values the options record could not
// resolve on its own.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/cmccandless/python-bootstrap/internal/options"
)

// New returns a terminal form when in is an interactive terminal and a
// line reader otherwise. accessible switches the form to plain prompts.
func New(in io.Reader, out io.Writer, accessible bool) options.ValueSource {
	f, ok := in.(*os.File)
	return newSource(in, out, ok && isTerminal(f), accessible)
}

func newSource(in io.Reader, out io.Writer, terminal, accessible bool) options.ValueSource {
	if terminal {
		return &FormSource{Accessible: accessible}
	}
	return NewLineSource(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LineSource prints "<field>: " and reads one line per value.
type LineSource struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLineSource reads answers from r and writes prompts to w.
func NewLineSource(r io.Reader, w io.Writer) *LineSource {
	return &LineSource{reader: bufio.NewReader(r), w: w}
}

// Value prompts for field and returns the line without its line ending.
// A closed input with nothing read returns io.EOF.
func (s *LineSource) Value(field string) (string, error) {
	fmt.Fprintf(s.w, "%s: ", field)

	line, err := s.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// FormSource asks for each value with a single-input terminal form.
type FormSource struct {
	// Accessible renders plain prompts for screen readers.
	Accessible bool
}

// Value runs an input form titled with field.
func (s *FormSource) Value(field string) (string, error) {
	var value string
	input := huh.NewInput().
		Title(field).
		Value(&value)

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(s.Accessible)
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
