package uboot

import (
	"io"
	"strings"
)

// Script is an ordered sequence of u-boot commands and blank separators
type Script struct {
	lines []Line
}

func (s *Script) add(lines ...Line) {
	s.lines = append(s.lines, lines...)
}

func (s *Script) blank(n int) {
	for i := 0; i < n; i++ {
		s.lines = append(s.lines, blank{})
	}
}

// Lines returns the rendered lines
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.String()
	}
	return out
}

// String joins the rendered lines with newlines, without a trailing newline
func (s *Script) String() string {
	return strings.Join(s.Lines(), "\n")
}

// WriteTo writes the script followed by a single newline
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String()+"\n")
	return int64(n), err
}
