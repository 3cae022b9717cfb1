package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/moby/term"
	"github.com/ttacon/chalk"
)

// Logger filters and prints diagnostics to a destination. Colors are only
// written when the destination is a terminal.
type Logger struct {
	output io.Writer
	color  bool
	info   bool
	warn   bool
	err    bool
	debug  bool
}

// New returns a Logger with every level disabled
func New(output io.Writer) *Logger {
	_, isTerminal := term.GetFdInfo(output)
	return &Logger{output: output, color: isTerminal}
}

// SetInfo activates/deactivates info level
func (l *Logger) SetInfo(value bool) {
	l.info = value
}

// SetWarn activates/deactivates warn level
func (l *Logger) SetWarn(value bool) {
	l.warn = value
}

// SetError activates/deactivates error level
func (l *Logger) SetError(value bool) {
	l.err = value
}

// SetDebug activates/deactivates debug level
func (l *Logger) SetDebug(value bool) {
	l.debug = value
}

// DebugEnabled reports whether debug messages are printed
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

func (l *Logger) paint(color chalk.Color, msg string) {
	msg = strings.TrimSuffix(msg, "\n")
	if l.color {
		msg = color.Color(msg)
	}
	fmt.Fprintln(l.output, msg)
}

// Infof writes the formatted message when info level is active
func (l *Logger) Infof(format string, a ...interface{}) {
	if l.info {
		l.paint(chalk.Blue, fmt.Sprintf(format, a...))
	}
}

// Warnf writes the formatted message when warn level is active
func (l *Logger) Warnf(format string, a ...interface{}) {
	if l.warn {
		l.paint(chalk.Yellow, fmt.Sprintf(format, a...))
	}
}

// Errorf writes the formatted message when error level is active
func (l *Logger) Errorf(format string, a ...interface{}) {
	if l.err {
		l.paint(chalk.Red, fmt.Sprintf(format, a...))
	}
}

// Debugf writes the formatted message when debug level is active
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.debug {
		l.paint(chalk.Cyan, fmt.Sprintf(format, a...))
	}
}
