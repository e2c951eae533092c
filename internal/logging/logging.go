package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger writes diagnostic lines to stderr (or any writer).
// Colors are only used when the writer is a terminal.
type Logger struct {
	w       io.Writer
	verbose bool

	debug *color.Color
	warn  *color.Color
	err   *color.Color
}

// New creates a Logger writing to w
func New(w io.Writer, verbose bool) *Logger {
	l := &Logger{
		w:       w,
		verbose: verbose,
		debug:   color.New(color.Faint),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
	}

	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	for _, c := range []*color.Color{l.debug, l.warn, l.err} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return l
}

// Verbose reports whether debug lines are written
func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

// Debugf writes a line only in verbose mode
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Verbose() {
		return
	}
	l.printf(l.debug, format, args...)
}

// Warnf writes a warning line
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.printf(l.warn, "Warning: "+format, args...)
}

// Errorf writes an error line
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.printf(l.err, format, args...)
}

// Println writes a plain line with no decoration
func (l *Logger) Println(msg string) {
	if l == nil {
		return
	}
	fmt.Fprintln(l.w, msg)
}

func (l *Logger) printf(c *color.Color, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	fmt.Fprintln(l.w, c.Sprint(line))
}
