// Package logger is the levelled logger used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger writes one formatted line per call, tagged with its level.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	infoTag string
	errTag  string
}

// New returns a Logger writing to w.  Level tags are coloured unless
// color.NoColor is set, which fatih/color does when stdout is not a terminal.
func New(w io.Writer) Logger {
	return &stdLogger{
		l:       log.New(w, "", 0),
		infoTag: color.New(color.FgGreen).Sprint("[INFO]"),
		errTag:  color.New(color.FgRed, color.Bold).Sprint("[ERROR]"),
	}
}

func (l *stdLogger) Infof(format string, v ...any) {
	l.l.Printf("%s %s", l.infoTag, fmt.Sprintf(format, v...))
}

func (l *stdLogger) Errorf(format string, v ...any) {
	l.l.Printf("%s %s", l.errTag, fmt.Sprintf(format, v...))
}
