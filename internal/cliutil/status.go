package cliutil

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Status writes one-line results of a command. Success lines are green and
// failure lines red, but only when the destination is a terminal and
// NO_COLOR is unset.
type Status struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
	note *color.Color
}

// NewStatus returns a Status writing to w.
func NewStatus(w io.Writer) *Status {
	s := &Status{
		w:    w,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		note: color.New(color.FgYellow),
	}
	s.SetColor(UseColor(w))
	return s
}

// SetColor forces coloring on or off.
func (s *Status) SetColor(enabled bool) {
	for _, c := range []*color.Color{s.ok, s.fail, s.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Success writes a line reporting a successful step.
func (s *Status) Success(format string, args ...any) {
	Writef(s.w, "%s\n", s.ok.Sprintf(format, args...))
}

// Failure writes a line reporting a failed step.
func (s *Status) Failure(format string, args ...any) {
	Writef(s.w, "%s\n", s.fail.Sprintf(format, args...))
}

// Note writes a highlighted informational line.
func (s *Status) Note(format string, args ...any) {
	Writef(s.w, "%s\n", s.note.Sprintf(format, args...))
}

// UseColor reports whether output to w should be colored.
func UseColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
