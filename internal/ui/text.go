package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI content. With color disabled the text is
// wrapped in open/close instead.
type Formatter struct {
	color *color.Color
	open  string
	close string
}

func newFormatter(open, close string, attrs ...color.Attribute) Formatter {
	return Formatter{color: color.New(attrs...), open: open, close: close}
}

func (f Formatter) render(text string) string {
	if !ColorEnabled() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// Sprint formats the arguments like fmt.Sprint.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats the arguments like fmt.Sprintf.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// ColorEnabled reports whether formatters emit ANSI colors. NO_COLOR
// (https://no-color.org/) wins over terminal detection.
func ColorEnabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return !color.NoColor
}

// Status markers.
var (
	Success = newFormatter("", "", color.FgGreen)
	Error   = newFormatter("", "", color.FgRed)
	Warning = newFormatter("", "", color.FgYellow)
	Info    = newFormatter("", "", color.FgCyan)
)

// Values embedded in messages.
var (
	// Code is a command the user can run: `backticks` without color.
	Code = newFormatter("`", "`", color.FgYellow)
	Path = newFormatter("", "", color.FgYellow)
	Flag = newFormatter("", "", color.FgYellow)

	// Key is hex key material: [brackets] without color so it stands out
	// when copied from a log.
	Key = newFormatter("[", "]", color.FgMagenta, color.Bold)

	// Highlight is a fingerprint or other notable value: 'quoted' without color.
	Highlight = newFormatter("'", "'", color.FgCyan)

	// Muted is secondary detail: (parenthesised) without color.
	Muted = newFormatter("(", ")", color.FgHiBlack)
)
