package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI sequences used when Config.Colorize is set.
const (
	colorRed    = "\x1b[1;31m"
	colorYellow = "\x1b[1;33m"
	colorGreen  = "\x1b[1;32m"
	colorCyan   = "\x1b[1;36m"
	ansiBold    = "\x1b[1m"
	ansiReset   = "\x1b[0m"
)

// palette holds the escape strings spliced into a record. The zero palette
// is plain output: every field is empty and adds no bytes.
type palette struct {
	level [DebugLevel + 1]string
	bold  string
	reset string
}

var ansiPalette = palette{
	level: [...]string{
		ErrorLevel: colorRed,
		WarnLevel:  colorYellow,
		InfoLevel:  colorGreen,
		DebugLevel: colorCyan,
	},
	bold:  ansiBold,
	reset: ansiReset,
}

// ColorMode is the parsed form of the LOGCOLOR setting.
type ColorMode int

const (
	// ColorNever disables escape sequences.
	ColorNever ColorMode = iota
	// ColorAlways enables them unconditionally.
	ColorAlways
	// ColorAuto enables them when both output streams are terminals.
	ColorAuto
)

// ErrUnknownColor is returned by ParseColor for unrecognized input.
var ErrUnknownColor = errors.New("unknown color mode")

// ParseColor accepts boolean spellings plus "always", "never" and "auto".
func ParseColor(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off", "never":
		return ColorNever, nil
	case "1", "true", "yes", "on", "always":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	}
	return ColorNever, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Enabled resolves the mode against the writers records will go to.
func (m ColorMode) Enabled(stdout, stderr io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorAuto:
		return isTerminal(stdout) && isTerminal(stderr)
	default:
		return false
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
