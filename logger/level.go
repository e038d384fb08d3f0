package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity of a record. Lower values are more important;
// a record is emitted when its level is at or below the threshold.
type Level int

const (
	// ErrorLevel is always enabled.
	ErrorLevel Level = iota
	// WarnLevel adds warnings.
	WarnLevel
	// InfoLevel adds informational messages.
	InfoLevel
	// DebugLevel adds debugging output.
	DebugLevel
)

// Compile-time gates derived from MaxLevel. A call site wrapped in
//
//	if logger.DebugOn {
//		logger.Debugf("state %v", expensive())
//	}
//
// is removed by the compiler, arguments included, unless the binary is built
// with a tag that raises MaxLevel.
const (
	ErrorOn = MaxLevel >= ErrorLevel
	WarnOn  = MaxLevel >= WarnLevel
	InfoOn  = MaxLevel >= InfoLevel
	DebugOn = MaxLevel >= DebugLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized input.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{"ERROR", "WARN", "INFO", "DEBUG"}

// String returns the upper-case tag text for l.
func (l Level) String() string {
	if l < ErrorLevel || l > DebugLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// toStderr reports whether records at l belong on the error stream.
func (l Level) toStderr() bool {
	return l <= WarnLevel
}

// ParseLevel accepts a numeric threshold (0-3) or a level name,
// case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "error", "err":
		return ErrorLevel, nil
	case "1", "warn", "warning":
		return WarnLevel, nil
	case "2", "info":
		return InfoLevel, nil
	case "3", "debug":
		return DebugLevel, nil
	}
	return ErrorLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
