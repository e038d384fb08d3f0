package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/mordilloSan/levelgate/errstate"
)

// Config defines options for Init and New.
type Config struct {
	// Level is the most verbose level emitted. Values outside
	// ErrorLevel..DebugLevel are clamped. Init further caps it at MaxLevel.
	// Default: ErrorLevel
	Level Level
	// Colorize enables ANSI color output.
	// Default: false
	Colorize bool
	// Stdout receives Info and Debug records.
	// Default: os.Stdout
	Stdout io.Writer
	// Stderr receives Error and Warn records.
	// Default: os.Stderr
	Stderr io.Writer
	// ErrState is the ambient error cell read and cleared by Errorf and Warnf.
	// Default: errstate.Default
	ErrState *errstate.Cell
}

// Logger emits records for one configuration. Its methods gate at runtime:
// a disabled call does no formatting, no I/O and never touches the error
// cell, but Go still evaluates the arguments before the call.
type Logger struct {
	threshold Level
	colors    palette
	stdout    io.Writer
	stderr    io.Writer
	errs      *errstate.Cell
}

// global state
var (
	// Mutex for thread-safe logging across concurrent goroutines
	logMutex sync.Mutex

	// std backs the package-level functions.
	std = New(Config{})
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// New returns a Logger for config. Nil writers and a nil cell take their
// defaults.
func New(config Config) *Logger {
	l := &Logger{
		threshold: clampLevel(config.Level),
		stdout:    config.Stdout,
		stderr:    config.Stderr,
		errs:      config.ErrState,
	}
	if l.stdout == nil {
		l.stdout = outStdout
	}
	if l.stderr == nil {
		l.stderr = outStderr
	}
	if l.errs == nil {
		l.errs = errstate.Default
	}
	if config.Colorize {
		l.colors = ansiPalette
	}
	return l
}

func clampLevel(level Level) Level {
	switch {
	case level < ErrorLevel:
		return ErrorLevel
	case level > DebugLevel:
		return DebugLevel
	}
	return level
}

// Init configures the package-level logger. Call it once at startup, before
// any goroutine logs. config.Level is capped at MaxLevel: levels compiled
// out stay out.
func Init(config Config) {
	if config.Level > MaxLevel {
		config.Level = MaxLevel
	}
	std = New(config)
}

// InitFromEnv initializes the package-level logger from LOGLEVEL and
// LOGCOLOR. Unparsable values fall back to their defaults; the logger is
// installed either way and the parse errors are returned.
func InitFromEnv() error {
	config, err := ConfigFromEnv()
	Init(config)
	return err
}

// ConfigFromEnv builds a Config from the environment:
//
//	LOGLEVEL  0-3, or error|warn|info|debug     (default error)
//	LOGCOLOR  true|false|always|never|auto       (default never)
func ConfigFromEnv() (Config, error) {
	var config Config
	var errs []error

	if s := os.Getenv("LOGLEVEL"); s != "" {
		level, err := ParseLevel(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOGLEVEL: %w", err))
		}
		config.Level = level
	}
	if s := os.Getenv("LOGCOLOR"); s != "" {
		mode, err := ParseColor(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOGCOLOR: %w", err))
		}
		config.Colorize = mode.Enabled(outStdout, outStderr)
	}
	return config, errors.Join(errs...)
}

// Default returns the package-level logger.
func Default() *Logger {
	return std
}

// Enabled reports whether the package-level functions emit at level.
func Enabled(level Level) bool {
	return level <= MaxLevel && std.Enabled(level)
}

// Level returns the logger's threshold.
func (l *Logger) Level() Level {
	return l.threshold
}

// Enabled reports whether records at level are emitted.
func (l *Logger) Enabled(level Level) bool {
	return level <= l.threshold
}

// WithErrState returns a copy of l that reads and clears cell instead of
// l's cell. Writers and the emission lock are shared.
func (l *Logger) WithErrState(cell *errstate.Cell) *Logger {
	c := *l
	if cell == nil {
		cell = errstate.Default
	}
	c.errs = cell
	return &c
}

// --- Leveled logging methods (fmt.Sprintf style) ---

// Errorf logs an error to stderr, followed by the ambient error, which is
// then cleared.
func (l *Logger) Errorf(format string, v ...any) {
	if !l.Enabled(ErrorLevel) {
		return
	}
	l.emit(ErrorLevel, format, v)
}

// Warnf logs a warning to stderr, followed by the ambient error, which is
// then cleared.
func (l *Logger) Warnf(format string, v ...any) {
	if !l.Enabled(WarnLevel) {
		return
	}
	l.emit(WarnLevel, format, v)
}

// Infof logs an informational message to stdout.
func (l *Logger) Infof(format string, v ...any) {
	if !l.Enabled(InfoLevel) {
		return
	}
	l.emit(InfoLevel, format, v)
}

// Debugf logs a debug message to stdout.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.Enabled(DebugLevel) {
		return
	}
	l.emit(DebugLevel, format, v)
}

// Logf writes an ungated record with a caller-chosen title to w. It never
// touches the ambient error. A newline is appended unless the message
// already ends with one.
func (l *Logger) Logf(w io.Writer, title string, format string, v ...any) {
	l.emitTitled(w, title, format, v)
}

// --- Package-level functions ---
//
// Each one tests its compile-time gate first, so in a build where the level
// is above MaxLevel the body is dead code.

// Errorf logs an error through the package-level logger.
// Thread-safe for concurrent use.
func Errorf(format string, v ...any) {
	if !ErrorOn || !std.Enabled(ErrorLevel) {
		return
	}
	std.emit(ErrorLevel, format, v)
}

// Warnf logs a warning through the package-level logger.
// Compiled out unless built with loglevel_warn or higher.
func Warnf(format string, v ...any) {
	if !WarnOn || !std.Enabled(WarnLevel) {
		return
	}
	std.emit(WarnLevel, format, v)
}

// Infof logs an informational message through the package-level logger.
// Compiled out unless built with loglevel_info or higher.
func Infof(format string, v ...any) {
	if !InfoOn || !std.Enabled(InfoLevel) {
		return
	}
	std.emit(InfoLevel, format, v)
}

// Debugf logs a debug message through the package-level logger.
// Compiled out unless built with loglevel_debug.
func Debugf(format string, v ...any) {
	if !DebugOn || !std.Enabled(DebugLevel) {
		return
	}
	std.emit(DebugLevel, format, v)
}

// Logf writes an ungated record through the package-level logger.
func Logf(w io.Writer, title string, format string, v ...any) {
	std.emitTitled(w, title, format, v)
}

// --- Record assembly ---

// callerSkip is the runtime.Callers depth of the user's frame as seen from
// callerFrame: runtime.Callers, callerFrame, emit, the exported entry point.
const callerSkip = 4

// callerFrame must be called directly from emit or emitTitled, which must be
// called directly from an exported entry point.
func callerFrame() (fn, file string, line int) {
	var pcs [1]uintptr
	if runtime.Callers(callerSkip, pcs[:]) == 0 {
		return "unknown", "unknown", 0
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	fn = shortFuncName(frame.Function)
	if fn == "" {
		fn = "unknown"
	}
	file = "unknown"
	if frame.File != "" {
		file = filepath.Base(frame.File)
	}
	return fn, file, frame.Line
}

// shortFuncName strips the import path and package name, leaving
// "main", "(*Server).Start" or "run.func1".
func shortFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return full
}

func (l *Logger) emit(level Level, format string, v []any) {
	var cause error
	toStderr := level.toStderr()
	if toStderr {
		cause = l.errs.Take()
	}
	fn, file, line := callerFrame()

	p := &l.colors
	buf := make([]byte, 0, 128)
	buf = append(buf, p.level[level]...)
	buf = append(buf, '[')
	buf = append(buf, level.String()...)
	buf = append(buf, ']')
	buf = append(buf, p.reset...)
	buf = l.appendLocation(buf, fn, file, line)
	buf = fmt.Appendf(buf, format, v...)

	out := l.stdout
	if toStderr {
		out = l.stderr
		buf = append(buf, p.bold...)
		buf = append(buf, " ("...)
		buf = append(buf, errstate.Describe(cause)...)
		buf = append(buf, ')')
		buf = append(buf, p.reset...)
	}
	buf = append(buf, '\n')
	write(out, buf)
}

func (l *Logger) emitTitled(w io.Writer, title string, format string, v []any) {
	fn, file, line := callerFrame()

	buf := make([]byte, 0, 128)
	buf = append(buf, title...)
	buf = l.appendLocation(buf, fn, file, line)
	buf = fmt.Appendf(buf, format, v...)
	if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		buf = append(buf, '\n')
	}
	write(w, buf)
}

// appendLocation appends " in <fn> at <file>:<line>: " with the function and
// the file position in bold.
func (l *Logger) appendLocation(buf []byte, fn, file string, line int) []byte {
	p := &l.colors
	buf = append(buf, " in "...)
	buf = append(buf, p.bold...)
	buf = append(buf, fn...)
	buf = append(buf, p.reset...)
	buf = append(buf, " at "...)
	buf = append(buf, p.bold...)
	buf = append(buf, file...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(line), 10)
	buf = append(buf, ": "...)
	buf = append(buf, p.reset...)
	return buf
}

// write hands one complete record to w. Write errors are dropped and a
// panicking writer is recovered: logging never fails the caller.
func write(w io.Writer, buf []byte) {
	if w == nil {
		return
	}
	defer func() { _ = recover() }()
	logMutex.Lock()
	defer logMutex.Unlock()
	_, _ = w.Write(buf)
}
