// Package logger provides four leveled printf-style call sites whose
// disabled levels are compiled out.
//
// # Output
//
// Each record is one line naming the calling function and source position:
//
//	[ERROR] in main at main.go:42: open failed (no such file or directory)
//	[INFO] in main at main.go:43: listening on :8080
//
// Error and Warn go to stderr and end with the ambient error recorded in
// package errstate, or "No errno" when none is recorded; the cell is cleared
// afterwards. Info and Debug go to stdout and never touch the cell.
//
// # Levels
//
// Verbosity is an ordered threshold: 0 error, 1 warn, 2 info, 3 debug. The
// build decides the ceiling:
//
//	go build                       # errors only
//	go build -tags loglevel_warn   # + warnings
//	go build -tags loglevel_info   # + info
//	go build -tags loglevel_debug  # everything
//
// The package-level functions test the matching constant (ErrorOn, WarnOn,
// InfoOn, DebugOn) before doing anything, so a disabled call costs a function
// call and nothing more. Go evaluates arguments before the call, though; to
// drop the arguments too, guard the call site:
//
//	if logger.DebugOn {
//		logger.Debugf("cache: %v", cache.Dump())
//	}
//
// Init can lower the threshold further at startup, never raise it past the
// build ceiling.
//
// # Usage
//
// Initialize once at startup:
//
//	logger.Init(logger.Config{Level: logger.InfoLevel, Colorize: true})
//
// or from LOGLEVEL and LOGCOLOR:
//
//	if err := logger.InitFromEnv(); err != nil {
//		logger.Errorf("logger config: %v", err)
//	}
//
// Then log:
//
//	errstate.Record(err)
//	logger.Errorf("failed to connect to %s", addr)
//
// # Independent loggers
//
// New builds a Logger with its own writers, threshold and error cell. Its
// methods gate at runtime only. Give each goroutine that logs errors its own
// cell with WithErrState so records never pick up another goroutine's error.
//
// # Colors
//
// Plain output is used by default. Config.Colorize wraps the tag in its level
// color and the location in bold; LOGCOLOR=auto enables it when stdout and
// stderr are both terminals.
package logger
