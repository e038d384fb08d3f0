//go:build !loglevel_warn && !loglevel_info && !loglevel_debug

package logger

// MaxLevel is the build-time ceiling. Without a loglevel_* build tag only
// errors are compiled in.
const MaxLevel = ErrorLevel
