//go:build loglevel_warn && !loglevel_info && !loglevel_debug

package logger

// MaxLevel is the build-time ceiling, raised to warnings by loglevel_warn.
const MaxLevel = WarnLevel
