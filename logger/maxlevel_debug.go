//go:build loglevel_debug

package logger

// MaxLevel is the build-time ceiling, raised to debug by loglevel_debug.
const MaxLevel = DebugLevel
