//go:build loglevel_info && !loglevel_debug

package logger

// MaxLevel is the build-time ceiling, raised to info by loglevel_info.
const MaxLevel = InfoLevel
