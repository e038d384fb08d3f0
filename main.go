package main

import (
	"os"
	"syscall"

	"github.com/mordilloSan/levelgate/errstate"
	"github.com/mordilloSan/levelgate/logger"
)

// Smoke test for the logger. Build with a level tag to see more than errors:
//
//	go run -tags loglevel_debug .
//	LOGLEVEL=info LOGCOLOR=auto go run -tags loglevel_debug .
func main() {
	if err := logger.InitFromEnv(); err != nil {
		logger.Errorf("invalid logger environment: %v", err)
	}

	logger.Logf(os.Stderr, "[LOG]", "Testing Logf()")

	// Simulate a failed system call.
	errstate.Set(syscall.EIO)
	logger.Errorf("This is an error")

	errstate.Clear()
	logger.Warnf("This is a warning")
	logger.Infof("This is information")
	logger.Debugf("This is debugging information")

	if logger.DebugOn {
		logger.Debugf("enabled levels: error=%t warn=%t info=%t debug=%t",
			logger.Enabled(logger.ErrorLevel), logger.Enabled(logger.WarnLevel),
			logger.Enabled(logger.InfoLevel), logger.Enabled(logger.DebugLevel))
	}
}
