package logger_test

import (
	"errors"
	"os"

	"github.com/mordilloSan/levelgate/errstate"
	"github.com/mordilloSan/levelgate/logger"
)

// This example shows a plain logger writing every level to stdout.
func ExampleNew() {
	l := logger.New(logger.Config{
		Level:    logger.DebugLevel,
		Stdout:   os.Stdout,
		Stderr:   os.Stdout,
		ErrState: &errstate.Cell{},
	})
	l.Infof("hello %s", "world")
	l.Warnf("be careful")
	// Output:
	// [INFO] in ExampleNew at example_test.go:19: hello world
	// [WARN] in ExampleNew at example_test.go:20: be careful (No errno)
}

// This example reports a failed operation through the error cell.
func ExampleLogger_Errorf() {
	cell := &errstate.Cell{}
	l := logger.New(logger.Config{Stderr: os.Stdout, ErrState: cell})

	cell.Set(errors.New("connection refused"))
	l.Errorf("dial %s", "db:5432")
	l.Errorf("retry gave up")
	// Output:
	// [ERROR] in ExampleLogger_Errorf at example_test.go:32: dial db:5432 (connection refused)
	// [ERROR] in ExampleLogger_Errorf at example_test.go:33: retry gave up (No errno)
}

// This example shows colorized output configured at startup.
func ExampleInit_colorized() {
	logger.Init(logger.Config{Level: logger.DebugLevel, Colorize: true})
	logger.Debugf("debug is on")
	logger.Infof("hello %s", "world")
	logger.Warnf("be careful")
	logger.Errorf("oops: %v", "boom")
}

// This example keeps the arguments of a disabled debug call from being
// evaluated.
func ExampleDebugOn() {
	if logger.DebugOn {
		logger.Debugf("state: %v", expensiveDump())
	}
}

// This example configures the package-level logger from LOGLEVEL and LOGCOLOR.
func ExampleInitFromEnv() {
	// LOGLEVEL=info LOGCOLOR=auto ./myapp
	if err := logger.InitFromEnv(); err != nil {
		logger.Errorf("logger config: %v", err)
	}
	logger.Infof("ready")
}

func expensiveDump() string { return "..." }
