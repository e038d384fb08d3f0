// Package errstate holds the ambient "last failed operation" error that the
// logger package reports alongside error and warning records.
//
// Go returns errors as values, so there is no errno cell to read. A Cell
// plays that role: code that fails records the error with Set or Record, and
// the next error or warning log call takes it (snapshot and clear in a
// single atomic swap) and renders it in a trailing parenthetical.
//
// Default is shared by the whole process. Goroutines that log concurrently
// and care about which error lands on which record should each own a Cell
// and hand it to their logger.
package errstate

import (
	"errors"
	"sync/atomic"
	"syscall"
)

// NoError is the description rendered when the cell is clear.
const NoError = "No errno"

// Cell is an atomic slot for the most recent recorded error.
// The zero value is clear and ready to use.
type Cell struct {
	p atomic.Pointer[entry]
}

type entry struct {
	err error
}

// Default is the process-wide cell.
var Default = &Cell{}

// Set records err. A nil error, or a zero syscall.Errno, clears the cell.
func (c *Cell) Set(err error) {
	if isClear(err) {
		c.p.Store(nil)
		return
	}
	c.p.Store(&entry{err: err})
}

// Load returns the recorded error without clearing it.
func (c *Cell) Load() error {
	if e := c.p.Load(); e != nil {
		return e.err
	}
	return nil
}

// Take returns the recorded error and clears the cell in one step.
func (c *Cell) Take() error {
	if e := c.p.Swap(nil); e != nil {
		return e.err
	}
	return nil
}

// Clear resets the cell.
func (c *Cell) Clear() {
	c.p.Store(nil)
}

// Set records err in Default.
func Set(err error) { Default.Set(err) }

// Load peeks at Default.
func Load() error { return Default.Load() }

// Take snapshots and clears Default.
func Take() error { return Default.Take() }

// Clear resets Default.
func Clear() { Default.Clear() }

// Record stores a non-nil err in Default and returns it unchanged, so a
// failing call can be recorded inline:
//
//	if err := errstate.Record(f.Close()); err != nil {
//		logger.Errorf("closing %s", name)
//	}
//
// A nil err leaves Default untouched.
func Record(err error) error {
	if err != nil {
		Default.Set(err)
	}
	return err
}

// Describe renders err for a log record: NoError for nil, otherwise the
// error text.
func Describe(err error) string {
	if isClear(err) {
		return NoError
	}
	if s := err.Error(); s != "" {
		return s
	}
	return "unknown error"
}

func isClear(err error) bool {
	if err == nil {
		return true
	}
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == 0
}
