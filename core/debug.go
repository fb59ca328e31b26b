package core

import "fmt"

// Debug levels:
//  0 nothing
//  1 UI level summary
//  2 overall movement report; parsing overview
//  3 individual motor movement report; parsing info
//  4 schedules and start/stop of motor movements
//  5 every move of every motor
//  6 every step of every motor
const MaxDebugLevel = 6

// Debugf prints a report if the debug level is at least the given level.
func (e *Engine) Debugf(level int, format string, args ...any) {
	if e.Debug >= level {
		fmt.Fprintf(e.Out, format, args...)
	}
}

// Printf writes to the console unconditionally.
func (e *Engine) Printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}
