package core

import (
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"
)

// Timing for the motion engine. The time unit is the nominal time to move
// a digit wheel by one digit; everything else is scheduled as a fraction
// of it.
const (
	DefaultTimeUnit = 500 * time.Millisecond

	// 1000 RPM max * 800 usteps/rev * min/60 sec = 75 usec, but 100 usec doesn't work!
	MinUstepPeriod = 175 * time.Microsecond // minimum time between microsteps for reliable operation

	MoveTick = 50 * time.Microsecond // how often to check for something to do when moving

	Debounce = 25 * time.Millisecond // switch debounce time

	TightenLockDegrees = 2 // force a rotary lock to tighten by these many degrees
)

// Control keys recognized while the engine is running or waiting.
const (
	KeyEsc  byte = 0x1b
	KeyDel  byte = 0x7f
	KeyHome byte = 0x01
	KeyEnd  byte = 0x04
)

// Engine is the motion engine context: the motor table, the addressing bus,
// the console, and the mutable execution state shared by the queuer, the
// dispatcher, and the command interpreter.
type Engine struct {
	Motors *MotorTable
	Bus    *Bus
	Clock  clock.Clock
	Out    io.Writer
	Keys   KeyPoller

	Debug    int           // debug level, 0..6; see debug.go
	TimeUnit time.Duration // time to move one digit

	MotorsQueued int  // motors with a movement queued for this time unit
	GotError     bool // an error message was issued; abandon compound commands
	ScriptStep   bool // single-step scripts, pausing before each time unit
	CycleNum     int  // counts the time units the interpreter has run

	// Calibration: degrees to rotate past the index switch to reach digit
	// zero, per rotator. -1 if never calibrated.
	FingerZero [NumMotors]int
}

// NewEngine wires an engine together with the real-time clock and an
// uncalibrated finger table.
func NewEngine(motors *MotorTable, bus *Bus, keys KeyPoller, out io.Writer) *Engine {
	e := &Engine{
		Motors:   motors,
		Bus:      bus,
		Clock:    clock.New(),
		Out:      out,
		Keys:     keys,
		TimeUnit: DefaultTimeUnit,
	}
	for i := range e.FingerZero {
		e.FingerZero[i] = -1
	}
	return e
}

// TimeUnitDegree is the time to rotate one degree, computed to have the
// same circumferential speed as moving one digit.
func (e *Engine) TimeUnitDegree() time.Duration {
	return e.TimeUnit * 10 * DigitRepetitions / 360
}

// Report issues an error message, records that an error happened, and
// cancels any queued movements so a half-built time unit never runs.
func (e *Engine) Report(msg, info string) {
	if info != "" {
		fmt.Fprintf(e.Out, "%s: %s\n", msg, info)
	} else {
		fmt.Fprintln(e.Out, msg)
	}
	e.GotError = true
	e.ClearMovements()
}

// WaitForChar blocks until the operator types a key, discarding anything
// already buffered. ESC cancels queued movements.
func (e *Engine) WaitForChar() byte {
	e.Keys.Flush()
	key := e.Keys.WaitKey()
	if key == KeyEsc {
		fmt.Fprintln(e.Out, "\n...aborted")
		e.ClearMovements()
	}
	return key
}

// Locked reports whether the named lock is in place, which means its axle
// is at the neutral position.
func (e *Engine) Locked(num MotorID, warn bool) bool {
	if num == NoMotor {
		return false
	}
	m := e.Motors.ByNum(num)
	if m != nil && m.CurrentPos == 0 {
		if warn {
			fmt.Fprintf(e.Out, "ERROR: %s is locked!\n", m.Name)
		}
		return true
	}
	return false
}
