package core

import "time"

// DispatchResult says how a time unit of movements ended. Anything other
// than DispatchDone means the queued movements were abandoned; the caller
// decides whether to run the homing sequence.
type DispatchResult int

const (
	DispatchDone DispatchResult = iota // all movements completed
	DispatchStop                       // ESC: stop immediately, leave everything where it is
	DispatchHome                       // DEL: stop, and the machine should be returned to neutral
	DispatchFault                      // a motor fault or an unusable motor
)

func (r DispatchResult) String() string {
	switch r {
	case DispatchDone:
		return "done"
	case DispatchStop:
		return "stop"
	case DispatchHome:
		return "home"
	}
	return "fault"
}

// CheckAbort checks for conditions that abort the current movements:
// DEL or ESC from the keyboard, or the motor fault line.
func (e *Engine) CheckAbort() DispatchResult {
	if chr, ok := e.Keys.Poll(); ok {
		if chr == KeyDel {
			e.ClearMovements()
			e.Printf("...stop and reset to neutral\n")
			return DispatchHome
		}
		if chr == KeyEsc {
			e.ClearMovements()
			e.Printf("...immediate abort\n")
			return DispatchStop
		}
	}
	if e.Bus.Fault() {
		e.Report("motor fault", "")
		return DispatchFault
	}
	return DispatchDone
}

// DoMovements runs all the movements queued up for this time unit, whose
// nominal duration is given. Steps for each motor are evenly spaced over
// its percentage span, subject to the minimum microstep time, which might
// extend the time unit. Motors whose spans extend past the end of this
// time unit are requeued for the next one.
func (e *Engine) DoMovements(duration time.Duration) DispatchResult {
	if e.MotorsQueued == 0 {
		return DispatchDone
	}
	durUsec := duration.Microseconds()
	if e.Debug >= 2 {
		e.Printf("doing movements for %d motors:", e.MotorsQueued)
		for _, m := range e.Motors.All() {
			if m.MoveQueued {
				e.Printf(" %s", m.Name)
			}
		}
		e.Printf("\n")
	}
	if r := e.CheckAbort(); r != DispatchDone {
		e.Printf("ABORTED\n")
		e.MotorsQueued = 0
		e.GotError = true
		return r
	}
	e.PowerMotors(On, false) // enable the always-on motors, maybe tightening locks that are in

	// 1. Precompute the schedule for motors to be moved, and turn them on.
	moving := 0
	for _, m := range e.Motors.All() {
		if !m.MoveQueued {
			continue
		}
		if !m.Assigned {
			e.Report("axle has no motor", m.Name)
			e.MotorsQueued = 0
			return DispatchFault
		}
		e.PowerMotor(m, On, false)
		endNow := m.EndPct
		if endNow > 99 {
			endNow = 99 // only do steps in this time unit
		}
		m.EndingUstep = (m.UstepsNeeded * (endNow - m.StartPct + 1)) / (m.EndPct - m.StartPct + 1)
		m.UstepsDone = 0
		m.LastUstepTime = 0
		if m.EndingUstep == 0 { // a span so short it rounds to no steps this time unit
			m.MovingNow = false
			continue
		}
		m.StepDeltaTime = (int64(endNow-m.StartPct+1) * durUsec / 100) / int64(m.EndingUstep)
		m.StartTime = durUsec * int64(m.StartPct) / 100
		m.MovingNow = true
		moving++
		e.Debugf(4, "  motor %s start time %d, delta %d, ending step %d of %d\n",
			m.Name, m.StartTime, m.StepDeltaTime, m.EndingUstep, m.UstepsNeeded)
	}

	// 2. Do all required movement steps for this time unit, evenly spaced.
	totalSteps := 0
	origin := e.Clock.Now()
	var timenow int64
	for moving > 0 {
		for _, m := range e.Motors.All() {
			if !m.MovingNow || timenow <= m.StartTime {
				continue
			}
			delta := timenow - m.LastUstepTime // time since last step
			if delta > MinUstepPeriod.Microseconds() && delta >= m.StepDeltaTime {
				if e.Debug >= 5 {
					dir := "CW"
					if !m.Clockwise {
						dir = "CCW"
					}
					e.Printf("at time %d axle %s moves step %d of %d %s\n",
						timenow, m.Name, m.UstepsDone+1, m.UstepsNeeded, dir)
				}
				e.StepMotor(m)
				totalSteps++
				m.LastUstepTime = timenow
				if m.UstepsDone++; m.UstepsDone >= m.EndingUstep { // this motor is done for this time unit
					if !m.AlwaysOn {
						e.PowerMotor(m, Off, false)
					}
					m.MovingNow = false
					moving--
				}
			}
		}
		e.Clock.Sleep(MoveTick)
		timenow = e.Clock.Since(origin).Microseconds()
	}

	// 3. Prepare to restart motors whose movement extends into the next time unit(s).
	for _, m := range e.Motors.All() {
		if !m.MoveQueued {
			continue
		}
		if m.EndPct <= 99 { // this motor is done
			m.MoveQueued = false
			e.MotorsQueued--
		} else { // this motor has more to do the next time unit
			m.UstepsNeeded -= m.EndingUstep
			m.EndPct -= 100
			m.StartPct = 0
			e.Debugf(3, "  requeued motor %s for %d microsteps from %d to %d\n",
				m.Name, m.UstepsNeeded, m.StartPct, m.EndPct)
		}
	}
	e.Debugf(3, "     did %d steps in %d.%03d msec\n", totalSteps, timenow/1000, timenow%1000)
	return DispatchDone
}
