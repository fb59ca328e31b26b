package command

import "babbage/core"

// doMove queues up the elementary motion described by one table entry,
// with optional timing information from the command: "delay" uses the
// second half of the time unit, and "time <start> <end>" gives explicit
// start and end percentages. An end past 99 spills into later time units.
func (in *Interp) doMove(move *fctMove, s *scanner) {
	e := in.Eng
	m := e.Motors.ByNum(move.motorNum)
	if m == nil {
		e.Report("undefined motor", "")
		return
	}
	if !m.Assigned {
		e.Report("unassigned motor", "")
		return
	}
	startPct, endPct := 0, 99
	if s.key("delay") {
		startPct, endPct = 50, 99
	} else if s.key("time ") {
		var ok1, ok2 bool
		startPct, ok1 = s.scanInt(0, 99)
		endPct, ok2 = s.scanInt(1, 299)
		if !ok1 || !ok2 {
			e.Report("bad times", s.rest)
			return
		}
	}
	if move.distance {
		e.QueueSpan(m, m.Kind, move.position, startPct, endPct) // distance to move, not position
		return
	}
	distance := move.position - m.CurrentPos
	if distance == 0 {
		e.Printf("already there: %s\n", m.Name)
		return
	}
	e.QueueSpan(m, m.Kind, distance, startPct, endPct)
	m.CurrentPos = move.position
}

// doFunction parses axle name(s) against a movement table and queues up
// the move, returning the matched entry or nil.
func (in *Interp) doFunction(table []fctMove, s *scanner) *fctMove {
	for i := range table {
		move := &table[i]
		if s.key(move.keyword) {
			if move.position != noMove {
				in.doMove(move, s)
			}
			return move
		}
	}
	in.Eng.Report("unknown axle and keywords", s.rest)
	return nil
}

// doGiveoff gives off one digit on an axle finger, counter-clockwise if
// followed by "reverse".
func (in *Interp) doGiveoff(s *scanner) {
	e := in.Eng
	for i := range fctGiveoff {
		move := &fctGiveoff[i]
		if !s.key(move.keyword) {
			continue
		}
		m := e.Motors.ByNum(move.motorNum)
		if m == nil {
			e.Report("unassigned motor in giveoff", move.keyword)
			return
		}
		degrees := core.DegreesPerDigit
		if s.key("reverse") {
			degrees = -degrees
		}
		e.Queue(m, core.Rotate, degrees)
		return
	}
	e.Report("unknown axle", s.rest)
}

// doOnOff powers one named motor, or with no name all the motors that
// should be in that state; "all" overrides the always-on status.
func (in *Interp) doOnOff(state core.MotorState, s *scanner) {
	if m := in.scanAxle(s, core.AnyMovement, false); m != nil {
		in.Eng.PowerMotor(m, state, false)
		return
	}
	all := s.key("all")
	if in.checkEnd(s) {
		in.Eng.PowerMotors(state, all)
	}
}
