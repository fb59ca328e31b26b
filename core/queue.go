package core

// Queue schedules an elemental movement to happen over the whole of the
// current time unit.
func (e *Engine) Queue(m *Motor, movetype Movement, distance int) {
	e.QueueSpan(m, movetype, distance, 0, 99)
}

// QueueSpan schedules an elemental movement to happen during the
// [start,end] percentage span of the current time unit. An end greater
// than 99 indicates that the movement spans into subsequent time unit(s).
//
// We do exact computations of microsteps needed, and accumulate the
// fractional deficits with no rounding errors.
//
// Rotations are geared through the stepper motor gearbox and/or our
// external gearset. The motor descriptor has the equivalent number of
// teeth for the driving (small) gear and the driven (big) gear for both
// sets of gears in series. For example, the StepperOnline "5:1" gearbox
// is actually geared 57 to 11, or 5.18181818...
// When in series with our 50/16 gearing in the Store, the effective ratio
// is 1425/88, or 16.1931818181...
// When in series with our 32/16 gearing in the Mill, the effective ratio
// is 114/11, or 10.36363636...
// There are 800 microsteps per revolution, so the number of microsteps to
// move d degrees is
//
//	d degrees * (bigteeth * 800 usteps/rev) / (360 degrees/rev * smallteeth)
//
// The integer part is used, and the remainder (modulo 360*smallteeth) is
// the deficit we accumulate. When the deficit becomes >= +denominator or
// <= -denominator, we do + or - one microstep and adjust the deficit.
//
// Lifters are on spiral leadscrews with an 8 mm pitch, and may or may not
// use a gearmotor. The number of microsteps to move m mils (thousandths
// of an inch) is
//
//	m mils * (25.4mm/in * 800 usteps/rev * bigteeth) / (1000mil/in * 8mm/rev * smallteeth)
//	or m * (bigteeth * 254) / (100 * smallteeth)
//
// As for rotations above, we could do that integer division to compute
// the number of microsteps and save the remainder (modulo 100*smallteeth)
// for the deficit.
//
// BUT... lifters are sometimes also called upon to rotate an exact number
// of degrees, to prevent lifting when the axle is rotated. In that case,
// the number of microsteps to move d degrees is, as for rotators,
//
//	d * (bigteeth * 800) / (360 * smallteeth)
//
// For a lifter, the remainder and the denominator are both scaled: by
// 18 (1800/100, with 1800 the least common multiple of 360 and 100) when
// rotating, giving a denominator of 6480*smallteeth, and by 5 (1800/360)
// when lifting, giving 500*smallteeth. The deficit carried from one kind
// of move is not rescaled when the other kind follows, so it is exact
// across moves of the same kind only.
//
// Got that?
func (e *Engine) QueueSpan(m *Motor, movetype Movement, distance, start, end int) {
	if m == nil {
		e.Printf("ERROR: bad call to QueueSpan!\n")
		return
	}
	if m.MoveQueued {
		e.Printf("WARNING: axle %s is already scheduled to move\n", m.Name)
		return
	}
	m.MoveQueued = true
	e.MotorsQueued++
	var numer, denom int
	if movetype == Rotate { // distance is signed degrees
		numer = distance * m.GearBig * MicrostepsPerRotation
		denom = 360 * m.GearSmall
		m.UstepsNeeded = numer / denom
		if m.FullSteps { // round down to integral number of steps?
			m.UstepsNeeded &^= MicrostepsPerStep - 1
		} else if m.Kind == Rotate { // normal rotator axle, possibly with gearset
			m.Deficit += numer % denom
		} else { // we're rotating a lifter by a specific number of degrees
			m.Deficit += (numer % denom) * 18 // 18 = LCD(360,100)/100
			denom *= 18
		}
	} else { // LIFT: distance is signed mils
		// Note that Go, like C, truncates integer division toward zero,
		// so the modulus of a negative number is negative, which works
		// out nicely.
		numer = distance * 254 * m.GearBig
		denom = 100 * m.GearSmall
		m.UstepsNeeded = numer / denom
		if m.FullSteps {
			m.UstepsNeeded &^= MicrostepsPerStep - 1
		} else {
			m.Deficit += (numer % denom) * 5 // 5 = LCD(360,100)/360
			denom *= 5
		}
	}
	// check how big the accumulated deficit is
	if m.Deficit >= denom { // we just accumulated a full ustep forward
		m.UstepsNeeded++
		m.Deficit -= denom
		e.Debugf(3, "  ...motor %s used an accumulated step forward\n", m.Name)
	} else if m.Deficit <= -denom { // we just accumulated a full ustep backward
		m.UstepsNeeded--
		m.Deficit += denom
		e.Debugf(3, "  ...motor %s used an accumulated step backward\n", m.Name)
	}
	if m.UstepsNeeded < 0 { // adjust steps needed to always be positive
		m.UstepsNeeded = -m.UstepsNeeded
		m.Clockwise = false
	} else {
		m.Clockwise = true
	}
	if e.Debug >= 3 {
		dist := distance
		if dist < 0 {
			dist = -dist
		}
		dir := "CW"
		if !m.Clockwise {
			dir = "CCW"
		}
		units, kind := "degrees", "rotator"
		if movetype == Lift {
			units = "mils"
		}
		if m.Kind == Lift {
			kind = "lifter"
		}
		e.Printf("  queued %s of %s motor %s %s for %d %s by %d microsteps from %d to %d, with %d/%d microsteps left over\n",
			movetype, kind, m.Name, dir, dist, units, m.UstepsNeeded, start, end, m.Deficit, denom)
	}
	m.UstepsDone = 0
	m.StartPct = start
	m.EndPct = end
	if movetype == Rotate && m.CompLifter != NoMotor {
		// this rotate needs a compensating counter-rotation of the associated lifter
		e.QueueSpan(e.Motors.ByNum(m.CompLifter), Rotate, -distance, start, end)
	}
}

// ClearMovements cancels all queued movements.
func (e *Engine) ClearMovements() {
	for _, m := range e.Motors.All() {
		m.MoveQueued = false
	}
	e.MotorsQueued = 0
}
