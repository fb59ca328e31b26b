package core

// Index switch seeking for the digit wheels. Each digit wheel stack
// (F, A, S, and the rack restorer) has one index switch, read through
// the global switch multiplexer, that closes once per revolution at a
// known point. Finding zero means rotating to the switch and then
// rotating the calibrated number of degrees past it.

// wheelRotators maps a stack's finger lifter to the rotator that turns
// the wheel past its index switch. The switch number itself comes from
// the wiring configuration and lives on the rotator descriptor.
var wheelRotators = map[MotorID]MotorID{
	F2_L: F2_R, F3_L: F3_R,
	A1_L: A1_R, A2_L: A2_R, A3_L: A3_R,
	S1_L: S1_R, S2_L: S2_R, S3_L: S3_R, S4_L: S4_R, S5_L: S5_R, S6_L: S6_R,
	RR_L: RR_R,
}

// WheelRotator returns the rotator motor for a digit wheel stack named
// by its finger lifter, or nil.
func (e *Engine) WheelRotator(lifter MotorID) *Motor {
	rotNum, ok := wheelRotators[lifter]
	if !ok {
		return nil
	}
	return e.Motors.ByNum(rotNum)
}

// searchLimit bounds the degree-at-a-time switch searches to just over
// one revolution, so a dead or stuck switch cannot spin a wheel forever.
const searchLimit = 370

// MoveToSwitch rotates the digit wheel whose finger lifter is given until
// it arrives at its index switch point, and returns the rotator axle. On
// the way out the rotator and its compensating lifter are left marked
// temporarily on, so the wheel holds its position; the caller must clear
// TempOn when it is finished adjusting. Returns nil after reporting if
// the wheel cannot be brought to the switch.
func (e *Engine) MoveToSwitch(lifter MotorID) *Motor {
	rot := e.WheelRotator(lifter)
	if rot == nil {
		e.Report("no rotator for lifter", itoa(int(lifter)))
		return nil
	}
	if rot.SwitchNum == NoSwitch {
		e.Report("axle has no index switch wired", rot.Name)
		return nil
	}
	e.Debugf(1, "rotating %s 10 digits\n", rot.Name)
	rot.TempOn = true // temporarily force the motor to stay on
	var comp *Motor
	if rot.CompLifter != NoMotor { // and also the motor of the compensating lifter
		comp = e.Motors.ByNum(rot.CompLifter)
		comp.TempOn = true
	}
	e.Queue(rot, Rotate, DegreesPerDigit*10) // rotate 10 digits to ensure the wheel engages with the finger
	if e.DoMovements(e.TimeUnit*10) != DispatchDone {
		return e.cancelSeek(rot, comp)
	}
	limit := searchLimit
	for limit--; limit > 0 && !e.Bus.ReadSwitch(rot.SwitchNum); limit-- { // it's sitting on the switch
		e.Debugf(1, "getting %s off the switch\n", rot.Name)
		e.Queue(rot, Rotate, 1) // get it off
		if e.DoMovements(e.TimeUnitDegree()) != DispatchDone {
			return e.cancelSeek(rot, comp)
		}
	}
	if limit == 0 {
		e.Report("switch is always on!", "")
		return e.cancelSeek(rot, comp)
	}
	e.Debugf(1, "rotating %s to the switch position\n", rot.Name)
	limit = searchLimit
	for limit--; limit > 0 && e.Bus.ReadSwitch(rot.SwitchNum); limit-- {
		// now rotate until it just gets on the switch; don't need to find the
		// center point, since we always approach it the same way
		e.Queue(rot, Rotate, 1)
		if e.DoMovements(e.TimeUnitDegree()) != DispatchDone {
			return e.cancelSeek(rot, comp)
		}
	}
	if limit == 0 {
		e.Report("switch is always off!", "")
		return e.cancelSeek(rot, comp)
	}
	return rot
}

// CancelSeekHold clears the temporary "stay on"s that MoveToSwitch set.
func (e *Engine) CancelSeekHold(rot *Motor) {
	rot.TempOn = false
	if rot.CompLifter != NoMotor {
		if comp := e.Motors.ByNum(rot.CompLifter); comp != nil {
			comp.TempOn = false
		}
	}
}

func (e *Engine) cancelSeek(rot, comp *Motor) *Motor {
	rot.TempOn = false
	if comp != nil {
		comp.TempOn = false
	}
	return nil
}
