package core

// PowerMotor powers one motor on or off by setting its addressable
// enable latch. Powering off is denied for always-on or temporarily-on
// motors, and for motors away from a full-step position, unless force is
// set. Powering on resets the microstep offset, since the driver restarts
// its phase table at a full step.
func (e *Engine) PowerMotor(m *Motor, state MotorState, force bool) {
	if m == nil || !m.Assigned {
		name := ""
		if m != nil {
			name = m.Name
		}
		e.Report("unassigned motor cannot be powered", name)
		return
	}
	if m.State == state {
		return
	}
	if state == Off {
		if !force && (m.AlwaysOn || m.TempOn || m.StepOffset != 0) {
			if m.StepOffset != 0 {
				e.Debugf(4, "  motor %d (%s on board %d position %d) not at full step so left on\n",
					m.Num, m.Name, m.BoardNumber, m.BoardPosition)
			}
			return
		}
	} else {
		m.StepOffset = 0
	}
	e.Bus.WriteEnable(m, state == On)
	m.State = state
	e.Debugf(4, "  motor %d (%s on board %d position %d) turned %s\n",
		m.Num, m.Name, m.BoardNumber, m.BoardPosition, state)
}

// PowerMotors powers every assigned motor. When turning on, only
// always-on motors are powered unless all is set; the rest are turned
// off. When turning off, all additionally overrides the always-on and
// temporarily-on holds.
func (e *Engine) PowerMotors(state MotorState, all bool) {
	which := "some"
	if all {
		which = "all"
	}
	e.Debugf(5, "powering %s motors %s\n", which, state)
	e.GotError = false
	e.Bus.SetFan(state == On)
	for _, m := range e.Motors.All() {
		if !m.Assigned {
			continue
		}
		if state == Off {
			e.PowerMotor(m, Off, all)
		} else if all || m.AlwaysOn {
			e.PowerMotor(m, On, false)
		} else {
			e.PowerMotor(m, Off, false)
		}
	}
}

// StepMotor sends one microstep to a motor in its queued direction and
// keeps track of how far off the full-step position it is.
func (e *Engine) StepMotor(m *Motor) {
	if m.Clockwise {
		if m.StepOffset++; m.StepOffset >= MicrostepsPerStep {
			m.StepOffset = 0
		}
	} else {
		if m.StepOffset--; m.StepOffset < 0 {
			m.StepOffset = MicrostepsPerStep - 1
		}
	}
	e.Bus.StepPulse(m, m.Clockwise)
	e.Debugf(6, "motor %d (%s) stepped\n", m.Num, m.Name)
}
