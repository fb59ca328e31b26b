package core

import (
	"strings"
	"testing"
)

func TestPowerMotorOffHeldByOffset(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := assign(t, e, "test", 2, 16)
	e.PowerMotor(m, On, false)
	m.StepOffset = 2 // away from a full-step position
	e.PowerMotor(m, Off, false)
	if m.State != On {
		t.Error("motor off a full step was powered down without force")
	}
	e.PowerMotor(m, Off, true)
	if m.State != Off {
		t.Error("force did not power the motor down")
	}
}

func TestPowerMotorOffHeldByAlwaysOn(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := assign(t, e, "test", 2, 16)
	m.AlwaysOn = true
	e.PowerMotor(m, On, false)
	e.PowerMotor(m, Off, false)
	if m.State != On {
		t.Error("always-on motor was powered down without force")
	}
	e.PowerMotor(m, Off, true)
	if m.State != Off {
		t.Error("force did not override always-on")
	}
}

func TestPowerMotorOffHeldByTempOn(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := assign(t, e, "test", 2, 16)
	m.TempOn = true
	e.PowerMotor(m, On, false)
	e.PowerMotor(m, Off, false)
	if m.State != On {
		t.Error("temporarily-held motor was powered down without force")
	}
}

func TestPowerMotorOnResetsOffset(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := assign(t, e, "test", 2, 16)
	m.StepOffset = 3
	e.PowerMotor(m, On, false)
	// the driver restarts its phase table at a full step when enabled
	if m.StepOffset != 0 {
		t.Errorf("StepOffset = %d after power on, want 0", m.StepOffset)
	}
}

func TestPowerMotorUnassigned(t *testing.T) {
	e, out, _ := newTestEngine(t)
	m := e.Motors.ByName("test")
	e.PowerMotor(m, On, false)
	if !strings.Contains(out.String(), "unassigned motor") {
		t.Errorf("output %q missing unassigned message", out.String())
	}
	if m.State != Off {
		t.Error("unassigned motor was powered")
	}
}

func TestPowerMotorsOnSelectsAlwaysOn(t *testing.T) {
	e, _, _ := newTestEngine(t)
	keep := assign(t, e, "fp2k", 1, 11)
	keep.AlwaysOn = true
	other := assign(t, e, "test", 2, 16)
	e.PowerMotor(other, On, false)
	e.PowerMotors(On, false)
	if keep.State != On {
		t.Error("always-on motor not powered by PowerMotors(On, false)")
	}
	if other.State != Off {
		t.Error("ordinary motor left on by PowerMotors(On, false)")
	}
	e.PowerMotors(On, true)
	if other.State != On {
		t.Error("PowerMotors(On, true) did not power every motor")
	}
	e.PowerMotors(Off, true)
	if keep.State != Off || other.State != Off {
		t.Error("PowerMotors(Off, true) left motors on")
	}
}

func TestStepMotorOffsetWraps(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := assign(t, e, "test", 2, 16)
	m.Clockwise = true
	for i := 1; i <= MicrostepsPerStep; i++ {
		e.StepMotor(m)
		if want := i % MicrostepsPerStep; m.StepOffset != want {
			t.Fatalf("after %d CW steps StepOffset = %d, want %d", i, m.StepOffset, want)
		}
	}
	m.Clockwise = false
	e.StepMotor(m)
	if m.StepOffset != MicrostepsPerStep-1 {
		t.Errorf("CCW from zero: StepOffset = %d, want %d", m.StepOffset, MicrostepsPerStep-1)
	}
}
