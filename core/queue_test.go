package core

import (
	"strings"
	"testing"
)

func TestQueueRotateExactMicrosteps(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := e.Motors.ByName("a2r") // 114:11 combined gearing
	e.Queue(m, Rotate, 36)
	// 36 * 114 * 800 / (360 * 11) = 3283200 / 3960 = 829 remainder 360
	if m.UstepsNeeded != 829 {
		t.Errorf("UstepsNeeded = %d, want 829", m.UstepsNeeded)
	}
	if m.Deficit != 360 {
		t.Errorf("Deficit = %d, want 360", m.Deficit)
	}
	if !m.Clockwise {
		t.Error("Clockwise = false, want true")
	}
	if !m.MoveQueued {
		t.Error("MoveQueued = false")
	}
}

func TestQueueRotateCompensatingLifter(t *testing.T) {
	e, _, _ := newTestEngine(t)
	rot := e.Motors.ByName("f2r") // 2:1 gearing, compensated by f2l
	e.QueueSpan(rot, Rotate, 36, 25, 75)
	if rot.UstepsNeeded != 160 || !rot.Clockwise {
		t.Errorf("f2r: %d usteps clockwise=%v, want 160 CW", rot.UstepsNeeded, rot.Clockwise)
	}
	comp := e.Motors.ByName("f2l")
	if !comp.MoveQueued {
		t.Fatal("compensating lifter was not queued")
	}
	// f2l is ungeared: -36 degrees is 80 microsteps counter-clockwise
	if comp.UstepsNeeded != 80 || comp.Clockwise {
		t.Errorf("f2l: %d usteps clockwise=%v, want 80 CCW", comp.UstepsNeeded, comp.Clockwise)
	}
	if comp.StartPct != 25 || comp.EndPct != 75 {
		t.Errorf("f2l span = [%d,%d], want [25,75]", comp.StartPct, comp.EndPct)
	}
	if e.MotorsQueued != 2 {
		t.Errorf("MotorsQueued = %d, want 2", e.MotorsQueued)
	}
}

func TestQueueLiftExactMicrosteps(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := e.Motors.ByName("p22") // ungeared leadscrew
	e.Queue(m, Lift, 254)
	// 254 * 254 * 1 / (100 * 1) = 645 remainder 16, deficit 16*5 = 80
	if m.UstepsNeeded != 645 {
		t.Errorf("UstepsNeeded = %d, want 645", m.UstepsNeeded)
	}
	if m.Deficit != 80 {
		t.Errorf("Deficit = %d, want 80", m.Deficit)
	}
}

func TestQueueDeficitAccumulates(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := e.Motors.ByName("a2r")
	total := 0
	for i := 0; i < 10; i++ {
		e.Queue(m, Rotate, 36)
		total += m.UstepsNeeded
		e.ClearMovements() // stand in for dispatching
	}
	// 10 digits is exactly 8290.909... microsteps; the deficit carries the
	// fraction with no step correction yet (3600 < 3960)
	if total != 8290 {
		t.Errorf("total usteps over ten digits = %d, want 8290", total)
	}
	if m.Deficit != 3600 {
		t.Errorf("Deficit = %d, want 3600", m.Deficit)
	}
	// the eleventh digit picks up the accumulated full microstep
	e.Queue(m, Rotate, 36)
	if m.UstepsNeeded != 830 {
		t.Errorf("eleventh digit = %d usteps, want 830", m.UstepsNeeded)
	}
	if m.Deficit != 0 {
		t.Errorf("Deficit = %d after correction, want 0", m.Deficit)
	}
}

func TestQueueLifterRotationRoundTrips(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := e.Motors.ByName("a2l") // geared lifter, asked to rotate
	e.Queue(m, Rotate, 36)
	if m.UstepsNeeded != 414 || !m.Clockwise {
		t.Errorf("+36: %d usteps clockwise=%v, want 414 CW", m.UstepsNeeded, m.Clockwise)
	}
	if m.Deficit != 2160*18 {
		t.Errorf("+36: Deficit = %d, want %d", m.Deficit, 2160*18)
	}
	e.ClearMovements()
	e.Queue(m, Rotate, -36)
	if m.UstepsNeeded != 414 || m.Clockwise {
		t.Errorf("-36: %d usteps clockwise=%v, want 414 CCW", m.UstepsNeeded, m.Clockwise)
	}
	if m.Deficit != 0 {
		t.Errorf("Deficit = %d after the round trip, want 0", m.Deficit)
	}
}

func TestQueueFullStepsMask(t *testing.T) {
	e, _, _ := newTestEngine(t)
	m := e.Motors.ByName("rk") // the rack lock moves in full steps only
	e.Queue(m, Lift, 10)
	// 10 * 254 / 100 = 25 microsteps, masked down to 24
	if m.UstepsNeeded != 24 {
		t.Errorf("UstepsNeeded = %d, want 24", m.UstepsNeeded)
	}
	if m.Deficit != 0 {
		t.Errorf("Deficit = %d, want 0: full-step motors drop the fraction", m.Deficit)
	}
}

func TestQueueRefusesDoubleQueue(t *testing.T) {
	e, out, _ := newTestEngine(t)
	m := e.Motors.ByName("test")
	e.Queue(m, Rotate, 36)
	e.Queue(m, Rotate, 36)
	if e.MotorsQueued != 1 {
		t.Errorf("MotorsQueued = %d, want 1", e.MotorsQueued)
	}
	if !strings.Contains(out.String(), "already scheduled") {
		t.Errorf("output %q missing double-queue warning", out.String())
	}
}

func TestClearMovements(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Queue(e.Motors.ByName("test"), Rotate, 36)
	e.Queue(e.Motors.ByName("p22"), Lift, 100)
	e.ClearMovements()
	if e.MotorsQueued != 0 {
		t.Errorf("MotorsQueued = %d, want 0", e.MotorsQueued)
	}
	for _, m := range e.Motors.All() {
		if m.MoveQueued {
			t.Errorf("motor %s still queued", m.Name)
		}
	}
}
