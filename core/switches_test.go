package core

import (
	"strings"
	"testing"
)

func TestWheelRotator(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if rot := e.WheelRotator(A2_L); rot == nil || rot.Num != A2_R {
		t.Errorf("WheelRotator(A2_L) = %v, want a2r", rot)
	}
	if rot := e.WheelRotator(RP2_L); rot != nil {
		t.Errorf("WheelRotator(RP2_L) = %v, want nil: not a digit wheel stack", rot)
	}
}

func TestMoveToSwitchNoRotator(t *testing.T) {
	e, out, _ := newTestEngine(t)
	if rot := e.MoveToSwitch(RP2_L); rot != nil {
		t.Errorf("MoveToSwitch(RP2_L) = %v, want nil", rot)
	}
	if !strings.Contains(out.String(), "no rotator") {
		t.Errorf("output %q missing message", out.String())
	}
	if !e.GotError {
		t.Error("GotError not set")
	}
}

func TestMoveToSwitchUnwired(t *testing.T) {
	e, out, _ := newTestEngine(t)
	assign(t, e, "a2r", 1, 7)
	assign(t, e, "a2l", 1, 6)
	// a2r's index switch was never given a multiplexer input
	if rot := e.MoveToSwitch(A2_L); rot != nil {
		t.Errorf("MoveToSwitch = %v, want nil", rot)
	}
	if !strings.Contains(out.String(), "no index switch") {
		t.Errorf("output %q missing message", out.String())
	}
}

func TestCancelSeekHold(t *testing.T) {
	e, _, _ := newTestEngine(t)
	rot := e.Motors.ByName("a2r")
	comp := e.Motors.ByName("a2l")
	rot.TempOn, comp.TempOn = true, true
	e.CancelSeekHold(rot)
	if rot.TempOn || comp.TempOn {
		t.Errorf("TempOn not cleared: rot=%v comp=%v", rot.TempOn, comp.TempOn)
	}
}
