package sim

import (
	"bytes"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"babbage/core"
)

type seekKeys struct{}

func (seekKeys) Poll() (byte, bool) { return 0, false }
func (seekKeys) WaitKey() byte      { return core.KeyEnd }
func (seekKeys) Flush()             {}

// TestMoveToSwitchFindsIndex runs the whole seek against the simulator,
// with the index switch closing over a 20 microstep sector of the f2
// wheel's 1600 microstep revolution. The wheel starts on the switch, so
// the seek must first rotate off it and then come back around.
func TestMoveToSwitchFindsIndex(t *testing.T) {
	pins := core.DefaultPins()
	g := NewGPIO(pins)
	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		t.Fatalf("NewMotorTable: %v", err)
	}
	for _, w := range []struct {
		name            string
		board, position int
	}{{"f2l", 2, 3}, {"f2r", 2, 4}} {
		m := motors.ByName(w.name)
		if err := motors.Assign(m.Num, w.board, w.position); err != nil {
			t.Fatalf("Assign(%s): %v", w.name, err)
		}
	}
	rot := motors.ByName("f2r")
	rot.SwitchNum = 3
	g.SwitchFunc = func(switchNum int) bool {
		if switchNum != 3 {
			return false
		}
		steps := g.Steps(2, 4) % 1600
		return steps >= 0 && steps < 20
	}

	bus := core.NewBus(g, pins, clock.New())
	if err := bus.Init(); err != nil {
		t.Fatalf("bus Init: %v", err)
	}
	e := core.NewEngine(motors, bus, seekKeys{}, &bytes.Buffer{})
	e.TimeUnit = time.Millisecond

	got := e.MoveToSwitch(core.F2_L)
	if got == nil {
		t.Fatal("MoveToSwitch failed")
	}
	if got.Num != core.F2_R {
		t.Fatalf("MoveToSwitch returned %s, want f2r", got.Name)
	}
	if steps := g.Steps(2, 4) % 1600; steps < 0 || steps >= 20 {
		t.Errorf("wheel stopped at step %d of the revolution, not on the switch", steps)
	}
	if !got.TempOn {
		t.Error("rotator not held on after the seek")
	}
	comp := motors.ByName("f2l")
	if !comp.TempOn {
		t.Error("compensating lifter not held on after the seek")
	}
	e.CancelSeekHold(got)
	if got.TempOn || comp.TempOn {
		t.Error("CancelSeekHold left a hold in place")
	}
}

func TestMoveToSwitchStuckClosed(t *testing.T) {
	pins := core.DefaultPins()
	g := NewGPIO(pins)
	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		t.Fatalf("NewMotorTable: %v", err)
	}
	for _, w := range []struct {
		name            string
		board, position int
	}{{"f2l", 2, 3}, {"f2r", 2, 4}} {
		m := motors.ByName(w.name)
		if err := motors.Assign(m.Num, w.board, w.position); err != nil {
			t.Fatalf("Assign(%s): %v", w.name, err)
		}
	}
	rot := motors.ByName("f2r")
	rot.SwitchNum = 3
	g.SetSwitch(3, true) // shorted switch: never opens

	bus := core.NewBus(g, pins, clock.New())
	if err := bus.Init(); err != nil {
		t.Fatalf("bus Init: %v", err)
	}
	out := &bytes.Buffer{}
	e := core.NewEngine(motors, bus, seekKeys{}, out)
	e.TimeUnit = time.Millisecond

	if got := e.MoveToSwitch(core.F2_L); got != nil {
		t.Fatalf("MoveToSwitch = %s, want nil for a stuck switch", got.Name)
	}
	if !e.GotError {
		t.Error("GotError not set")
	}
	if rot.TempOn {
		t.Error("rotator left held on after the failed seek")
	}
}
