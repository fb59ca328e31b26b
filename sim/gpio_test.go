package sim

import (
	"testing"

	"github.com/benbjohnson/clock"

	"babbage/core"
)

func newBus(t *testing.T) (*core.Bus, *GPIO) {
	t.Helper()
	pins := core.DefaultPins()
	g := NewGPIO(pins)
	b := core.NewBus(g, pins, clock.New())
	if err := b.Init(); err != nil {
		t.Fatalf("bus Init: %v", err)
	}
	return b, g
}

func TestWriteEnableAddressesOnePosition(t *testing.T) {
	b, g := newBus(t)
	m := &core.Motor{Assigned: true, BoardNumber: 3, BoardPosition: 7}
	b.WriteEnable(m, true)
	if !g.Enabled(3, 7) {
		t.Error("position (3,7) not enabled")
	}
	for board := 1; board <= core.NumBoards; board++ {
		for posn := 1; posn <= core.MotorsPerBoard; posn++ {
			if (board == 3 && posn == 7) == g.Enabled(board, posn) {
				continue
			}
			t.Errorf("position (%d,%d) enabled=%v", board, posn, g.Enabled(board, posn))
		}
	}
	b.WriteEnable(m, false)
	if g.Enabled(3, 7) {
		t.Error("position (3,7) still enabled after disable")
	}
}

func TestStepPulseCountsByDirection(t *testing.T) {
	b, g := newBus(t)
	m := &core.Motor{Assigned: true, BoardNumber: 2, BoardPosition: 16}
	b.WriteEnable(m, true)
	b.StepPulse(m, true)
	b.StepPulse(m, true)
	b.StepPulse(m, true)
	b.StepPulse(m, false)
	if got := g.Steps(2, 16); got != 2 {
		t.Errorf("Steps(2,16) = %d, want 2", got)
	}
}

func TestStepPulseIgnoredWhenDisabled(t *testing.T) {
	b, g := newBus(t)
	m := &core.Motor{Assigned: true, BoardNumber: 4, BoardPosition: 2}
	b.StepPulse(m, true)
	if got := g.Steps(4, 2); got != 0 {
		t.Errorf("disabled driver counted %d steps", got)
	}
}

func TestSharedSelectLinesStayIsolated(t *testing.T) {
	b, g := newBus(t)
	// boards 1, 3 and 5 all share the 2A select line; stepping board 3
	// must not be seen by the others
	m := &core.Motor{Assigned: true, BoardNumber: 3, BoardPosition: 1}
	b.WriteEnable(m, true)
	b.StepPulse(m, true)
	if got := g.Steps(3, 1); got != 1 {
		t.Errorf("Steps(3,1) = %d, want 1", got)
	}
	if g.Steps(1, 1) != 0 || g.Steps(5, 1) != 0 {
		t.Errorf("neighbours on the shared line saw steps: board1=%d board5=%d",
			g.Steps(1, 1), g.Steps(5, 1))
	}
}

func TestInitDisablesEveryPosition(t *testing.T) {
	b, g := newBus(t)
	m := &core.Motor{Assigned: true, BoardNumber: 1, BoardPosition: 5}
	b.WriteEnable(m, true)
	if err := b.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if g.Enabled(1, 5) {
		t.Error("Init left a position enabled")
	}
}

func TestReadSwitch(t *testing.T) {
	b, g := newBus(t)
	g.SetSwitch(5, true)
	if b.ReadSwitch(5) {
		t.Error("closed switch read high")
	}
	if !b.ReadSwitch(4) {
		t.Error("open switch read low")
	}
}

func TestFaultLine(t *testing.T) {
	b, g := newBus(t)
	if b.Fault() {
		t.Error("fault asserted at rest")
	}
	g.SetFault(true)
	if !b.Fault() {
		t.Error("fault not seen")
	}
}
