// Package sim simulates the motor control hardware well enough to run
// the whole command interpreter without a machine attached. The GPIO
// simulator decodes the board select pulses, the motor multiplexer, and
// the step and enable lines the same way the boards do, so it observes
// exactly what real controllers would have done.
package sim

import (
	"sync"

	"babbage/core"
)

// Sel identifies one motor controller position: a board 1..6 and a
// position 1..16, matching the silkscreen numbering.
type Sel struct {
	Board    int
	Position int
}

// GPIO is a simulated pin driver that decodes bus activity into
// per-controller state.
type GPIO struct {
	mu   sync.Mutex
	pins core.PinMap

	level   map[core.Pin]bool
	outputs map[core.Pin]bool
	inputs  map[core.Pin]bool

	boards [core.NumBoards][2]core.Pin

	enabled map[Sel]bool
	steps   map[Sel]int // net steps, clockwise positive

	fault    bool
	switches [16]bool // true = closed (reads low)

	// SwitchFunc, if set, overrides the switches array: it is asked
	// whether the numbered switch is closed each time it is read.
	SwitchFunc func(switchNum int) bool
}

// NewGPIO makes a simulator for the given pin map.
func NewGPIO(pins core.PinMap) *GPIO {
	g := &GPIO{
		pins:    pins,
		level:   map[core.Pin]bool{},
		outputs: map[core.Pin]bool{},
		inputs:  map[core.Pin]bool{},
		enabled: map[Sel]bool{},
		steps:   map[Sel]int{},
	}
	g.boards = [core.NumBoards][2]core.Pin{
		{pins.BdSel2A, pins.BdSel3A},
		{pins.BdSel2B, pins.BdSel3B},
		{pins.BdSel2A, pins.BdSel3C},
		{pins.BdSel2B, pins.BdSel3A},
		{pins.BdSel2A, pins.BdSel3B},
		{pins.BdSel2B, pins.BdSel3C},
	}
	return g
}

func (g *GPIO) ConfigureOutput(pin core.Pin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outputs[pin] = true
	return nil
}

func (g *GPIO) ConfigureInputPullUp(pin core.Pin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputs[pin] = true
	g.level[pin] = true // pulled up
	return nil
}

// SetPin drives an output. A falling edge on a board select line, when
// its pair partner is already low, acts like the board latching the bus:
// a step pulse if StepNotEnb is high, an enable latch write otherwise.
func (g *GPIO) SetPin(pin core.Pin, value bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	old, had := g.level[pin]
	g.level[pin] = value
	if value || (had && !old) {
		return // not a falling edge
	}
	for board := range g.boards {
		sel := g.boards[board]
		if (pin == sel[0] || pin == sel[1]) && !g.level[sel[0]] && !g.level[sel[1]] {
			g.latch(board)
		}
	}
}

// latch acts on a selected board the way its decode logic does.
func (g *GPIO) latch(board int) {
	s := Sel{Board: board + 1, Position: g.muxPosition() + 1}
	if g.level[g.pins.StepNotEnb] { // a step pulse
		if !g.enabled[s] {
			return // an unpowered driver ignores steps
		}
		if g.level[g.pins.MotorDir] {
			g.steps[s]++
		} else {
			g.steps[s]--
		}
	} else { // an enable latch write; the enable line is active low
		g.enabled[s] = !g.level[g.pins.MotorEnb]
	}
}

func (g *GPIO) muxPosition() int {
	posn := 0
	if g.level[g.pins.MuxA] {
		posn |= 1
	}
	if g.level[g.pins.MuxB] {
		posn |= 2
	}
	if g.level[g.pins.MuxC] {
		posn |= 4
	}
	if g.level[g.pins.MuxD] {
		posn |= 8
	}
	return posn
}

// ReadPin reads an input: the fault line, the multiplexed switch input,
// or the last driven level of an output.
func (g *GPIO) ReadPin(pin core.Pin) bool {
	g.mu.Lock()
	switch pin {
	case g.pins.MotorFault:
		defer g.mu.Unlock()
		return !g.fault // active low
	case g.pins.SwitchInput:
		n := g.muxPosition()
		closed := g.switches[n]
		fn := g.SwitchFunc
		g.mu.Unlock() // the callback may read simulator state back
		if fn != nil {
			closed = fn(n)
		}
		return !closed // pull-up: open reads high
	}
	defer g.mu.Unlock()
	return g.level[pin]
}

// Steps returns the net clockwise steps observed at one controller.
func (g *GPIO) Steps(board, position int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.steps[Sel{board, position}]
}

// Enabled reports whether one controller's enable latch is on.
func (g *GPIO) Enabled(board, position int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled[Sel{board, position}]
}

// SetSwitch opens or closes one of the index switches.
func (g *GPIO) SetSwitch(switchNum int, closed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.switches[switchNum] = closed
}

// SetFault raises or clears the shared motor fault line.
func (g *GPIO) SetFault(fault bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fault = fault
}
