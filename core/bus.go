package core

import (
	"time"

	"github.com/benbjohnson/clock"
)

// The motor addressing bus. All six daisy-chained motor control boards
// share the mux, enable, direction and step lines; a board acts on them
// only while both of its select lines are pulled low. Selecting a board
// takes one of the group-2 lines and one of the group-3 lines, so five
// select lines address six boards. See the 1979 patent 4,253,087,
// "Self-assigning address system", by Harry Saal of Nestar Systems.

// PinMap names the controller pins the bus drives. The zero value is not
// usable; start from DefaultPins and let the wiring configuration
// override individual assignments.
type PinMap struct {
	BdSel2A Pin `yaml:"bdsel_2a"`
	BdSel2B Pin `yaml:"bdsel_2b"`
	BdSel3A Pin `yaml:"bdsel_3a"`
	BdSel3B Pin `yaml:"bdsel_3b"`
	BdSel3C Pin `yaml:"bdsel_3c"`

	MuxA Pin `yaml:"mux_a"` // 4-to-16 multiplexer controls for addressing the motors
	MuxB Pin `yaml:"mux_b"` //   on the currently-selected board,
	MuxC Pin `yaml:"mux_c"` //   or for reading one of the 16 global switch inputs
	MuxD Pin `yaml:"mux_d"`

	StepNotEnb Pin `yaml:"step_not_enb"` // whether board select steps the muxed motor or latches its enable
	MotorEnb   Pin `yaml:"motor_enb"`    // the enable value to latch; low powers the motor on

	MotorDir    Pin `yaml:"motor_dir"`    // direction control for all motors
	MotorFault  Pin `yaml:"motor_fault"`  // active low input: a motor fault was detected
	SwitchInput Pin `yaml:"switch_input"` // input: the switch selected by the mux controls
	FanOn       Pin `yaml:"fan_on"`      // turn on the cooling fans
}

// DefaultPins is the wiring of the current prototype controller.
func DefaultPins() PinMap {
	return PinMap{
		BdSel2A: 7, BdSel2B: 8,
		BdSel3A: 3, BdSel3B: 4, BdSel3C: 5,
		MuxA: 17, MuxB: 16, MuxC: 15, MuxD: 14,
		StepNotEnb: 19, MotorEnb: 22,
		MotorDir: 21, MotorFault: 20, SwitchInput: 23, FanOn: 11,
	}
}

const motorOnLevel = false // the enable latch is active low

// Bus drives the shared addressing lines for the motor control boards.
type Bus struct {
	gpio   GPIODriver
	clk    clock.Clock
	pins   PinMap
	boards [NumBoards][2]Pin // select line pair for each board, daisy-chain order
}

// NewBus builds the bus over a GPIO driver. The clock provides the short
// setup and pulse delays the latches need.
func NewBus(gpio GPIODriver, pins PinMap, clk clock.Clock) *Bus {
	b := &Bus{gpio: gpio, clk: clk, pins: pins}
	b.boards = [NumBoards][2]Pin{
		{pins.BdSel2A, pins.BdSel3A}, // the 0th board, with the processor
		{pins.BdSel2B, pins.BdSel3B}, // the remaining boards in the order of
		{pins.BdSel2A, pins.BdSel3C}, // the daisy chained cables, connected from
		{pins.BdSel2B, pins.BdSel3A}, // the right connector of one board to the
		{pins.BdSel2A, pins.BdSel3B}, // left connector of the next board
		{pins.BdSel2B, pins.BdSel3C},
	}
	return b
}

// Init configures the pins and disables every possible motor controller
// position, because controllers that are populated but have no motor
// assigned still draw power.
func (b *Bus) Init() error {
	if err := b.gpio.ConfigureInputPullUp(b.pins.MotorFault); err != nil {
		return err
	}
	if err := b.gpio.ConfigureInputPullUp(b.pins.SwitchInput); err != nil {
		return err
	}
	if err := b.gpio.ConfigureOutput(b.pins.FanOn); err != nil {
		return err
	}
	outputs := []Pin{
		b.pins.MotorDir, b.pins.MotorEnb, b.pins.StepNotEnb,
		b.pins.MuxA, b.pins.MuxB, b.pins.MuxC, b.pins.MuxD,
		b.pins.BdSel2A, b.pins.BdSel2B, b.pins.BdSel3A, b.pins.BdSel3B, b.pins.BdSel3C,
	}
	for _, pin := range outputs {
		if err := b.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		b.gpio.SetPin(pin, true)
	}
	b.gpio.SetPin(b.pins.StepNotEnb, false) // we are setting ENB for the motor, not stepping
	b.gpio.SetPin(b.pins.MotorEnb, !motorOnLevel)
	for posn := 0; posn < MotorsPerBoard; posn++ {
		b.setMux(posn)
		for board := 0; board < NumBoards; board++ {
			b.selectBoard(board, time.Microsecond)
		}
	}
	return nil
}

// setMux sets the multiplexer controls from a 0..15 position.
func (b *Bus) setMux(posn int) {
	b.gpio.SetPin(b.pins.MuxA, posn&1 != 0)
	b.gpio.SetPin(b.pins.MuxB, posn&2 != 0)
	b.gpio.SetPin(b.pins.MuxC, posn&4 != 0)
	b.gpio.SetPin(b.pins.MuxD, posn&8 != 0)
}

// selectBoard pulses a board's select line pair low for the given width,
// clocking whatever the mux and enable lines carry into that board.
func (b *Bus) selectBoard(board int, width time.Duration) {
	b.clk.Sleep(time.Microsecond) // CD74HC259 datasheet: 120 nsec minimum setup time
	b.gpio.SetPin(b.boards[board][0], false)
	b.gpio.SetPin(b.boards[board][1], false)
	b.clk.Sleep(width) // datasheet: 100 nsec minimum pulse time
	b.gpio.SetPin(b.boards[board][0], true)
	b.gpio.SetPin(b.boards[board][1], true)
}

// WriteEnable latches the enable state of one assigned motor's controller.
func (b *Bus) WriteEnable(m *Motor, on bool) {
	b.setMux(m.BoardPosition - 1)
	b.gpio.SetPin(b.pins.StepNotEnb, false)
	if on {
		b.gpio.SetPin(b.pins.MotorEnb, motorOnLevel)
	} else {
		b.gpio.SetPin(b.pins.MotorEnb, !motorOnLevel)
	}
	b.selectBoard(m.BoardNumber-1, time.Microsecond)
}

// StepPulse sends one step pulse to an assigned motor in the given
// direction.
func (b *Bus) StepPulse(m *Motor, clockwise bool) {
	b.gpio.SetPin(b.pins.MotorDir, clockwise)
	b.setMux(m.BoardPosition - 1)
	b.gpio.SetPin(b.pins.StepNotEnb, true) // we are stepping, not setting ENB for the motor
	// TI DRV8825 datasheet: step pulse min 1.9 usec high
	b.selectBoard(m.BoardNumber-1, 3*time.Microsecond)
}

// SetFan turns the cooling fans on or off.
func (b *Bus) SetFan(on bool) {
	b.gpio.SetPin(b.pins.FanOn, on)
}

// Fault reports whether a motor driver has raised its fault line.
func (b *Bus) Fault() bool {
	return !b.gpio.ReadPin(b.pins.MotorFault)
}

// ReadSwitch reports whether the multiplexed switch input reads high,
// which with the pull-up means the switch is open.
func (b *Bus) ReadSwitch(switchNum int) bool {
	b.setMux(switchNum)
	b.clk.Sleep(3 * time.Microsecond) // 1 is not enough! (capacitive charging of long wires?)
	return b.gpio.ReadPin(b.pins.SwitchInput)
}
