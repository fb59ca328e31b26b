// Package config loads and saves the machine configuration: which axle
// motors are plugged into which positions on the daisy-chained control
// boards, which index switches are wired, the processor pin map, and the
// digit wheel zero calibrations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"babbage/core"
)

// MotorWiring is one motor's physical location: an axle name from the
// catalogue, a board 1..6, and a position 1..16 matching the silkscreen.
type MotorWiring struct {
	Axle     string `yaml:"axle"`
	Board    int    `yaml:"board"`
	Position int    `yaml:"position"`
}

// SwitchWiring maps a rotator axle to its index switch input, 0..15 on
// the global switch multiplexer.
type SwitchWiring struct {
	Axle   string `yaml:"axle"`
	Switch int    `yaml:"switch"`
}

// Wiring is the hardware description of one machine build.
type Wiring struct {
	Pins     core.PinMap    `yaml:"pins"`
	Motors   []MotorWiring  `yaml:"motors"`
	Switches []SwitchWiring `yaml:"switches"`

	// TimeUnitMsec overrides the default time unit at startup; zero
	// keeps the engine's default. The timeunit command changes it later.
	TimeUnitMsec int `yaml:"time_unit_msec,omitempty"`
}

// DefaultWiring describes the prototype as currently built: two of the
// six boards populated, and four index switches wired. Position 9 on
// board 2 has a broken socket and stays empty.
func DefaultWiring() *Wiring {
	return &Wiring{
		Pins: core.DefaultPins(),
		Motors: []MotorWiring{
			{"s1l", 1, 1}, {"s1r", 1, 2}, {"rp2", 1, 3}, {"p21", 1, 4},
			{"mp2", 1, 5}, {"a2l", 1, 6}, {"a2r", 1, 7}, {"a2k", 1, 8},
			{"signl", 1, 9}, {"signr", 1, 10}, {"fp2k", 1, 11}, {"mp2k", 1, 12},
			{"rk", 1, 13}, {"rrl", 1, 14}, {"rrr", 1, 15}, {"p22", 1, 16},
			{"rev2", 2, 1}, {"fc2", 2, 2}, {"f2l", 2, 3}, {"f2r", 2, 4},
			{"cl2", 2, 5}, {"cs2", 2, 6}, {"cw2l", 2, 7}, {"cw2r", 2, 8},
			{"csk2r", 2, 10}, {"ctr1l", 2, 11}, {"ctr1r", 2, 12},
			{"ctr2l", 2, 13}, {"ctr2r", 2, 14}, {"csk2l", 2, 15}, {"test", 2, 16},
		},
		Switches: []SwitchWiring{
			{"a2r", 0}, {"s1r", 1}, {"rrr", 2}, {"f2r", 3},
		},
	}
}

// LoadWiring reads a wiring file, or returns the default wiring if the
// file does not exist.
func LoadWiring(path string) (*Wiring, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultWiring(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading wiring: %w", err)
	}
	var w Wiring
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing wiring %s: %w", path, err)
	}
	if w.Pins == (core.PinMap{}) {
		w.Pins = core.DefaultPins()
	}
	return &w, nil
}

// Save writes a wiring file, typically to give a new build a
// starting point to edit.
func (w *Wiring) Save(path string) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Apply assigns the wired motors their board positions and wires up the
// index switches in the motor table.
func (w *Wiring) Apply(motors *core.MotorTable) error {
	for _, mw := range w.Motors {
		m := motors.ByName(mw.Axle)
		if m == nil {
			return fmt.Errorf("wiring names unknown axle %q", mw.Axle)
		}
		if err := motors.Assign(m.Num, mw.Board, mw.Position); err != nil {
			return fmt.Errorf("wiring axle %q: %w", mw.Axle, err)
		}
	}
	for _, sw := range w.Switches {
		m := motors.ByName(sw.Axle)
		if m == nil {
			return fmt.Errorf("switch wiring names unknown axle %q", sw.Axle)
		}
		if sw.Switch < 0 || sw.Switch > 15 {
			return fmt.Errorf("axle %q: switch %d out of range", sw.Axle, sw.Switch)
		}
		m.SwitchNum = sw.Switch
	}
	return nil
}
