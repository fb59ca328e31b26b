package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benbjohnson/clock"

	"babbage/core"
)

type testGPIO struct{}

func (testGPIO) ConfigureOutput(core.Pin) error      { return nil }
func (testGPIO) ConfigureInputPullUp(core.Pin) error { return nil }
func (testGPIO) SetPin(core.Pin, bool)               {}
func (testGPIO) ReadPin(core.Pin) bool               { return true }

type testKeys struct{}

func (testKeys) Poll() (byte, bool) { return 0, false }
func (testKeys) WaitKey() byte      { return core.KeyEnd }
func (testKeys) Flush()             {}

func newEngine(t *testing.T) *core.Engine {
	t.Helper()
	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		t.Fatalf("NewMotorTable: %v", err)
	}
	bus := core.NewBus(testGPIO{}, core.DefaultPins(), clock.New())
	return core.NewEngine(motors, bus, testKeys{}, &bytes.Buffer{})
}

func TestApplyAssignsMotorsAndSwitches(t *testing.T) {
	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		t.Fatalf("NewMotorTable: %v", err)
	}
	if err := DefaultWiring().Apply(motors); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	m := motors.ByName("a2r")
	if !m.Assigned || m.BoardNumber != 1 || m.BoardPosition != 7 {
		t.Errorf("a2r assigned=%v at (%d,%d), want (1,7)",
			m.Assigned, m.BoardNumber, m.BoardPosition)
	}
	if m.SwitchNum != 0 {
		t.Errorf("a2r switch = %d, want 0", m.SwitchNum)
	}
	if m := motors.ByName("f2r"); m.SwitchNum != 3 {
		t.Errorf("f2r switch = %d, want 3", m.SwitchNum)
	}
	if m := motors.ByName("rp2"); m.SwitchNum != core.NoSwitch {
		t.Errorf("rp2 switch = %d, want unwired", m.SwitchNum)
	}
	_, defined, assigned := motors.Counts()
	if assigned != len(DefaultWiring().Motors) {
		t.Errorf("%d of %d motors assigned, want %d",
			assigned, defined, len(DefaultWiring().Motors))
	}
}

func TestApplyRejectsBadWiring(t *testing.T) {
	tests := []struct {
		name string
		w    Wiring
	}{
		{"unknown axle", Wiring{Motors: []MotorWiring{{"nonesuch", 1, 1}}}},
		{"board out of range", Wiring{Motors: []MotorWiring{{"a2r", 7, 1}}}},
		{"position out of range", Wiring{Motors: []MotorWiring{{"a2r", 1, 17}}}},
		{"unknown switch axle", Wiring{Switches: []SwitchWiring{{"nonesuch", 0}}}},
		{"switch out of range", Wiring{Switches: []SwitchWiring{{"a2r", 16}}}},
	}
	for _, tt := range tests {
		motors, err := core.NewMotorTable(core.Catalogue())
		if err != nil {
			t.Fatalf("NewMotorTable: %v", err)
		}
		if err := tt.w.Apply(motors); err == nil {
			t.Errorf("%s: Apply accepted the wiring", tt.name)
		}
	}
}

func TestWiringRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiring.yaml")
	w := DefaultWiring()
	if err := w.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadWiring(path)
	if err != nil {
		t.Fatalf("LoadWiring: %v", err)
	}
	if len(got.Motors) != len(w.Motors) || len(got.Switches) != len(w.Switches) {
		t.Fatalf("loaded %d motors, %d switches; want %d, %d",
			len(got.Motors), len(got.Switches), len(w.Motors), len(w.Switches))
	}
	for i, mw := range got.Motors {
		if mw != w.Motors[i] {
			t.Errorf("motor %d = %+v, want %+v", i, mw, w.Motors[i])
		}
	}
	if got.Pins != w.Pins {
		t.Errorf("pin map did not survive the round trip")
	}
}

func TestLoadWiringMissingFile(t *testing.T) {
	w, err := LoadWiring(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err != nil {
		t.Fatalf("LoadWiring: %v", err)
	}
	if len(w.Motors) != len(DefaultWiring().Motors) {
		t.Errorf("missing file did not fall back to the default wiring")
	}
}

func TestLoadWiringFillsMissingPins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiring.yaml")
	data := []byte("motors:\n  - axle: test\n    board: 2\n    position: 16\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := LoadWiring(path)
	if err != nil {
		t.Fatalf("LoadWiring: %v", err)
	}
	if w.Pins == (core.PinMap{}) {
		t.Error("pin map left empty when the file omits it")
	}
	if len(w.Motors) != 1 || w.Motors[0].Axle != "test" {
		t.Errorf("motors = %+v", w.Motors)
	}
}

func TestLoadWiringTimeUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiring.yaml")
	data := []byte("time_unit_msec: 157\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := LoadWiring(path)
	if err != nil {
		t.Fatalf("LoadWiring: %v", err)
	}
	if w.TimeUnitMsec != 157 {
		t.Errorf("TimeUnitMsec = %d, want 157", w.TimeUnitMsec)
	}
	if DefaultWiring().TimeUnitMsec != 0 {
		t.Error("default wiring overrides the time unit")
	}
}

func TestLoadWiringBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiring.yaml")
	if err := os.WriteFile(path, []byte("motors: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWiring(path); err == nil {
		t.Error("LoadWiring accepted malformed yaml")
	}
}

func TestCalibrationRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	e := newEngine(t)
	e.FingerZero[core.A2_R] = 47
	e.FingerZero[core.F2_R] = 0
	if err := SaveCalibration(path, e); err != nil {
		t.Fatalf("SaveCalibration: %v", err)
	}

	e2 := newEngine(t)
	if err := LoadCalibration(path, e2); err != nil {
		t.Fatalf("LoadCalibration: %v", err)
	}
	if got := e2.FingerZero[core.A2_R]; got != 47 {
		t.Errorf("a2r zero = %d, want 47", got)
	}
	if got := e2.FingerZero[core.F2_R]; got != 0 {
		t.Errorf("f2r zero = %d, want 0", got)
	}
	if got := e2.FingerZero[core.S1_R]; got != -1 {
		t.Errorf("uncalibrated s1r zero = %d, want -1", got)
	}
}

func TestLoadCalibrationMissingFile(t *testing.T) {
	e := newEngine(t)
	if err := LoadCalibration(filepath.Join(t.TempDir(), "none.yaml"), e); err != nil {
		t.Errorf("missing calibration file: %v", err)
	}
	for num, z := range e.FingerZero {
		if z != -1 {
			t.Errorf("motor %d zero = %d after loading nothing", num, z)
		}
	}
}

func TestLoadCalibrationUnknownAxle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	data := []byte("finger_zero_degrees:\n  nonesuch: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadCalibration(path, newEngine(t)); err == nil {
		t.Error("LoadCalibration accepted an unknown axle")
	}
}
