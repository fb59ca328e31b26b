package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"babbage/core"
)

// Calibration persists the digit wheel zero offsets: for each rotator,
// how many degrees to rotate past its index switch to reach digit zero.
// Axles that were never calibrated are absent.
type Calibration struct {
	FingerZero map[string]int `yaml:"finger_zero_degrees"`
}

// LoadCalibration reads a calibration file into the engine's table. A
// missing file just leaves every axle uncalibrated.
func LoadCalibration(path string, e *core.Engine) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading calibration: %w", err)
	}
	var cal Calibration
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return fmt.Errorf("parsing calibration %s: %w", path, err)
	}
	for axle, degrees := range cal.FingerZero {
		m := e.Motors.ByName(axle)
		if m == nil {
			return fmt.Errorf("calibration names unknown axle %q", axle)
		}
		e.FingerZero[m.Num] = degrees
	}
	return nil
}

// SaveCalibration writes the engine's calibration table back out.
func SaveCalibration(path string, e *core.Engine) error {
	cal := Calibration{FingerZero: map[string]int{}}
	for _, m := range e.Motors.All() {
		if e.FingerZero[m.Num] != -1 {
			cal.FingerZero[m.Name] = e.FingerZero[m.Num]
		}
	}
	data, err := yaml.Marshal(&cal)
	if err != nil {
		return err
	}
	// write-then-rename so a power cut can't leave a half-written file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
