package core

// Pin identifies a hardware GPIO pin number on the controller board.
type Pin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin Pin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin Pin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin Pin, value bool)

	// ReadPin reads the current pin state
	ReadPin(pin Pin) bool
}

// KeyPoller delivers operator keystrokes to the motion engine.
// Poll never blocks; WaitKey blocks until a key arrives.
type KeyPoller interface {
	Poll() (byte, bool)
	WaitKey() byte
	Flush()
}
