//go:build teensy41

package main

import (
	"machine"

	"babbage/core"
)

// machineGPIO implements the GPIO driver over the TinyGo machine package.
type machineGPIO struct {
	configured map[core.Pin]machine.Pin
}

func newMachineGPIO() *machineGPIO {
	return &machineGPIO{configured: make(map[core.Pin]machine.Pin)}
}

func (d *machineGPIO) ConfigureOutput(pin core.Pin) error {
	if _, exists := d.configured[pin]; exists {
		return nil
	}
	mp := machine.Pin(pin)
	mp.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configured[pin] = mp
	return nil
}

func (d *machineGPIO) ConfigureInputPullUp(pin core.Pin) error {
	if _, exists := d.configured[pin]; exists {
		return nil
	}
	mp := machine.Pin(pin)
	mp.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.configured[pin] = mp
	return nil
}

func (d *machineGPIO) SetPin(pin core.Pin, value bool) {
	mp, exists := d.configured[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return
		}
		mp = d.configured[pin]
	}
	mp.Set(value)
}

func (d *machineGPIO) ReadPin(pin core.Pin) bool {
	mp, exists := d.configured[pin]
	if !exists {
		return false
	}
	return mp.Get()
}
