//go:build teensy41

package main

import "machine"

// usbPort adapts the USB CDC console to the io.Reader and io.Writer the
// engine and console expect. TinyGo sets up the USB descriptors; the
// UARTConfig is ignored for CDC.
type usbPort struct{}

func initUSB() usbPort {
	machine.Serial.Configure(machine.UARTConfig{})
	return usbPort{}
}

func (usbPort) Read(p []byte) (int, error) {
	for machine.Serial.Buffered() == 0 {
	}
	n := 0
	for n < len(p) && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (usbPort) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}
