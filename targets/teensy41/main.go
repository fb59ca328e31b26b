//go:build teensy41

// Firmware entry point for the Teensy 4.1 controller. The same engine,
// interpreter, and console that run on the host run here; only the GPIO
// driver and the console port are hardware.
package main

import (
	"fmt"

	"github.com/benbjohnson/clock"

	"babbage/command"
	"babbage/config"
	"babbage/console"
	"babbage/core"
	"babbage/script"
)

func main() {
	port := initUSB()
	for {
		restart, err := run(port)
		if err != nil {
			fmt.Fprintln(port, err)
			return
		}
		if !restart {
			return
		}
	}
}

func run(port usbPort) (restart bool, err error) {
	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		return false, err
	}
	wiring := config.DefaultWiring()
	if err := wiring.Apply(motors); err != nil {
		return false, err
	}

	bus := core.NewBus(newMachineGPIO(), wiring.Pins, clock.New())
	if err := bus.Init(); err != nil {
		return false, err
	}

	eng := core.NewEngine(motors, bus, console.NewKeys(port), port)

	// No filesystem on the controller; calibration lives in RAM and is
	// re-entered after a power cycle.
	interp := command.New(eng, script.Named())

	declared, defined, assigned := motors.Counts()
	fmt.Fprintf(port, "%d motors were declared, %d were defined, and %d were assigned board positions\n",
		declared, defined, assigned)
	fmt.Fprintf(port, "type help or ? for commands\n")

	return console.New(eng, interp, port).Run(), nil
}
