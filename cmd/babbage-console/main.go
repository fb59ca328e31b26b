// babbage-console runs the motion-control command interpreter on a host
// machine against simulated motor boards, either on the local terminal
// or over a serial port to an operator terminal. It is the same code
// that runs on the machine's controller, minus the hardware.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/benbjohnson/clock"

	"babbage/command"
	"babbage/config"
	"babbage/console"
	"babbage/core"
	"babbage/script"
	"babbage/sim"
)

var (
	device   = flag.String("device", "", "serial device for the operator terminal (default: local terminal)")
	baud     = flag.Int("baud", 115200, "baud rate for the serial device")
	wiringPath = flag.String("wiring", "wiring.yaml", "wiring configuration file")
	calPath  = flag.String("calibration", "calibration.yaml", "digit wheel zero calibration file")
	debugLevel = flag.Int("debug", 0, "initial debug level, 0..6")
)

func main() {
	flag.Parse()
	for {
		restart, err := run()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !restart {
			return
		}
	}
}

func run() (restart bool, err error) {
	port, err := console.OpenPort(console.PortConfig{Device: *device, Baud: *baud})
	if err != nil {
		return false, err
	}
	defer port.Close()

	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		return false, err
	}
	wiring, err := config.LoadWiring(*wiringPath)
	if err != nil {
		return false, err
	}
	if err := wiring.Apply(motors); err != nil {
		return false, err
	}

	clk := clock.New()
	gpio := sim.NewGPIO(wiring.Pins)
	bus := core.NewBus(gpio, wiring.Pins, clk)
	if err := bus.Init(); err != nil {
		return false, err
	}

	eng := core.NewEngine(motors, bus, console.NewKeys(port), port)
	eng.Debug = *debugLevel
	if wiring.TimeUnitMsec > 0 {
		eng.TimeUnit = time.Duration(wiring.TimeUnitMsec) * time.Millisecond
	}
	if err := config.LoadCalibration(*calPath, eng); err != nil {
		return false, err
	}

	interp := command.New(eng, script.Named())
	interp.SaveCal = func() error { return config.SaveCalibration(*calPath, eng) }

	declared, defined, assigned := motors.Counts()
	fmt.Fprintf(port, "%d motors were declared, %d were defined, and %d were assigned board positions\n",
		declared, defined, assigned)
	fmt.Fprintf(port, "simulated boards; type help or ? for commands\n")

	return console.New(eng, interp, port).Run(), nil
}
