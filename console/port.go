package console

import (
	"fmt"
	"os"
	"time"

	"github.com/tarm/serial"
	"golang.org/x/term"
)

// Port is a bidirectional console connection: a serial port to an
// operator terminal, or the local terminal in raw mode.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// PortConfig selects where the console talks to.
type PortConfig struct {
	Device string // serial device path, empty for the local terminal
	Baud   int
}

// OpenPort opens the console connection.
func OpenPort(cfg PortConfig) (Port, error) {
	if cfg.Device == "" {
		return openTerminal()
	}
	baud := cfg.Baud
	if baud == 0 {
		baud = 115200
	}
	p, err := serial.OpenPort(&serial.Config{Name: cfg.Device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("opening console port %s: %w", cfg.Device, err)
	}
	return &serialPort{p}, nil
}

type serialPort struct {
	port *serial.Port
}

func (p *serialPort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *serialPort) Write(b []byte) (int, error) { return p.port.Write(b) }
func (p *serialPort) Close() error                { return p.port.Close() }

// terminalPort puts the local terminal into raw mode so single
// keystrokes arrive immediately, and restores it on close.
type terminalPort struct {
	oldState *term.State
}

func openTerminal() (Port, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return &terminalPort{}, nil // piped input; raw mode is pointless
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}
	return &terminalPort{oldState: oldState}, nil
}

func (t *terminalPort) Read(b []byte) (int, error) { return os.Stdin.Read(b) }

// Write expands bare newlines to CRLF, which raw mode no longer does.
func (t *terminalPort) Write(b []byte) (int, error) {
	if t.oldState == nil {
		return os.Stdout.Write(b)
	}
	out := make([]byte, 0, len(b)+8)
	for _, c := range b {
		if c == '\n' {
			out = append(out, '\r')
		}
		out = append(out, c)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (t *terminalPort) Close() error {
	if t.oldState == nil {
		return nil
	}
	// give any final output a moment to drain
	time.Sleep(10 * time.Millisecond)
	return term.Restore(int(os.Stdin.Fd()), t.oldState)
}
