package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"babbage/command"
	"babbage/core"
	"babbage/script"
)

func TestKeysDeliversStreamThenEnd(t *testing.T) {
	k := NewKeys(strings.NewReader("ab"))
	for _, want := range []byte{'a', 'b', keyEnd, keyEnd} {
		if got := k.WaitKey(); got != want {
			t.Fatalf("WaitKey = %q, want %q", got, want)
		}
	}
	if b, ok := k.Poll(); ok {
		t.Errorf("Poll after end = %q, true", b)
	}
}

func TestKeysPoll(t *testing.T) {
	k := NewKeys(strings.NewReader("pq"))
	if got := k.WaitKey(); got != 'p' {
		t.Fatalf("WaitKey = %q, want p", got)
	}
	deadline := time.Now().Add(time.Second)
	for {
		if b, ok := k.Poll(); ok {
			if b != 'q' {
				t.Fatalf("Poll = %q, want q", b)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Poll never saw the second keystroke")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestKeysFlushDiscardsPending(t *testing.T) {
	k := NewKeys(strings.NewReader("abc"))
	time.Sleep(10 * time.Millisecond) // let the reader goroutine buffer it all
	k.Flush()
	if got := k.WaitKey(); got != keyEnd {
		t.Errorf("WaitKey after Flush = %q, want end of input", got)
	}
}

// scriptedKeys delivers a fixed keystroke sequence. Flush discards
// nothing, since the sequence stands in for keys typed one at a time.
type scriptedKeys struct {
	keys []byte
}

func (k *scriptedKeys) Poll() (byte, bool) {
	if len(k.keys) == 0 {
		return 0, false
	}
	b := k.keys[0]
	k.keys = k.keys[1:]
	return b, true
}

func (k *scriptedKeys) WaitKey() byte {
	if b, ok := k.Poll(); ok {
		return b
	}
	return keyEnd
}

func (k *scriptedKeys) Flush() {}

type testGPIO struct{}

func (testGPIO) ConfigureOutput(core.Pin) error      { return nil }
func (testGPIO) ConfigureInputPullUp(core.Pin) error { return nil }
func (testGPIO) SetPin(core.Pin, bool)               {}
func (testGPIO) ReadPin(core.Pin) bool               { return true }

func newConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	motors, err := core.NewMotorTable(core.Catalogue())
	if err != nil {
		t.Fatalf("NewMotorTable: %v", err)
	}
	m := motors.ByName("test")
	if err := motors.Assign(m.Num, 2, 16); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	bus := core.NewBus(testGPIO{}, core.DefaultPins(), clock.New())
	if err := bus.Init(); err != nil {
		t.Fatalf("bus Init: %v", err)
	}
	out := &bytes.Buffer{}
	e := core.NewEngine(motors, bus, &scriptedKeys{keys: []byte(input)}, out)
	e.TimeUnit = time.Millisecond
	return New(e, command.New(e, script.Named()), out), out
}

func TestRunExecutesLineAndQuits(t *testing.T) {
	c, out := newConsole(t, "bell\n")
	if c.Run() {
		t.Error("Run requested a restart")
	}
	if got := strings.Count(out.String(), ">"); got != 2 {
		t.Errorf("saw %d prompts, want 2", got)
	}
	if !strings.Contains(out.String(), "\a") {
		t.Error("bell command produced no bell")
	}
}

func TestRunRestart(t *testing.T) {
	c, out := newConsole(t, "restart\nbell\n")
	if !c.Run() {
		t.Error("Run did not request a restart")
	}
	if c.Interp.RequestRestart {
		t.Error("restart flag not cleared")
	}
	if strings.Contains(out.String(), "\a") {
		t.Error("command after restart was executed")
	}
}

func TestReadLineBackspaceEdits(t *testing.T) {
	c, out := newConsole(t, "belx\bl\n")
	line, ok := c.readLine()
	if !ok || line != "bell" {
		t.Errorf("readLine = %q, %v; want bell", line, ok)
	}
	if !strings.Contains(out.String(), " \b") {
		t.Error("backspace did not erase the character on screen")
	}
}

func TestReadLineEndOfInputQuits(t *testing.T) {
	c, _ := newConsole(t, "")
	if line, ok := c.readLine(); ok || line != "" {
		t.Errorf("readLine at end of input = %q, %v", line, ok)
	}
}

func TestReadLineEmptyReturnRecallsLast(t *testing.T) {
	c, out := newConsole(t, "rot test 18\n\n")
	line, ok := c.readLine()
	if !ok || line != "rot test 18" {
		t.Fatalf("readLine = %q, %v", line, ok)
	}
	c.Interp.Execute(line)
	line, ok = c.readLine()
	if !ok || line != "rot test 18" {
		t.Errorf("empty return recalled %q, want the previous command", line)
	}
	if got := strings.Count(out.String(), "rot test 18"); got != 2 {
		t.Errorf("command appears %d times in the echo, want typed once and recalled once", got)
	}
}

func TestReadLineBackspaceRecallsOlder(t *testing.T) {
	c, _ := newConsole(t, "rot test 18\nrot test 9\n\b\b")
	for i := 0; i < 2; i++ {
		line, ok := c.readLine()
		if !ok {
			t.Fatalf("readLine %d ended", i)
		}
		c.Interp.Execute(line)
	}
	line, ok := c.readLine()
	if !ok || line != "rot test 18" {
		t.Errorf("backspace recalled %q, want the older command", line)
	}
	line, ok = c.readLine()
	if !ok || line != "rot test 9" {
		t.Errorf("second backspace recalled %q, want to alternate", line)
	}
}
