// Package console runs the operator's command line: a simple line editor
// with a two-deep history over a serial port or a raw-mode terminal, and
// the loop that feeds complete lines to the command interpreter.
package console

import (
	"fmt"
	"io"

	"babbage/command"
	"babbage/core"
	"babbage/script"
)

const keyEnd = core.KeyEnd // end of input; quits the console

// Console owns the prompt loop for one interpreter.
type Console struct {
	Eng    *core.Engine
	Interp *command.Interp
	out    io.Writer
}

// New makes a console that writes its echo and prompts to out, normally
// the same stream the engine reports on.
func New(eng *core.Engine, in *command.Interp, out io.Writer) *Console {
	return &Console{Eng: eng, Interp: in, out: out}
}

// readLine reads one command line, echoing keystrokes. An empty return
// recalls the previous command; a backspace on an empty line recalls the
// one before that. Returns false when the input stream ends.
func (c *Console) readLine() (string, bool) {
	e := c.Eng
	e.Keys.Flush()
	fmt.Fprint(c.out, ">")
	c.Interp.SetCommand("") // a fresh line; a movement command may save it
	var buf []byte
	var ch byte
	for len(buf) < script.MaxCmdLen-1 {
		ch = e.Keys.WaitKey()
		if ch == keyEnd && len(buf) == 0 {
			return "", false
		}
		fmt.Fprintf(c.out, "%c", ch) // assume the terminal isn't echoing
		if ch == '\n' || ch == '\r' {
			break
		}
		if ch == '\b' {
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(c.out, " \b") // erase it from the screen
			} else { // backspace on an empty line: previous previous command
				line := c.Interp.OlderCommand()
				fmt.Fprintf(c.out, "%s\n", line)
				return line, true
			}
			continue
		}
		buf = append(buf, ch)
	}
	if len(buf) == 0 { // empty return: repeat the last command
		line := c.Interp.LastCommand()
		fmt.Fprintf(c.out, "%s\n", line)
		return line, true
	}
	if ch == '\r' {
		fmt.Fprintln(c.out)
	}
	line := string(buf)
	c.Interp.SetCommand(line)
	return line, true
}

// Run reads and executes command lines until the input ends or a restart
// is requested. Returns true if the caller should reinitialize and run
// the console again.
func (c *Console) Run() (restart bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return false
		}
		c.Eng.GotError = false
		c.Interp.Execute(line)
		if c.Interp.RequestRestart {
			c.Interp.RequestRestart = false
			return true
		}
	}
}
