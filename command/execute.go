package command

import (
	"babbage/core"
	"babbage/script"
)

// MaxScripts is the most scripts that can run in parallel on one line.
const MaxScripts = 5

// parallelScript is one script being executed in parallel with others.
type parallelScript struct {
	script *script.Script
	next   int      // index of its next command line
	parms  []string // the actual parameters to substitute for #n
}

// Execute runs a top-level command line: a sequence of primitive commands
// and script invocations that all start in the same time unit.
func (in *Interp) Execute(cmd string) {
	in.executeLevel(cmd, 1)
}

func (in *Interp) findScript(s *scanner) *script.Script {
	for i := range in.Scripts {
		if s.key(in.Scripts[i].Name) {
			return &in.Scripts[i]
		}
	}
	in.Eng.Report("unknown command or script", s.rest)
	return nil
}

// executeLevel executes all the commands in a string simultaneously,
// including running in parallel any embedded scripts. Scripts advance in
// lock step, one command line per time unit, and may themselves invoke
// scripts, which execute one level deeper.
func (in *Interp) executeLevel(cmd string, level int) {
	e := in.Eng
	var scripts [MaxScripts]parallelScript
	num := 0
	s := &scanner{rest: cmd}
	s.skipBlanks()
	if e.Debug >= 2 && level > 1 {
		e.Printf("executing at level %d: \"%s\"\n", level, s.rest)
	}
	// Scan a sequence of primitive commands or script-starting commands,
	// all of which execute in parallel.
	for !e.GotError && !s.empty() {
		if in.scanCommand(s) { // first try for a primitive command
			continue
		}
		if in.scanCmd(s, "step ") {
			if level == 1 {
				e.ScriptStep = true
			}
		} else {
			in.scanCmd(s, "run ") // "run" is optional: any script name is a command
			if level == 1 {
				e.ScriptStep = false
			}
		}
		sp := in.findScript(s)
		if sp == nil {
			continue // the error ends the scan
		}
		if num >= MaxScripts {
			e.Report("too many parallel scripts", sp.Name)
			continue
		}
		ps := &scripts[num]
		ps.script = sp
		ps.next = 0
		e.Debugf(3, "starting script \"%s\" with command \"%s\"\n", sp.Name, sp.Commands[0])
		ps.parms = make([]string, script.MaxParms)
		for p := range ps.parms { // parse all the parameters; unused ones stay empty
			ps.parms[p], _ = s.word(script.MaxParmSize)
		}
		num++
		s.key(";")
	}
	// All the movements for primitive commands have been queued, and the
	// scripts have been saved. Now repeatedly execute one line of each of
	// the scripts running in parallel at this level.
	running := num
	for running > 0 && !e.GotError {
		for i := 0; i < num; i++ {
			ps := &scripts[i]
			if ps.next >= len(ps.script.Commands) {
				continue // this script has ended
			}
			line, nsubs := script.Substitute(ps.script.Commands[ps.next], ps.parms)
			if nsubs > 0 {
				e.Debugf(3, "substituted %d parameters in script \"%s\" command \"%s\"\n",
					nsubs, ps.script.Name, ps.script.Commands[ps.next])
			}
			in.executeLevel(line, level+1) // the line may invoke other scripts
			if e.GotError {
				e.Printf("  in script \"%s\"\n", ps.script.Name)
				break
			}
			ps.next++
			if ps.next >= len(ps.script.Commands) {
				running--
			}
		}
		if running > 0 && !in.doTimeUnit() {
			return
		}
	}
	if level == 1 {
		in.doTimeUnit() // do leftover movements
	}
}

// doTimeUnit runs all the movements queued for one time unit, pausing
// first if single-stepping. Returns false to abort script execution.
func (in *Interp) doTimeUnit() bool {
	e := in.Eng
	if !e.GotError && e.MotorsQueued > 0 {
		e.CycleNum++
		if e.ScriptStep && !in.doStepWait() {
			return false
		}
		e.Debugf(1, "*** at time unit %d, ", e.CycleNum)
		in.afterDispatch(e.DoMovements(e.TimeUnit))
	}
	return true
}

// afterDispatch handles a dispatch result that needs interpreter help: a
// stop-and-home abort runs the home script before the error takes effect.
func (in *Interp) afterDispatch(r core.DispatchResult) {
	if r != core.DispatchHome {
		return
	}
	e := in.Eng
	e.GotError = false
	in.executeLevel("run home", 1)
	e.GotError = true
}

// doStepWait pauses before a time unit in step mode. ESC aborts, '+'
// converts the step into a free run, anything else does one time unit.
func (in *Interp) doStepWait() bool {
	e := in.Eng
	e.Printf(" ...waiting")
	chr := e.WaitForChar()
	if chr == core.KeyEsc {
		e.GotError = true
		return false
	}
	e.Printf("\b\b\b\b\b\b\b\b\b\b") // erase "waiting"
	if chr == '+' {
		e.ScriptStep = false
	}
	return true
}
