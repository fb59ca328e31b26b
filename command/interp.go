package command

import (
	"strings"
	"time"

	"babbage/core"
	"babbage/script"
)

// Interp is the console command interpreter. It owns the command history,
// the named scripts, and a hook for persisting calibration changes.
type Interp struct {
	Eng     *core.Engine
	Scripts []script.Script

	// SaveCal, if set, persists the engine's calibration table after a
	// "do_zero ... calibrate" or "calibrate" command changes it.
	SaveCal func() error

	// RequestRestart is set by the "restart" command; the console loop
	// reinitializes the hardware when it sees it.
	RequestRestart bool

	cmdline  string // the line being executed, for the history
	prevCmd  string
	prevPrev string
	savedCmd bool
}

// New makes an interpreter for the engine with the given script library.
func New(eng *core.Engine, scripts []script.Script) *Interp {
	return &Interp{Eng: eng, Scripts: scripts}
}

// scanCommand tries to scan a single primitive command and queue the
// movement it requires. Commands that represent repeatable machine
// actions save the command line in the history; status and mode commands
// do not, so that an empty return repeats the last real action.
func (in *Interp) scanCommand(s *scanner) bool {
	e := in.Eng
	if e.GotError {
		return false
	}
	s.skipBlanks()
	if in.scanCmd(s, "rot ") { // primitive rotating motion
		if m := in.scanAxle(s, core.Rotate, true); m != nil {
			if degrees, ok := s.scanInt(-360*6, +360*6); ok { // might have a gearbox
				if degrees == 0 {
					e.Printf("already there\n")
				} else {
					e.Queue(m, core.Rotate, degrees)
				}
			} else {
				e.Report("bad degrees", s.rest)
			}
		}
	} else if in.scanCmd(s, "lift") { // primitive lifting motion
		if m := in.scanAxle(s, core.Lift, true); m != nil {
			if mils, ok := s.scanInt(-1500, +1500); ok {
				if mils == 0 {
					e.Printf("already there\n")
				} else {
					e.Queue(m, core.Lift, mils)
				}
			} else {
				e.Report("bad mils", s.rest)
			}
		}
	} else if in.scanCmd(s, "lock1") {
		in.doFunction(fctLock1, s)
	} else if in.scanCmd(s, "lock") {
		in.doFunction(fctLock, s)
	} else if in.scanCmd(s, "unlock") {
		in.doFunction(fctUnlock, s)
	} else if in.scanCmd(s, "mesh") {
		in.doFunction(fctMesh, s)
	} else if in.scanCmd(s, "unmesh") {
		in.doFunction(fctUnmesh, s)
	} else if in.scanCmd(s, "finger") {
		in.doFunction(fctFinger, s)
	} else if in.scanCmd(s, "nofinger") {
		in.doFunction(fctNofinger, s)
	} else if in.scanCmd(s, "shift") {
		in.doFunction(fctShift, s)
	} else if in.scanCmd(s, "do_zero") { // do_zero {An{top|bot}|Fn|Sn|RR} [calibrate]
		in.doZero(s)
	} else if in.scanCmd(s, "giveoff") {
		in.doGiveoff(s)
	} else if in.scanCmd(s, "setcarry") {
		in.doFunction(fctSetcarry, s)
	} else if in.scanCmd(s, "carrywarn") {
		in.doFunction(fctCarrywarn, s)
	} else if in.scanCmd(s, "carry") {
		in.doFunction(fctCarry, s)
	} else if in.scanCmd(s, "keepers") {
		in.doFunction(fctKeepers, s)
	} else if in.scanCmd(s, "test") {
		in.doTest()
	} else if in.scanCmd(s, "repeat ") {
		repeatcount := 9999
		if n, ok := s.scanInt(1, 9999); ok {
			repeatcount = n
		}
		for repeatcount--; repeatcount > 0 && !e.GotError; repeatcount-- {
			in.executeLevel(s.rest, 1) // re-execute the rest of the line
		}
	} else if s.key("timeunit ") { // the remaining commands don't save the history
		if msec, ok := s.scanInt(10, 60*1000); ok {
			e.TimeUnit = time.Duration(msec) * time.Millisecond
		} else {
			e.Report("bad time in msec", s.rest)
		}
	} else if s.key("timeunit") {
		e.Printf("%d msec\n", e.TimeUnit/time.Millisecond)
	} else if s.key("tu") { // shortcut to set Babbage's own time unit
		e.TimeUnit = 157 * time.Millisecond
	} else if s.key("debug ") {
		if level, ok := s.scanInt(0, 99); ok {
			e.Debug = level
		} else {
			e.Report("bad debug level", s.rest)
		}
	} else if s.key("debug") {
		e.Printf("debug %d\n", e.Debug)
	} else if s.key("on") {
		in.doOnOff(core.On, s)
	} else if s.key("off") {
		in.doOnOff(core.Off, s)
	} else if s.key("home") {
		in.doHomeScript()
	} else if s.key("pause") {
		in.doPause(s)
	} else if s.key("reset") {
		in.doReset()
	} else if s.key("switches") {
		in.showSwitches()
	} else if s.key("motors") {
		in.showMotors()
	} else if s.key("state") {
		in.showState()
	} else if s.key("store ") {
		in.showStore(s)
	} else if s.key("calibrate") {
		in.doCalibrate(s)
	} else if s.key("bell") {
		e.Printf("%c", 7)
	} else if s.key("restart") {
		in.RequestRestart = true
	} else if s.key("help") || s.key("?") {
		in.showHelp()
	} else {
		return false
	}
	s.key(";")
	return true
}

func (in *Interp) doHomeScript() {
	in.executeLevel("run home", 1)
}

// doPause completes all queued movements and then pauses, either for a
// given number of milliseconds or until a key is typed.
func (in *Interp) doPause(s *scanner) {
	e := in.Eng
	for e.MotorsQueued > 0 {
		if r := e.DoMovements(e.TimeUnit); r != core.DispatchDone {
			in.afterDispatch(r)
			break
		}
	}
	msec, ok := s.scanInt(1, 99999)
	if !ok {
		e.Printf("waiting...\n")
		if e.WaitForChar() == core.KeyEsc {
			e.GotError = true
		}
		return
	}
	start := e.Clock.Now()
	e.Keys.Flush()
	e.Debugf(1, "pausing %d msec\n", msec)
	for e.Clock.Since(start) < time.Duration(msec)*time.Millisecond {
		if _, ok := e.Keys.Poll(); ok {
			break
		}
		e.Clock.Sleep(time.Millisecond)
	}
}

// doReset resets our internal state, but not the hardware.
func (in *Interp) doReset() {
	for _, m := range in.Eng.Motors.All() {
		m.MoveQueued = false
		m.CurrentPos = 0
	}
	in.Eng.MotorsQueued = 0
}

// showState shows the internal state of motors not at neutral or on.
func (in *Interp) showState() {
	for _, m := range in.Eng.Motors.All() {
		if m.Assigned && (m.CurrentPos != 0 || m.State == core.On) {
			in.Eng.Printf("%s (%s) is at %d and is %s\n",
				m.Name, m.Descr, m.CurrentPos, m.State)
		}
	}
}

// showMotors lists every assigned motor with its board position and state.
func (in *Interp) showMotors() {
	for _, m := range in.Eng.Motors.All() {
		if m.Assigned {
			in.Eng.Printf("  motor %d (%s, %s) is position %d on board %d, %s, step offset %d\n",
				int(m.Num), m.Name, m.Descr, m.BoardPosition, m.BoardNumber,
				m.State, m.StepOffset)
		}
	}
}

// showStore reports the state of one store column's lifter and rotator,
// as in "store 3".
func (in *Interp) showStore(s *scanner) {
	lift, rotate, ok := in.scanStore(s)
	if !ok {
		return
	}
	for _, num := range [2]core.MotorID{lift, rotate} {
		m := in.Eng.Motors.ByNum(num)
		if m == nil || !m.Assigned {
			in.Eng.Printf("  motor %d is not assigned\n", int(num))
			continue
		}
		in.Eng.Printf("  %s (%s) is at %d and is %s\n", m.Name, m.Descr, m.CurrentPos, m.State)
	}
}

// readSwitches creates a bitmap of all switch values, 15..0.
func (in *Interp) readSwitches() uint {
	var switches uint
	for switchnum := 15; switchnum >= 0; switchnum-- {
		switches <<= 1
		if in.Eng.Bus.ReadSwitch(switchnum) {
			switches |= 1
		}
	}
	return switches
}

// showSwitches monitors the digit wheel index switches until a key is
// typed, reporting debounced changes.
func (in *Interp) showSwitches() {
	e := in.Eng
	current := in.readSwitches()
	e.Printf("monitoring switches...\n")
	for {
		if _, ok := e.Keys.Poll(); ok {
			break
		}
		if in.readSwitches() == current {
			e.Clock.Sleep(time.Millisecond)
			continue
		}
		e.Clock.Sleep(core.Debounce)
		newval := in.readSwitches()
		if newval == current { // it didn't persist
			continue
		}
		e.Printf("switches changed:")
		mask := uint(1)
		for switchnum := 0; switchnum < 16; switchnum++ {
			if newval&mask != current&mask {
				val := 0
				if newval&mask != 0 {
					val = 1
				}
				e.Printf(" sw%d=%d", switchnum, val)
			}
			mask <<= 1
		}
		e.Printf("\n")
		current = newval
	}
	e.Printf("done\n")
}

// doTest echoes typed characters in hex until ESC, for checking the
// console connection.
func (in *Interp) doTest() {
	e := in.Eng
	e.Printf("enter chars, ESC to exit\n")
	for {
		chr := e.Keys.WaitKey()
		if chr == core.KeyEsc {
			break
		}
		e.Printf("%02X\n", chr)
	}
}

// doZero finds the zero position of a digit wheel, as in
// "do_zero {An{top|bot}|Fn|Sn|RR} [calibrate]". With "calibrate" the
// operator jogs the wheel to zero interactively and the offset from the
// index switch is stored; without it the stored offset is applied.
func (in *Interp) doZero(s *scanner) {
	e := in.Eng
	liftMove := in.doFunction(fctZero, s) // parse the wheel (F,A,S,RR) and get the finger lifter
	if liftMove == nil {
		return
	}
	calibrate := s.key("calibrate")
	if e.ScriptStep && !in.doStepWait() {
		return
	}
	rot := e.MoveToSwitch(liftMove.motorNum) // first move to the switch point
	if rot == nil {
		return
	}
	// The rotator and its compensating lifter are held on until we are
	// done adjusting, so the wheel cannot drift off the switch point.
	defer e.CancelSeekHold(rot)
	if calibrate { // create a new calibration value
		e.Printf("hit space, 1-9, or a-z until wheel is at zero and aligned, then hit Enter; ESC aborts\n")
		degrees := 0
		var chr byte
		for {
			delta := 0
			chr = e.WaitForChar()
			if chr == core.KeyEsc || chr == '\n' || chr == '\r' {
				break
			}
			switch {
			case chr >= '1' && chr <= '9':
				delta = int(chr - '0')
			case chr >= 'a' && chr <= 'z':
				delta = int(chr-'a') + 10
			case chr == ' ':
				delta = 1
			}
			if delta != 0 { // move the wheel the number of degrees chosen
				e.Queue(rot, core.Rotate, delta)
				if r := e.DoMovements(e.TimeUnitDegree()); r != core.DispatchDone {
					in.afterDispatch(r)
					return
				}
				e.Clock.Sleep(core.Debounce) // let the switch settle
				degrees += delta
			}
		}
		if chr != core.KeyEsc { // we're done; update the calibration
			// The finger must always approach zero clockwise after the switch
			// triggers, so a shorter counter-clockwise path is never taken.
			e.Printf("axle %s zero changed from %d to %d degrees past the switch\n",
				rot.Name, e.FingerZero[rot.Num], degrees)
			e.FingerZero[rot.Num] = degrees
			in.saveCalibration()
		}
	} else { // zero using the existing calibration
		degrees := e.FingerZero[rot.Num]
		if degrees == -1 {
			e.Report("axle not calibrated", rot.Name)
			return
		}
		e.Debugf(1, "rotating %s %d degrees to zero\n", rot.Name, degrees)
		e.Queue(rot, core.Rotate, degrees) // the final adjustment to zero
		in.afterDispatch(e.DoMovements(e.TimeUnitDegree() * time.Duration(degrees)))
	}
}

// doCalibrate stores a calibration value directly, as in "calibrate s1r 47".
func (in *Interp) doCalibrate(s *scanner) {
	e := in.Eng
	m := in.scanAxle(s, core.Rotate, true)
	if m == nil {
		return
	}
	degrees, ok := s.scanInt(-360, +360)
	if !ok {
		e.Report("bad degrees", s.rest)
		return
	}
	e.Printf("axle %s zero changed from %d to %d degrees past the switch\n",
		m.Name, e.FingerZero[m.Num], degrees)
	e.FingerZero[m.Num] = degrees
	in.saveCalibration()
}

func (in *Interp) saveCalibration() {
	if in.SaveCal == nil {
		return
	}
	if err := in.SaveCal(); err != nil {
		in.Eng.Printf("cannot save calibration: %s\n", err)
	}
}

var helpText = []string{
	"rot <axle> <degrees>        rotate an axle",
	"lift <axle> <mils>          lift an axle",
	"  either may be followed by \"delay\" or \"time <start> <end>\"",
	"lock|lock1|unlock <axle>    operate an axle lock",
	"mesh|unmesh <gears>         engage or disengage gearing",
	"finger|nofinger <axle>      engage or disengage wheel fingers",
	"shift MPn up|down           shift a movable pinion",
	"giveoff <axle> [reverse]    give off one digit",
	"setcarry|carrywarn|carry|keepers <args>   carriage mechanisms",
	"do_zero <wheel> [calibrate] find a digit wheel's zero",
	"calibrate <axle> <degrees>  set a zero calibration directly",
	"[run|step] %s",
	"repeat [n] <commands>       repeat the rest of the line",
	"timeunit [msec], tu         set or show the time unit",
	"debug [level]               set or show the debug level",
	"on|off [<axle>|all]         power motors",
	"home, pause [msec], reset, switches, motors, state, store n",
	"bell, restart, help or ?",
}

func (in *Interp) showHelp() {
	e := in.Eng
	var names []byte
	for i := range in.Scripts {
		if i > 0 {
			names = append(names, '|')
		}
		names = append(names, in.Scripts[i].Name...)
	}
	for _, line := range helpText {
		if strings.Contains(line, "%s") {
			e.Printf(line, string(names))
		} else {
			e.Printf("%s", line)
		}
		e.Printf("\n")
	}
	e.Printf("<axle> is one of:")
	for _, m := range e.Motors.All() {
		if m.Assigned {
			e.Printf(" %s", m.Name)
		}
	}
	e.Printf("\n")
}
