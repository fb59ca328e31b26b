// Package command implements the console command interpreter: primitive
// movement commands, functional movements of named axles, and the
// lock-step execution of parallel scripts.
package command

import "babbage/core"

// scanner consumes a command string from the front. Apart from skipping
// leading blanks, the scan methods leave the scanner untouched when they
// fail to match.
type scanner struct {
	rest string
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (s *scanner) skipBlanks() {
	i := 0
	for i < len(s.rest) {
		c := s.rest[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
		i++
	}
	s.rest = s.rest[i:]
}

func (s *scanner) empty() bool {
	return len(s.rest) == 0
}

// word scans a word up to a blank or ';', limited to max-1 characters.
func (s *scanner) word(max int) (string, bool) {
	s.skipBlanks()
	ndx := 0
	for ndx < len(s.rest) && ndx < max-1 {
		chr := s.rest[ndx]
		if chr == ';' || chr == ' ' {
			break
		}
		ndx++
	}
	w := s.rest[:ndx]
	s.rest = s.rest[ndx:]
	return w, ndx != 0
}

// key matches keyword(s) separated by blanks, case-insensitively. A blank
// in the keyword matches one or more blanks in the input. A trailing
// blank in the keyword demands a delimiter, which keeps "rot" from
// swallowing the front of an axle name.
func (s *scanner) key(keyword string) bool {
	s.skipBlanks()
	t := s.rest
	for i := 0; i < len(keyword); i++ {
		if len(t) == 0 || lower(t[0]) != lower(keyword[i]) {
			return false
		}
		match := t[0]
		t = t[1:]
		if match == ' ' { // blank matches multiple blanks
			for len(t) > 0 && t[0] == ' ' {
				t = t[1:]
			}
		}
	}
	s.rest = t
	s.skipBlanks()
	return true
}

// scanInt scans a signed integer and checks it against the given range.
func (s *scanner) scanInt(min, max int) (int, bool) {
	s.skipBlanks()
	t := s.rest
	negative := false
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		negative = t[0] == '-'
		t = t[1:]
	}
	num, digits := 0, 0
	for len(t) > 0 && t[0] >= '0' && t[0] <= '9' {
		num = num*10 + int(t[0]-'0')
		t = t[1:]
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		num = -num
	}
	if num < min || num > max {
		return 0, false
	}
	s.rest = t
	s.skipBlanks()
	return num, true
}

// checkEnd checks if we're at the end of the command, reporting an error
// if not.
func (in *Interp) checkEnd(s *scanner) bool {
	s.skipBlanks()
	if s.empty() || s.rest[0] == ';' {
		return true
	}
	in.Eng.Report("unknown", s.rest)
	return false
}

// scanAxle scans for an axle name; a rotator only matches if the wanted
// movement type does, while a lifter matches either since lifters can be
// asked to rotate. Returns nil if no axle name matches.
func (in *Interp) scanAxle(s *scanner, which core.Movement, showerr bool) *core.Motor {
	for _, m := range in.Eng.Motors.All() {
		save := s.rest
		if s.key(m.Name) && (which == core.AnyMovement || m.Kind == core.Lift || m.Kind == which) {
			return m
		}
		s.rest = save
	}
	if showerr {
		in.Eng.Report("bad motor", s.rest)
	}
	return nil
}

var storeLifters = [core.NumStore]core.MotorID{
	core.S1_L, core.S2_L, core.S3_L, core.S4_L, core.S5_L, core.S6_L,
}
var storeRotators = [core.NumStore]core.MotorID{
	core.S1_R, core.S2_R, core.S3_R, core.S4_R, core.S5_R, core.S6_R,
}

// scanStore scans a store name like S3, or just the column number 3, and
// returns the column's lifter and rotator motor numbers.
func (in *Interp) scanStore(s *scanner) (lift, rotate core.MotorID, ok bool) {
	s.skipBlanks()
	if !s.empty() && lower(s.rest[0]) == 's' {
		s.rest = s.rest[1:]
	}
	storenum, ok := s.scanInt(1, core.NumStore)
	if !ok {
		in.Eng.Report("missing store number", s.rest)
		return 0, 0, false
	}
	return storeLifters[storenum-1], storeRotators[storenum-1], true
}
