package command

// Two-deep command history. A command line is saved only when it contains
// a movement command, so status queries and mode changes don't displace
// the last real action. The console recalls the previous command with an
// empty return and the one before it with a backspace on an empty line.

// SetCommand records the line about to be executed so that a movement
// command within it can save it to the history.
func (in *Interp) SetCommand(line string) {
	in.cmdline = line
	in.savedCmd = false
}

// LastCommand returns the most recent saved command for replay.
func (in *Interp) LastCommand() string {
	in.savedCmd = true
	return in.prevCmd
}

// OlderCommand rotates the history and returns the command before the
// last one, so repeated calls alternate between the two saved commands.
func (in *Interp) OlderCommand() string {
	cmd := in.prevPrev
	in.prevPrev = in.prevCmd
	in.prevCmd = cmd
	in.savedCmd = true
	return cmd
}

// scanCmd is like scanner.key, but a match also saves the current command
// line in the history if it hasn't been saved already.
func (in *Interp) scanCmd(s *scanner, keyword string) bool {
	if !s.key(keyword) {
		return false
	}
	if !in.savedCmd {
		in.prevPrev = in.prevCmd
		in.prevCmd = in.cmdline
		in.savedCmd = true
	}
	return true
}
