// Package script holds the predefined movement scripts and the parameter
// substitution they use. A script is a list of compound command lines;
// each line is everything that happens during one time unit, and the
// interpreter advances all concurrently running scripts in lock step,
// one line per time unit.
package script

// Substitution limits.
const (
	MaxParms    = 9   // parameters #1..#9 in a script line
	MaxParmSize = 20  // each parameter replacement is at most MaxParmSize-1 characters
	MaxCmdLen   = 200 // maximum size of a command string after parameter expansion
)

// Script is a named list of compound commands.
type Script struct {
	Name     string
	Commands []string
}

// Substitute copies src, replacing #1..#9 with the actual parameters,
// and returns the expanded command plus the number of substitutions.
// The expansion is truncated at MaxCmdLen.
func Substitute(src string, parms []string) (string, int) {
	dst := make([]byte, 0, len(src))
	count := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '#' && i+1 < len(src) {
			parmnum := src[i+1]
			if parmnum >= '1' && parmnum <= '9' {
				i++
				if n := int(parmnum - '1'); n < len(parms) {
					parm := parms[n]
					for j := 0; j < len(parm) && len(dst) < MaxCmdLen; j++ {
						dst = append(dst, parm[j])
					}
				}
				count++
				continue
			}
		}
		if len(dst) < MaxCmdLen {
			dst = append(dst, src[i])
		}
	}
	return string(dst), count
}

// Find returns the named script, or nil.
func Find(scripts []Script, name string) *Script {
	for i := range scripts {
		if scripts[i].Name == name {
			return &scripts[i]
		}
	}
	return nil
}
