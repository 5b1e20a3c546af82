package shell

import "regexp"

// denylist holds structural patterns for commands that destroy disks or
// filesystems. Matching is case insensitive against the raw command string.
// This is advisory screening, not a sandbox: anything not listed runs,
// including pipes, chaining, and arbitrary metacharacters.
var denylist = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\brm\s+-rf\s+/`),
	regexp.MustCompile(`(?i)\bformat\b`),
	regexp.MustCompile(`(?i)\bmkfs\b`),
	regexp.MustCompile(`(?i)\bdd\s+if=`),
	regexp.MustCompile(`(?i)>\s*/dev/sd`),
}

// SafetyGate classifies command strings against the denylist. The check is a
// pure function of the command text; verdicts are computed fresh per call.
type SafetyGate struct{}

func NewSafetyGate() *SafetyGate {
	return &SafetyGate{}
}

// IsSafe reports whether command matches none of the denylist patterns.
func (g *SafetyGate) IsSafe(command string) bool {
	for _, pattern := range denylist {
		if pattern.MatchString(command) {
			return false
		}
	}
	return true
}
