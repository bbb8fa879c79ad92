// Package privilege predicts whether the current process can perform
// privileged package operations.
package privilege

import (
	"fmt"
	"os"
	"os/exec"
)

// LookPath is swapped out in tests.
var lookPath = exec.LookPath

// IsRoot reports whether the process runs with effective uid 0.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// EscalationCommand returns the first available privilege-escalation
// command. preferred (from configuration) is checked first, then sudo
// and doas. Empty string means none is available.
func EscalationCommand(preferred string) string {
	candidates := []string{"sudo", "doas"}
	if preferred != "" {
		candidates = append([]string{preferred}, candidates...)
	}
	for _, c := range candidates {
		if _, err := lookPath(c); err == nil {
			return c
		}
	}
	return ""
}

// Check verifies the invoking identity is root or can escalate. This is
// an advisory prediction made before installing: the actual privileged
// command may still fail later (the check-versus-use race is accepted).
func Check(preferred string) error {
	if IsRoot() {
		return nil
	}
	if EscalationCommand(preferred) != "" {
		return nil
	}
	return fmt.Errorf("insufficient privileges: not root and no escalation command (sudo/doas) available")
}
