package privilege

import (
	"errors"
	"os"
	"testing"
)

func withLookPath(t *testing.T, available map[string]bool) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestEscalationCommand(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		available map[string]bool
		want      string
	}{
		{"sudo available", "", map[string]bool{"sudo": true}, "sudo"},
		{"doas fallback", "", map[string]bool{"doas": true}, "doas"},
		{"preferred wins", "run0", map[string]bool{"run0": true, "sudo": true}, "run0"},
		{"preferred missing falls back", "run0", map[string]bool{"sudo": true}, "sudo"},
		{"nothing available", "", map[string]bool{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLookPath(t, tt.available)
			if got := EscalationCommand(tt.preferred); got != tt.want {
				t.Errorf("EscalationCommand(%q) = %q, want %q", tt.preferred, got, tt.want)
			}
		})
	}
}

func TestCheckWithoutEscalation(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, cannot test the unprivileged path")
	}

	withLookPath(t, map[string]bool{})
	if err := Check(""); err == nil {
		t.Error("Check should fail when not root and no escalation command exists")
	}

	withLookPath(t, map[string]bool{"sudo": true})
	if err := Check(""); err != nil {
		t.Errorf("Check should pass with sudo available: %v", err)
	}
}
