package diffreport

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintNoDrift(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	entries := []string{"bash", "coreutils", "vim"}
	changes := p.Print(entries, entries)

	if changes != 0 {
		t.Errorf("changes = %d, want 0", changes)
	}
	if !strings.Contains(out.String(), "matches the installed set") {
		t.Errorf("missing no-drift message, got %q", out.String())
	}
}

func TestPrintDrift(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	snapshot := []string{"bash", "removed-pkg", "vim"}
	installed := []string{"bash", "new-pkg", "vim"}

	changes := p.Print(snapshot, installed)
	if changes != 2 {
		t.Errorf("changes = %d, want 2", changes)
	}

	got := out.String()
	if !strings.Contains(got, "- removed-pkg") {
		t.Errorf("missing deletion marker in %q", got)
	}
	if !strings.Contains(got, "+ new-pkg") {
		t.Errorf("missing insertion marker in %q", got)
	}
	if strings.Contains(got, "+ bash") || strings.Contains(got, "- bash") {
		t.Errorf("unchanged entry reported as drift in %q", got)
	}
}

func TestPrintEmptySnapshot(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	changes := p.Print(nil, []string{"bash", "vim"})
	if changes != 2 {
		t.Errorf("changes = %d, want 2", changes)
	}
}
