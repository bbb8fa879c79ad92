// Package diffreport prints the drift between a package list snapshot
// and the live installed set.
package diffreport

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Printer writes a line diff with colored +/- markers.
type Printer struct {
	out       io.Writer
	useColors bool
}

// NewPrinter creates a diff printer.
func NewPrinter(out io.Writer, useColors bool) *Printer {
	if !useColors {
		color.NoColor = true
	}
	return &Printer{out: out, useColors: useColors}
}

// Print diffs the snapshot entries against the installed entries and
// writes one line per drifted package: "-" for entries in the snapshot
// but no longer installed, "+" for installed packages missing from the
// snapshot. Returns the number of drifted lines.
func (p *Printer) Print(snapshot, installed []string) int {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(snapshot), joinLines(installed))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	changes := 0
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				_, _ = red.Fprintf(p.out, "- %s\n", line)
				changes++
			case diffmatchpatch.DiffInsert:
				_, _ = green.Fprintf(p.out, "+ %s\n", line)
				changes++
			}
		}
	}

	if changes == 0 {
		_, _ = fmt.Fprintln(p.out, "Package list matches the installed set.")
	}
	return changes
}

func joinLines(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(entries, "\n") + "\n"
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
