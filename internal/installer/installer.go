// Package installer replays a package list snapshot through the
// detected package manager, gated by an interactive confirmation.
package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pkgsnap/pkgsnap/internal/exitcode"
	"github.com/pkgsnap/pkgsnap/internal/listfile"
	"github.com/pkgsnap/pkgsnap/internal/manager"
)

// Installer runs the install operation: list file gate, confirmation
// gate, then either a dry-run report or the real manager command.
type Installer struct {
	Manager  manager.PackageManager
	ListPath string

	// SkipConfirm auto-confirms the prompt (--install --all).
	SkipConfirm bool
	// DryRun reports the would-be command instead of running it.
	DryRun bool

	In  io.Reader
	Out io.Writer
}

// Run executes the gate sequence. The returned error carries the exit
// code: list file missing or installation declined are distinct fatal
// conditions.
func (inst *Installer) Run(ctx context.Context) error {
	entries, err := listfile.Read(inst.ListPath)
	if err != nil {
		if errors.Is(err, listfile.ErrNotFound) {
			return exitcode.New(exitcode.ListFileMissing, err)
		}
		return err
	}

	if !inst.SkipConfirm {
		ok, err := inst.confirm(len(entries))
		if err != nil {
			return err
		}
		if !ok {
			return exitcode.New(exitcode.Aborted,
				errors.New("installation aborted by user"))
		}
	}

	if inst.DryRun {
		fmt.Fprintf(inst.Out, "dry-run: would run: %s\n", inst.Manager.InstallCommand(inst.ListPath))
		inst.success(len(entries))
		return nil
	}

	if err := inst.Manager.Install(ctx, inst.ListPath); err != nil {
		return err
	}
	inst.success(len(entries))
	return nil
}

// confirm prompts on the output stream and reads one line. Only "y" or
// "Y" confirms; anything else, including empty input or EOF, declines.
func (inst *Installer) confirm(count int) (bool, error) {
	fmt.Fprintf(inst.Out, "Install %d packages from %s with %s? [y/N]: ",
		count, inst.ListPath, inst.Manager.Name())

	reader := bufio.NewReader(inst.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	line = trimEOL(line)
	return line == "y" || line == "Y", nil
}

func (inst *Installer) success(count int) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(inst.Out, "Installation complete: %d packages from %s.\n",
		count, inst.ListPath)
}

func trimEOL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
