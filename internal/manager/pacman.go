package manager

import (
	"context"
	"fmt"
	"os"
)

// Pacman implements PackageManager for pacman (Arch Linux). Snapshots
// hold bare package names from the explicitly installed set.
type Pacman struct {
	run  Runner
	sudo string
	path string
}

func (m *Pacman) Name() string   { return "pacman" }
func (m *Pacman) Kind() Kind     { return KindPacman }
func (m *Pacman) Binary() string { return m.path }

func (m *Pacman) CountInstalled(ctx context.Context) (int, error) {
	out, err := m.run.Output(ctx, "pacman", "-Q")
	if err != nil {
		return 0, err
	}
	return len(nonEmptyLines(out)), nil
}

func (m *Pacman) ListInstalled(ctx context.Context) ([]string, error) {
	out, err := m.run.Output(ctx, "pacman", "-Qqe")
	if err != nil {
		return nil, err
	}
	return nonEmptyLines(out), nil
}

func (m *Pacman) Install(ctx context.Context, listPath string) error {
	f, err := os.Open(listPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// "-" makes pacman read package names from stdin.
	name, args := withSudo(m.sudo, "pacman", []string{"-S", "--needed", "--noconfirm", "-"})
	return m.run.Run(ctx, f, name, args...)
}

func (m *Pacman) InstallCommand(listPath string) string {
	prefix := ""
	if m.sudo != "" {
		prefix = m.sudo + " "
	}
	return fmt.Sprintf("%spacman -S --needed --noconfirm - < %s", prefix, listPath)
}
