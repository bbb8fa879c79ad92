package manager

import (
	"context"
	"fmt"
	"os"
)

// Apt implements PackageManager for apt (Debian/Ubuntu). Snapshots use
// the raw dpkg selections format so they can be replayed with
// dpkg --set-selections.
type Apt struct {
	run  Runner
	sudo string
	path string
}

func (m *Apt) Name() string   { return "apt" }
func (m *Apt) Kind() Kind     { return KindApt }
func (m *Apt) Binary() string { return m.path }

func (m *Apt) CountInstalled(ctx context.Context) (int, error) {
	lines, err := m.ListInstalled(ctx)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (m *Apt) ListInstalled(ctx context.Context) ([]string, error) {
	out, err := m.run.Output(ctx, "dpkg", "--get-selections")
	if err != nil {
		return nil, err
	}
	return nonEmptyLines(out), nil
}

func (m *Apt) Install(ctx context.Context, listPath string) error {
	f, err := os.Open(listPath)
	if err != nil {
		return err
	}
	defer f.Close()

	name, args := withSudo(m.sudo, "dpkg", []string{"--set-selections"})
	if err := m.run.Run(ctx, f, name, args...); err != nil {
		return err
	}

	name, args = withSudo(m.sudo, "apt-get", []string{"-y", "dselect-upgrade"})
	return m.run.Run(ctx, nil, name, args...)
}

func (m *Apt) InstallCommand(listPath string) string {
	prefix := ""
	if m.sudo != "" {
		prefix = m.sudo + " "
	}
	return fmt.Sprintf("%sdpkg --set-selections < %s && %sapt-get -y dselect-upgrade", prefix, listPath, prefix)
}
