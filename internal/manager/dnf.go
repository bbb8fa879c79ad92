package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkgsnap/pkgsnap/internal/listfile"
)

// Dnf implements PackageManager for dnf (Fedora/RHEL 8+) and yum
// (RHEL 7/CentOS); the two share a command surface, so one
// implementation is parameterized by binary name. Snapshots hold the
// package identifier column of "list installed".
type Dnf struct {
	run  Runner
	sudo string
	bin  string
	path string
}

func (m *Dnf) Name() string   { return m.bin }
func (m *Dnf) Kind() Kind     { return KindDnf }
func (m *Dnf) Binary() string { return m.path }

func (m *Dnf) CountInstalled(ctx context.Context) (int, error) {
	pkgs, err := m.ListInstalled(ctx)
	if err != nil {
		return 0, err
	}
	return len(pkgs), nil
}

func (m *Dnf) ListInstalled(ctx context.Context) ([]string, error) {
	out, err := m.run.Output(ctx, m.bin, "list", "installed")
	if err != nil {
		return nil, err
	}

	var pkgs []string
	for _, line := range nonEmptyLines(out) {
		// Skip the "Installed Packages" header and any repo chatter
		// before it; package lines are "name.arch version repo".
		fields := strings.Fields(line)
		if len(fields) != 3 || !strings.Contains(fields[0], ".") {
			continue
		}
		pkgs = append(pkgs, fields[0])
	}
	return pkgs, nil
}

func (m *Dnf) Install(ctx context.Context, listPath string) error {
	pkgs, err := listfile.Read(listPath)
	if err != nil {
		return err
	}
	args := append([]string{"install", "-y"}, pkgs...)
	name, args := withSudo(m.sudo, m.bin, args)
	return m.run.Run(ctx, nil, name, args...)
}

func (m *Dnf) InstallCommand(listPath string) string {
	prefix := ""
	if m.sudo != "" {
		prefix = m.sudo + " "
	}
	return fmt.Sprintf("%s%s install -y $(cat %s)", prefix, m.bin, listPath)
}
