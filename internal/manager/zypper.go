package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkgsnap/pkgsnap/internal/listfile"
)

// Zypper implements PackageManager for zypper (openSUSE/SLES).
// Snapshots hold the name column of the installed-only search table.
type Zypper struct {
	run  Runner
	sudo string
	path string
}

func (m *Zypper) Name() string   { return "zypper" }
func (m *Zypper) Kind() Kind     { return KindZypper }
func (m *Zypper) Binary() string { return m.path }

func (m *Zypper) CountInstalled(ctx context.Context) (int, error) {
	pkgs, err := m.ListInstalled(ctx)
	if err != nil {
		return 0, err
	}
	return len(pkgs), nil
}

func (m *Zypper) ListInstalled(ctx context.Context) ([]string, error) {
	out, err := m.run.Output(ctx, "zypper", "--terse", "search", "--installed-only")
	if err != nil {
		return nil, err
	}

	// Table rows look like "i | name | summary | type"; anything
	// without an installed status marker is header or separator.
	var pkgs []string
	for _, line := range nonEmptyLines(out) {
		cols := strings.Split(line, "|")
		if len(cols) < 2 {
			continue
		}
		status := strings.TrimSpace(cols[0])
		if status != "i" && status != "i+" {
			continue
		}
		pkgs = append(pkgs, strings.TrimSpace(cols[1]))
	}
	return pkgs, nil
}

func (m *Zypper) Install(ctx context.Context, listPath string) error {
	pkgs, err := listfile.Read(listPath)
	if err != nil {
		return err
	}
	args := append([]string{"install", "-y"}, pkgs...)
	name, args := withSudo(m.sudo, "zypper", args)
	return m.run.Run(ctx, nil, name, args...)
}

func (m *Zypper) InstallCommand(listPath string) string {
	prefix := ""
	if m.sudo != "" {
		prefix = m.sudo + " "
	}
	return fmt.Sprintf("%szypper install -y $(cat %s)", prefix, listPath)
}
