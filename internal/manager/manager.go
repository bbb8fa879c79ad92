// Package manager detects the host's package manager and maps the
// count, list and install operations onto its native commands.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a supported package manager family.
type Kind int

const (
	KindApt Kind = iota
	KindPacman
	KindDnf
	KindZypper
)

func (k Kind) String() string {
	switch k {
	case KindApt:
		return "apt"
	case KindPacman:
		return "pacman"
	case KindDnf:
		return "dnf"
	case KindZypper:
		return "zypper"
	default:
		return "unknown"
	}
}

// PackageManager is the capability surface each supported manager
// implements. List output is in the manager's native snapshot format,
// one entry per line; Install consumes a file in that same format.
type PackageManager interface {
	Name() string
	Kind() Kind
	// Binary is the full path of the probed executable.
	Binary() string
	CountInstalled(ctx context.Context) (int, error)
	ListInstalled(ctx context.Context) ([]string, error)
	Install(ctx context.Context, listPath string) error
	// InstallCommand describes what Install would run, for dry-run output.
	InstallCommand(listPath string) string
}

// ErrNotDetected is returned by Detect when no supported package manager
// executable is found on PATH.
var ErrNotDetected = errors.New("no supported package manager found")

// probeOrder is fixed: first match wins.
var probeOrder = []string{"apt-get", "pacman", "dnf", "yum", "zypper"}

// Detect probes PATH for supported package managers in priority order
// apt-get > pacman > dnf > yum > zypper. sudo is the escalation command
// prefixed to mutating commands; pass "" to run them directly.
func Detect(run Runner, sudo string) (PackageManager, error) {
	for _, bin := range probeOrder {
		path, err := run.LookPath(bin)
		if err != nil {
			continue
		}
		switch bin {
		case "apt-get":
			return &Apt{run: run, sudo: sudo, path: path}, nil
		case "pacman":
			return &Pacman{run: run, sudo: sudo, path: path}, nil
		case "dnf", "yum":
			return &Dnf{run: run, sudo: sudo, bin: bin, path: path}, nil
		case "zypper":
			return &Zypper{run: run, sudo: sudo, path: path}, nil
		}
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrNotDetected, strings.Join(probeOrder, ", "))
}

// withSudo prefixes a command with the escalation command when one is
// configured.
func withSudo(sudo, name string, args []string) (string, []string) {
	if sudo == "" {
		return name, args
	}
	return sudo, append([]string{name}, args...)
}

// nonEmptyLines splits command output into lines, dropping blank ones.
func nonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
