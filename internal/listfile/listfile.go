// Package listfile reads and writes the package list snapshot file.
//
// The file is plain text, one package entry per line, in whatever
// format the detected package manager produces. It is written without
// locking: concurrent generate and install runs against the same path
// race benignly (last writer wins, a concurrent reader may see a
// partial file).
package listfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultName is the snapshot file name used when no path is configured.
const DefaultName = "pkglist"

// ErrNotFound is returned by Read when the list file does not exist.
var ErrNotFound = errors.New("package list file not found")

// DefaultPath resolves the default list file location: next to the
// program's own binary, not the caller's working directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultName
	}
	return filepath.Join(filepath.Dir(exe), DefaultName)
}

// Read returns the non-empty lines of the list file at path.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// Write replaces the list file at path with the given entries, one per
// line. The file is world-readable, and when the process runs under
// sudo ownership is handed back to the invoking user so a later
// unprivileged run can read and regenerate it.
func Write(path string, entries []string) error {
	content := strings.Join(entries, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return chownToInvoker(path)
}

// chownToInvoker re-owns the file to the sudo invoker when SUDO_UID and
// SUDO_GID are set and we are actually root. Best effort otherwise.
func chownToInvoker(path string) error {
	if os.Geteuid() != 0 {
		return nil
	}
	uid, err1 := strconv.Atoi(os.Getenv("SUDO_UID"))
	gid, err2 := strconv.Atoi(os.Getenv("SUDO_GID"))
	if err1 != nil || err2 != nil {
		return nil
	}
	if err := os.Chown(path, uid, gid); err != nil {
		return fmt.Errorf("changing ownership of %s: %w", path, err)
	}
	return nil
}
