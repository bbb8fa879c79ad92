package installer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgsnap/pkgsnap/internal/exitcode"
	"github.com/pkgsnap/pkgsnap/internal/manager"
)

type fakeManager struct {
	installed []string
	installs  int
}

func (f *fakeManager) Name() string          { return "fake" }
func (f *fakeManager) Kind() manager.Kind    { return manager.KindApt }
func (f *fakeManager) Binary() string        { return "/usr/bin/fake" }
func (f *fakeManager) CountInstalled(ctx context.Context) (int, error) {
	return len(f.installed), nil
}
func (f *fakeManager) ListInstalled(ctx context.Context) ([]string, error) {
	return f.installed, nil
}
func (f *fakeManager) Install(ctx context.Context, listPath string) error {
	f.installs++
	return nil
}
func (f *fakeManager) InstallCommand(listPath string) string {
	return "fake install < " + listPath
}

func writeList(t *testing.T, entries ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkglist")
	if err := os.WriteFile(path, []byte(strings.Join(entries, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunMissingListFile(t *testing.T) {
	inst := &Installer{
		Manager:  &fakeManager{},
		ListPath: filepath.Join(t.TempDir(), "absent"),
		Out:      &bytes.Buffer{},
	}

	err := inst.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, exitcode.ListFileMissing, exitcode.FromError(err))
}

func TestRunDeclined(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"explicit no", "n\n"},
		{"empty line", "\n"},
		{"yes word is not y", "yes\n"},
		{"immediate EOF", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := &fakeManager{}
			inst := &Installer{
				Manager:  fm,
				ListPath: writeList(t, "bash"),
				In:       strings.NewReader(tt.input),
				Out:      &bytes.Buffer{},
			}

			err := inst.Run(context.Background())
			assert.Equal(t, exitcode.Aborted, exitcode.FromError(err))
			assert.Zero(t, fm.installs, "declined install must not run")
		})
	}
}

func TestRunConfirmed(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "y\r\n"} {
		fm := &fakeManager{}
		var out bytes.Buffer
		inst := &Installer{
			Manager:  fm,
			ListPath: writeList(t, "bash", "vim"),
			In:       strings.NewReader(input),
			Out:      &out,
		}

		err := inst.Run(context.Background())
		assert.NoError(t, err, "input %q", input)
		assert.Equal(t, 1, fm.installs)
		assert.Contains(t, out.String(), "Installation complete")
	}
}

func TestRunSkipConfirm(t *testing.T) {
	fm := &fakeManager{}
	var out bytes.Buffer
	inst := &Installer{
		Manager:     fm,
		ListPath:    writeList(t, "bash"),
		SkipConfirm: true,
		Out:         &out,
	}

	err := inst.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, fm.installs)
	assert.NotContains(t, out.String(), "[y/N]", "no prompt when skipping confirmation")
}

func TestRunDryRun(t *testing.T) {
	fm := &fakeManager{}
	var out bytes.Buffer
	list := writeList(t, "bash")
	before, err := os.ReadFile(list)
	assert.NoError(t, err)

	inst := &Installer{
		Manager:     fm,
		ListPath:    list,
		SkipConfirm: true,
		DryRun:      true,
		Out:         &out,
	}

	assert.NoError(t, inst.Run(context.Background()))
	assert.Zero(t, fm.installs, "dry-run must not invoke the manager")
	assert.Contains(t, out.String(), "dry-run: would run: fake install < "+list)

	after, err := os.ReadFile(list)
	assert.NoError(t, err)
	assert.Equal(t, before, after, "dry-run must not modify the list file")
}
