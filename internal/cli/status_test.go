package cli

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/pkgsnap/pkgsnap/internal/exitcode"
)

func TestStatusText(t *testing.T) {
	fm := &fakeManager{installed: []string{"bash", "vim"}}
	tokens := []string{"-s"}
	a, out, _ := newTestApp(t, fm, tokens)
	if err := os.WriteFile(a.cfg.ListFile, []byte("bash\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := a.dispatch(context.Background(), tokens)
	assert.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "name      = fake")
	assert.Contains(t, got, "installed = 2")
	assert.Contains(t, got, "exists  = true")
	assert.Contains(t, got, "entries = 1")
}

func TestStatusJSON(t *testing.T) {
	fm := &fakeManager{installed: []string{"bash"}}
	tokens := []string{"-s", "--format", "json"}
	a, out, _ := newTestApp(t, fm, tokens)

	err := a.dispatch(context.Background(), tokens)
	assert.NoError(t, err)

	var report statusReport
	assert.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "fake", report.Manager)
	assert.Equal(t, "pacman", report.Kind)
	assert.Equal(t, 1, report.Installed)
	assert.False(t, report.ListFile.Exists)
}

func TestStatusYAML(t *testing.T) {
	fm := &fakeManager{installed: []string{"bash"}}
	tokens := []string{"-s", "--format", "yaml"}
	a, out, _ := newTestApp(t, fm, tokens)

	err := a.dispatch(context.Background(), tokens)
	assert.NoError(t, err)

	var report statusReport
	assert.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "fake", report.Manager)
}

func TestStatusUnsupportedFormat(t *testing.T) {
	tokens := []string{"-s", "--format", "xml"}
	a, _, _ := newTestApp(t, &fakeManager{}, tokens)

	err := a.dispatch(context.Background(), tokens)
	assert.Equal(t, exitcode.UnknownOption, exitcode.FromError(err))
	assert.Contains(t, err.Error(), "xml")
}
