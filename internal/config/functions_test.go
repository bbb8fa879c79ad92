package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zclconf/go-cty/cty"
)

func TestStandardFunctions(t *testing.T) {
	funcs := standardFunctions()

	expected := []string{
		"upper", "lower", "trimspace", "trimprefix", "trimsuffix",
		"replace", "join", "split", "format",
		"coalesce", "concat", "contains",
		"env", "file", "basename", "dirname",
	}
	for _, name := range expected {
		if _, ok := funcs[name]; !ok {
			t.Errorf("expected function %q not found", name)
		}
	}
}

func TestEnvFunc(t *testing.T) {
	t.Setenv("PKGSNAP_TEST_VAR", "test_value")

	result, err := envFunc.Call([]cty.Value{cty.StringVal("PKGSNAP_TEST_VAR")})
	if err != nil {
		t.Fatalf("envFunc failed: %v", err)
	}
	if result.AsString() != "test_value" {
		t.Errorf("envFunc = %q, want test_value", result.AsString())
	}
}

func TestFileFunc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := fileFunc.Call([]cty.Value{cty.StringVal(path)})
	if err != nil {
		t.Fatalf("fileFunc failed: %v", err)
	}
	if result.AsString() != "hello" {
		t.Errorf("fileFunc = %q, want hello (trailing newline trimmed)", result.AsString())
	}
}

func TestPathFuncs(t *testing.T) {
	result, err := basenameFunc.Call([]cty.Value{cty.StringVal("/etc/pkgsnap/pkgsnap.hcl")})
	if err != nil {
		t.Fatal(err)
	}
	if result.AsString() != "pkgsnap.hcl" {
		t.Errorf("basename = %q", result.AsString())
	}

	result, err = dirnameFunc.Call([]cty.Value{cty.StringVal("/etc/pkgsnap/pkgsnap.hcl")})
	if err != nil {
		t.Fatal(err)
	}
	if result.AsString() != "/etc/pkgsnap" {
		t.Errorf("dirname = %q", result.AsString())
	}
}
