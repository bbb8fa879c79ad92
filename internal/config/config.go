// Package config loads the optional pkgsnap HCL configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pkgsnap/pkgsnap/internal/listfile"
)

// Modes for the install operation.
const (
	ModeDryRun = "dry-run"
	ModeApply  = "apply"
)

// FileName is the configuration file name searched for.
const FileName = "pkgsnap.hcl"

// Config holds the resolved runtime configuration. Command line tokens
// win over file values; file values win over defaults.
type Config struct {
	// ListFile is the package list snapshot path.
	ListFile string
	// Mode is ModeDryRun or ModeApply.
	Mode string
	// SudoCommand is the preferred privilege-escalation command.
	SudoCommand string
	// NoColor disables colored output.
	NoColor bool
	// Debug enables external command tracing.
	Debug bool
}

// fileSchema is the gohcl decoding target: flat optional attributes.
type fileSchema struct {
	ListFile    *string `hcl:"list_file,optional"`
	Mode        *string `hcl:"mode,optional"`
	SudoCommand *string `hcl:"sudo_command,optional"`
	NoColor     *bool   `hcl:"no_color,optional"`
	Debug       *bool   `hcl:"debug,optional"`
}

// Default returns the configuration used when no file is present. The
// list file lives next to the binary, not in the caller's working
// directory.
func Default() Config {
	return Config{
		ListFile:    listfile.DefaultPath(),
		Mode:        ModeDryRun,
		SudoCommand: "sudo",
	}
}

// Find looks for a configuration file in order: $PKGSNAP_CONFIG, the
// XDG config directory, then next to the binary. Returns "" when none
// exists.
func Find() string {
	if p := os.Getenv("PKGSNAP_CONFIG"); p != "" {
		return p
	}

	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "pkgsnap", FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// Load parses the HCL file at path and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("parsing config %s: %s", path, diags.Error())
	}

	ctx := &hcl.EvalContext{Functions: standardFunctions()}
	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, ctx, &schema); diags.HasErrors() {
		return cfg, fmt.Errorf("decoding config %s: %s", path, diags.Error())
	}

	if schema.ListFile != nil {
		cfg.ListFile = *schema.ListFile
	}
	if schema.Mode != nil {
		cfg.Mode = *schema.Mode
	}
	if schema.SudoCommand != nil {
		cfg.SudoCommand = *schema.SudoCommand
	}
	if schema.NoColor != nil {
		cfg.NoColor = *schema.NoColor
	}
	if schema.Debug != nil {
		cfg.Debug = *schema.Debug
	}

	if cfg.Mode != ModeDryRun && cfg.Mode != ModeApply {
		return cfg, fmt.Errorf("config %s: mode must be %q or %q, got %q",
			path, ModeDryRun, ModeApply, cfg.Mode)
	}
	return cfg, nil
}
