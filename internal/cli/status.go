package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/pkgsnap/pkgsnap/internal/exitcode"
	"github.com/pkgsnap/pkgsnap/internal/listfile"
)

// statusReport is the serializable status summary.
type statusReport struct {
	Manager   string         `json:"manager" yaml:"manager"`
	Kind      string         `json:"kind" yaml:"kind"`
	Binary    string         `json:"binary" yaml:"binary"`
	Installed int            `json:"installed" yaml:"installed"`
	Mode      string         `json:"mode" yaml:"mode"`
	ListFile  listFileStatus `json:"list_file" yaml:"list_file"`
}

type listFileStatus struct {
	Path    string `json:"path" yaml:"path"`
	Exists  bool   `json:"exists" yaml:"exists"`
	Entries int    `json:"entries" yaml:"entries"`
}

func (a *app) runStatus(ctx context.Context) error {
	report, err := a.gatherStatus(ctx)
	if err != nil {
		return err
	}

	switch strings.ToLower(a.opts.Format) {
	case "json":
		return a.statusJSON(report)
	case "yaml", "yml":
		return a.statusYAML(report)
	case "text":
		return a.statusText(report)
	default:
		return exitcode.New(exitcode.UnknownOption,
			fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", a.opts.Format))
	}
}

func (a *app) gatherStatus(ctx context.Context) (statusReport, error) {
	report := statusReport{
		Manager: a.mgr.Name(),
		Kind:    a.mgr.Kind().String(),
		Binary:  a.mgr.Binary(),
		Mode:    a.cfg.Mode,
		ListFile: listFileStatus{
			Path: a.cfg.ListFile,
		},
	}

	n, err := a.mgr.CountInstalled(ctx)
	if err != nil {
		return report, err
	}
	report.Installed = n

	if _, err := os.Stat(a.cfg.ListFile); err == nil {
		report.ListFile.Exists = true
		if entries, err := listfile.Read(a.cfg.ListFile); err == nil {
			report.ListFile.Entries = len(entries)
		}
	}

	return report, nil
}

func (a *app) statusJSON(report statusReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(a.out, string(data))
	return nil
}

func (a *app) statusYAML(report statusReport) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Fprint(a.out, buf.String())
	return nil
}

func (a *app) statusText(report statusReport) error {
	bold := color.New(color.Bold)

	_, _ = bold.Fprintf(a.out, "Package manager\n")
	fmt.Fprintf(a.out, "  name      = %s\n", report.Manager)
	fmt.Fprintf(a.out, "  kind      = %s\n", report.Kind)
	fmt.Fprintf(a.out, "  binary    = %s\n", report.Binary)
	fmt.Fprintf(a.out, "  installed = %d\n", report.Installed)
	fmt.Fprintf(a.out, "  mode      = %s\n", report.Mode)

	_, _ = bold.Fprintf(a.out, "List file\n")
	fmt.Fprintf(a.out, "  path    = %s\n", report.ListFile.Path)
	fmt.Fprintf(a.out, "  exists  = %t\n", report.ListFile.Exists)
	if report.ListFile.Exists {
		fmt.Fprintf(a.out, "  entries = %d\n", report.ListFile.Entries)
	}
	return nil
}
