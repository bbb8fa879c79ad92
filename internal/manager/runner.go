package manager

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner abstracts external command execution so package managers can be
// tested without the real binaries installed.
type Runner interface {
	// LookPath reports the full path of an executable, or an error if it
	// is not on PATH.
	LookPath(name string) (string, error)
	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// Run runs a command with the given standard input, discarding output
	// unless the command fails.
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) error
}

// SystemRunner executes commands on the local system.
type SystemRunner struct {
	log *logrus.Logger
}

// NewSystemRunner creates a runner. When debug is true every external
// command is traced to stderr.
func NewSystemRunner(debug bool) *SystemRunner {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return &SystemRunner{log: log}
}

func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *SystemRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	start := time.Now()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	r.log.WithFields(logrus.Fields{
		"cmd":      name,
		"args":     args,
		"duration": time.Since(start).String(),
	}).Debug("command finished")
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}

func (r *SystemRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	output, err := cmd.CombinedOutput()
	r.log.WithFields(logrus.Fields{
		"cmd":      name,
		"args":     args,
		"duration": time.Since(start).String(),
	}).Debug("command finished")
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, string(output))
	}
	return nil
}
