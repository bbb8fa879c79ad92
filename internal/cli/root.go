package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkgsnap/pkgsnap/internal/exitcode"
)

var (
	// Version information (set by main)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from build-time variables
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCmd creates the root command. Flag parsing is disabled: the
// surface is a set of repeatable, order-sensitive tokens dispatched by
// our own scanner, which cobra's flag model cannot express.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgsnap [options]",
		Short: "Snapshot and replay installed packages with the system package manager",
		Long: `pkgsnap detects the host's package manager (apt, pacman, dnf/yum or
zypper) and counts, snapshots or reinstalls the installed package set
by dispatching to the native commands.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			return run(cmd.Context(), tokens)
		},
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pkgsnap %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}

// Execute runs the CLI and maps the returned error to the process exit
// code.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitcode.FromError(err))
	}
}
