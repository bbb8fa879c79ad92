package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/pkgsnap/pkgsnap/internal/args"
	"github.com/pkgsnap/pkgsnap/internal/config"
	"github.com/pkgsnap/pkgsnap/internal/diffreport"
	"github.com/pkgsnap/pkgsnap/internal/exitcode"
	"github.com/pkgsnap/pkgsnap/internal/installer"
	"github.com/pkgsnap/pkgsnap/internal/listfile"
	"github.com/pkgsnap/pkgsnap/internal/manager"
	"github.com/pkgsnap/pkgsnap/internal/privilege"
)

const helpText = `pkgsnap snapshots and replays the installed package set using the
system package manager (apt, pacman, dnf/yum or zypper).

Usage: pkgsnap [options]

Options are evaluated left to right and may repeat:
  -c, --count      print the number of installed packages
  -g, --generate   write the installed package list to the list file
  -i, --install    install packages from the list file
  -a, --all        skip the confirmation prompt (only directly after -i)
  -d, --diff       show drift between the list file and the installed set
  -s, --status     print a status report
      --format F   status output format: text, json or yaml
      --apply      really install instead of the default dry run
      --dry-run    force dry-run mode
  -f, --file FILE  accepted but not implemented; the value is ignored
  -h, --help       show this help

The list file defaults to "pkglist" next to the pkgsnap binary and can
be changed in pkgsnap.hcl.
`

// app carries the per-run state: configuration, the pre-scanned option
// record and the detected package manager. Streams are fields so tests
// can capture them.
type app struct {
	cfg  config.Config
	opts args.Options
	mgr  manager.PackageManager

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// checkPrivileges is privilege.Check unless a test stubs it.
	checkPrivileges func(preferred string) error
}

// run is the real entry point: load config, detect the package manager
// once, pre-scan the tokens, then dispatch them in order.
func run(ctx context.Context, tokens []string) error {
	cfg, err := config.Load(config.Find())
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	runner := manager.NewSystemRunner(cfg.Debug || os.Getenv("PKGSNAP_DEBUG") != "")
	sudo := ""
	if !privilege.IsRoot() {
		sudo = privilege.EscalationCommand(cfg.SudoCommand)
	}

	mgr, err := manager.Detect(runner, sudo)
	if err != nil {
		return exitcode.New(exitcode.UnsupportedManager, err)
	}

	a := &app{
		cfg:    cfg,
		opts:   args.Prescan(tokens),
		mgr:    mgr,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	return a.dispatch(ctx, tokens)
}

// dispatch walks the tokens left to right, executing each operation as
// it is encountered. An unknown token aborts immediately; operations
// already executed are not rolled back.
func (a *app) dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		fmt.Fprint(a.out, helpText)
		return nil
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		kind := args.Classify(tok)

		if args.TakesValue(kind) {
			if i+1 >= len(tokens) {
				return exitcode.New(exitcode.UnknownOption, args.ErrMissingValue(tok))
			}
			value := tokens[i+1]
			i++
			if kind == args.KindFile {
				fmt.Fprintf(a.errOut, "warning: %s is not implemented, ignoring %q\n", tok, value)
			}
			// KindFormat was consumed by the pre-scan.
			continue
		}

		var err error
		switch kind {
		case args.KindCount:
			err = a.runCount(ctx)
		case args.KindGenerate:
			err = a.runGenerate(ctx)
		case args.KindInstall:
			err = a.runInstall(ctx)
		case args.KindDiff:
			err = a.runDiff(ctx)
		case args.KindStatus:
			err = a.runStatus(ctx)
		case args.KindHelp:
			fmt.Fprint(a.out, helpText)
		case args.KindAll, args.KindApply, args.KindDryRun:
			// Policy tokens, consumed by the pre-scan.
		default:
			return exitcode.New(exitcode.UnknownOption, args.ErrUnknown(tok))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runCount(ctx context.Context) error {
	n, err := a.mgr.CountInstalled(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, n)
	return nil
}

func (a *app) runGenerate(ctx context.Context) error {
	entries, err := a.mgr.ListInstalled(ctx)
	if err != nil {
		return err
	}
	if err := listfile.Write(a.cfg.ListFile, entries); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Generated %s (%d packages)\n", a.cfg.ListFile, len(entries))
	return nil
}

func (a *app) runInstall(ctx context.Context) error {
	check := a.checkPrivileges
	if check == nil {
		check = privilege.Check
	}
	if err := check(a.cfg.SudoCommand); err != nil {
		return exitcode.New(exitcode.NoPrivileges, err)
	}

	inst := &installer.Installer{
		Manager:     a.mgr,
		ListPath:    a.cfg.ListFile,
		SkipConfirm: a.opts.SkipConfirm,
		DryRun:      a.dryRun(),
		In:          a.in,
		Out:         a.out,
	}
	return inst.Run(ctx)
}

func (a *app) runDiff(ctx context.Context) error {
	snapshot, err := listfile.Read(a.cfg.ListFile)
	if err != nil {
		if errors.Is(err, listfile.ErrNotFound) {
			return exitcode.New(exitcode.ListFileMissing, err)
		}
		return err
	}

	installed, err := a.mgr.ListInstalled(ctx)
	if err != nil {
		return err
	}

	printer := diffreport.NewPrinter(a.out, !a.cfg.NoColor)
	printer.Print(snapshot, installed)
	return nil
}

// dryRun resolves the install mode: dry-run unless the config or the
// --apply token enables real installs, with --dry-run always winning.
func (a *app) dryRun() bool {
	if a.opts.DryRun {
		return true
	}
	return !a.opts.Apply && a.cfg.Mode != config.ModeApply
}
