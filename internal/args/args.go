// Package args implements the command line token scan.
//
// The surface is a set of repeatable, order-sensitive flags rather than
// subcommands: operations run immediately, left to right, as their
// tokens are encountered, and repeating a flag repeats its operation.
// One rule is position-sensitive: skip-confirmation (-a/--all) only
// takes effect when it is the token immediately following -i/--install.
package args

import "fmt"

// Kind classifies a single command line token.
type Kind int

const (
	KindUnknown Kind = iota
	KindCount
	KindGenerate
	KindInstall
	KindHelp
	KindAll
	KindFile
	KindDiff
	KindStatus
	KindFormat
	KindApply
	KindDryRun
)

// Classify maps a raw token to its kind. Unrecognized tokens are
// KindUnknown and abort the run.
func Classify(tok string) Kind {
	switch tok {
	case "-c", "--count":
		return KindCount
	case "-g", "--generate":
		return KindGenerate
	case "-i", "--install":
		return KindInstall
	case "-h", "--help":
		return KindHelp
	case "-a", "--all":
		return KindAll
	case "-f", "--file":
		return KindFile
	case "-d", "--diff":
		return KindDiff
	case "-s", "--status":
		return KindStatus
	case "--format":
		return KindFormat
	case "--apply":
		return KindApply
	case "--dry-run":
		return KindDryRun
	default:
		return KindUnknown
	}
}

// TakesValue reports whether a token kind consumes the following token.
func TakesValue(k Kind) bool {
	return k == KindFile || k == KindFormat
}

// Options is the typed record produced by the pre-scan pass. It holds
// everything whose value must be known before dispatch starts.
type Options struct {
	// SkipConfirm is active iff the last -a/--all token sits at the
	// position immediately after the last -i/--install token.
	SkipConfirm bool
	// Apply switches install from dry-run to the real manager command.
	Apply bool
	// DryRun forces dry-run, overriding Apply and configuration.
	DryRun bool
	// Format is the status report format (text, json or yaml).
	Format string
}

// Prescan walks all tokens once and derives the Options record. It
// ignores unknown tokens; dispatch reports those. Value-taking tokens
// consume the following token, which is excluded from position checks.
func Prescan(tokens []string) Options {
	opts := Options{Format: "text"}

	lastInstall := -1
	lastAll := -1
	for i := 0; i < len(tokens); i++ {
		switch k := Classify(tokens[i]); k {
		case KindInstall:
			lastInstall = i
		case KindAll:
			lastAll = i
		case KindApply:
			opts.Apply = true
		case KindDryRun:
			opts.DryRun = true
		case KindFormat:
			if i+1 < len(tokens) {
				opts.Format = tokens[i+1]
				i++
			}
		case KindFile:
			if i+1 < len(tokens) {
				i++
			}
		}
	}

	opts.SkipConfirm = lastInstall >= 0 && lastAll == lastInstall+1
	return opts
}

// ErrUnknown describes an unrecognized token.
func ErrUnknown(tok string) error {
	return fmt.Errorf("unknown option: %s", tok)
}

// ErrMissingValue describes a value-taking token at the end of the line.
func ErrMissingValue(tok string) error {
	return fmt.Errorf("option %s requires a value", tok)
}
