package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/roach88/idlink/internal/typecheck"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Root     string // module root; defaults to the nearest go.mod above cwd
	Expect   string // "accept" | "reject"
	Contains string // with reject, a mismatch message must contain this
}

// FileReport holds the outcome of checking one file.
type FileReport struct {
	File        string                 `json:"file"`
	Pass        bool                   `json:"pass"`
	Accepted    bool                   `json:"accepted"`
	Mismatches  int                    `json:"mismatches"`
	Diagnostics []typecheck.Diagnostic `json:"diagnostics,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// CheckReport holds the overall check result.
type CheckReport struct {
	Files  []FileReport `json:"files"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file.go>...",
		Short: "Type-check Go files against the identifier packages",
		Long: `Type-check standalone Go files that import this module's packages.

With --expect accept (the default) a file passes when it type-checks
cleanly. With --expect reject a file passes only when it is rejected
with at least one type mismatch, e.g. a Foo identifier used where a Bar
identifier is required. Any mismatch counts unless --contains narrows it:
then at least one mismatch message must contain the given text.

Exit codes:
  0 - All files passed
  1 - One or more files failed
  2 - Command error (no module root, invalid flags, etc.)

Examples:
  idlink check ./examples/ok.go
  idlink check --expect reject ./examples/cross_kind.go
  idlink check --expect reject --contains "cannot convert" ./examples/convert.go
  idlink check --root ~/src/idlink --format json snippet.go`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "module root (default: nearest go.mod above the working directory)")
	cmd.Flags().StringVar(&opts.Expect, "expect", "accept", "expected outcome (accept|reject)")
	cmd.Flags().StringVar(&opts.Contains, "contains", "", "with --expect reject, text a mismatch message must contain")

	return cmd
}

func runCheck(opts *CheckOptions, files []string, cmd *cobra.Command) error {
	if opts.Expect != "accept" && opts.Expect != "reject" {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --expect %q: must be accept or reject", opts.Expect))
	}
	if opts.Contains != "" && opts.Expect != "reject" {
		return NewExitError(ExitCommandError, "--contains requires --expect reject")
	}

	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	checker, err := newChecker(opts.Root, logger)
	if err != nil {
		return err
	}

	report := CheckReport{
		Files: make([]FileReport, 0, len(files)),
		Total: len(files),
	}
	w := cmd.OutOrStdout()
	for _, file := range files {
		fr := checkOne(checker, file, opts.Expect, opts.Contains)
		report.Files = append(report.Files, fr)
		if fr.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		if opts.Format != "json" {
			printFileReport(w, fr, opts.Verbose)
		}
	}

	if opts.Format == "json" {
		return outputCheckJSON(w, report)
	}
	return outputCheckText(w, report)
}

// newChecker builds a checker rooted at root, or at the nearest module
// above the working directory when root is empty.
func newChecker(root string, logger *slog.Logger) (*typecheck.Checker, error) {
	if root == "" {
		found, err := typecheck.FindModuleRoot(".")
		if err != nil {
			if errors.Is(err, typecheck.ErrNoModule) {
				return nil, WrapExitError(ExitCommandError, "no module root found (use --root)", err)
			}
			return nil, WrapExitError(ExitCommandError, "failed to locate module root", err)
		}
		root = found
	}

	checker, err := typecheck.New(root, typecheck.WithLogger(logger))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load module", err)
	}
	return checker, nil
}

func checkOne(checker *typecheck.Checker, file, expect, contains string) FileReport {
	fr := FileReport{File: file}

	if _, err := os.Stat(file); err != nil {
		fr.Error = fmt.Sprintf("%s: %v", ErrCodeNotFound, err)
		return fr
	}

	result, err := checker.CheckFile(file)
	if err != nil {
		fr.Error = fmt.Sprintf("%s: %v", ErrCodeLoadFailed, err)
		return fr
	}

	mismatches := result.Mismatches()
	fr.Accepted = result.Accepted()
	fr.Mismatches = len(mismatches)
	fr.Diagnostics = result.Diagnostics
	if expect == "reject" {
		fr.Pass = hasMismatch(mismatches, contains)
	} else {
		fr.Pass = fr.Accepted
	}
	return fr
}

// hasMismatch reports whether any mismatch message contains want. An empty
// want matches any mismatch.
func hasMismatch(mismatches []typecheck.Diagnostic, want string) bool {
	for _, d := range mismatches {
		if strings.Contains(d.Message, want) {
			return true
		}
	}
	return false
}

func printFileReport(w io.Writer, fr FileReport, verbose bool) {
	mark := "✓"
	if !fr.Pass {
		mark = "✗"
	}

	switch {
	case fr.Error != "":
		fmt.Fprintf(w, "%s %s\n  %s\n", mark, fr.File, fr.Error)
		return
	case fr.Accepted:
		fmt.Fprintf(w, "%s %s (accepted)\n", mark, fr.File)
	default:
		fmt.Fprintf(w, "%s %s (rejected: %d type mismatch(es))\n", mark, fr.File, fr.Mismatches)
	}

	// Diagnostics are noise when a rejection was the expected outcome.
	if !fr.Pass || verbose {
		for _, d := range fr.Diagnostics {
			code := ErrCodeGeneric
			if d.IsMismatch() {
				code = ErrCodeTypeMismatch
			}
			fmt.Fprintf(w, "  [%s] %s\n", code, d)
		}
	}
}

func outputCheckJSON(w io.Writer, report CheckReport) error {
	response := CLIResponse{Status: "ok", Data: report}
	if report.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeTypeMismatch,
			Message: fmt.Sprintf("%d file(s) failed", report.Failed),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d file(s) failed", report.Failed))
	}
	return nil
}

func outputCheckText(w io.Writer, report CheckReport) error {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d file(s) failed", report.Failed))
	}
	return nil
}
