package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/idlink/internal/codegen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Package     string
	Entity      string
	IDType      string
	IdentImport string
	Output      string
}

// GenResult is the JSON payload of the gen command.
type GenResult struct {
	Package string `json:"package"`
	Entity  string `json:"entity"`
	File    string `json:"file,omitempty"`
	Source  string `json:"source,omitempty"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a bidirectional identifier type",
		Long: `Generate the identifier type for an entity kind: the type itself, its
constructor, its value methods, its BelongsTo back-link, and the
ident.Link declaration check.

The entity must declare its own ID() accessor returning the generated
type; until it does, the generated check does not compile.

Examples:
  idlink gen --package orders --entity Order
  idlink gen --package billing --entity Invoice --id InvoiceNumber -o invoice_id.go`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated file (required)")
	cmd.Flags().StringVar(&opts.Entity, "entity", "", "owning entity type name (required)")
	cmd.Flags().StringVar(&opts.IDType, "id", "", "identifier type name (default: <entity>ID)")
	cmd.Flags().StringVar(&opts.IdentImport, "ident-import", codegen.DefaultIdentImport, "import path of the ident package")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("package")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

func runGen(opts *GenOptions, cmd *cobra.Command) error {
	src, err := codegen.Generate(codegen.Options{
		Package:     opts.Package,
		Entity:      opts.Entity,
		IDType:      opts.IDType,
		IdentImport: opts.IdentImport,
	})
	if err != nil {
		if errors.Is(err, codegen.ErrInvalidName) {
			return WrapExitError(ExitCommandError, "invalid gen options", err)
		}
		return WrapExitError(ExitCommandError, "generation failed", err)
	}

	result := GenResult{Package: opts.Package, Entity: opts.Entity}
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Output == "" {
		if opts.Format == "json" {
			result.Source = string(src)
			return formatter.Success(result)
		}
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}

	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to create output directory", ErrCodeWriteFailed), err)
		}
	}
	if err := os.WriteFile(opts.Output, src, 0644); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("[%s] failed to write %s", ErrCodeWriteFailed, opts.Output), err)
	}

	result.File = opts.Output
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	formatter.VerboseLog("wrote %d bytes", len(src))
	return formatter.Success(fmt.Sprintf("✓ wrote %s", opts.Output))
}
