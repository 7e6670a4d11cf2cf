package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/uom/internal/codegen"
	"github.com/roach88/uom/internal/ir"
	"github.com/roach88/uom/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output         string // output file; stdout when empty
	Package        string // overrides the table's pkg
	NoHelpers      bool
	QuantityImport string
	UnitImport     string
	Database       string // catalog to record the run in, optional

	// IDGenerator overrides run IDs in the catalog; nil means UUIDv7.
	IDGenerator store.IDGenerator
}

// GenerateResult describes one generation.
type GenerateResult struct {
	Output    string `json:"output,omitempty"`
	Package   string `json:"package"`
	UnitCount int    `json:"unit_count"`
	Helpers   int    `json:"helpers"`
	Hash      string `json:"hash"`
	RunID     string `json:"run_id,omitempty"`
	Seq       int64  `json:"seq,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <table-path>",
		Short: "Generate Go source from a unit table",
		Long: `Generate Go source from a unit table.

For each unit the output declares a dimension type, its unit.Unit and a
quantity of one. Unless --no-helpers is given, typed Mul, Div and Recip
helpers are emitted for every pair of units whose product, quotient or
reciprocal is also declared.

With --db the table and the run are recorded in a catalog.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output Go file (default stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Go package name (overrides pkg in the table)")
	cmd.Flags().BoolVar(&opts.NoHelpers, "no-helpers", false, "omit Mul/Div/Recip helpers")
	cmd.Flags().StringVar(&opts.QuantityImport, "quantity-import", codegen.DefaultQuantityImport, "import path of the quantity package")
	cmd.Flags().StringVar(&opts.UnitImport, "unit-import", codegen.DefaultUnitImport, "import path of the unit package")
	cmd.Flags().StringVar(&opts.Database, "db", "", "catalog database to record the run in")

	return cmd
}

func runGenerate(ctx context.Context, opts *GenerateOptions, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	loadResult, loadErrors := LoadTables(path, LoadModeCollectAll)
	if loadResult == nil && len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			return outputCompileError(formatter, loadErr.Code, loadErr.Message, nil)
		}
		return outputCompileError(formatter, ErrCodeGeneric, loadErrors[0].Error(), nil)
	}
	if len(loadErrors) > 0 {
		return outputCompileErrors(formatter, loadErrors)
	}

	table := loadResult.Table
	formatter.VerboseLog("Loaded %d unit(s) from %s", len(table.Units), table.Source)

	genOpts := codegen.Options{
		Package:        opts.Package,
		QuantityImport: opts.QuantityImport,
		UnitImport:     opts.UnitImport,
		Helpers:        !opts.NoHelpers,
	}
	src, err := codegen.Generate(table, genOpts)
	if err != nil {
		return outputCompileError(formatter, ErrCodeGenerate, err.Error(), nil)
	}

	result := &GenerateResult{
		Output:    opts.Output,
		Package:   table.Package,
		UnitCount: len(table.Units),
	}
	if opts.Package != "" {
		result.Package = opts.Package
	}
	if genOpts.Helpers {
		helpers := codegen.HelperNames(table)
		result.Helpers = len(helpers)
		for _, h := range helpers {
			formatter.VerboseLog("Helper: %s", h)
		}
	}

	if result.Hash, err = ir.TableHash(table); err != nil {
		return outputCompileError(formatter, ErrCodeGeneric, err.Error(), nil)
	}

	if opts.Output == "" {
		// The source is the output; nothing else is printed.
		_, err := formatter.Writer.Write(src)
		if err != nil {
			return err
		}
	} else if err := os.WriteFile(opts.Output, src, 0644); err != nil {
		return outputCompileError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
	}

	if opts.Database != "" {
		logger := newLogger(formatter.GetErrWriter(), opts.Verbose)
		if err := recordRun(ctx, logger, opts, table, result); err != nil {
			return outputCompileError(formatter, ErrCodeCatalog, err.Error(), nil)
		}
	}

	if opts.Output == "" {
		return nil
	}
	return outputGenerateSuccess(formatter, result)
}

// recordRun saves the table and the run to the catalog at opts.Database.
func recordRun(ctx context.Context, logger *slog.Logger, opts *GenerateOptions, table *ir.Table, result *GenerateResult) (err error) {
	logger.Debug("opening catalog", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing catalog", "error", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()
	if opts.IDGenerator != nil {
		st.SetIDGenerator(opts.IDGenerator)
	}

	hash, created, err := st.SaveTable(ctx, table)
	if err != nil {
		return err
	}
	logger.Info("table catalogued", "hash", hash, "new", created, "units", len(table.Units))

	run, err := st.RecordRun(ctx, store.Run{
		TableHash:        hash,
		Package:          result.Package,
		Source:           table.Source,
		Output:           result.Output,
		UnitCount:        result.UnitCount,
		Helpers:          !opts.NoHelpers,
		GeneratorVersion: ir.GeneratorVersion,
		IRVersion:        ir.IRVersion,
	})
	if err != nil {
		return err
	}
	logger.Info("run recorded", "id", run.ID, "seq", run.Seq)

	result.RunID = run.ID
	result.Seq = run.Seq
	return nil
}

// outputGenerateSuccess reports a generation written to a file.
func outputGenerateSuccess(formatter *OutputFormatter, result *GenerateResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated package %s: %d unit(s), %d helper(s)\n",
		result.Package, result.UnitCount, result.Helpers)
	fmt.Fprintf(formatter.Writer, "Wrote %s\n", result.Output)
	if result.RunID != "" {
		fmt.Fprintf(formatter.Writer, "Recorded run %s (seq %d)\n", result.RunID, result.Seq)
	}
	return nil
}
