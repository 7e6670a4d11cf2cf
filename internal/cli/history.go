package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/uom/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
}

// HistoryResult lists catalogued tables and generation runs.
type HistoryResult struct {
	Tables []store.TableInfo `json:"tables"`
	Runs   []store.Run       `json:"runs"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List catalogued tables and generation runs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "catalog database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openCatalog(formatter, opts.Database, opts.Verbose)
	if err != nil {
		return err
	}
	defer st.Close()

	tables, err := st.Tables(ctx)
	if err != nil {
		return outputCompileError(formatter, ErrCodeCatalog, err.Error(), nil)
	}
	runs, err := st.Runs(ctx)
	if err != nil {
		return outputCompileError(formatter, ErrCodeCatalog, err.Error(), nil)
	}

	result := HistoryResult{Tables: tables, Runs: runs}
	if formatter.JSON() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "Tables (%d):\n", len(tables))
	for _, t := range tables {
		fmt.Fprintf(formatter.Writer, "  [%d] %s %s (%d unit(s))\n", t.Seq, t.Package, t.Hash, t.UnitCount)
	}
	fmt.Fprintln(formatter.Writer)

	fmt.Fprintf(formatter.Writer, "Runs (%d):\n", len(runs))
	for _, r := range runs {
		helpers := ""
		if !r.Helpers {
			helpers = ", no helpers"
		}
		fmt.Fprintf(formatter.Writer, "  [%d] %s: %s -> %s (%d unit(s)%s)\n",
			r.Seq, r.ID, r.Source, r.Output, r.UnitCount, helpers)
	}
	return nil
}

// openCatalog opens an existing catalog. A missing file is a command error,
// not an empty catalog.
func openCatalog(formatter *OutputFormatter, path string, verbose bool) (*store.Store, error) {
	logger := newLogger(formatter.GetErrWriter(), verbose)

	if _, err := os.Stat(path); err != nil {
		return nil, outputCompileError(formatter, ErrCodeNotFound, fmt.Sprintf("catalog not found: %s", path), nil)
	}

	logger.Debug("opening catalog", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, outputCompileError(formatter, ErrCodeCatalog, err.Error(), nil)
	}
	return st, nil
}
