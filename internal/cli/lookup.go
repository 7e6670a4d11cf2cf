package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/uom/internal/store"
	"github.com/roach88/uom/unit"
)

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	*RootOptions
	Database  string
	Exponents string // "m=1,s=-1"
	Package   string
	Dimension string
	Symbol    string
}

// LookupResult lists the catalogued units matching a filter.
type LookupResult struct {
	Unit    string            `json:"unit,omitempty"`
	Filter  string            `json:"filter"`
	Matches []store.UnitMatch `json:"matches"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find catalogued units",
		Long: `Find catalogued units by exponents, package, dimension or symbol.
At least one filter is required; all given filters must match.

Exponents are written as base=exponent pairs separated by commas, using
base symbols, unit names or quantity names, and match exactly:

  unitgen lookup --db units.db --exp m=1,s=-1
  unitgen lookup --db units.db --exp kilogram=1,metre=1,second=-2
  unitgen lookup --db units.db --package si --dimension Force`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "catalog database (required)")
	cmd.Flags().StringVar(&opts.Exponents, "exp", "", "exponents, e.g. m=1,s=-1")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Go package of the table")
	cmd.Flags().StringVar(&opts.Dimension, "dimension", "", "dimension type name, e.g. Force")
	cmd.Flags().StringVar(&opts.Symbol, "symbol", "", "unit symbol, e.g. N")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLookup(ctx context.Context, opts *LookupOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	filter := store.UnitFilter{
		Package:   opts.Package,
		Dimension: opts.Dimension,
		Symbol:    opts.Symbol,
	}
	if opts.Exponents != "" {
		u, err := ParseExponents(opts.Exponents)
		if err != nil {
			return outputCompileError(formatter, ErrCodeBadFlag, err.Error(), nil)
		}
		filter.Exponents = &u
	}
	if filter.IsEmpty() {
		return outputCompileError(formatter, ErrCodeBadFlag, "at least one of --exp, --package, --dimension or --symbol is required", nil)
	}
	formatter.VerboseLog("Looking up %s", filter)

	st, err := openCatalog(formatter, opts.Database, opts.Verbose)
	if err != nil {
		return err
	}
	defer st.Close()

	matches, err := st.FindUnits(ctx, filter)
	if err != nil {
		return outputCompileError(formatter, ErrCodeCatalog, err.Error(), nil)
	}

	result := LookupResult{Filter: filter.String(), Matches: matches}
	if filter.Exponents != nil {
		result.Unit = filter.Exponents.String()
	}
	if formatter.JSON() {
		return formatter.Success(result)
	}

	if len(matches) == 0 {
		fmt.Fprintf(formatter.Writer, "No catalogued unit matches %s\n", filter)
		return nil
	}
	fmt.Fprintf(formatter.Writer, "%s:\n", filter)
	for _, m := range matches {
		fmt.Fprintf(formatter.Writer, "  %s.%s (%s) [%s]\n", m.Package, m.Name, m.Dimension, m.Symbol)
	}
	return nil
}

// ParseExponents parses "m=1,s=-1" into a unit. Bases may repeat; their
// exponents add up. At least one nonzero exponent is required.
func ParseExponents(s string) (unit.Unit, error) {
	exps := make(map[unit.Base]int)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return unit.None, fmt.Errorf("invalid exponent %q: want base=exponent", part)
		}
		b, ok := unit.ParseBase(strings.TrimSpace(name))
		if !ok {
			return unit.None, fmt.Errorf("invalid exponent %q: unknown base %q", part, name)
		}
		e, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return unit.None, fmt.Errorf("invalid exponent %q: %q is not an integer", part, value)
		}
		exps[b] += e
		if exps[b] < math.MinInt16 || exps[b] > math.MaxInt16 {
			return unit.None, fmt.Errorf("invalid exponent %q: out of range", part)
		}
	}

	u := unit.None
	for b, e := range exps {
		u = u.With(b, e)
	}
	if u.IsDimensionless() {
		return unit.None, fmt.Errorf("no exponents given in %q", s)
	}
	return u, nil
}
