package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/uom/internal/codegen"
	"github.com/roach88/uom/internal/compiler"
	"github.com/roach88/uom/internal/ir"
)

// Harness executes scenarios. The zero value is not usable; see New.
type Harness struct {
	logger *slog.Logger
	opts   codegen.Options
}

// New creates a harness that logs to logger. A nil logger discards logs.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{
		logger: logger,
		opts:   codegen.DefaultOptions(),
	}
}

// Run executes a scenario with a discarding logger.
//
// The returned error is reserved for scenarios that cannot be executed at
// all, such as unreadable table files. Failed expectations are reported
// in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a scenario.
//
// Execution flow:
// 1. Unify the table files into one CUE value
// 2. Compile the table, collecting every error
// 3. Match compile errors against the expected errors
// 4. Check unit expectations
// 5. Generate source and check the expected helpers
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	ctx := cuecontext.New()
	value, err := compiler.BuildFiles(ctx, scenario.Tables)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	table, errs := compiler.CompileTable(value, true)
	h.logger.Debug("compiled scenario tables",
		"scenario", scenario.Name,
		"tables", len(scenario.Tables),
		"errors", len(errs))

	for _, msg := range matchErrors(scenario.Errors, errs) {
		result.AddError(msg)
	}
	if len(errs) > 0 {
		return result, nil
	}
	if len(scenario.Errors) > 0 {
		// matchErrors already reported the missing errors.
		return result, nil
	}

	if len(scenario.Tables) == 1 {
		table.Source = scenario.Tables[0]
	}
	hash, err := ir.TableHash(table)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	result.Hash = hash

	for _, d := range table.Units {
		result.Units[d.Name] = d.Unit.String()
	}
	for _, msg := range checkUnits(table, scenario.Expect) {
		result.AddError(msg)
	}

	opts := h.opts
	opts.Package = scenario.Package
	src, err := codegen.Generate(table, opts)
	if err != nil {
		var genErr *codegen.GenerateError
		if errors.As(err, &genErr) {
			result.AddError(err.Error())
			return result, nil
		}
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	result.Source = src

	for _, msg := range checkHelpers(codegen.HelperNames(table), scenario.Helpers) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"hash", hash)

	return result, nil
}
