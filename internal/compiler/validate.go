package compiler

import (
	"fmt"
	"go/token"

	"github.com/roach88/uom/internal/ir"
)

// Validation error codes (E120-E129)
const (
	ErrInvalidDimension   = "E120" // dimension is not an exported Go identifier
	ErrDuplicateDimension = "E121" // two units share a dimension marker
	ErrDuplicateSymbol    = "E122" // two units share a symbol
	ErrDimensionless      = "E123" // unit resolves to the dimensionless unit
)

// ValidationError represents a table validation error.
type ValidationError struct {
	Unit    string `json:"unit"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a resolved table for problems that only show up across
// units. Returns all errors found (does not fail-fast).
func Validate(t *ir.Table) []ValidationError {
	var errs []ValidationError

	dimensions := make(map[string]string)
	symbols := make(map[string]string)

	for _, d := range t.Units {
		// E120: dimension must become an exported Go type
		if !token.IsIdentifier(d.Dimension) || !token.IsExported(d.Dimension) {
			errs = append(errs, ValidationError{
				Unit:    d.Name,
				Field:   FieldDimension,
				Message: fmt.Sprintf("unit %s: dimension %q must be an exported Go identifier", d.Name, d.Dimension),
				Code:    ErrInvalidDimension,
			})
		}

		// E121: one marker type per dimension
		if prev, ok := dimensions[d.Dimension]; ok {
			errs = append(errs, ValidationError{
				Unit:    d.Name,
				Field:   FieldDimension,
				Message: fmt.Sprintf("unit %s: dimension %q already used by %s", d.Name, d.Dimension, prev),
				Code:    ErrDuplicateDimension,
			})
		} else {
			dimensions[d.Dimension] = d.Name
		}

		// E122: symbols identify units in diagnostics
		if prev, ok := symbols[d.Symbol]; ok {
			errs = append(errs, ValidationError{
				Unit:    d.Name,
				Field:   FieldSymbol,
				Message: fmt.Sprintf("unit %s: symbol %q already used by %s", d.Name, d.Symbol, prev),
				Code:    ErrDuplicateSymbol,
			})
		} else {
			symbols[d.Symbol] = d.Name
		}

		// E123: quantity.One already covers the dimensionless unit
		if d.Unit.IsDimensionless() {
			errs = append(errs, ValidationError{
				Unit:    d.Name,
				Field:   FieldExponents,
				Message: fmt.Sprintf("unit %s: resolves to the dimensionless unit", d.Name),
				Code:    ErrDimensionless,
			})
		}
	}

	return errs
}
