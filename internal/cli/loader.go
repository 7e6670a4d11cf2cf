package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/uom/internal/compiler"
	"github.com/roach88/uom/internal/ir"
)

// LoadMode controls how errors are handled during table loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading a unit table.
type LoadResult struct {
	Table     *ir.Table
	CUEValue  cue.Value // The unified CUE value of every table file
	Files     []string  // Table files that were read, CUE first
	FileCount int
}

// LoadError represents an error that occurred during table loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadTables loads and compiles a unit table from path.
//
// path is either a directory, whose .cue files form one CUE instance and
// whose .yaml/.yml files are unified into it, or a single table file.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
//
// A nil result means the files could not be read or built at all.
func LoadTables(path string, mode LoadMode) (*LoadResult, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("table path not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing table path: %v", err)}}
	}

	dir := path
	var cueFiles, yamlFiles []string
	if info.IsDir() {
		cueFiles, yamlFiles, err = FindTableFiles(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
		}
	} else {
		dir = filepath.Dir(path)
		switch filepath.Ext(path) {
		case ".cue":
			cueFiles = []string{path}
		case ".yaml", ".yml":
			yamlFiles = []string{path}
		default:
			return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("not a CUE or YAML table: %s", path)}}
		}
	}
	if len(cueFiles) == 0 && len(yamlFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE or YAML files found in %s", path)}}
	}

	ctx := cuecontext.New()
	value := ctx.CompileString("{}")

	if len(cueFiles) > 0 {
		args := []string{"."}
		if !info.IsDir() {
			args = []string{filepath.Base(path)}
		}
		instances := load.Instances(args, &load.Config{Dir: dir})
		if len(instances) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
		}
		inst := instances[0]
		if inst.Err != nil {
			return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
		}
		value = ctx.BuildInstance(inst)
	}

	for _, file := range yamlFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("reading %s: %v", file, err)}}
		}
		expr, err := compiler.YAMLToCUE(data)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("%s: %v", file, err)}}
		}
		value = value.Unify(ctx.BuildExpr(expr))
	}

	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	files := append(slices.Clone(cueFiles), yamlFiles...)
	result := &LoadResult{
		CUEValue:  value,
		Files:     files,
		FileCount: len(files),
	}

	table, compileErrs := compiler.CompileTable(value, mode == LoadModeCollectAll)
	if len(compileErrs) > 0 {
		errs := make([]error, len(compileErrs))
		for i, err := range compileErrs {
			errs[i] = convertCompileError(err)
		}
		return result, errs
	}

	table.Source = path
	if len(files) == 1 {
		table.Source = files[0]
	}
	result.Table = table
	return result, nil
}

// FindTableFiles returns the .cue and .yaml/.yml files directly inside dir,
// sorted by name. Subdirectories are separate tables and are not read.
func FindTableFiles(dir string) (cueFiles, yamlFiles []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".cue":
			cueFiles = append(cueFiles, filepath.Join(dir, e.Name()))
		case ".yaml", ".yml":
			yamlFiles = append(yamlFiles, filepath.Join(dir, e.Name()))
		}
	}
	return cueFiles, yamlFiles, nil
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: compileErr.Message,
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{
		Code:    ErrCodeGeneric,
		Message: err.Error(),
	}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No table files found
	ErrCodeLoadFailed  = "E004" // CUE load or YAML parse failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeGenerate    = "E008" // Go source generation failed
	ErrCodeCatalog     = "E009" // Catalog open/read/write failed
	ErrCodeBadFlag     = "E010" // Invalid flag value

	// Table compile errors
	ErrCodeCUE        = "E100" // CUE evaluation error
	ErrCodePackage    = "E101" // Invalid Go package name
	ErrCodeUnitName   = "E102" // Unit name not lower_snake_case
	ErrCodeDimension  = "E103" // Missing, invalid or duplicate dimension
	ErrCodeSymbol     = "E104" // Duplicate symbol
	ErrCodeBase       = "E105" // Unknown base quantity
	ErrCodeExponents  = "E106" // Bad exponent or dimensionless unit
	ErrCodeReference  = "E107" // Unknown unit reference
	ErrCodeCycle      = "E108" // Reference cycle
	ErrCodeDefinition = "E109" // Missing or conflicting definition
)

// MapFieldToErrorCode maps a compiler error field to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case compiler.FieldCUE:
		return ErrCodeCUE
	case compiler.FieldPackage:
		return ErrCodePackage
	case compiler.FieldName:
		return ErrCodeUnitName
	case compiler.FieldDimension:
		return ErrCodeDimension
	case compiler.FieldSymbol:
		return ErrCodeSymbol
	case compiler.FieldBase:
		return ErrCodeBase
	case compiler.FieldExponents:
		return ErrCodeExponents
	case compiler.FieldReference:
		return ErrCodeReference
	case compiler.FieldCycle:
		return ErrCodeCycle
	case compiler.FieldDefinition:
		return ErrCodeDefinition
	default:
		return ErrCodeGeneric
	}
}
