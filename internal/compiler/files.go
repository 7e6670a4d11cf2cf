package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
)

// BuildFiles reads CUE and YAML table files and unifies them into one
// value. CUE files keep their source positions; YAML files are converted
// with YAMLToCUE.
func BuildFiles(ctx *cue.Context, paths []string) (cue.Value, error) {
	value := ctx.CompileString("{}")
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return cue.Value{}, fmt.Errorf("reading %s: %w", path, err)
		}

		var v cue.Value
		switch filepath.Ext(path) {
		case ".cue":
			v = ctx.CompileBytes(data, cue.Filename(path))
		case ".yaml", ".yml":
			expr, err := YAMLToCUE(data)
			if err != nil {
				return cue.Value{}, fmt.Errorf("%s: %w", path, err)
			}
			v = ctx.BuildExpr(expr)
		default:
			return cue.Value{}, fmt.Errorf("%s: not a CUE or YAML table", path)
		}
		value = value.Unify(v)
	}
	return value, nil
}
