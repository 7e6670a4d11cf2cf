package testutil

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// TypeCheck type-checks a single Go source file as its own package.
// Imports of this module's packages are type-checked from source; other
// imports go through the standard library source importer.
//
// The returned error is the first type error, or nil if src is well typed.
func TypeCheck(filename string, src []byte) error {
	root, module, err := findModule()
	if err != nil {
		return err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	conf := types.Config{Importer: newSourceImporter(fset, root, module)}
	_, err = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	return err
}

// sourceImporter resolves this module's packages from their directories.
type sourceImporter struct {
	fset   *token.FileSet
	root   string
	module string
	std    types.Importer
	pkgs   map[string]*types.Package
}

func newSourceImporter(fset *token.FileSet, root, module string) *sourceImporter {
	return &sourceImporter{
		fset:   fset,
		root:   root,
		module: module,
		std:    importer.ForCompiler(fset, "source", nil),
		pkgs:   make(map[string]*types.Package),
	}
}

func (im *sourceImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := im.pkgs[path]; ok {
		return pkg, nil
	}
	if path != im.module && !strings.HasPrefix(path, im.module+"/") {
		return im.std.Import(path)
	}

	dir := filepath.Join(im.root, filepath.FromSlash(strings.TrimPrefix(path, im.module)))
	files, err := parsePackageDir(im.fset, dir)
	if err != nil {
		return nil, err
	}

	conf := types.Config{Importer: im}
	pkg, err := conf.Check(path, im.fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("type-checking %s: %w", path, err)
	}
	im.pkgs[path] = pkg
	return pkg, nil
}

// parsePackageDir parses the non-test Go files of dir.
func parsePackageDir(fset *token.FileSet, dir string) ([]*ast.File, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}

	var files []*ast.File
	for _, name := range matches {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}
	return files, nil
}

// findModule walks up from the working directory to the enclosing go.mod.
func findModule() (root, module string, err error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			module = modfile.ModulePath(data)
			if module == "" {
				return "", "", fmt.Errorf("no module directive in %s", filepath.Join(dir, "go.mod"))
			}
			return dir, module, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}
