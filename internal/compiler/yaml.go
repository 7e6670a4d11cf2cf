package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cuelang.org/go/cue/ast"
	cuetoken "cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

// YAMLToCUE converts the first document of a YAML table to a CUE
// expression so it can be unified with CUE tables:
//
//	pkg: si
//	unit:
//	  metre: {symbol: m, dimension: Length, base: length}
//	  hertz: {dimension: Frequency, inv: second}
func YAMLToCUE(data []byte) (ast.Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind == 0 {
		return ast.NewStruct(), nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("expected a YAML document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: table must be a mapping", root.Line)
	}
	return yamlNodeToCUE(root)
}

func yamlNodeToCUE(n *yaml.Node) (ast.Expr, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlNodeToCUE(n.Alias)

	case yaml.MappingNode:
		s := &ast.StructLit{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			if key.Value == "<<" {
				return nil, fmt.Errorf("line %d: merge keys are not supported", key.Line)
			}
			v, err := yamlNodeToCUE(val)
			if err != nil {
				return nil, err
			}
			s.Elts = append(s.Elts, &ast.Field{Label: ast.NewString(key.Value), Value: v})
		}
		return s, nil

	case yaml.SequenceNode:
		elems := make([]ast.Expr, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlNodeToCUE(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return ast.NewList(elems...), nil

	case yaml.ScalarNode:
		return yamlScalarToCUE(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func yamlScalarToCUE(n *yaml.Node) (ast.Expr, error) {
	switch n.ShortTag() {
	case "!!null":
		return ast.NewNull(), nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return ast.NewBool(b), nil

	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return numberLit(cuetoken.INT, strconv.FormatInt(i, 10)), nil

	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("line %d: %s is not a finite number", n.Line, n.Value)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return numberLit(cuetoken.FLOAT, s), nil
	}
	return ast.NewString(n.Value), nil
}

// numberLit builds a numeric literal; negative values become a unary minus
// the way the CUE parser represents them.
func numberLit(kind cuetoken.Token, s string) ast.Expr {
	if neg, ok := strings.CutPrefix(s, "-"); ok {
		return &ast.UnaryExpr{Op: cuetoken.SUB, X: ast.NewLit(kind, neg)}
	}
	return ast.NewLit(kind, s)
}
