package ingest

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"
)

// coreFloat is the float form of the YAML 1.2 core schema.
var coreFloat = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

// retypeFloats turns plain scalars the core schema reads as floats, but
// which the decoder would keep as strings (1e3, -2E+5), into float nodes.
// Quoted scalars and explicitly tagged values are left alone.
func retypeFloats(n ast.Node) ast.Node {
	n = plainFloat(n)
	ast.Walk(floatVisitor{}, n)
	return n
}

type floatVisitor struct{}

func (fv floatVisitor) Visit(n ast.Node) ast.Visitor {
	switch n := n.(type) {
	case *ast.SequenceNode:
		for i, e := range n.Values {
			n.Values[i] = plainFloat(e)
		}
	case *ast.MappingValueNode:
		n.Value = plainFloat(n.Value)
	case *ast.AnchorNode:
		n.Value = plainFloat(n.Value)
	}
	return fv
}

func plainFloat(n ast.Node) ast.Node {
	s, ok := n.(*ast.StringNode)
	if !ok || s.Token == nil || s.Token.Type != token.StringType {
		return n
	}
	if !coreFloat.MatchString(s.Value) {
		return n
	}
	f, err := strconv.ParseFloat(s.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return n
	}
	fn := ast.Float(s.Token)
	fn.Value = f
	return fn
}
