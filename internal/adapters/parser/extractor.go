// Package parser extracts module specifiers from JavaScript sources with tree-sitter.
package parser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImportExtractor = (*Extractor)(nil)

const (
	nodeImportStatement = "import_statement"
	nodeExportStatement = "export_statement"
	nodeCallExpression  = "call_expression"
	nodeIdentifier      = "identifier"
	nodeImport          = "import"
	nodeString          = "string"
	nodeStringFragment  = "string_fragment"

	requireIdent = "require"
)

// Extractor implements ports.ImportExtractor for JavaScript, including JSX and ES modules.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the specifiers of require('x'), import ... from 'x', import 'x',
// export ... from 'x' and import('x'). Calls with a non-literal argument are ignored.
func (e *Extractor) Extract(ctx context.Context, path string, src []byte) ([]string, error) {
	// Parsers are not safe for concurrent use, so each call gets its own.
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse source"), "path", path)
	}
	defer tree.Close()

	return collectSpecifiers(tree.RootNode(), src), nil
}

// collectSpecifiers walks the syntax tree depth-first in source order.
func collectSpecifiers(root *sitter.Node, src []byte) []string {
	var specs []string

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}

		switch node.Type() {
		case nodeImportStatement, nodeExportStatement:
			if source := node.ChildByFieldName("source"); source != nil {
				if spec := stringValue(source, src); spec != "" {
					specs = append(specs, spec)
				}
			}
		case nodeCallExpression:
			if spec, ok := callSpecifier(node, src); ok {
				specs = append(specs, spec)
			}
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, node.Child(i))
		}
	}

	return specs
}

// callSpecifier recognizes require('x') and import('x').
func callSpecifier(call *sitter.Node, src []byte) (string, bool) {
	fn := call.ChildByFieldName("function")
	args := call.ChildByFieldName("arguments")
	if fn == nil || args == nil {
		return "", false
	}

	switch fn.Type() {
	case nodeImport:
	case nodeIdentifier:
		if fn.Content(src) != requireIdent {
			return "", false
		}
	default:
		return "", false
	}

	if args.NamedChildCount() == 0 {
		return "", false
	}
	first := args.NamedChild(0)
	if first == nil || first.Type() != nodeString {
		return "", false
	}

	spec := stringValue(first, src)
	return spec, spec != ""
}

// stringValue returns the contents of a string literal node without its quotes.
func stringValue(node *sitter.Node, src []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child != nil && child.Type() == nodeStringFragment {
			return child.Content(src)
		}
	}
	text := node.Content(src)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return ""
}
