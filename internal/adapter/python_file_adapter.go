package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// PythonFileAdapter encapsulates Python parsing so the domain layer can
// compare syntax trees without depending on a concrete parser.
type PythonFileAdapter interface {
	// Parse builds a formatting-free syntax tree. Source that does not parse
	// cleanly yields a *model.ParseError.
	Parse(src []byte) (m.SyntaxTree, error)
}

// LocalPythonFileAdapter provides a PythonFileAdapter backed by tree-sitter.
// A parser is created per call, so the adapter is safe for concurrent use.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// skippedTokens are anonymous tokens that carry layout, not meaning.
var skippedTokens = map[string]struct{}{
	"(": {}, ")": {}, "[": {}, "]": {}, "{": {}, "}": {},
	",": {}, ":": {}, ";": {}, "\\": {},
}

// Parse parses src with the tree-sitter Python grammar. Indentation and
// Python 2 forms that the grammar tolerates are rejected the way the
// interpreter rejects them.
func (a *LocalPythonFileAdapter) Parse(src []byte) (m.SyntaxTree, error) {
	if err := checkLayout(src); err != nil {
		return m.SyntaxTree{}, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return m.SyntaxTree{}, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return m.SyntaxTree{}, firstSyntaxError(root)
	}

	if err := findLegacySyntax(root, 0); err != nil {
		return m.SyntaxTree{}, err
	}

	node, _ := convertNode(root, src)

	return m.SyntaxTree{Root: node}, nil
}

// IsParseError reports whether err came from invalid source rather than a
// parser failure.
func IsParseError(err error) bool {
	var pe *m.ParseError

	return errors.As(err, &pe)
}

func convertNode(node *sitter.Node, src []byte) (m.SyntaxNode, bool) {
	kind := node.Type()

	if kind == "comment" {
		return m.SyntaxNode{}, false
	}

	if !node.IsNamed() {
		if _, skip := skippedTokens[kind]; skip {
			return m.SyntaxNode{}, false
		}

		return m.SyntaxNode{Kind: kind}, true
	}

	out := m.SyntaxNode{Kind: kind}

	switch kind {
	case "string":
		out.Value = stringValue(node.Content(src))

		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() != "interpolation" {
				continue
			}

			if converted, ok := convertNode(child, src); ok {
				out.Children = append(out.Children, converted)
			}
		}

		return out, true
	case "parenthesized_expression":
		if inner := soleNamedChild(node); inner != nil {
			return convertNode(inner, src)
		}
	case "function_definition", "class_definition":
		if name := node.ChildByFieldName("name"); name != nil {
			out.Name = name.Content(src)
		}
	}

	if node.ChildCount() == 0 {
		out.Value = node.Content(src)

		return out, true
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if converted, ok := convertNode(node.Child(i), src); ok {
			out.Children = append(out.Children, converted)
		}
	}

	return out, true
}

// soleNamedChild returns the only named child of node, ignoring comments.
func soleNamedChild(node *sitter.Node) *sitter.Node {
	var found *sitter.Node

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		if found != nil {
			return nil
		}

		found = child
	}

	return found
}

// stringValue drops quote style but keeps the prefix letters, so '''x''' and
// "x" compare equal while f"x" and "x" do not.
func stringValue(raw string) string {
	prefixEnd := strings.IndexAny(raw, `'"`)
	if prefixEnd < 0 {
		return raw
	}

	prefix := strings.ToLower(raw[:prefixEnd])
	body := raw[prefixEnd:]

	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(body, quote) && strings.HasSuffix(body, quote) && len(body) >= 2*len(quote) {
			body = body[len(quote) : len(body)-len(quote)]

			break
		}
	}

	return prefix + ":" + body
}

func firstSyntaxError(root *sitter.Node) *m.ParseError {
	if bad := findErrorNode(root, 0); bad != nil {
		point := bad.StartPoint()
		msg := "invalid syntax"

		if bad.IsMissing() {
			msg = fmt.Sprintf("missing %q", bad.Type())
		}

		return &m.ParseError{Line: int(point.Row) + 1, Column: int(point.Column), Message: msg}
	}

	return &m.ParseError{Line: 1, Message: "invalid syntax"}
}

const maxErrorDepth = 1000

func findErrorNode(node *sitter.Node, depth int) *sitter.Node {
	if depth > maxErrorDepth {
		return nil
	}

	if node.IsError() || node.IsMissing() {
		return node
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsMissing() {
			if found := findErrorNode(child, depth+1); found != nil {
				return found
			}
		}
	}

	return nil
}

// findLegacySyntax reports the first Python 2 form or misplaced walrus that
// the grammar parses without an error node.
func findLegacySyntax(node *sitter.Node, depth int) *m.ParseError {
	if depth > maxErrorDepth {
		return nil
	}

	if msg := legacyMessage(node); msg != "" {
		point := node.StartPoint()

		return &m.ParseError{Line: int(point.Row) + 1, Column: int(point.Column), Message: msg}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if err := findLegacySyntax(node.Child(i), depth+1); err != nil {
			return err
		}
	}

	return nil
}

func legacyMessage(node *sitter.Node) string {
	switch node.Type() {
	case "print_statement":
		if !parenthesizedArgument(node) {
			return "Missing parentheses in call to 'print'"
		}
	case "exec_statement":
		return "Missing parentheses in call to 'exec'"
	case "<>":
		if !node.IsNamed() {
			return "invalid syntax"
		}
	case "named_expression":
		parent := node.Parent()
		if parent != nil && (parent.Type() == "expression_statement" || parent.Type() == "assignment") {
			return "invalid syntax"
		}
	}

	return ""
}

// parenthesizedArgument reports whether a print statement is really a call
// written as print(...).
func parenthesizedArgument(node *sitter.Node) bool {
	if node.NamedChildCount() != 1 {
		return false
	}

	switch node.NamedChild(0).Type() {
	case "parenthesized_expression", "tuple", "generator_expression":
		return true
	}

	return false
}
