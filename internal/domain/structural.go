package domain

import (
	"fmt"
	"slices"

	"github.com/mouse-blink/applyeval/internal/adapter"
	m "github.com/mouse-blink/applyeval/internal/model"
)

// Structure compares texts through their syntax trees. All methods are
// total: a text that does not parse is a normal outcome, not an error.
type Structure interface {
	// SyntaxValid reports whether text parses; on failure the message reads
	// "Line N: msg".
	SyntaxValid(text string) (bool, string)
	// FunctionPreserved reports whether a function or method named name is
	// defined anywhere in text.
	FunctionPreserved(text, name string) bool
	// SemanticSimilarity scores how alike the syntax trees of a and b are, in
	// [0, 1]. It is 0 when either side fails to parse.
	SemanticSimilarity(a, b string) float64
}

type structure struct {
	parser adapter.PythonFileAdapter
}

// NewStructure creates a Structure backed by parser.
func NewStructure(parser adapter.PythonFileAdapter) Structure {
	return &structure{parser: parser}
}

func (s *structure) SyntaxValid(text string) (bool, string) {
	if _, err := s.parser.Parse([]byte(text)); err != nil {
		return false, err.Error()
	}

	return true, ""
}

func (s *structure) FunctionPreserved(text, name string) bool {
	tree, err := s.parser.Parse([]byte(text))
	if err != nil {
		return false
	}

	return definesFunction(tree.Root, name)
}

func (s *structure) SemanticSimilarity(a, b string) float64 {
	treeA, err := s.parser.Parse([]byte(a))
	if err != nil {
		return 0.0
	}

	treeB, err := s.parser.Parse([]byte(b))
	if err != nil {
		return 0.0
	}

	return TreeSimilarity(treeA.Root, treeB.Root)
}

func definesFunction(node m.SyntaxNode, name string) bool {
	if node.Kind == "function_definition" && node.Name == name {
		return true
	}

	for _, child := range node.Children {
		if definesFunction(child, name) {
			return true
		}
	}

	return false
}

// CanonicalDump flattens a syntax tree into an order-preserving token list.
// Inner nodes open with "kind(" and close with ")"; leaves render as "kind"
// or "kind=value".
func CanonicalDump(node m.SyntaxNode) []string {
	var tokens []string

	dumpNode(node, &tokens)

	return tokens
}

func dumpNode(node m.SyntaxNode, tokens *[]string) {
	head := node.Kind
	if node.Value != "" {
		head += "=" + node.Value
	}

	if len(node.Children) == 0 {
		*tokens = append(*tokens, head)

		return
	}

	*tokens = append(*tokens, head+"(")
	for _, child := range node.Children {
		dumpNode(child, tokens)
	}

	*tokens = append(*tokens, ")")
}

// TreeSimilarity scores two module trees. Identical dumps score 1.0.
// Otherwise each top-level statement earns credit only when the other tree
// holds a statement with the same dump, counted as a multiset:
// 2*matched / (len(a) + len(b)).
func TreeSimilarity(a, b m.SyntaxNode) float64 {
	if slices.Equal(CanonicalDump(a), CanonicalDump(b)) {
		return 1.0
	}

	total := len(a.Children) + len(b.Children)
	if total == 0 {
		return 0.0
	}

	counts := make(map[string]int, len(a.Children))
	for _, stmt := range a.Children {
		counts[statementKey(stmt)]++
	}

	matched := 0

	for _, stmt := range b.Children {
		key := statementKey(stmt)
		if counts[key] > 0 {
			counts[key]--
			matched++
		}
	}

	return float64(2*matched) / float64(total)
}

func statementKey(stmt m.SyntaxNode) string {
	return fmt.Sprintf("%q", CanonicalDump(stmt))
}
