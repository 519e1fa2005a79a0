package model

import "fmt"

// SyntaxNode is a formatting-free view of a parsed node: its kind, the literal
// or identifier text for leaves, and the declared name for definitions.
type SyntaxNode struct {
	Kind     string
	Value    string
	Name     string
	Children []SyntaxNode
}

// SyntaxTree is the root of a parsed module.
type SyntaxTree struct {
	Root SyntaxNode
}

// ParseError locates the first syntax problem in a text.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}
