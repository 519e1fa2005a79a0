package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouse-blink/applyeval/internal/adapter"
	m "github.com/mouse-blink/applyeval/internal/model"
)

func newTestStructure() Structure {
	return NewStructure(adapter.NewLocalPythonFileAdapter())
}

func TestStructure_SyntaxValid(t *testing.T) {
	s := newTestStructure()

	ok, msg := s.SyntaxValid("def foo():\n    return 1\n")
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = s.SyntaxValid("x = 1\ndef foo(:\n    return 1\n")
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(msg, "Line "), "message %q", msg)

	ok, _ = s.SyntaxValid("")
	assert.True(t, ok)
}

func TestStructure_SyntaxValid_InterpreterRules(t *testing.T) {
	s := newTestStructure()

	tests := []struct {
		name string
		text string
		want bool
		msg  string
	}{
		{name: "python 2 print", text: "print \"hi\"\n", msg: "Missing parentheses in call to 'print'"},
		{name: "python 2 exec", text: "exec \"x=1\"\n", msg: "Missing parentheses in call to 'exec'"},
		{name: "bad dedent", text: "def f():\n    x = 1\n  return x\n", msg: "unindent does not match"},
		{name: "tabs and spaces", text: "def f():\n\tx = 1\n        return x\n", msg: "inconsistent use of tabs"},
		{name: "bare walrus", text: "x := 1\n", msg: "invalid syntax"},
		{name: "unexpected indent", text: "x = 1\n    y = 2\n", msg: "unexpected indent"},
		{name: "empty body", text: "def foo():\n", msg: "expected an indented block"},
		{name: "backticks", text: "s = `x`\n", msg: "invalid syntax"},
		{name: "diamond", text: "ok = 1 <> 2\n", msg: "invalid syntax"},
		{name: "print call", text: "print(\"hi\")\n", want: true},
		{name: "tab indented", text: "def f():\n\treturn 1\n", want: true},
		{name: "walrus in condition", text: "if (n := 3) > 1:\n    pass\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := s.SyntaxValid(tt.text)
			assert.Equal(t, tt.want, ok, msg)

			if !tt.want {
				assert.True(t, strings.HasPrefix(msg, "Line "), "message %q", msg)
				assert.Contains(t, msg, tt.msg)
			}
		})
	}
}

func TestStructure_FunctionPreserved(t *testing.T) {
	s := newTestStructure()

	tests := []struct {
		name string
		text string
		fn   string
		want bool
	}{
		{name: "top level", text: "def foo():\n    pass\n", fn: "foo", want: true},
		{name: "async", text: "async def foo():\n    pass\n", fn: "foo", want: true},
		{name: "method", text: "class A:\n    def foo(self):\n        pass\n", fn: "foo", want: true},
		{name: "decorated", text: "@wraps\ndef foo():\n    pass\n", fn: "foo", want: true},
		{name: "nested", text: "def outer():\n    def foo():\n        pass\n    return foo\n", fn: "foo", want: true},
		{name: "only a call", text: "foo()\n", fn: "foo", want: false},
		{name: "class with the name", text: "class foo:\n    pass\n", fn: "foo", want: false},
		{name: "unparseable", text: "def foo(:\n    pass\n", fn: "foo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.FunctionPreserved(tt.text, tt.fn))
		})
	}
}

func TestStructure_SemanticSimilarity(t *testing.T) {
	s := newTestStructure()

	base := "def foo(a, b):\n    return a + b\n"

	assert.InDelta(t, 1.0, s.SemanticSimilarity(base, base), 1e-9)
	assert.InDelta(t, 1.0, s.SemanticSimilarity(base, "def foo(a,b):\n    # add\n    return a+b\n"), 1e-9,
		"comments and layout are ignored")
	assert.InDelta(t, 1.0, s.SemanticSimilarity("x = 'hi'\n", "x = \"hi\"\n"), 1e-9, "quote style is ignored")
	assert.InDelta(t, 0.0, s.SemanticSimilarity(base, "def foo(:\n"), 1e-9)
	assert.InDelta(t, 0.0, s.SemanticSimilarity("def foo(:\n", base), 1e-9)

	assert.InDelta(t, 1.0, s.SemanticSimilarity(base, "def foo(a, b):\n    return (a + b)\n"), 1e-9,
		"redundant parentheses are ignored")

	assert.InDelta(t, 0.0, s.SemanticSimilarity(base, "def foo(a, b):\n    return a - b\n"), 1e-9,
		"a changed top-level statement earns no credit")

	partial := "import os\n\ndef foo(a, b):\n    return a - b\n"
	assert.InDelta(t, 0.5, s.SemanticSimilarity("import os\n\n"+base, partial), 1e-9)
	assert.InDelta(t, 2.0/3.0, s.SemanticSimilarity("import os\n", "import os\n\n"+base), 1e-9)
}

func TestStructure_SemanticSimilarity_Unrelated(t *testing.T) {
	s := newTestStructure()

	tests := []struct {
		name string
		a    string
		b    string
		max  float64
	}{
		{name: "assignment vs import", a: "x = 1\n", b: "import os\n", max: 0.2},
		{name: "def vs class", a: "def foo():\n    return 1\n", b: "class Foo:\n    pass\n", max: 0.2},
		{
			name: "def vs loop",
			a:    "def add(a, b):\n    return a + b\n",
			b:    "while True:\n    break\n",
			max:  0.2,
		},
		{name: "literal change", a: "def foo():\n    return 1\n", b: "def foo():\n    return 2\n", max: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Less(t, s.SemanticSimilarity(tt.a, tt.b), tt.max)
			assert.Less(t, s.SemanticSimilarity(tt.b, tt.a), tt.max)
		})
	}
}

func TestStructure_SemanticSimilarity_Symmetric(t *testing.T) {
	s := newTestStructure()

	texts := []string{
		"def foo(a, b):\n    return a + b\n",
		"def foo(a, b):\n    total = a + b\n    return total\n",
		"class A:\n    def foo(self):\n        return [i * 2 for i in range(10)]\n",
		"import os\nprint(os.getcwd())\n",
		"",
	}

	for _, a := range texts {
		for _, b := range texts {
			ab := s.SemanticSimilarity(a, b)
			ba := s.SemanticSimilarity(b, a)

			assert.InDelta(t, ab, ba, 1e-12, "%q vs %q", a, b)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}

func TestSemanticSimilarity_SizeDisparity(t *testing.T) {
	s := newTestStructure()

	small := "def foo():\n    return 1\n"

	var sb strings.Builder
	sb.WriteString("def foo():\n")

	for i := range 30 {
		sb.WriteString("    x")
		sb.WriteString(strings.Repeat("x", i))
		sb.WriteString(" = compute(")
		sb.WriteString(strings.Repeat("1", i+1))
		sb.WriteString(")\n")
	}

	sb.WriteString("    return 1\n")

	assert.Less(t, s.SemanticSimilarity(small, sb.String()), 0.3)
}

func TestCanonicalDump(t *testing.T) {
	node := m.SyntaxNode{
		Kind: "module",
		Children: []m.SyntaxNode{
			{Kind: "expression_statement", Children: []m.SyntaxNode{{Kind: "integer", Value: "1"}}},
			{Kind: "pass_statement"},
		},
	}

	assert.Equal(t, []string{"module(", "expression_statement(", "integer=1", ")", "pass_statement", ")"}, CanonicalDump(node))
}

func TestTreeSimilarity(t *testing.T) {
	stmt := func(kind, value string) m.SyntaxNode {
		return m.SyntaxNode{Kind: "expression_statement", Children: []m.SyntaxNode{{Kind: kind, Value: value}}}
	}
	module := func(children ...m.SyntaxNode) m.SyntaxNode {
		return m.SyntaxNode{Kind: "module", Children: children}
	}

	one, two, three := stmt("integer", "1"), stmt("integer", "2"), stmt("integer", "3")

	assert.InDelta(t, 1.0, TreeSimilarity(module(), module()), 1e-9)
	assert.InDelta(t, 1.0, TreeSimilarity(module(one, two), module(one, two)), 1e-9)
	assert.InDelta(t, 0.0, TreeSimilarity(module(one), module(two)), 1e-9)
	assert.InDelta(t, 0.0, TreeSimilarity(module(), module(one)), 1e-9)
	assert.InDelta(t, 0.5, TreeSimilarity(module(one, two), module(one, three)), 1e-9)
	assert.InDelta(t, 0.8, TreeSimilarity(module(two, one), module(one, two, three)), 1e-9, "order does not matter")
	assert.InDelta(t, 0.5, TreeSimilarity(module(one, one), module(one, two)), 1e-9, "duplicates match once")
}
