package adapter

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/applyeval/internal/model"
)

const tabSize = 8

const inconsistentTabs = "inconsistent use of tabs and spaces in indentation"

// layoutScanner replays the indentation rules of the Python tokenizer over
// logical lines. Tree-sitter recovers from layout mistakes that the
// interpreter rejects, so they are checked before the grammar runs.
type layoutScanner struct {
	// indents holds the open block columns with tabs advancing to the next
	// multiple of tabSize; altIndents counts every tab as one column. The two
	// stacks must order every line the same way.
	indents    []int
	altIndents []int

	brackets []openBracket

	// quote is the closing delimiter of the string being scanned.
	quote     string
	quoteLine int

	continued  bool
	last       byte
	opensBlock bool
	blockLine  int
}

type openBracket struct {
	char byte
	line int
	col  int
}

// checkLayout returns the first indentation, bracket or string literal
// error of src, or nil.
func checkLayout(src []byte) *m.ParseError {
	s := &layoutScanner{indents: []int{0}, altIndents: []int{0}}

	for i, line := range strings.Split(string(src), "\n") {
		if err := s.scanLine(strings.TrimSuffix(line, "\r"), i+1); err != nil {
			return err
		}
	}

	return s.finish()
}

func layoutError(line, col int, msg string) *m.ParseError {
	return &m.ParseError{Line: line, Column: col, Message: msg}
}

func (s *layoutScanner) atLogicalStart() bool {
	return s.quote == "" && len(s.brackets) == 0 && !s.continued
}

func (s *layoutScanner) scanLine(line string, lineNo int) *m.ParseError {
	pos := 0

	if s.atLogicalStart() {
		col, altCol, width := measureIndent(line)

		rest := line[width:]
		if rest == "" || rest[0] == '#' {
			return nil
		}

		if err := s.indent(col, altCol, lineNo); err != nil {
			return err
		}

		pos = width
	}

	s.continued = false

	if err := s.scanTokens(line, pos, lineNo); err != nil {
		return err
	}

	if s.atLogicalStart() {
		s.opensBlock = s.last == ':'
		s.blockLine = lineNo
		s.last = 0
	}

	return nil
}

func measureIndent(line string) (col, altCol, width int) {
	for ; width < len(line); width++ {
		switch line[width] {
		case ' ':
			col++
			altCol++
		case '\t':
			col = (col/tabSize + 1) * tabSize
			altCol++
		case '\f':
			col, altCol = 0, 0
		default:
			return col, altCol, width
		}
	}

	return col, altCol, width
}

func (s *layoutScanner) indent(col, altCol, lineNo int) *m.ParseError {
	expected := s.opensBlock
	s.opensBlock = false

	top := len(s.indents) - 1

	switch {
	case col > s.indents[top]:
		if !expected {
			return layoutError(lineNo, col, "unexpected indent")
		}

		if altCol <= s.altIndents[top] {
			return layoutError(lineNo, col, inconsistentTabs)
		}

		s.indents = append(s.indents, col)
		s.altIndents = append(s.altIndents, altCol)
	case expected:
		return layoutError(lineNo, col, fmt.Sprintf("expected an indented block after line %d", s.blockLine))
	case col == s.indents[top]:
		if altCol != s.altIndents[top] {
			return layoutError(lineNo, col, inconsistentTabs)
		}
	default:
		for top > 0 && col < s.indents[top] {
			top--
		}

		s.indents = s.indents[:top+1]
		s.altIndents = s.altIndents[:top+1]

		if col != s.indents[top] {
			return layoutError(lineNo, col, "unindent does not match any outer indentation level")
		}

		if altCol != s.altIndents[top] {
			return layoutError(lineNo, col, inconsistentTabs)
		}
	}

	return nil
}

func (s *layoutScanner) scanTokens(line string, pos, lineNo int) *m.ParseError {
	for i := pos; i < len(line); {
		if s.quote != "" {
			next, err := s.scanString(line, i)
			if err != nil {
				return err
			}

			i = next

			continue
		}

		c := line[i]

		switch c {
		case '#':
			return nil
		case '\\':
			if i == len(line)-1 {
				s.continued = true
				return nil
			}

			return layoutError(lineNo, i, "unexpected character after line continuation character")
		case '"', '\'':
			s.quote = string(c)
			if strings.HasPrefix(line[i:], strings.Repeat(string(c), 3)) {
				s.quote = strings.Repeat(string(c), 3)
			}

			s.quoteLine = lineNo
			s.last = c
			i += len(s.quote)

			continue
		case '`':
			return layoutError(lineNo, i, "invalid syntax")
		case '(', '[', '{':
			s.brackets = append(s.brackets, openBracket{char: c, line: lineNo, col: i})
		case ')', ']', '}':
			if len(s.brackets) == 0 {
				return layoutError(lineNo, i, fmt.Sprintf("unmatched '%c'", c))
			}

			open := s.brackets[len(s.brackets)-1]
			if closing(open.char) != c {
				return layoutError(lineNo, i,
					fmt.Sprintf("closing parenthesis '%c' does not match opening parenthesis '%c'", c, open.char))
			}

			s.brackets = s.brackets[:len(s.brackets)-1]
		}

		if c != ' ' && c != '\t' && c != '\f' {
			s.last = c
		}

		i++
	}

	return nil
}

// scanString advances through the open string literal and returns the index
// after its closing delimiter, or len(line) when the literal continues on
// the next line.
func (s *layoutScanner) scanString(line string, i int) (int, *m.ParseError) {
	for i < len(line) {
		switch {
		case line[i] == '\\':
			i += 2
		case strings.HasPrefix(line[i:], s.quote):
			i += len(s.quote)
			s.quote = ""

			return i, nil
		default:
			i++
		}
	}

	// A backslash as the last character escapes the newline.
	escapedNewline := i > len(line)
	if len(s.quote) == 1 && !escapedNewline {
		return i, layoutError(s.quoteLine, 0, "unterminated string literal")
	}

	return len(line), nil
}

func (s *layoutScanner) finish() *m.ParseError {
	switch {
	case len(s.quote) == 3:
		return layoutError(s.quoteLine, 0, "unterminated triple-quoted string literal")
	case s.quote != "":
		return layoutError(s.quoteLine, 0, "unterminated string literal")
	case len(s.brackets) > 0:
		open := s.brackets[len(s.brackets)-1]
		return layoutError(open.line, open.col, fmt.Sprintf("'%c' was never closed", open.char))
	case s.opensBlock:
		return layoutError(s.blockLine+1, 0, fmt.Sprintf("expected an indented block after line %d", s.blockLine))
	}

	return nil
}

func closing(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}
