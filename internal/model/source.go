// Package model defines the data structures for apply evaluation.
package model

import "strings"

// Path represents a file system path.
type Path string

// File represents a source file on disk.
type File struct {
	Path Path
	Hash string
}

// SourceText is an immutable, ordered sequence of lines. Every line keeps its
// terminator so joining the lines reproduces the original text byte for byte.
type SourceText struct {
	lines []string
}

// NewSourceText splits text into lines, keeping line endings. A trailing
// line without terminator is kept as the last line.
func NewSourceText(text string) SourceText {
	if text == "" {
		return SourceText{}
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return SourceText{lines: lines}
}

// Len returns the number of lines.
func (s SourceText) Len() int {
	return len(s.lines)
}

// Line returns line i including its terminator.
func (s SourceText) Line(i int) string {
	return s.lines[i]
}

// Lines returns a copy of the lines.
func (s SourceText) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)

	return out
}

// Slice joins lines [from, to).
func (s SourceText) Slice(from, to int) string {
	return strings.Join(s.lines[from:to], "")
}

// String rejoins all lines.
func (s SourceText) String() string {
	return strings.Join(s.lines, "")
}

// SplitLines returns the lines of text without terminators, the way a
// line-oriented diff tool would see them.
func SplitLines(text string) []string {
	src := NewSourceText(text)
	out := make([]string, 0, src.Len())

	for _, line := range src.lines {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		out = append(out, line)
	}

	return out
}
