// Package block splits a markdown document into blocks and classifies
// each one.
package block

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator is the only recognized block boundary.
const Separator = "\n\n"

// Fence opens and closes a code block.
const Fence = "```"

// Type is the block-level category of a block.
type Type int

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("block(%d)", int(t))
	}
}

// Block is a classified block. Level is the heading level for Heading
// blocks and zero otherwise.
type Block struct {
	Type   Type
	Level  int
	Source string
}

// Segment splits document on blank lines, trims each piece and drops the
// empty ones.
func Segment(document string) []string {
	var blocks []string
	for _, piece := range strings.Split(document, Separator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		blocks = append(blocks, piece)
	}
	return blocks
}

// Parse segments document and classifies every block in order.
func Parse(document string) []Block {
	sources := Segment(document)
	blocks := make([]Block, 0, len(sources))
	for _, source := range sources {
		blocks = append(blocks, Classify(source))
	}
	return blocks
}

// Classify assigns a block type to source. Rules are tried in a fixed
// order and the first match wins. Once a block looks like a quote or a
// list, any non-conforming line makes it a paragraph.
func Classify(source string) Block {
	if level := HeadingLevel(source); level > 0 {
		return Block{Type: Heading, Level: level, Source: source}
	}

	lines := strings.Split(source, "\n")

	if isCode(lines) {
		return Block{Type: Code, Source: source}
	}

	switch {
	case strings.HasPrefix(lines[0], ">"):
		return Block{Type: allLines(lines, isQuoteLine, Quote), Source: source}
	case strings.HasPrefix(lines[0], "- "):
		return Block{Type: allLines(lines, isUnorderedLine, UnorderedList), Source: source}
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, OrderedMarker(i+1)) {
			return Block{Type: Paragraph, Source: source}
		}
	}
	return Block{Type: OrderedList, Source: source}
}

// HeadingLevel returns the heading level of line when it starts with one
// to six '#' characters followed by a space, and zero otherwise.
func HeadingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// OrderedMarker returns the list marker for the n-th ordered item.
func OrderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

func isCode(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	return strings.HasPrefix(lines[0], Fence) && strings.HasPrefix(lines[len(lines)-1], Fence)
}

func isQuoteLine(line string) bool {
	return strings.HasPrefix(line, ">")
}

func isUnorderedLine(line string) bool {
	return strings.HasPrefix(line, "- ")
}

func allLines(lines []string, match func(string) bool, t Type) Type {
	for _, line := range lines {
		if !match(line) {
			return Paragraph
		}
	}
	return t
}
