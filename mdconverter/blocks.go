package mdconverter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgonek/mdhtml/block"
	"github.com/rgonek/mdhtml/htmlnode"
)

// ErrUnknownBlockType is returned for a block whose type has no HTML
// mapping.
var ErrUnknownBlockType = errors.New("unknown block type")

const maxHeadingLevel = 6

// BlockToHTML converts a classified block with the default configuration.
func BlockToHTML(b block.Block) (htmlnode.Node, error) {
	return defaultState().convertBlock(b)
}

func (s *state) convertBlock(b block.Block) (htmlnode.Node, error) {
	switch b.Type {
	case block.Heading:
		return s.convertHeading(b.Source)
	case block.Code:
		return s.convertCode(b.Source), nil
	case block.Quote:
		return s.convertQuote(b.Source)
	case block.UnorderedList:
		return s.convertUnorderedList(b.Source)
	case block.OrderedList:
		return s.convertOrderedList(b.Source)
	case block.Paragraph:
		return s.convertParagraph(b.Source)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlockType, b.Type)
	}
}

func (s *state) convertHeading(source string) (htmlnode.Node, error) {
	hashes := 0
	for hashes < len(source) && source[hashes] == '#' {
		hashes++
	}

	level := min(hashes, maxHeadingLevel) + s.config.HeadingOffset
	if level < 1 || level > maxHeadingLevel {
		clamped := max(1, min(level, maxHeadingLevel))
		s.addWarning(
			WarningHeadingClamped,
			"heading",
			fmt.Sprintf("heading level %d clamped to %d", level, clamped),
		)
		level = clamped
	}

	children, err := s.convertInline(strings.TrimSpace(source[hashes:]))
	if err != nil {
		return nil, err
	}

	return htmlnode.NewParent(fmt.Sprintf("h%d", level), children), nil
}

// convertCode keeps the fenced body verbatim; inline markup is not
// interpreted inside code.
func (s *state) convertCode(source string) htmlnode.Node {
	if s.config.CodeLanguage == CodeLanguageClass {
		return s.convertAnnotatedCode(source)
	}

	body := strings.TrimPrefix(strings.TrimPrefix(source, block.Fence), "\n")
	if end := strings.LastIndex(body, "\n"); end >= 0 {
		body = body[:end+1]
	} else {
		body = ""
	}

	return htmlnode.NewParent("pre", []htmlnode.Node{htmlnode.NewLeaf("code", body)})
}

func (s *state) convertAnnotatedCode(source string) htmlnode.Node {
	lines := strings.Split(source, "\n")
	info := strings.TrimSpace(strings.TrimPrefix(lines[0], block.Fence))

	var body string
	if len(lines) > 2 {
		body = strings.Join(lines[1:len(lines)-1], "\n") + "\n"
	}

	code := htmlnode.NewLeaf("code", body)
	if info != "" {
		language := strings.Fields(info)[0]
		if mapped, ok := s.config.LanguageMap[language]; ok {
			language = mapped
		}
		code.Attrs = code.Attrs.With("class", s.config.LanguagePrefix+language)
	}

	return htmlnode.NewParent("pre", []htmlnode.Node{code})
}

func (s *state) convertQuote(source string) (htmlnode.Node, error) {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, ">")
		lines[i] = strings.TrimPrefix(line, " ")
	}

	children, err := s.convertInline(strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}

	return htmlnode.NewParent("blockquote", children), nil
}

func (s *state) convertParagraph(source string) (htmlnode.Node, error) {
	text := strings.ReplaceAll(strings.TrimSpace(source), "\n", " ")

	children, err := s.convertInline(text)
	if err != nil {
		return nil, err
	}

	return htmlnode.NewParent("p", children), nil
}
