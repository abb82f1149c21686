package mdconverter

import (
	"errors"
	"fmt"

	"github.com/rgonek/mdhtml/htmlnode"
	"github.com/rgonek/mdhtml/inline"
)

// ErrUnknownTextType is returned for a text node whose kind has no HTML
// mapping.
var ErrUnknownTextType = errors.New("unknown text type")

// TextNodeToHTML maps a text node to its leaf HTML node.
func TextNodeToHTML(n inline.TextNode) (htmlnode.Node, error) {
	switch n.Kind {
	case inline.Plain:
		return htmlnode.NewText(n.Text), nil
	case inline.Bold:
		return htmlnode.NewLeaf("b", n.Text), nil
	case inline.Italic:
		return htmlnode.NewLeaf("i", n.Text), nil
	case inline.Code:
		return htmlnode.NewLeaf("code", n.Text), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", n.Text, htmlnode.Attribute{Key: "href", Value: n.URL}), nil
	case inline.Image:
		return htmlnode.NewImage(n.URL, n.Text), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTextType, n.Kind)
	}
}

// convertInline tokenizes text and maps every span to a leaf, running
// link and image hooks on the way.
func (s *state) convertInline(text string) ([]htmlnode.Node, error) {
	textNodes, err := inline.TextToNodes(text)
	if err != nil {
		return nil, err
	}

	children := make([]htmlnode.Node, 0, len(textNodes))
	for _, n := range textNodes {
		n, err = s.resolveReference(n)
		if err != nil {
			return nil, err
		}

		child, err := TextNodeToHTML(n)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

func (s *state) resolveReference(n inline.TextNode) (inline.TextNode, error) {
	switch n.Kind {
	case inline.Link:
		out, ok, err := s.applyLinkHook(LinkInput{
			SourcePath:  s.sourcePath,
			Destination: n.URL,
			Text:        n.Text,
		})
		if err != nil || !ok {
			return n, err
		}
		return inline.LinkTo(n.Text, out.Destination), nil

	case inline.Image:
		out, ok, err := s.applyImageHook(ImageInput{
			SourcePath: s.sourcePath,
			Source:     n.URL,
			Alt:        n.Text,
		})
		if err != nil || !ok {
			return n, err
		}
		alt := n.Text
		if out.Alt != "" {
			alt = out.Alt
		}
		return inline.ImageOf(alt, out.Source), nil
	}

	return n, nil
}
