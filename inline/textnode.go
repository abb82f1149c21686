// Package inline tokenizes the inline content of a markdown block into
// typed text spans.
package inline

import "fmt"

// Kind identifies the styling carried by a TextNode.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// HasURL reports whether nodes of this kind carry a URL.
func (k Kind) HasURL() bool {
	return k == Link || k == Image
}

// TextNode is a run of text with a single styling kind.
// URL is set only for Link and Image nodes.
type TextNode struct {
	Text string
	Kind Kind
	URL  string
}

// Text returns a Plain node.
func Text(text string) TextNode {
	return TextNode{Text: text, Kind: Plain}
}

// Styled returns a node of a kind that carries no URL.
func Styled(text string, kind Kind) TextNode {
	return TextNode{Text: text, Kind: kind}
}

// LinkTo returns a Link node.
func LinkTo(label, url string) TextNode {
	return TextNode{Text: label, Kind: Link, URL: url}
}

// ImageOf returns an Image node whose text is the alt label.
func ImageOf(alt, url string) TextNode {
	return TextNode{Text: alt, Kind: Image, URL: url}
}

func (n TextNode) String() string {
	if n.Kind.HasURL() {
		return fmt.Sprintf("TextNode(%q, %s, %q)", n.Text, n.Kind, n.URL)
	}
	return fmt.Sprintf("TextNode(%q, %s)", n.Text, n.Kind)
}
