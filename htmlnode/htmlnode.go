// Package htmlnode is a minimal HTML tree that renders to markup.
//
// A tree is built from two node variants: Leaf, which carries inline
// content, and Parent, which carries an ordered list of children.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingValue is returned when a leaf has no value to render.
	ErrMissingValue = errors.New("leaf node missing value")
	// ErrMissingTag is returned when a parent node has no tag.
	ErrMissingTag = errors.New("parent node missing tag")
	// ErrMissingChildren is returned when a parent node has no children.
	ErrMissingChildren = errors.New("parent node missing children")
	// ErrUnexpectedValue is returned when an img leaf carries a value.
	ErrUnexpectedValue = errors.New("img leaf cannot have a value")
)

// ImageTag is the only leaf tag allowed to render without a value. It is a
// void element, so an img leaf must not carry one either.
const ImageTag = "img"

// Node is implemented by *Leaf and *Parent only.
type Node interface {
	Render() (string, error)
	node()
}

// Attribute is a single key="value" pair.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute list. Rendering keeps insertion order.
type Attributes []Attribute

// Get returns the value stored for key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// With returns a copy of a with key set to value. An existing key keeps
// its position.
func (a Attributes) With(key, value string) Attributes {
	out := make(Attributes, 0, len(a)+1)
	replaced := false
	for _, attr := range a {
		if attr.Key == key {
			attr.Value = value
			replaced = true
		}
		out = append(out, attr)
	}
	if !replaced {
		out = append(out, Attribute{Key: key, Value: value})
	}
	return out
}

func (a Attributes) render(sb *strings.Builder) {
	for _, attr := range a {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
}

// Leaf is a node without children. An empty Tag renders Value unwrapped.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes
}

// NewLeaf returns a tagged leaf.
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// NewText returns an untagged leaf.
func NewText(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewImage returns an img leaf. The alt text lives in an attribute so the
// leaf has no value.
func NewImage(src, alt string) *Leaf {
	return &Leaf{
		Tag: ImageTag,
		Attrs: Attributes{
			{Key: "src", Value: src},
			{Key: "alt", Value: alt},
		},
	}
}

func (*Leaf) node() {}

// Render returns the markup for the leaf.
func (l *Leaf) Render() (string, error) {
	if l.Tag == ImageTag {
		if l.Value != "" {
			return "", fmt.Errorf("<%s>: %w", ImageTag, ErrUnexpectedValue)
		}
		var sb strings.Builder
		sb.WriteString("<" + ImageTag)
		l.Attrs.render(&sb)
		sb.WriteByte('>')
		return sb.String(), nil
	}
	if l.Value == "" {
		if l.Tag == "" {
			return "", ErrMissingValue
		}
		return "", fmt.Errorf("<%s>: %w", l.Tag, ErrMissingValue)
	}
	if l.Tag == "" {
		return l.Value, nil
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(l.Tag)
	l.Attrs.render(&sb)
	sb.WriteByte('>')
	sb.WriteString(l.Value)
	sb.WriteString("</" + l.Tag + ">")
	return sb.String(), nil
}

func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q, %v)", l.Tag, l.Value, l.Attrs)
}

// Parent is a tagged node with an ordered, non-empty list of children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent returns a parent node.
func NewParent(tag string, children []Node, attrs ...Attribute) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

func (*Parent) node() {}

// Render returns the markup for the parent and all of its descendants.
// The first failing child aborts the render.
func (p *Parent) Render() (string, error) {
	if p.Tag == "" {
		return "", ErrMissingTag
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("<%s>: %w", p.Tag, ErrMissingChildren)
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(p.Tag)
	p.Attrs.render(&sb)
	sb.WriteByte('>')
	for _, child := range p.Children {
		if child == nil {
			return "", fmt.Errorf("<%s>: nil child", p.Tag)
		}
		html, err := child.Render()
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	sb.WriteString("</" + p.Tag + ">")
	return sb.String(), nil
}

func (p *Parent) String() string {
	return fmt.Sprintf("Parent(%q, %d children, %v)", p.Tag, len(p.Children), p.Attrs)
}
