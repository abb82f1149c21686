// Package mdconverter converts markdown documents to an htmlnode tree.
package mdconverter

import (
	"context"
	"fmt"

	"github.com/rgonek/mdhtml/block"
	"github.com/rgonek/mdhtml/htmlnode"
)

// Converter converts markdown to HTML.
type Converter struct {
	config Config
}

type state struct {
	ctx        context.Context
	config     Config
	sourcePath string
	warnings   []Warning
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{config: cfg}, nil
}

// Convert takes a markdown document and returns rendered HTML.
func (c *Converter) Convert(markdown string) (Result, error) {
	return c.ConvertWithContext(context.Background(), markdown, ConvertOptions{})
}

// ConvertWithContext is Convert with a context passed to hooks and
// checked between blocks.
func (c *Converter) ConvertWithContext(ctx context.Context, markdown string, opts ConvertOptions) (Result, error) {
	root, warnings, err := c.ConvertTree(ctx, markdown, opts)
	if err != nil {
		return Result{}, err
	}

	html, err := root.Render()
	if err != nil {
		return Result{}, fmt.Errorf("failed to render HTML: %w", err)
	}

	return Result{
		HTML:     html,
		Warnings: warnings,
	}, nil
}

// ConvertTree builds the HTML tree for markdown without rendering it.
func (c *Converter) ConvertTree(ctx context.Context, markdown string, opts ConvertOptions) (*htmlnode.Parent, []Warning, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &state{
		ctx:        ctx,
		config:     c.config,
		sourcePath: opts.SourcePath,
	}

	root, err := s.convertDocument(markdown)
	if err != nil {
		return nil, nil, err
	}
	return root, s.warnings, nil
}

// MarkdownToHTML converts document with the default configuration and
// returns the root container node.
func MarkdownToHTML(document string) (*htmlnode.Parent, error) {
	return defaultState().convertDocument(document)
}

func defaultState() *state {
	return &state{
		ctx:    context.Background(),
		config: Config{}.applyDefaults(),
	}
}

func (s *state) convertDocument(document string) (*htmlnode.Parent, error) {
	blocks := block.Parse(document)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		if err := s.checkContext(); err != nil {
			return nil, err
		}

		node, err := s.convertBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Type, err)
		}
		children = append(children, node)
	}

	return htmlnode.NewParent(s.config.RootTag, children), nil
}

func (s *state) checkContext() error {
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("conversion canceled: %w", err)
	}
	return nil
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}
