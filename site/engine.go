package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/rgonek/mdhtml/mdconverter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrUnknownEngine is returned by NewEngine for an unsupported name.
var ErrUnknownEngine = errors.New("unknown engine")

const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Engine renders a markdown document to an HTML fragment.
type Engine interface {
	Render(ctx context.Context, markdown, sourcePath string) (string, error)
}

// NewEngine returns the engine registered under name. An empty name
// selects the native engine. basePath is prepended to root-relative link
// and image destinations.
func NewEngine(name string, cfg mdconverter.Config, basePath string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineNative:
		return NewNativeEngine(cfg, basePath)
	case EngineGoldmark:
		return NewGoldmarkEngine(basePath), nil
	default:
		return nil, fmt.Errorf("%w %q (allowed: native, goldmark)", ErrUnknownEngine, name)
	}
}

// NativeEngine renders with mdconverter. Relative links to .md files are
// rewritten to their generated .html pages and root-relative destinations
// get the base path, unless cfg sets its own hooks.
type NativeEngine struct {
	conv *mdconverter.Converter
}

func NewNativeEngine(cfg mdconverter.Config, basePath string) (*NativeEngine, error) {
	if cfg.LinkHook == nil {
		cfg.LinkHook = siteLinkHook(basePath)
	}
	if cfg.ImageHook == nil {
		cfg.ImageHook = siteImageHook(basePath)
	}
	conv, err := mdconverter.New(cfg)
	if err != nil {
		return nil, err
	}
	return &NativeEngine{conv: conv}, nil
}

func (e *NativeEngine) Render(ctx context.Context, markdown, sourcePath string) (string, error) {
	result, err := e.conv.ConvertWithContext(ctx, markdown, mdconverter.ConvertOptions{SourcePath: sourcePath})
	if err != nil {
		return "", err
	}
	for _, w := range result.Warnings {
		logWarning(sourcePath, w)
	}
	return result.HTML, nil
}

// GoldmarkEngine renders GitHub flavored markdown with goldmark. It
// accepts documents the native engine rejects, such as unbalanced
// emphasis or nested lists.
type GoldmarkEngine struct {
	md goldmark.Markdown
}

func NewGoldmarkEngine(basePath string) *GoldmarkEngine {
	return &GoldmarkEngine{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(&destinationTransformer{basePath: basePath}, 100),
				),
			),
		),
	}
}

func (e *GoldmarkEngine) Render(ctx context.Context, markdown, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("goldmark conversion failed: %w", err)
	}
	return buf.String(), nil
}

// destinationTransformer applies the same link and image rewriting as the
// native engine hooks to a goldmark document.
type destinationTransformer struct {
	basePath string
}

func (t *destinationTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			n.Destination = []byte(rewriteLink(string(n.Destination), t.basePath))
		case *ast.Image:
			if dest, ok := PrefixBasePath(string(n.Destination), t.basePath); ok {
				n.Destination = []byte(dest)
			}
		}
		return ast.WalkContinue, nil
	})
}

func siteLinkHook(basePath string) mdconverter.LinkHook {
	return func(_ context.Context, in mdconverter.LinkInput) (mdconverter.LinkOutput, error) {
		dest := rewriteLink(in.Destination, basePath)
		if dest == in.Destination {
			return mdconverter.LinkOutput{}, nil
		}
		return mdconverter.LinkOutput{Destination: dest, Handled: true}, nil
	}
}

func siteImageHook(basePath string) mdconverter.ImageHook {
	return func(_ context.Context, in mdconverter.ImageInput) (mdconverter.ImageOutput, error) {
		src, ok := PrefixBasePath(in.Source, basePath)
		if !ok {
			return mdconverter.ImageOutput{}, nil
		}
		return mdconverter.ImageOutput{Source: src, Handled: true}, nil
	}
}

func rewriteLink(dest, basePath string) string {
	if out, err := RewriteMarkdownLinks(context.Background(), mdconverter.LinkInput{Destination: dest}); err == nil && out.Handled {
		dest = out.Destination
	}
	if prefixed, ok := PrefixBasePath(dest, basePath); ok {
		dest = prefixed
	}
	return dest
}

// PrefixBasePath joins basePath onto a root-relative destination such as
// "/css/site.css". Protocol-relative ("//host/x"), absolute and relative
// destinations are returned unchanged with ok false.
func PrefixBasePath(dest, basePath string) (string, bool) {
	basePath = strings.TrimRight(basePath, "/")
	if basePath == "" || !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return dest, false
	}
	return basePath + dest, true
}

// RewriteMarkdownLinks points relative links at .md files to the .html
// file generated for them. Absolute URLs are left alone.
func RewriteMarkdownLinks(_ context.Context, in mdconverter.LinkInput) (mdconverter.LinkOutput, error) {
	u, err := url.Parse(in.Destination)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return mdconverter.LinkOutput{}, nil
	}
	if path.Ext(u.Path) != ".md" {
		return mdconverter.LinkOutput{}, nil
	}

	u.Path = strings.TrimSuffix(u.Path, ".md") + ".html"
	return mdconverter.LinkOutput{
		Destination: u.String(),
		Handled:     true,
	}, nil
}
