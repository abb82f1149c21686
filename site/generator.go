// Package site builds a static site from a tree of markdown pages.
package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rgonek/mdhtml/mdconverter"
)

const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"

	filePermissions = 0o644
)

var templateURLRe = regexp.MustCompile(`(\s)(href|src)="([^"]*)"`)

// Generator renders markdown pages into an HTML template.
type Generator struct {
	Engine  Engine
	Workers int
	// BasePath prefixes root-relative URLs in the template. It should
	// match the base path the engine was built with.
	BasePath string
}

// NewGenerator returns a Generator using engine. Workers below one
// default to GOMAXPROCS.
func NewGenerator(engine Engine, workers int, basePath string) *Generator {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		Engine:   engine,
		Workers:  workers,
		BasePath: basePath,
	}
}

// GeneratePage renders the markdown file at from into the template at
// templatePath and writes the result to dest.
func (g *Generator) GeneratePage(ctx context.Context, from, templatePath, dest string) error {
	tmpl, err := g.readTemplate(templatePath)
	if err != nil {
		return err
	}
	return g.generatePage(ctx, from, tmpl, dest)
}

// GenerateTree renders every .md file under contentDir to the matching
// .html path under destDir. Pages are rendered concurrently and the first
// failure cancels the rest.
func (g *Generator) GenerateTree(ctx context.Context, contentDir, templatePath, destDir string) error {
	tmpl, err := g.readTemplate(templatePath)
	if err != nil {
		return err
	}

	pages, err := findPages(contentDir)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(g.Workers, 1))

	for _, rel := range pages {
		from := filepath.Join(contentDir, rel)
		dest := filepath.Join(destDir, strings.TrimSuffix(rel, ".md")+".html")
		group.Go(func() error {
			return g.generatePage(ctx, from, tmpl, dest)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info().
		Int("pages", len(pages)).
		Str("dest", destDir).
		Msg("Generated site")

	return nil
}

func (g *Generator) generatePage(ctx context.Context, from, tmpl, dest string) error {
	log.Info().
		Str("from", from).
		Str("dest", dest).
		Msg("Generating page")

	markdown, err := os.ReadFile(from) // #nosec G304 -- walking the configured content tree
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", from, err)
	}

	title, err := ExtractTitle(string(markdown))
	if err != nil {
		return fmt.Errorf("%s: %w", from, err)
	}

	content, err := g.Engine.Render(ctx, string(markdown), from)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", from, err)
	}

	page := strings.ReplaceAll(tmpl, TitlePlaceholder, title)
	page = strings.ReplaceAll(page, ContentPlaceholder, content)

	if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	return nil
}

// readTemplate loads the page template with the base path already applied
// to its own root-relative href and src attributes. Rendered content gets
// the base path from the engine instead.
func (g *Generator) readTemplate(templatePath string) (string, error) {
	tmpl, err := os.ReadFile(templatePath) // #nosec G304 -- template path comes from configuration
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}
	return applyBasePath(string(tmpl), g.BasePath), nil
}

func applyBasePath(tmpl, basePath string) string {
	return templateURLRe.ReplaceAllStringFunc(tmpl, func(attr string) string {
		m := templateURLRe.FindStringSubmatch(attr)
		dest, ok := PrefixBasePath(m[3], basePath)
		if !ok {
			return attr
		}
		return m[1] + m[2] + `="` + dest + `"`
	})
}

// findPages returns the paths of all .md files under root, relative to
// root, in lexical order.
func findPages(root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		pages = append(pages, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content directory %s: %w", root, err)
	}
	return pages, nil
}

func logWarning(sourcePath string, w mdconverter.Warning) {
	log.Warn().
		Str("path", sourcePath).
		Str("type", string(w.Type)).
		Str("node", w.NodeType).
		Msg(w.Message)
}
