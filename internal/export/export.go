// Package export writes the whole site as static files: every language and
// theme combination of the list page and of each post, plus the assets.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pavanpadamata/portfolio/internal/i18n"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/render"
	"github.com/pavanpadamata/portfolio/internal/site"
	"github.com/pavanpadamata/portfolio/internal/view"
)

const (
	indexFile = "index.html"
	assetsDir = "static"
)

var redirectPage = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="0; url={{.URL}}">
  <link rel="canonical" href="{{.URL}}">
  <title>{{.Title}}</title>
</head>
<body><a href="{{.URL}}">{{.Title}}</a></body>
</html>
`))

type Options struct {
	BaseURL string
	// Defaults decide where the root index.html redirects to.
	Defaults prefs.Snapshot
	Logger   *zap.Logger
}

type Exporter struct {
	site     *site.Site
	renderer *render.Renderer
	opts     Options
	log      *zap.Logger
}

// Report lists what Build wrote, relative to the output directory.
type Report struct {
	Pages  []string
	Assets []string
}

func New(st *site.Site, md *markup.Renderer, opts Options) (*Exporter, error) {
	r, err := render.New(st.Table, st.Catalog, md, Linker{BaseURL: opts.BaseURL})
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{site: st, renderer: r, opts: opts, log: log}, nil
}

// Build renders into outDir, creating it if needed. Existing files with the
// same names are overwritten; nothing else is removed.
func (e *Exporter) Build(ctx context.Context, outDir string) (Report, error) {
	var rep Report
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return rep, fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	for _, lang := range e.site.Table.Languages() {
		for _, theme := range prefs.Themes {
			s := prefs.Snapshot{Language: lang, Theme: theme}

			if err := ctx.Err(); err != nil {
				return rep, err
			}
			name := path.Join(PageDir(s), indexFile)
			if err := e.writePage(outDir, name, e.renderer, s, view.State{}, view.AnchorNone); err != nil {
				return rep, err
			}
			rep.Pages = append(rep.Pages, name)

			for _, p := range e.site.Catalog.List() {
				if err := ctx.Err(); err != nil {
					return rep, err
				}
				p := p
				r := e.renderer.WithLinker(Linker{BaseURL: e.opts.BaseURL, Post: p.Slug})
				name := path.Join(PostDir(s, p.Slug), indexFile)
				if err := e.writePage(outDir, name, r, s, view.State{Selected: &p}, view.AnchorTop); err != nil {
					return rep, err
				}
				rep.Pages = append(rep.Pages, name)
			}
		}
	}

	if err := e.writeRoot(outDir); err != nil {
		return rep, err
	}
	rep.Pages = append(rep.Pages, indexFile)

	assets, err := copyAssets(outDir)
	if err != nil {
		return rep, err
	}
	rep.Assets = assets

	e.log.Info("site exported",
		zap.String("dir", outDir),
		zap.Int("pages", len(rep.Pages)),
		zap.Int("assets", len(rep.Assets)),
	)
	return rep, nil
}

func (e *Exporter) writePage(outDir, name string, r *render.Renderer, s prefs.Snapshot, v view.State, anchor view.Anchor) error {
	page, err := r.Page(s, v, anchor)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := r.WritePage(&buf, page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	e.log.Debug("writing page", zap.String("page", name))
	return writeFile(outDir, name, buf.Bytes())
}

func (e *Exporter) writeRoot(outDir string) error {
	defaults := e.opts.Defaults
	if !i18n.IsSupported(defaults.Language) {
		defaults.Language = i18n.Default
	}
	if _, ok := prefs.ParseTheme(string(defaults.Theme)); !ok {
		defaults.Theme = prefs.DefaultTheme
	}

	l := Linker{BaseURL: e.opts.BaseURL}
	var buf bytes.Buffer
	err := redirectPage.Execute(&buf, struct {
		Lang  string
		URL   string
		Title string
	}{
		Lang:  string(defaults.Language),
		URL:   l.Home(defaults),
		Title: e.site.Table.Profile.Name,
	})
	if err != nil {
		return fmt.Errorf("render root redirect: %w", err)
	}
	return writeFile(outDir, indexFile, buf.Bytes())
}

func copyAssets(outDir string) ([]string, error) {
	var written []string
	assets := render.Assets()
	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := fs.ReadFile(assets, p)
		if err != nil {
			return err
		}
		name := path.Join(assetsDir, p)
		if err := writeFile(outDir, name, raw); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}
	return written, nil
}

func writeFile(outDir, name string, data []byte) error {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("write %s: path leaves the output directory", name)
	}
	target := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
