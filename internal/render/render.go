// Package render builds the page from the content table, the post catalog
// and the current visitor state. Section functions are pure: they read the
// snapshot and view state and return view models; templates turn those into
// HTML.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/pavanpadamata/portfolio/internal/content"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/posts"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageTemplate is the name of the full-page template.
const PageTemplate = "page"

// Assets returns the static files (stylesheet) served next to the pages.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Action is something the visitor can trigger. A POST action is rendered as
// a form button, anything else as a plain link.
type Action struct {
	URL    string
	Method string
	Label  string
}

func (a Action) labeled(label string) Action {
	a.Label = label
	return a
}

func (a Action) IsForm() bool { return a.Method == "POST" }

// Linker decides where actions and assets live. The preview server and the
// static export each provide one.
type Linker interface {
	Home(s prefs.Snapshot) string
	Asset(name string) string
	ToggleLanguage(s prefs.Snapshot) Action
	ToggleTheme(s prefs.Snapshot) Action
	OpenPost(s prefs.Snapshot, p posts.Post) Action
	ClosePost(s prefs.Snapshot) Action
}

// Renderer holds the static inputs of the page.
type Renderer struct {
	table   *content.Table
	catalog *posts.Catalog
	markup  *markup.Renderer
	linker  Linker
	tmpl    *template.Template
}

func New(table *content.Table, catalog *posts.Catalog, md *markup.Renderer, linker Linker) (*Renderer, error) {
	tmpl, err := template.New(PageTemplate).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		table:   table,
		catalog: catalog,
		markup:  md,
		linker:  linker,
		tmpl:    tmpl,
	}, nil
}

// WithLinker returns a renderer sharing everything but the linker.
func (r *Renderer) WithLinker(l Linker) *Renderer {
	cp := *r
	cp.linker = l
	return &cp
}

// Template exposes the parsed templates, e.g. for gin's HTML renderer.
func (r *Renderer) Template() *template.Template { return r.tmpl }

// Catalog returns the post catalog the renderer reads from.
func (r *Renderer) Catalog() *posts.Catalog { return r.catalog }

// Page is the view model of the whole document.
type Page struct {
	Lang       string
	Theme      string
	Title      string
	Anchor     string
	Stylesheet string
	Nav        NavView
	Hero       HeroView
	About      AboutView
	Projects   ProjectsView
	Blog       BlogView
	Services   ServicesView
	Contact    ContactView
	Footer     FooterView
}

// Page renders every section for the given state.
func (r *Renderer) Page(s prefs.Snapshot, v view.State, anchor view.Anchor) (Page, error) {
	blog, err := r.Blog(s, v)
	if err != nil {
		return Page{}, err
	}
	hero := r.Hero(s)
	title := hero.Name + " | " + hero.Title
	if blog.Detail != nil {
		title = blog.Detail.Title + " | " + hero.Name
	}
	return Page{
		Lang:       string(s.Language),
		Theme:      string(s.Theme),
		Title:      title,
		Anchor:     string(anchor),
		Stylesheet: r.linker.Asset("site.css"),
		Nav:        r.Nav(s),
		Hero:       hero,
		About:      r.About(s),
		Projects:   r.Projects(s),
		Blog:       blog,
		Services:   r.Services(s),
		Contact:    r.Contact(s),
		Footer:     r.Footer(s),
	}, nil
}

// WritePage executes the full-page template.
func (r *Renderer) WritePage(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, PageTemplate, p)
}

// WriteSection executes the template of a single section.
func (r *Renderer) WriteSection(w io.Writer, name content.SectionName, p Page) error {
	if r.tmpl.Lookup(string(name)) == nil {
		return fmt.Errorf("no template for section %q", name)
	}
	return r.tmpl.ExecuteTemplate(w, string(name), p)
}
