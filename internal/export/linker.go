package export

import (
	"net/http"
	"path"
	"strings"

	"github.com/pavanpadamata/portfolio/internal/posts"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/render"
)

// Linker turns every action into a link to another pre-rendered page: one
// directory per language and theme, one more per post below it.
type Linker struct {
	BaseURL string
	// Post is the slug of the post the page shows, if any. Toggles on a post
	// page lead to the same post in the other language or theme.
	Post string
}

var _ render.Linker = Linker{}

// PageDir is the directory of the list page for s, relative to the output.
func PageDir(s prefs.Snapshot) string {
	return path.Join(string(s.Language), string(s.Theme))
}

// PostDir is the directory of a post page for s.
func PostDir(s prefs.Snapshot, slug string) string {
	return path.Join(PageDir(s), "posts", slug)
}

func (l Linker) url(dir string) string {
	return strings.TrimSuffix(l.BaseURL, "/") + "/" + dir + "/"
}

func (l Linker) Home(s prefs.Snapshot) string { return l.url(PageDir(s)) }

func (l Linker) Asset(name string) string {
	return strings.TrimSuffix(l.BaseURL, "/") + "/static/" + name
}

func (l Linker) ToggleLanguage(s prefs.Snapshot) render.Action {
	return l.current(prefs.Snapshot{Language: s.Language.Other(), Theme: s.Theme})
}

func (l Linker) ToggleTheme(s prefs.Snapshot) render.Action {
	return l.current(prefs.Snapshot{Language: s.Language, Theme: s.Theme.Other()})
}

func (l Linker) OpenPost(s prefs.Snapshot, p posts.Post) render.Action {
	return link(l.url(PostDir(s, p.Slug)) + "#top")
}

func (l Linker) ClosePost(s prefs.Snapshot) render.Action {
	return link(l.Home(s) + "#blog")
}

func (l Linker) current(s prefs.Snapshot) render.Action {
	if l.Post != "" {
		return link(l.url(PostDir(s, l.Post)))
	}
	return link(l.Home(s))
}

func link(url string) render.Action {
	return render.Action{URL: url, Method: http.MethodGet}
}
