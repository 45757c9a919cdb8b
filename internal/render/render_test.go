package render

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanpadamata/portfolio/internal/content"
	"github.com/pavanpadamata/portfolio/internal/i18n"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/posts"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/testutil"
	"github.com/pavanpadamata/portfolio/internal/view"
)

type formLinker struct{}

func (formLinker) Home(prefs.Snapshot) string { return "/" }
func (formLinker) Asset(name string) string   { return "/static/" + name }
func (formLinker) ToggleLanguage(prefs.Snapshot) Action {
	return Action{URL: "/actions/toggle/language", Method: "POST"}
}
func (formLinker) ToggleTheme(prefs.Snapshot) Action {
	return Action{URL: "/actions/toggle/theme", Method: "POST"}
}
func (formLinker) OpenPost(_ prefs.Snapshot, p posts.Post) Action {
	return Action{URL: "/actions/posts/" + p.ID + "/open", Method: "POST"}
}
func (formLinker) ClosePost(prefs.Snapshot) Action {
	return Action{URL: "/actions/posts/close", Method: "POST"}
}

type fixture struct {
	table   *content.Table
	catalog *posts.Catalog
	r       *Renderer
}

func newFixture(t *testing.T, mode markup.Mode) fixture {
	t.Helper()

	table, err := content.Default()
	require.NoError(t, err)
	catalog, err := posts.Default()
	require.NoError(t, err)
	r, err := New(table, catalog, markup.New(mode), formLinker{})
	require.NoError(t, err)
	return fixture{table: table, catalog: catalog, r: r}
}

func (f fixture) render(t *testing.T, s prefs.Snapshot, v view.State, anchor view.Anchor) *goquery.Document {
	t.Helper()

	page, err := f.r.Page(s, v, anchor)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.r.WritePage(&buf, page))
	return testutil.ParseHTML(t, buf.Bytes())
}

func TestPageRendersEverySection(t *testing.T) {
	f := newFixture(t, markup.Structural)

	doc := f.render(t, prefs.Defaults(), view.State{}, view.AnchorNone)

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
	theme, _ := doc.Find("html").Attr("data-theme")
	assert.Equal(t, "light", theme)
	for _, id := range []string{"nav", "hero", "about", "projects", "blog", "services", "contact", "footer"} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), id)
	}
	assert.Equal(t, []string{"About", "Projects", "Blog", "Services", "Contact"}, testutil.Texts(doc, "#nav nav li a"))
	href, _ := doc.Find("#nav nav li a").First().Attr("href")
	assert.Equal(t, "/#about", href)
	icon, _ := doc.Find(".toggle-theme").Attr("data-icon")
	assert.Equal(t, "moon", icon)
	assert.Equal(t, 9, doc.Find(".tech-category").Length())
	assert.Equal(t, 3, doc.Find(".project").Length())
	assert.Equal(t, 5, doc.Find(".service").Length())
	css, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "/static/site.css", css)
}

func TestBlogSplitsFeaturedAndRegular(t *testing.T) {
	f := newFixture(t, markup.Structural)

	doc := f.render(t, prefs.Defaults(), view.State{}, view.AnchorNone)

	featured := doc.Find("#blog .post-card.featured")
	require.Equal(t, 1, featured.Length())
	id, _ := featured.Attr("data-post")
	assert.Equal(t, "1", id)
	assert.Equal(t, 4, featured.Find(".tags li").Length())
	assert.Equal(t, "January 15, 2024", featured.Find("time").Text())

	regular := doc.Find("#blog .grid .post-card")
	require.Equal(t, 2, regular.Length())
	regular.Each(func(_ int, s *goquery.Selection) {
		assert.LessOrEqual(t, s.Find(".tags li").Length(), 2)
		assert.Equal(t, 1, s.Find(`form[method="post"] button`).Length())
	})
	action, _ := regular.First().Find("form").Attr("action")
	assert.Equal(t, "/actions/posts/2/open", action)
	assert.Equal(t, "Read more", regular.First().Find("button").Text())
}

func TestToggledLanguageRendersSpanishCopy(t *testing.T) {
	f := newFixture(t, markup.Structural)
	es := f.table.Locale(i18n.Spanish)
	en := f.table.Locale(i18n.English)

	s, err := prefs.Defaults().Toggled(prefs.KeyLanguage)
	require.NoError(t, err)
	doc := f.render(t, s, view.State{}, view.AnchorNone)

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "es", lang)
	checks := map[string]string{
		"#hero h2":                es.Hero.Title,
		"#hero .tagline":          es.Hero.Tagline,
		"#about > h2":             es.About.Title,
		"#projects > h2":          es.Projects.Title,
		"#blog > h2":              es.Blog.Title,
		"#services > h2":          es.Services.Title,
		"#contact > h2":           es.Contact.Title,
		"#footer .rights":         es.Footer.Rights,
		".toggle-language button": es.Nav.ToggleLang,
	}
	for sel, want := range checks {
		assert.Equal(t, want, doc.Find(sel).First().Text(), sel)
	}
	assert.Equal(t, []string{es.Nav.About, es.Nav.Projects, es.Nav.Blog, es.Nav.Services, es.Nav.Contact},
		testutil.Texts(doc, "#nav nav li a"))
	assert.NotContains(t, testutil.Texts(doc, ".service h3"), en.Services.Items[0].Title)
	assert.Equal(t, "15 de enero de 2024", doc.Find(".post-card.featured time").Text())
}

func TestDetailView(t *testing.T) {
	f := newFixture(t, markup.Structural)
	p, ok := f.catalog.Get("2")
	require.True(t, ok)

	doc := f.render(t, prefs.Defaults(), view.State{Selected: &p}, view.AnchorTop)

	body, _ := doc.Find("body").Attr("data-anchor")
	assert.Equal(t, "top", body)
	assert.Contains(t, doc.Find("title").Text(), p.Title)

	article := doc.Find("#blog .post-detail")
	require.Equal(t, 1, article.Length())
	assert.Equal(t, 0, doc.Find("#blog .post-card").Length())
	assert.Equal(t, p.Title, article.Find("header h1").Text())
	assert.Equal(t, len(p.Tags), article.Find(".tags li").Length())
	assert.Equal(t, "Back to Blog", article.Find(".back button").Text())
	action, _ := article.Find(".back form").Attr("action")
	assert.Equal(t, "/actions/posts/close", action)

	contents := testutil.Texts(doc, ".contents li a")
	assert.Contains(t, contents, "Image Optimization")
	assert.Contains(t, contents, "Multi-stage Builds")
	href, _ := article.Find(".contents li a").First().Attr("href")
	assert.Equal(t, "#post-image-optimization", href)
	assert.Equal(t, 1, article.Find(`.post-body h2#post-image-optimization`).Length())
	assert.Positive(t, article.Find(".post-body pre code").Length())

	assert.Equal(t, "About the Author", article.Find(".author-card h3").Text())

	// the other sections stay on the page
	assert.Equal(t, 1, doc.Find("#about").Length())
}

func TestPostHeadingsDoNotShadowSections(t *testing.T) {
	table, err := content.Default()
	require.NoError(t, err)
	catalog, err := posts.NewCatalog([]posts.Post{{ID: "c", Title: "Reach out", Body: "## Contact\n\ntext\n\n## Contact\n"}})
	require.NoError(t, err)
	r, err := New(table, catalog, markup.New(markup.Structural), formLinker{})
	require.NoError(t, err)
	f := fixture{table: table, catalog: catalog, r: r}
	p, _ := catalog.Get("c")

	doc := f.render(t, prefs.Defaults(), view.State{Selected: &p}, view.AnchorTop)

	assert.Equal(t, 1, doc.Find("[id=contact]").Length())
	assert.Equal(t, 1, doc.Find("section#contact").Length())
	hrefs := doc.Find(".contents li a").Map(func(_ int, a *goquery.Selection) string {
		h, _ := a.Attr("href")
		return h
	})
	assert.Equal(t, []string{"#post-contact", "#post-contact-1"}, hrefs)
	assert.Equal(t, 1, doc.Find(".post-body h2#post-contact-1").Length())
}

func TestDetailInLineBreaksModeHasNoContents(t *testing.T) {
	f := newFixture(t, markup.LineBreaks)
	p, ok := f.catalog.Get("1")
	require.True(t, ok)

	doc := f.render(t, prefs.Defaults(), view.State{Selected: &p}, view.AnchorTop)

	assert.Equal(t, 0, doc.Find(".contents").Length())
	assert.Positive(t, doc.Find(".post-body br").Length())
	assert.Equal(t, 0, doc.Find(".post-body h2").Length())
}

func TestEmptyCatalog(t *testing.T) {
	table, err := content.Default()
	require.NoError(t, err)
	catalog, err := posts.NewCatalog(nil)
	require.NoError(t, err)
	r, err := New(table, catalog, markup.New(markup.Structural), formLinker{})
	require.NoError(t, err)

	page, err := r.Page(prefs.Defaults(), view.State{}, view.AnchorNone)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.WriteSection(&buf, content.SectionBlog, page))
	doc := testutil.ParseHTML(t, buf.Bytes())

	assert.Equal(t, "No blog posts yet", doc.Find(".empty h3").Text())
	assert.Equal(t, 0, doc.Find(".post-card").Length())
}

func TestContactLinks(t *testing.T) {
	f := newFixture(t, markup.Structural)

	doc := f.render(t, prefs.Defaults(), view.State{}, view.AnchorNone)

	links := doc.Find("#contact .method a")
	require.Equal(t, 3, links.Length())
	mail, _ := links.Eq(0).Attr("href")
	assert.Equal(t, "mailto:"+f.table.Profile.Email, mail)
	_, hasTarget := links.Eq(0).Attr("target")
	assert.False(t, hasTarget)
	links.Slice(1, 3).Each(func(_ int, s *goquery.Selection) {
		target, _ := s.Attr("target")
		rel, _ := s.Attr("rel")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noopener noreferrer", rel)
	})
}

func TestDarkThemeShowsSunIcon(t *testing.T) {
	f := newFixture(t, markup.Structural)

	s, err := prefs.Defaults().Toggled(prefs.KeyTheme)
	require.NoError(t, err)
	nav := f.r.Nav(s)

	assert.Equal(t, "sun", nav.ThemeIcon)
	assert.Equal(t, "Toggle theme", nav.Theme.Label)
}

func TestWriteSection(t *testing.T) {
	f := newFixture(t, markup.Structural)
	page, err := f.r.Page(prefs.Defaults(), view.State{}, view.AnchorNone)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.r.WriteSection(&buf, content.SectionHero, page))
	doc := testutil.ParseHTML(t, buf.Bytes())
	assert.Equal(t, "Pavan Padamata", doc.Find("#hero h1").Text())

	assert.Error(t, f.r.WriteSection(&buf, content.SectionName("sidebar"), page))
}

func TestAssets(t *testing.T) {
	css, err := fs.ReadFile(Assets(), "site.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), "theme-dark")
}
