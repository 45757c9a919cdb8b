package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pavanpadamata/portfolio/internal/content"
	"github.com/pavanpadamata/portfolio/internal/i18n"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/posts"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/view"
)

// cardTags is how many tags a list card shows.
const cardTags = 2

type NavItem struct {
	Anchor string
	Label  string
	Href   string
}

type NavView struct {
	Brand         string
	Home          string
	Items         []NavItem
	Language      Action
	LanguageLabel string
	Theme         Action
	ThemeLabel    string
	ThemeIcon     string
}

func (r *Renderer) Nav(s prefs.Snapshot) NavView {
	loc := r.table.Locale(s.Language).Nav
	home := r.linker.Home(s)
	items := []NavItem{
		{Anchor: string(content.SectionAbout), Label: loc.About},
		{Anchor: string(content.SectionProjects), Label: loc.Projects},
		{Anchor: string(content.SectionBlog), Label: loc.Blog},
		{Anchor: string(content.SectionServices), Label: loc.Services},
		{Anchor: string(content.SectionContact), Label: loc.Contact},
	}
	for i := range items {
		items[i].Href = home + "#" + items[i].Anchor
	}
	icon := "moon"
	if s.Theme == prefs.Dark {
		icon = "sun"
	}
	return NavView{
		Brand:         r.table.Profile.Name,
		Home:          home,
		Items:         items,
		Language:      r.linker.ToggleLanguage(s).labeled(loc.ToggleLang),
		LanguageLabel: loc.ToggleLang,
		Theme:         r.linker.ToggleTheme(s).labeled(loc.ToggleTheme),
		ThemeLabel:    loc.ToggleTheme,
		ThemeIcon:     icon,
	}
}

type HeroView struct {
	Name       string
	Title      string
	Tagline    string
	CTA        string
	CTAHref    string
	Resume     string
	ResumeHref string
	ScrollHint string
	ScrollHref string
}

func (r *Renderer) Hero(s prefs.Snapshot) HeroView {
	loc := r.table.Locale(s.Language).Hero
	home := r.linker.Home(s)
	return HeroView{
		Name:       r.table.Profile.Name,
		Title:      loc.Title,
		Tagline:    loc.Tagline,
		CTA:        loc.CTA,
		CTAHref:    home + "#" + string(content.SectionContact),
		Resume:     loc.Resume,
		ResumeHref: r.table.Profile.ResumeURL,
		ScrollHint: loc.ScrollHint,
		ScrollHref: home + "#" + string(content.SectionAbout),
	}
}

type AboutView struct {
	content.About
	TechCategories []content.TechCategory
}

func (r *Renderer) About(s prefs.Snapshot) AboutView {
	return AboutView{
		About:          r.table.Locale(s.Language).About,
		TechCategories: r.table.TechStack,
	}
}

type ProjectsView struct {
	content.Projects
}

func (r *Renderer) Projects(s prefs.Snapshot) ProjectsView {
	return ProjectsView{Projects: r.table.Locale(s.Language).Projects}
}

type ServicesView struct {
	content.Services
}

func (r *Renderer) Services(s prefs.Snapshot) ServicesView {
	return ServicesView{Services: r.table.Locale(s.Language).Services}
}

type PostCard struct {
	ID       string
	Title    string
	Excerpt  string
	Date     string
	ReadTime string
	Tags     []string
	Open     Action
}

type PostDetail struct {
	ID          string
	Title       string
	Author      string
	Date        string
	ReadTime    string
	Tags        []string
	Body        template.HTML
	Contents    []markup.Block
	Back        Action
	Avatar      string
	AuthorTitle string
	AuthorBio   string
}

// BlogView carries either the cards of the list or Detail, never both.
type BlogView struct {
	content.Blog
	Empty         bool
	FeaturedPosts []PostCard
	Posts         []PostCard
	Detail        *PostDetail
}

// Blog renders the catalog list, or the selected post when the view state
// holds one.
func (r *Renderer) Blog(s prefs.Snapshot, v view.State) (BlogView, error) {
	loc := r.table.Locale(s.Language).Blog
	out := BlogView{Blog: loc, Empty: r.catalog.Len() == 0}

	if v.Detail() {
		d, err := r.detail(s, *v.Selected)
		if err != nil {
			return BlogView{}, err
		}
		d.Back = d.Back.labeled(loc.Back)
		d.AuthorTitle = loc.AuthorTitle
		d.AuthorBio = loc.AuthorBio
		out.Detail = &d
		return out, nil
	}

	featured, regular := r.catalog.Split()
	for _, p := range featured {
		out.FeaturedPosts = append(out.FeaturedPosts, r.card(s, p, len(p.Tags), loc.ReadMore))
	}
	for _, p := range regular {
		out.Posts = append(out.Posts, r.card(s, p, cardTags, loc.ReadMore))
	}
	return out, nil
}

func (r *Renderer) card(s prefs.Snapshot, p posts.Post, maxTags int, label string) PostCard {
	tags := p.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return PostCard{
		ID:       p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Date:     i18n.FormatDate(s.Language, p.Date),
		ReadTime: p.ReadTime,
		Tags:     tags,
		Open:     r.linker.OpenPost(s, p).labeled(label),
	}
}

func (r *Renderer) detail(s prefs.Snapshot, p posts.Post) (PostDetail, error) {
	body, err := r.markup.Render(p.Body)
	if err != nil {
		return PostDetail{}, fmt.Errorf("render post %s: %w", p.ID, err)
	}
	var contents []markup.Block
	if r.markup.Mode() == markup.Structural {
		for _, h := range markup.Headings(r.markup.Outline(p.Body), 3) {
			if h.Level > 1 {
				contents = append(contents, h)
			}
		}
	}
	return PostDetail{
		ID:       p.ID,
		Title:    p.Title,
		Author:   p.Author,
		Date:     i18n.FormatDate(s.Language, p.Date),
		ReadTime: p.ReadTime,
		Tags:     p.Tags,
		Body:     body,
		Contents: contents,
		Back:     r.linker.ClosePost(s),
		Avatar:   r.table.Profile.Avatar,
	}, nil
}

type ContactMethod struct {
	Icon     string
	Label    string
	Value    string
	Href     string
	External bool
}

type ContactView struct {
	content.Contact
	Methods   []ContactMethod
	EmailHref string
}

func (r *Renderer) Contact(s prefs.Snapshot) ContactView {
	p := r.table.Profile
	mailto := "mailto:" + p.Email
	methods := []ContactMethod{
		{Icon: "mail", Label: "Email", Value: p.Email, Href: mailto},
		{Icon: "send", Label: "Telegram", Value: p.Telegram.Handle, Href: p.Telegram.URL},
		{Icon: "x", Label: "Twitter", Value: p.Twitter.Handle, Href: p.Twitter.URL},
	}
	for i := range methods {
		methods[i].External = isExternal(methods[i].Href)
	}
	return ContactView{
		Contact:   r.table.Locale(s.Language).Contact,
		Methods:   methods,
		EmailHref: mailto,
	}
}

type SocialLink struct {
	Icon     string
	Label    string
	Href     string
	External bool
}

type FooterView struct {
	content.Footer
	AgencyURL string
	Socials   []SocialLink
}

func (r *Renderer) Footer(s prefs.Snapshot) FooterView {
	p := r.table.Profile
	socials := []SocialLink{
		{Icon: "github", Label: "GitHub", Href: p.GitHub},
		{Icon: "linkedin", Label: "LinkedIn", Href: p.LinkedIn},
		{Icon: "twitter", Label: "Twitter", Href: p.Twitter.URL},
		{Icon: "mail", Label: "Email", Href: "mailto:" + p.Email},
	}
	for i := range socials {
		socials[i].External = isExternal(socials[i].Href)
	}
	return FooterView{
		Footer:    r.table.Locale(s.Language).Footer,
		AgencyURL: p.AgencyURL,
		Socials:   socials,
	}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
