// Package posts is the fixed, ordered catalog of blog posts.
package posts

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Post is one article. Body is markdown.
type Post struct {
	ID       string
	Slug     string
	Title    string
	Excerpt  string
	Date     time.Time
	ReadTime string
	Tags     []string
	Author   string
	Body     string
	Featured bool
}

var (
	ErrDuplicateID = errors.New("posts: duplicate id")
	ErrMissingID   = errors.New("posts: missing id")
	ErrInvalidID   = errors.New("posts: invalid id")
)

// validID keeps ids and slugs usable as a single URL path segment and as a
// directory name.
var validID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Catalog keeps posts in authored order. It is immutable once built.
type Catalog struct {
	posts []Post
	byID  map[string]int
	slugs map[string]bool
}

// NewCatalog builds a catalog, rejecting empty, malformed or repeated ids and
// slugs.
func NewCatalog(posts []Post) (*Catalog, error) {
	c := &Catalog{
		posts: make([]Post, 0, len(posts)),
		byID:  make(map[string]int, len(posts)),
		slugs: make(map[string]bool, len(posts)),
	}
	for _, p := range posts {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: post %q", ErrMissingID, p.Title)
		}
		if !validID.MatchString(p.ID) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		if p.Slug == "" {
			p.Slug = p.ID
		}
		if !validID.MatchString(p.Slug) {
			return nil, fmt.Errorf("%w: slug %q", ErrInvalidID, p.Slug)
		}
		if c.slugs[p.Slug] {
			return nil, fmt.Errorf("%w: slug %q", ErrDuplicateID, p.Slug)
		}
		p.Tags = append([]string(nil), p.Tags...)
		c.byID[p.ID] = len(c.posts)
		c.slugs[p.Slug] = true
		c.posts = append(c.posts, p)
	}
	return c, nil
}

// Len returns the number of posts.
func (c *Catalog) Len() int { return len(c.posts) }

// List returns every post in authored order. The slice is a copy.
func (c *Catalog) List() []Post {
	out := make([]Post, len(c.posts))
	for i, p := range c.posts {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

// Get looks a post up by id.
func (c *Catalog) Get(id string) (Post, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

// Split separates flagged posts from the rest, keeping authored order in both.
func (c *Catalog) Split() (featured, regular []Post) {
	for _, p := range c.posts {
		if p.Featured {
			featured = append(featured, p)
		} else {
			regular = append(regular, p)
		}
	}
	return featured, regular
}
