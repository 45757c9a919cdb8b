package posts

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Dir is the posts directory inside a content root.
const Dir = "posts"

const dateLayout = "2006-01-02"

//go:embed data/*.md
var embedded embed.FS

type frontMatter struct {
	ID       string   `yaml:"id"`
	Slug     string   `yaml:"slug"`
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Date     string   `yaml:"date"`
	ReadTime string   `yaml:"readTime"`
	Author   string   `yaml:"author"`
	Tags     []string `yaml:"tags"`
	Featured bool     `yaml:"featured"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(Embedded(), ".")
}

// Embedded exposes the markdown files compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDir reads posts from <root>/posts.
func LoadDir(root string) (*Catalog, error) {
	return Load(os.DirFS(root), Dir)
}

// Load parses every *.md file in dir. File names decide the authored order,
// so prefix them ("01-", "02-") to control it.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir %s: %w", dir, err)
	}

	var list []Post
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		p, err := loadPost(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return NewCatalog(list)
}

func loadPost(fsys fs.FS, name string) (Post, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Post{}, fmt.Errorf("read post %s: %w", name, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter %s: %w", name, err)
	}

	p := Post{
		ID:       strings.TrimSpace(fm.ID),
		Slug:     strings.TrimSpace(fm.Slug),
		Title:    fm.Title,
		Excerpt:  fm.Excerpt,
		ReadTime: fm.ReadTime,
		Author:   fm.Author,
		Tags:     fm.Tags,
		Body:     strings.TrimSpace(string(body)),
		Featured: fm.Featured,
	}
	if fm.Date != "" {
		p.Date, err = time.Parse(dateLayout, strings.TrimSpace(fm.Date))
		if err != nil {
			return Post{}, fmt.Errorf("post %s: bad date %q: %w", name, fm.Date, err)
		}
	}
	return p, nil
}
