// Package site loads the content table and post catalog together, either
// from the copies compiled into the binary or from a content directory.
package site

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/pavanpadamata/portfolio/internal/content"
	"github.com/pavanpadamata/portfolio/internal/posts"
)

// Site is one consistent pair of table and catalog.
type Site struct {
	Table   *content.Table
	Catalog *posts.Catalog
}

// Load reads dir/site.yaml and dir/posts. An empty dir means the embedded
// defaults.
func Load(dir string) (*Site, error) {
	if dir == "" {
		return loadDefault()
	}
	table, err := content.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", dir, err)
	}
	catalog, err := posts.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load posts from %s: %w", dir, err)
	}
	return &Site{Table: table, Catalog: catalog}, nil
}

func loadDefault() (*Site, error) {
	table, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded content: %w", err)
	}
	catalog, err := posts.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded posts: %w", err)
	}
	return &Site{Table: table, Catalog: catalog}, nil
}

// Scaffold writes the embedded content into dir so it can be edited and
// served with contentDir. Existing files are left alone unless overwrite is
// set.
func Scaffold(dir string, overwrite bool) ([]string, error) {
	files := map[string][]byte{content.FileName: content.DefaultDocument()}
	err := fs.WalkDir(posts.Embedded(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := fs.ReadFile(posts.Embedded(), p)
		if err != nil {
			return err
		}
		files[path.Join(posts.Dir, p)] = raw
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read embedded posts: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		target := filepath.Join(dir, filepath.FromSlash(name))
		if !overwrite {
			if _, err := os.Stat(target); err == nil {
				continue
			}
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(target, files[name], 0o644); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}
