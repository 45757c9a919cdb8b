package posts

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})

	first := list[0]
	assert.Equal(t, "github-actions-cicd", first.Slug)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "8 min read", first.ReadTime)
	assert.Equal(t, []string{"CI/CD", "GitHub Actions", "DevOps", "Automation"}, first.Tags)
	assert.True(t, first.Featured)
	assert.Contains(t, first.Body, "# Setting up CI/CD Pipeline with GitHub Actions")
	assert.NotContains(t, first.Body, "readTime:")
}

func TestListIsStableAndDefensive(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	a := c.List()
	a[0].Title = "changed"
	a[0].Tags[0] = "changed"
	b := c.List()

	assert.Equal(t, "Setting up CI/CD Pipeline with GitHub Actions", b[0].Title)
	for i := range b {
		assert.Equal(t, b[i].ID, c.List()[i].ID)
	}
}

func TestSplitFeatured(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	featured, regular := c.Split()
	require.Len(t, featured, 1)
	require.Len(t, regular, 2)
	assert.Equal(t, "1", featured[0].ID)
	assert.Equal(t, "2", regular[0].ID)
	assert.Equal(t, "3", regular[1].ID)
}

func TestSplitWithoutFeaturedPost(t *testing.T) {
	c, err := NewCatalog([]Post{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)

	featured, regular := c.Split()
	assert.Empty(t, featured)
	assert.Len(t, regular, 2)
}

func TestGet(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	p, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Docker Best Practices for Production", p.Title)

	p, ok = c.Get("3")
	require.True(t, ok)
	assert.Equal(t, "kubernetes-deployment-strategies", p.Slug)

	_, ok = c.Get("404")
	assert.False(t, ok)
}

func TestNewCatalogRejectsBadIDs(t *testing.T) {
	_, err := NewCatalog([]Post{{ID: "1"}, {ID: "1"}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewCatalog([]Post{{ID: "1", Slug: "x"}, {ID: "2", Slug: "x"}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewCatalog([]Post{{Title: "untitled"}})
	assert.ErrorIs(t, err, ErrMissingID)

	for _, bad := range []Post{
		{ID: "../x"},
		{ID: "a/b"},
		{ID: "a?b"},
		{ID: "a#b"},
		{ID: "-a"},
		{ID: "1", Slug: "../../../../escaped"},
		{ID: "1", Slug: "a/b"},
		{ID: "1", Slug: "."},
	} {
		_, err = NewCatalog([]Post{bad})
		assert.ErrorIs(t, err, ErrInvalidID, "%+v", bad)
	}

	_, err = NewCatalog([]Post{{ID: "post_1", Slug: "my-post-2024"}})
	assert.NoError(t, err)
}

func TestLoadOrdersByFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/02-second.md": {Data: []byte("---\nid: b\ntitle: Second\ndate: \"2024-02-01\"\n---\nbody two\n")},
		"posts/01-first.md":  {Data: []byte("---\nid: a\ntitle: First\n---\nbody one\n")},
		"posts/notes.txt":    {Data: []byte("ignored")},
	}

	c, err := Load(fsys, Dir)
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "a", list[0].Slug)
	assert.Equal(t, "body one", list[0].Body)
	assert.True(t, list[0].Date.IsZero())
	assert.Equal(t, 2024, list[1].Date.Year())
}

func TestLoadRejectsBadDate(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/01.md": {Data: []byte("---\nid: a\ndate: yesterday\n---\nbody\n")},
	}

	_, err := Load(fsys, Dir)
	assert.Error(t, err)
}

func TestLoadRejectsPathLikeSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/01.md": {Data: []byte("---\nid: \"1\"\nslug: ../../../../escaped\n---\nbody\n")},
	}

	_, err := Load(fsys, Dir)
	assert.ErrorIs(t, err, ErrInvalidID)
}
