package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanpadamata/portfolio/internal/posts"
)

func newRouter(t *testing.T) *Router {
	t.Helper()
	c, err := posts.NewCatalog([]posts.Post{
		{ID: "1", Title: "One", Featured: true},
		{ID: "2", Title: "Two"},
		{ID: "3", Title: "Three"},
	})
	require.NoError(t, err)
	return NewRouter(c)
}

func TestStartsOnList(t *testing.T) {
	r := newRouter(t)

	assert.False(t, r.State().Detail())
	assert.Equal(t, AnchorNone, r.Anchor())
}

func TestOpenSelectsPostAndScrollsTop(t *testing.T) {
	r := newRouter(t)

	require.True(t, r.Open("2"))
	s := r.State()
	require.True(t, s.Detail())
	assert.Equal(t, "Two", s.Selected.Title)
	assert.Equal(t, AnchorTop, r.Anchor())
}

func TestOpenUnknownIDIsIgnored(t *testing.T) {
	r := newRouter(t)
	require.True(t, r.Open("1"))
	before := r.State()

	assert.False(t, r.Open("99"))
	assert.Equal(t, before, r.State())
	assert.Equal(t, AnchorTop, r.Anchor())
}

func TestCloseReturnsToListAndBlogAnchor(t *testing.T) {
	r := newRouter(t)
	require.True(t, r.Open("2"))

	r.Close()

	assert.False(t, r.State().Detail())
	assert.Equal(t, AnchorBlog, r.Anchor())
}

func TestCloseOnListIsNoop(t *testing.T) {
	r := newRouter(t)
	var calls int
	r.Subscribe(func(State) { calls++ })

	r.Close()

	assert.Zero(t, calls)
	assert.Equal(t, AnchorNone, r.Anchor())
}

func TestSubscribersSeeTransitions(t *testing.T) {
	r := newRouter(t)
	var seen []State
	cancel := r.Subscribe(func(s State) { seen = append(seen, s) })

	r.Open("3")
	r.Open("nope")
	r.Close()
	cancel()
	r.Open("1")

	require.Len(t, seen, 2)
	assert.Equal(t, "3", seen[0].Selected.ID)
	assert.False(t, seen[1].Detail())
}

func TestOpenThenCloseRestoresCatalogView(t *testing.T) {
	r := newRouter(t)

	r.Open("2")
	r.Close()

	assert.Equal(t, State{}, r.State())
}
