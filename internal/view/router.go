// Package view is the in-page list/detail switch of the blog section. It does
// no URL routing of its own.
package view

import (
	"sync"

	"github.com/pavanpadamata/portfolio/internal/posts"
)

// Anchor is the element the page scrolls to after a transition.
type Anchor string

const (
	AnchorNone Anchor = ""
	AnchorTop  Anchor = "top"
	AnchorBlog Anchor = "blog"
)

// State is either the catalog list (Selected == nil) or one post's detail.
type State struct {
	Selected *posts.Post
}

// Detail reports whether a post is open.
func (s State) Detail() bool { return s.Selected != nil }

// Router owns the State of one visitor.
type Router struct {
	mu      sync.Mutex
	catalog *posts.Catalog
	state   State
	anchor  Anchor
	subs    map[int]func(State)
	nextSub int
}

func NewRouter(catalog *posts.Catalog) *Router {
	return &Router{catalog: catalog, subs: map[int]func(State){}}
}

// State returns the current view state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Anchor returns the scroll target recorded by the last transition.
func (r *Router) Anchor() Anchor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anchor
}

// Open shows the post with the given id and scrolls to the top. An unknown id
// is ignored and Open returns false.
func (r *Router) Open(id string) bool {
	p, ok := r.catalog.Get(id)
	if !ok {
		return false
	}
	r.set(State{Selected: &p}, AnchorTop)
	return true
}

// Close returns to the list and scrolls back to the blog section. Closing
// the list is a no-op.
func (r *Router) Close() {
	if !r.State().Detail() {
		return
	}
	r.set(State{}, AnchorBlog)
}

// Subscribe registers fn for every transition; call cancel to stop.
func (r *Router) Subscribe(fn func(State)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Router) set(s State, a Anchor) {
	r.mu.Lock()
	r.state = s
	r.anchor = a
	subs := make([]func(State), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}
