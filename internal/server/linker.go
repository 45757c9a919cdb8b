package server

import (
	"net/http"

	"github.com/pavanpadamata/portfolio/internal/posts"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/render"
)

// Linker points every action at the preview server's POST endpoints. The
// snapshot is held server side, so no URL depends on it.
type Linker struct{}

var _ render.Linker = Linker{}

func (Linker) Home(prefs.Snapshot) string { return "/" }

func (Linker) Asset(name string) string { return "/static/" + name }

func (Linker) ToggleLanguage(prefs.Snapshot) render.Action {
	return post("/actions/toggle/" + string(prefs.KeyLanguage))
}

func (Linker) ToggleTheme(prefs.Snapshot) render.Action {
	return post("/actions/toggle/" + string(prefs.KeyTheme))
}

func (Linker) OpenPost(_ prefs.Snapshot, p posts.Post) render.Action {
	return post("/actions/posts/" + p.ID + "/open")
}

func (Linker) ClosePost(prefs.Snapshot) render.Action {
	return post("/actions/posts/close")
}

func post(url string) render.Action {
	return render.Action{URL: url, Method: http.MethodPost}
}
