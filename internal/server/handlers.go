package server

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pavanpadamata/portfolio/internal/content"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/render"
	"github.com/pavanpadamata/portfolio/internal/view"
)

func (s *Server) routes() {
	r := s.engine

	r.GET("/", s.index)
	r.GET("/sections/:name", s.section)

	actions := r.Group("/actions")
	actions.POST("/toggle/:key", s.toggle)
	actions.POST("/posts/:id/open", s.openPost)
	actions.POST("/posts/close", s.closePost)

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	r.StaticFS("/static", http.FS(render.Assets()))
}

func (s *Server) page(c *gin.Context) (render.Page, bool) {
	sess := s.current.Load()
	page, err := sess.renderer.Page(s.store.Snapshot(), sess.router.State(), sess.router.Anchor())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "could not render page")
		return render.Page{}, false
	}
	return page, true
}

func (s *Server) index(c *gin.Context) {
	page, ok := s.page(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, render.PageTemplate, page)
}

// section renders one section on its own, for partial page updates.
func (s *Server) section(c *gin.Context) {
	name := content.SectionName(c.Param("name"))
	if !slices.Contains(content.Sections, name) {
		c.String(http.StatusNotFound, "unknown section %q", name)
		return
	}
	page, ok := s.page(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, string(name), page)
}

func (s *Server) toggle(c *gin.Context) {
	key, err := prefs.ParseKey(c.Param("key"))
	if err != nil {
		c.String(http.StatusNotFound, "%s", err)
		return
	}
	if _, err := s.store.Toggle(c.Request.Context(), key); err != nil {
		// The store kept the previous value; the page simply shows it again.
		s.log.Error("toggle preference", zap.String("key", string(key)), zap.Error(err))
		_ = c.Error(err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) openPost(c *gin.Context) {
	sess := s.current.Load()
	id := c.Param("id")
	if !sess.router.Open(id) {
		s.log.Debug("open unknown post ignored", zap.String("id", id))
	}
	redirect(c, sess.router.Anchor())
}

func (s *Server) closePost(c *gin.Context) {
	sess := s.current.Load()
	sess.router.Close()
	redirect(c, sess.router.Anchor())
}

func (s *Server) health(c *gin.Context) {
	sess := s.current.Load()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"posts":     sess.site.Catalog.Len(),
		"languages": sess.site.Table.Languages(),
	})
}

func redirect(c *gin.Context, anchor view.Anchor) {
	target := "/"
	if anchor != view.AnchorNone {
		target += "#" + string(anchor)
	}
	c.Redirect(http.StatusSeeOther, target)
}
