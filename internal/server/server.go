// Package server is the local preview of the site. It keeps one visitor's
// preferences and view state server side and turns the page's actions into
// POST endpoints that redirect back to the right anchor.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/render"
	"github.com/pavanpadamata/portfolio/internal/site"
	"github.com/pavanpadamata/portfolio/internal/view"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	Store    *prefs.Store
	Site     *site.Site
	Markup   *markup.Renderer
	Logger   *zap.Logger
	Registry *prometheus.Registry
	// Release switches gin to release mode and turns on HSTS.
	Release bool
}

// Server serves the preview. Content can be swapped at runtime with Reload.
type Server struct {
	engine   *gin.Engine
	store    *prefs.Store
	markup   *markup.Renderer
	log      *zap.Logger
	registry *prometheus.Registry
	current  atomic.Pointer[session]
	unsub    func()
}

// session is everything derived from one version of the content.
type session struct {
	site     *site.Site
	renderer *render.Renderer
	router   *view.Router
	unsub    func()
}

func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Site == nil || opts.Markup == nil {
		return nil, errors.New("server: store, site and markup are required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		store:    opts.Store,
		markup:   opts.Markup,
		log:      opts.Logger,
		registry: opts.Registry,
	}
	sess, err := s.newSession(opts.Site)
	if err != nil {
		return nil, err
	}
	s.current.Store(sess)

	s.unsub = s.store.Subscribe(func(snap prefs.Snapshot) {
		s.log.Info("preferences changed",
			zap.String("language", snap.Language.String()),
			zap.String("theme", snap.Theme.String()),
		)
	})

	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	s.engine = gin.New()
	s.engine.SetHTMLTemplate(sess.renderer.Template())
	s.engine.Use(
		RequestID(),
		RequestLogger(s.log),
		Recovery(s.log),
		SecurityHeaders(opts.Release),
		newMetrics(s.registry).Metrics(),
	)
	s.routes()
	return s, nil
}

func (s *Server) newSession(st *site.Site) (*session, error) {
	r, err := render.New(st.Table, st.Catalog, s.markup, Linker{})
	if err != nil {
		return nil, err
	}
	router := view.NewRouter(st.Catalog)
	unsub := router.Subscribe(func(v view.State) {
		if v.Detail() {
			s.log.Info("post opened", zap.String("id", v.Selected.ID))
			return
		}
		s.log.Info("post closed")
	})
	return &session{site: st, renderer: r, router: router, unsub: unsub}, nil
}

// Reload swaps in new content. The open post, if any, is closed since it may
// no longer exist.
func (s *Server) Reload(st *site.Site) error {
	sess, err := s.newSession(st)
	if err != nil {
		return err
	}
	if old := s.current.Swap(sess); old != nil {
		old.unsub()
	}
	return nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down preview server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close drops the change subscriptions.
func (s *Server) Close() {
	s.unsub()
	if sess := s.current.Load(); sess != nil {
		sess.unsub()
	}
}
