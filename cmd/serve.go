package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanpadamata/portfolio/internal/logger"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/prefs"
	"github.com/pavanpadamata/portfolio/internal/server"
	"github.com/pavanpadamata/portfolio/internal/site"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally",
	Long: `The serve command starts the preview server. Language and theme are kept
in the SQLite file at dbPath, so they survive restarts. With --content the
directory is watched and the site reloads whenever a file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
}

func runServe(ctx context.Context) error {
	if servePort != "" {
		appConfig.Port = servePort
	}

	st, err := site.Load(appConfig.ContentDir)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	srv, err := server.New(server.Options{
		Store:   store,
		Site:    st,
		Markup:  markup.New(appConfig.MarkupMode()),
		Logger:  logger.Named("server"),
		Release: appConfig.IsProduction(),
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	if appConfig.ContentDir != "" {
		w := site.NewWatcher(appConfig.ContentDir, site.DefaultDebounce, logger.Named("watch"), func(s *site.Site) {
			if err := srv.Reload(s); err != nil {
				logger.Error("swap reloaded content", zap.Error(err))
			}
		})
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("content watcher stopped", zap.Error(err))
			}
		}()
	}

	return srv.Run(ctx, appConfig.Addr())
}

// openStore opens the SQLite preference file from the config.
func openStore(ctx context.Context) (*prefs.Store, func(), error) {
	backend, err := prefs.OpenSQLite(ctx, appConfig.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open preferences %s: %w", appConfig.DBPath, err)
	}
	store, err := prefs.Open(ctx, backend, appConfig.Defaults(), logger.Named("prefs"))
	if err != nil {
		_ = backend.Close()
		return nil, nil, err
	}
	return store, func() { _ = backend.Close() }, nil
}
