package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pavanpadamata/portfolio/internal/export"
	"github.com/pavanpadamata/portfolio/internal/logger"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/site"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Writes the static site",
	Long: `The build command renders every language and theme of the page and of each
post into the output directory (default ./public), plus the stylesheet and a
root index.html that redirects to the default language and theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildOut != "" {
			appConfig.OutputDir = buildOut
		}

		st, err := site.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}
		e, err := export.New(st, markup.New(appConfig.MarkupMode()), export.Options{
			BaseURL:  appConfig.BaseURL,
			Defaults: appConfig.Defaults(),
			Logger:   logger.Named("export"),
		})
		if err != nil {
			return err
		}
		rep, err := e.Build(cmd.Context(), appConfig.OutputDir)
		if err != nil {
			return err
		}
		cmd.Printf("Wrote %d pages and %d assets to %s\n", len(rep.Pages), len(rep.Assets), appConfig.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides outputDir)")
}
