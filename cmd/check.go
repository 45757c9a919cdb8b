package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the content",
	Long: `The check command loads site.yaml and the posts the same way serve and build
do, and fails on any authoring defect: a missing translation, an unknown service
icon, lists of different length per language, duplicate post ids or a post body
that does not render.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := site.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}

		md := markup.New(appConfig.MarkupMode())
		featured, _ := st.Catalog.Split()
		for _, p := range st.Catalog.List() {
			if _, err := md.Render(p.Body); err != nil {
				return fmt.Errorf("post %s: %w", p.ID, err)
			}
			headings := markup.Headings(md.Outline(p.Body), 6)
			cmd.Printf("  post %-3s %-40s %d headings\n", p.ID, p.Slug, len(headings))
		}

		source := appConfig.ContentDir
		if source == "" {
			source = "embedded content"
		}
		cmd.Printf("%s: %d languages, %d posts (%d featured), ok\n",
			source, len(st.Table.Languages()), st.Catalog.Len(), len(featured))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
