package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pavanpadamata/portfolio/internal/site"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Writes the built-in content to a directory for editing",
	Long: `The init command copies the embedded site.yaml and posts into dir (default
./content). Point contentDir (or --content) at it to serve and build from there.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "content"
		if len(args) == 1 {
			dir = args[0]
		}
		written, err := site.Scaffold(dir, initForce)
		if err != nil {
			return err
		}
		for _, f := range written {
			cmd.Println("  created", f)
		}
		cmd.Printf("%d files written to %s\n", len(written), dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
}
