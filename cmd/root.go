// Package cmd holds the portfolio command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pavanpadamata/portfolio/internal/config"
	"github.com/pavanpadamata/portfolio/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual portfolio site: preview server and static export",
	Long: `portfolio renders a bilingual (English/Spanish) portfolio with light and
dark themes. Content comes from site.yaml and markdown posts, either the copies
compiled into the binary or a content directory.`,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (initializeConfig reads rootCmd's flags).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().String("content", "", "content directory (site.yaml and posts/); embedded content when empty")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()
	if err := v.BindPFlag("contentDir", rootCmd.PersistentFlags().Lookup("content")); err != nil {
		return err
	}

	cfg, used, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	if err := logger.Init(cfg.Env, verbose); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if used != "" {
		logger.Debug("using config file", zap.String("file", used))
	}
	return nil
}
