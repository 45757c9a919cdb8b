package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pavanpadamata/portfolio/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Shows or toggles the stored language and theme",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the stored preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		for _, key := range prefs.Keys {
			cmd.Printf("%s=%s\n", key, store.Get(key))
		}
		return nil
	},
}

var prefsToggleCmd = &cobra.Command{
	Use:       "toggle <language|theme>",
	Short:     "Flips one preference and stores the new value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(prefs.KeyLanguage), string(prefs.KeyTheme)},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := prefs.ParseKey(args[0])
		if err != nil {
			return err
		}
		store, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		snap, err := store.Toggle(cmd.Context(), key)
		if err != nil {
			return err
		}
		cmd.Printf("%s=%s\n", key, snap.Get(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd, prefsToggleCmd)
}
