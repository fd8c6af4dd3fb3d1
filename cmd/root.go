package cmd

import (
	"github.com/oyunsanaa/oyunsanaa/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oyunsanaa",
	Short: "Personal wellness check-ins in your terminal",
	Long:  "Oyunsanaa — terminal companion for short wellness self-checks, mood check-ins, and gentle reflections on how things are going.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OYUNSANAA_DB env var)")
	rootCmd.PersistentFlags().String("instruments", "", "Directory of extra instrument definitions (overrides OYUNSANAA_INSTRUMENTS env var)")
	rootCmd.PersistentFlags().String("remote", "", "Base URL of a result server to sync against (overrides OYUNSANAA_REMOTE env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then OYUNSANAA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
