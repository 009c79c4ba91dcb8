package cmd

import (
	"github.com/pydojo/pydojo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pydojo",
	Short: "Interactive Python tutor in your terminal",
	Long:  "PyDojo — a terminal app for learning Python through small katas with per-line traces, grading, and XP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYDOJO_DB env var)")
	rootCmd.PersistentFlags().String("lessons", "", "Path to a lesson pack JSON file (default: embedded pack)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(tutorCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PYDOJO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
