package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pydojo/pydojo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		state, err := st.LoadProgress(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("Level %d · %d XP · %d lessons completed · %d badges\n\n",
			state.Level, state.XP, state.CompletedCount(), state.UnlockedCount())

		sum, err := st.GetSummary(ctx)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if sum.Attempts == 0 {
			fmt.Println("No grading attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %8s  %8s  %s\n", "Lesson", "Attempts", "Passes", "Last attempt")
		fmt.Println(strings.Repeat("─", 64))

		ids := make([]string, 0, len(sum.Lessons))
		for id := range sum.Lessons {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			ls := sum.Lessons[id]
			last := ""
			if !ls.LastTS.IsZero() {
				last = ls.LastTS.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%-20s  %8d  %8d  %s\n", id, ls.Attempts, ls.Passes, last)
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-20s  %8d  %8d\n", "TOTAL", sum.Attempts, sum.Passes)
		return nil
	},
}
