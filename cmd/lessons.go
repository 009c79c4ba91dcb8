package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydojo/pydojo/internal/lessons"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Inspect lesson packs",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons in a pack",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("lessons")
		catalog, err := lessons.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("Pack: %s (%d lessons)\n\n", catalog.Name(), catalog.Len())
		for i, l := range catalog.Lessons() {
			fmt.Printf("%2d. %-16s %-24s %3d XP  %d hints\n",
				i+1, l.ID, l.Title, l.XPReward, len(l.Hints))
		}
		return nil
	},
}

var lessonsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a lesson pack file against the feed schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := lessons.Load(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack: %w", err)
		}
		fmt.Printf("OK: %q with %d lessons\n", catalog.Name(), catalog.Len())
		return nil
	},
}

func init() {
	lessonsCmd.AddCommand(lessonsListCmd)
	lessonsCmd.AddCommand(lessonsValidateCmd)
}
