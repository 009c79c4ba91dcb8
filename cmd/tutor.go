package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pydojo/pydojo/internal/engine"
	"github.com/pydojo/pydojo/internal/lessons"
	"github.com/pydojo/pydojo/internal/tutor"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor <file.py>",
	Short: "Grade a solution file and explain a failure (no database)",
	Long: `Grade a Python file against a lesson's checker and, if it fails,
ask the AI tutor to explain why.

This is a stateless developer tool: no progress is recorded and no XP is
awarded. It needs a configured tutor provider (PYDOJO_TUTOR_PROVIDER
plus its API key variable, or a standard provider API key variable).`,
	Args: cobra.ExactArgs(1),
	RunE: runTutor,
}

func init() {
	tutorCmd.Flags().String("lesson", "", "Lesson ID to grade against (required)")
	_ = tutorCmd.MarkFlagRequired("lesson")
}

func runTutor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read solution: %w", err)
	}

	lessonsPath, _ := cmd.Flags().GetString("lessons")
	catalog, err := lessons.Load(lessonsPath)
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}

	lessonID, _ := cmd.Flags().GetString("lesson")
	lesson, ok := catalog.ByID(lessonID)
	if !ok {
		return fmt.Errorf("no lesson %q in pack %q", lessonID, catalog.Name())
	}

	engCfg := engine.ConfigFromEnv()
	transport, err := engine.NewCommandTransport(engCfg)
	if err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	eng := engine.NewGateway(transport)

	fmt.Printf("Lesson: %s (%s)\n", lesson.Title, lesson.ID)

	res, err := eng.Grade(ctx, string(source), lesson.Checker.Source, lesson.Checker.EntryPoint)
	if err != nil {
		var engErr *engine.Error
		if errors.As(err, &engErr) {
			return fmt.Errorf("engine failure (%s): %w", engErr.Reason, engErr)
		}
		return err
	}

	if res.Passed {
		fmt.Println("\033[32m✓ Passed.\033[0m Nothing to explain.")
		return nil
	}

	fmt.Printf("\033[31m✗ Failed.\033[0m %s\n", res.Err)
	if res.Output != "" {
		fmt.Printf("Output:\n%s\n", res.Output)
	}

	svc := tutorFromEnv(cmd)
	if svc == nil {
		return fmt.Errorf("tutor provider not configured")
	}

	fmt.Println("\nAsking the tutor...")
	advice, err := svc.Explain(ctx, tutor.AdviceInput{
		LessonTitle: lesson.Title,
		Goal:        lesson.Goal,
		Source:      string(source),
		Diagnostic:  res.Err,
		Output:      res.Output,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nDiagnosis:  %s\n", advice.Diagnosis)
	fmt.Printf("Suggestion: %s\n", advice.Suggestion)
	fmt.Printf("Concept:    %s\n", advice.Concept)
	return nil
}
