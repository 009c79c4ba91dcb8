package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pydojo/pydojo/internal/app"
	"github.com/pydojo/pydojo/internal/engine"
	"github.com/pydojo/pydojo/internal/lessons"
	"github.com/pydojo/pydojo/internal/progress"
	"github.com/pydojo/pydojo/internal/screens/workbench"
	"github.com/pydojo/pydojo/internal/store"
	"github.com/pydojo/pydojo/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lessonsPath, _ := cmd.Flags().GetString("lessons")
	catalog, err := lessons.Load(lessonsPath)
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}

	engCfg := engine.ConfigFromEnv()
	transport, err := engine.NewCommandTransport(engCfg)
	if err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	eng := engine.NewGateway(transport)

	state, err := st.LoadProgress(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	prog := progress.NewModel(state, st)

	deps := workbench.Deps{
		Engine:    eng,
		Progress:  prog,
		Hints:     progress.NewHintTracker(),
		Store:     st,
		SessionID: uuid.New().String(),
	}

	if svc := tutorFromEnv(cmd); svc != nil {
		deps.Tutor = svc
	}

	return app.Run(app.Options{
		Catalog:  catalog,
		Progress: prog,
		Deps:     deps,
	})
}

// tutorFromEnv builds the optional tutor service. PYDOJO_* vars take
// priority; otherwise the standard provider API key vars are probed. A
// missing or invalid configuration disables the tutor rather than
// failing startup.
func tutorFromEnv(cmd *cobra.Command) *tutor.Service {
	cfg := tutor.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := tutor.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	provider, err := tutor.NewProvider(cmd.Context(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Tutor provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI explanations will be unavailable.")
		return nil
	}

	return tutor.NewService(provider, tutor.ServiceConfig{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
}
