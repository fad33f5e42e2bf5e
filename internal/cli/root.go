// Package cli is the command-line front end: one local user browsing the
// catalog from a terminal, plus the command that starts the chat bot.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"listbase/internal/app"
	"listbase/internal/config"
	"listbase/internal/dataset"
	"listbase/internal/scraper"
	"listbase/internal/storage"
)

// runtime holds the components every subcommand shares.
type runtime struct {
	configPath string
	jsonOutput bool

	cfg     config.Config
	log     *logrus.Logger
	backend storage.Backend
	manager *app.Manager
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	cmd, _ := newRoot(version)
	return cmd
}

// newRoot also returns the runtime so callers can release storage when a
// command fails, since cobra skips post-run hooks on error.
func newRoot(version string) (*cobra.Command, *runtime) {
	rt := &runtime{}

	cmd := &cobra.Command{
		Use:           "listbase",
		Short:         "listbase - browse, search and bookmark listings",
		Long:          "listbase browses a listing catalog, keeps bookmarks, recently viewed items and notification state, and can serve the same catalog as a Telegram bot.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.close()
		},
	}

	cmd.PersistentFlags().StringVar(&rt.configPath, "config", "./configs", "Directory containing config.yaml")
	cmd.PersistentFlags().BoolVar(&rt.jsonOutput, "json", false, "Output as JSON")

	// Add subcommands
	cmd.AddCommand(
		newHomeCommand(rt),
		newSearchCommand(rt),
		newSuggestCommand(rt),
		newShowCommand(rt),
		newCategoriesCommand(rt),
		newFavCommand(rt),
		newSavedCommand(rt),
		newRecentCommand(rt),
		newNotificationsCommand(rt),
		newSubmitCommand(rt),
		newBotCommand(rt),
	)

	return cmd, rt
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	cmd, rt := newRoot(version)
	err := cmd.ExecuteContext(context.Background())
	if closeErr := rt.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (rt *runtime) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(rt.configPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	rt.cfg = cfg

	// --- Logger Setup ---
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())
	rt.log = log

	log.WithFields(logrus.Fields{
		"variant":         cfg.Variant,
		"dataset_path":    cfg.DatasetPath,
		"storage_backend": cfg.StorageBackend,
	}).Debug("Configuration loaded successfully")

	// --- Initialize Components ---
	backend, err := storage.Open(cfg.StorageOptions(), log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	rt.backend = backend

	variant := cfg.VariantValue()
	items, err := dataset.NewFileSource(cfg.DatasetPath, variant, cfg.FetchDelay, log).Load(ctx)
	if err != nil {
		rt.close()
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	rt.manager = app.NewManager(
		variant,
		items,
		storage.NewAdapter(backend, log),
		scraper.NewRodScraper(cfg.ScrapeInterval, log),
		log,
	)
	return nil
}

func (rt *runtime) close() error {
	if rt.backend == nil {
		return nil
	}
	rt.log.Debug("Closing storage...")
	err := rt.backend.Close()
	rt.backend = nil
	if err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}

// session is the local user's session; it uses the un-namespaced keys.
func (rt *runtime) session() *app.Session {
	return rt.manager.Session("")
}
