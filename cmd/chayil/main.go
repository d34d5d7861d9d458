package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chayilhub/chayil/internal/assistant"
	"github.com/chayilhub/chayil/internal/cli/formatter"
	"github.com/chayilhub/chayil/internal/db"
	"github.com/chayilhub/chayil/internal/identity"
	"github.com/chayilhub/chayil/internal/persist"
	"github.com/chayilhub/chayil/internal/server"
	"github.com/chayilhub/chayil/internal/session"
	"github.com/chayilhub/chayil/internal/store"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chayil",
		Short: "Chayıl Planner core",
	}
	root.AddCommand(newServeCmd(), newSummaryCmd())
	return root
}

// dbPath resolves the store location: env var or ~/.chayil/chayil.db.
func dbPath() (string, error) {
	if path := os.Getenv("CHAYIL_DB"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".chayil", "chayil.db"), nil
}

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the planner HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env file is fine; the environment may already be set.
			_ = godotenv.Load()

			logger := newLogger()

			path, err := dbPath()
			if err != nil {
				return err
			}
			database, err := db.OpenDB(path)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			adapter := persist.NewSQLiteAdapter(database, db.NewSQLiteUnitOfWork(database))

			lifecycle := session.NewController(
				identity.NewClient(identity.LoadConfig()),
				adapter,
				session.WithStoreOptions(store.WithObserver(store.NewLogObserver(os.Stderr))),
			)
			lifecycle.Start(cmd.Context(), os.Getenv("CHAYIL_ACCESS_TOKEN"))

			aiCfg := assistant.LoadConfig()
			var observer assistant.Observer = assistant.NoopObserver{}
			if aiCfg.LogCalls {
				observer = assistant.NewLogObserver(os.Stderr)
			}
			coach := assistant.NewCoach(assistant.NewGeminiClient(aiCfg, observer))

			api := server.NewWebAPI(logger, server.Config{
				Addr:            addr,
				ShutdownTimeout: 10 * time.Second,
				Dependencies: server.Dependencies{
					Lifecycle: lifecycle,
					Coach:     coach,
				},
			})
			return api.Start()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a dashboard snapshot for a stored user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return fmt.Errorf("user ID is required (use --user)")
			}

			path, err := dbPath()
			if err != nil {
				return err
			}
			database, err := db.OpenDB(path)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			adapter := persist.NewSQLiteAdapter(database, nil)
			state, err := adapter.Load(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("loading planner state: %w", err)
			}

			fmt.Print(formatter.FormatSummary(*state, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user identifier")
	return cmd
}
