package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/castlog/catalogue-api/api"
	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/database"
	"github.com/castlog/catalogue-api/internal/services/accounts"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
	"github.com/castlog/catalogue-api/internal/services/ingest"
	"github.com/castlog/catalogue-api/internal/services/reviews"
	"github.com/castlog/catalogue-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the catalogue API server with the configured settings.

On startup the catalogue is ingested from the configured CSV files into
the selected repository backend. The in-memory backend rebuilds the
catalogue on every start; the SQLite backend only ingests into an empty
database.

Example:
  catalogue-api serve
  catalogue-api serve --port 9090
  catalogue-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	repo, db, err := buildRepository(cfg)
	if err != nil {
		return err
	}

	reader := ingest.NewCSVReader(cfg.Catalogue.PodcastsFile, cfg.Catalogue.EpisodesFile)
	if err := repo.LoadData(cmd.Context(), reader); err != nil {
		return fmt.Errorf("failed to load catalogue data: %w", err)
	}
	log.Info().
		Str("driver", cfg.Database.Driver).
		Str("podcasts", cfg.Catalogue.PodcastsFile).
		Str("episodes", cfg.Catalogue.EpisodesFile).
		Msg("Catalogue ready")

	deps := &types.Dependencies{
		DB:   db,
		Repo: repo,
		AccountService: accounts.NewService(repo, cfg.Auth.JWTSecret,
			accounts.WithBcryptCost(cfg.Auth.BcryptCost),
			accounts.WithTokenTTL(cfg.Auth.TokenTTL),
		),
		ReviewService: reviews.NewService(repo),
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	server.SetVersionInfo(types.VersionResponse{
		Version:   Version,
		Commit:    GitCommit,
		BuildDate: BuildTime,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Info().Str("address", address).Msg("Server is ready to handle requests")

	select {
	case <-stop:
		log.Info().Msg("Shutting down server")
	case err := <-serverErr:
		log.Error().Err(err).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

// buildRepository selects the repository backend from configuration. The
// returned DB is nil for the in-memory backend.
func buildRepository(cfg *config.Config) (catalogue.Repository, *database.DB, error) {
	switch cfg.Database.Driver {
	case "memory":
		return catalogue.NewMemoryRepository(), nil, nil
	case "sqlite":
		db, err := database.InitializeWithMigrations()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return catalogue.NewGormRepository(db.DB), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
