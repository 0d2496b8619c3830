package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/castlog/catalogue-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalogue-api",
	Short: "Podcast catalogue API server",
	Long: `Podcast Catalogue API - a podcast cataloguing and social API

The server exposes a browsable catalogue of podcasts, episodes, authors
and categories, full text search, user accounts with reviews, and a
personal playlist per user.

The catalogue can be held entirely in memory or persisted to SQLite,
selected with the database.driver setting.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	resetFlags(rootCmd)
	return rootCmd
}

// resetFlags clears flag state left behind by a previous Execute so the
// shared command tree behaves like a fresh one between test runs.
func resetFlags(cmd *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		})
	}
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it. The version
// and help commands work without configuration.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// A .env file is optional, shell environment wins either way.
	_ = godotenv.Load()

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	setupLogging()
}

// setupLogging configures zerolog from config, with the persistent flags
// taking precedence.
func setupLogging() {
	level := config.GetString("logging.level")
	if flagLevel, err := rootCmd.PersistentFlags().GetString("log-level"); err == nil && flagLevel != "" {
		level = flagLevel
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")
	if !jsonLogs && config.GetString("logging.format") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
