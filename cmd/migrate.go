package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/castlog/catalogue-api/internal/database"
	"github.com/castlog/catalogue-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Manage the SQLite schema for the Podcast Catalogue API.

The schema is derived from the catalogue models and applied additively:
new tables, columns and indexes are created, nothing is dropped.

Available subcommands:
  up      - Bring the schema up to date
  status  - Show which catalogue tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring the schema up to date",
	Long: `Create or update the catalogue tables.

This connects to the configured SQLite database and migrates every
catalogue model. Existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long: `Display which catalogue tables exist in the configured database
and which are still missing.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	if config.GetString("database.driver") != "sqlite" {
		return fmt.Errorf("migrations only apply to the sqlite driver, current driver is %q", config.GetString("database.driver"))
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	if config.GetString("database.driver") != "sqlite" {
		return fmt.Errorf("migrations only apply to the sqlite driver, current driver is %q", config.GetString("database.driver"))
	}

	db, err := database.Initialize(config.GetString("database.path"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Schema Status")
	fmt.Fprintln(out, repeatString("=", 50))

	migrator := db.DB.Migrator()
	var missing int
	for _, model := range database.CatalogueModels() {
		name := fmt.Sprintf("%T", model)
		name = strings.TrimPrefix(name, "*models.")
		if migrator.HasTable(model) {
			fmt.Fprintf(out, "  [ok]      %s\n", name)
		} else {
			fmt.Fprintf(out, "  [missing] %s\n", name)
			missing++
		}
	}

	if missing > 0 {
		fmt.Fprintf(out, "\n%d table(s) missing, run \"catalogue-api migrate up\"\n", missing)
	}
	return nil
}

// repeatString repeats a string n times
func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
