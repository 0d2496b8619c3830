package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestMigrateCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "migrate command with help",
			args:           []string{"migrate", "--help"},
			wantErr:        false,
			expectedOutput: "Manage the SQLite schema",
		},
		{
			name:           "migrate up subcommand",
			args:           []string{"migrate", "up", "--help"},
			wantErr:        false,
			expectedOutput: "Create or update the catalogue tables",
		},
		{
			name:           "migrate status subcommand",
			args:           []string{"migrate", "status", "--help"},
			wantErr:        false,
			expectedOutput: "Display which catalogue tables exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

func TestMigrateCommandSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	migrateCmd, _, err := cmd.Find([]string{"migrate"})
	if err != nil {
		t.Fatalf("Failed to find migrate command: %v", err)
	}

	expectedSubcommands := []string{"up", "status"}
	for _, subCmd := range expectedSubcommands {
		found := false
		for _, child := range migrateCmd.Commands() {
			if child.Name() == subCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected migrate command to have %q subcommand", subCmd)
		}
	}
}

func TestMigrateUpAndStatus(t *testing.T) {
	viper.Set("database.driver", "sqlite")
	viper.Set("database.path", filepath.Join(t.TempDir(), "catalogue.db"))
	t.Cleanup(func() {
		viper.Set("database.driver", "memory")
		viper.Set("database.path", "")
	})

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"migrate", "up"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("migrate up failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Schema is up to date") {
		t.Errorf("Unexpected migrate up output: %q", buf.String())
	}

	buf.Reset()
	cmd.SetArgs([]string{"migrate", "status"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("migrate status failed: %v", err)
	}
	if strings.Contains(buf.String(), "[missing]") {
		t.Errorf("Expected no missing tables, got %q", buf.String())
	}
}

func TestMigrateRejectsMemoryDriver(t *testing.T) {
	viper.Set("database.driver", "memory")

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"migrate", "up"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected migrate up to fail with the memory driver")
	}
}
