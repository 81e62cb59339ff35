// Package cli wires the spotifyload commands: run, create-tables, inspect,
// and validate.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/config"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/logging"
)

var rootFlags struct {
	configPath string
	envFile    string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "spotifyload",
	Short: "Load Spotify CSV dumps into a relational database",
	Long: `spotifyload reads the Spotify artists and albums CSV dumps, applies the
index/sort/dedupe transformations, and loads them into a relational
database (MySQL by default; postgres, sqlite and mssql are also wired in).

Configuration comes from an optional YAML file plus SPOTIFY_* environment
variables; a .env file is honored when present. Passwords are never taken
as CLI flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(rootFlags.verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "spotify.yaml", "YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.envFile, "env-file", ".env", "env file loaded before reading SPOTIFY_* variables")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "enable debug logs")
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spotifyload: %v\n", err)
		return err
	}
	return nil
}

// loadConfig assembles the effective configuration: .env file (best
// effort), then the YAML file when present, then SPOTIFY_* overrides.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load(rootFlags.envFile)

	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return config.Config{}, err
		}
		cfg = config.Default()
	}
	return config.FromEnv(cfg)
}

// validatedConfig loads the configuration and fails on any error-severity
// finding, printing every finding to stderr first.
func validatedConfig() (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, err
	}
	issues := config.Validate(cfg)
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if config.HasError(issues) {
		return config.Config{}, fmt.Errorf("configuration is invalid")
	}
	return cfg, nil
}
