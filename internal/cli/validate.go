package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/storage"
)

var validateFlags struct {
	checkDB bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration and exit",
	Long: `Validate checks the effective configuration (file, .env, environment
overrides) without loading any data. With --check-db it also opens a
connection and pings the database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := validatedConfig()
		if err != nil {
			return err
		}
		fmt.Println("configuration is valid")

		if validateFlags.checkDB {
			repo, err := storage.Open(cmd.Context(), cfg.StorageConfig())
			if err != nil {
				return err
			}
			defer repo.Close()
			if err := repo.Ping(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("database is reachable")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateFlags.checkDB, "check-db", false, "open a connection and ping the database")
	rootCmd.AddCommand(validateCmd)
}
