package cli

import (
	"github.com/spf13/cobra"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/logging"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/spotify"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/storage"

	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/all"
)

var tablesFlags struct {
	dropFirst bool
}

var tablesCmd = &cobra.Command{
	Use:   "create-tables",
	Short: "Create the spotify tables without loading data",
	Long: `Create-tables issues the CREATE TABLE statements for spotify_artists and
spotify_albums. Creation is idempotent: running it against a database that
already has the tables changes nothing. --drop-first drops and recreates
them, discarding existing rows.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := validatedConfig()
		if err != nil {
			return err
		}

		repo, err := storage.Open(ctx, cfg.StorageConfig())
		if err != nil {
			return err
		}
		defer repo.Close()

		log := logging.GetLogger()
		for _, ds := range spotify.Catalog() {
			if tablesFlags.dropFirst {
				log.Info().Str("table", ds.Table.Name).Msg("dropping table")
				if err := storage.DropTable(ctx, repo, cfg.DB.Driver, ds.Table.Name); err != nil {
					return err
				}
			}
			log.Info().Str("table", ds.Table.Name).Msg("creating table")
			if err := storage.EnsureTable(ctx, repo, cfg.DB.Driver, ds.Table); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	tablesCmd.Flags().BoolVar(&tablesFlags.dropFirst, "drop-first", false, "drop existing tables before creating them")
	rootCmd.AddCommand(tablesCmd)
}
