package cli

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/dataset"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/loader"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/logging"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/spotify"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/storage"

	// Register all database backends.
	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/all"
)

var runFlags struct {
	dropFirst bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Create the tables and load every dataset",
	Long: `Run executes the whole pipeline, strictly in sequence:

1. Read the artists and albums CSVs from the data directory
2. Build index columns, sort, and drop duplicate keys
3. Open the database connection
4. Create the target tables if they do not exist (--drop-first recreates)
5. Load each dataset, projecting rows to the declared schema columns

Any failure stops the run and propagates to the exit code.`,
	Args: cobra.NoArgs,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().BoolVar(&runFlags.dropFirst, "drop-first", false, "drop existing tables before creating them")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := validatedConfig()
	if err != nil {
		return err
	}

	log := logging.GetLogger().With().Str("run_id", uuid.NewString()).Logger()

	// Read and transform every dataset before touching the database, so a
	// malformed file never leaves a half-created schema behind.
	datasets := spotify.Catalog()
	loaders := make([]*loader.DataLoader, len(datasets))
	for i, ds := range datasets {
		path := filepath.Join(cfg.Load.DataDir, ds.File)
		dl, err := loader.New(path, dataset.Options{TrimSpace: true})
		if err != nil {
			return err
		}
		if err := dl.AddIndex(ds.IndexColumn, ds.IndexKeys); err != nil {
			return err
		}
		if ds.SortColumn != "" {
			if err := dl.SortBy(ds.SortColumn); err != nil {
				return err
			}
		}
		removed, err := dl.Dedupe(ds.IndexKeys)
		if err != nil {
			return err
		}
		log.Info().
			Str("dataset", ds.Name).
			Str("file", path).
			Int("rows", dl.Frame().Len()).
			Int("skipped", dl.Frame().Skipped()).
			Int("duplicates_removed", removed).
			Msg("dataset ready")
		loaders[i] = dl
	}

	repo, err := storage.Open(ctx, cfg.StorageConfig())
	if err != nil {
		return err
	}
	defer repo.Close()

	for i, ds := range datasets {
		if runFlags.dropFirst {
			if err := storage.DropTable(ctx, repo, cfg.DB.Driver, ds.Table.Name); err != nil {
				return err
			}
		}
		if err := storage.EnsureTable(ctx, repo, cfg.DB.Driver, ds.Table); err != nil {
			return err
		}

		report, err := loaders[i].LoadToDB(ctx, repo, ds.Table, cfg.Load.BatchSize)
		if err != nil {
			return err
		}
		log.Info().
			Str("table", report.Table).
			Int64("inserted", report.Inserted).
			Int("skipped_rows", report.SkippedRows).
			Strs("dropped_columns", report.DroppedColumns).
			Dur("elapsed", report.Elapsed).
			Msg("dataset loaded")
	}
	return nil
}
