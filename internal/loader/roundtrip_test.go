package loader

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/dataset"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/storage"

	_ "github.com/jarretjeter/Spotify-Data-Loader/internal/storage/sqlite"
)

// TestRoundTripSQLite drives the full path against a real database: CSV on
// disk -> DataLoader -> EnsureTable -> LoadToDB -> read back. The CSV
// carries an extra index-style column that must not appear in the table.
func TestRoundTripSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "tracks.csv")
	csv := "row_id,track_name,artist,danceability\n" +
		"0,Halo,Beyonce,0.53\n" +
		"1,One,Metallica,0.41\n" +
		"2,Jolene,Dolly Parton,0.62\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	dl, err := New(csvPath, dataset.Options{TrimSpace: true})
	require.NoError(t, err)

	dbPath := filepath.Join(dir, "spotify.db")
	repo, err := storage.Open(ctx, storage.Config{Driver: "sqlite", Database: dbPath})
	require.NoError(t, err)
	defer repo.Close()

	tbl := tracksTable()
	require.NoError(t, storage.EnsureTable(ctx, repo, "sqlite", tbl))

	report, err := dl.LoadToDB(ctx, repo, tbl, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, report.Inserted)
	assert.Equal(t, []string{"row_id"}, report.DroppedColumns)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	// The table carries exactly the declared columns; row_id must be gone.
	cols, err := db.Query("SELECT name FROM pragma_table_info('tracks') ORDER BY cid")
	require.NoError(t, err)
	defer cols.Close()
	var names []string
	for cols.Next() {
		var n string
		require.NoError(t, cols.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, cols.Err())
	assert.Equal(t, []string{"track_name", "artist", "danceability"}, names)

	rows, err := db.Query("SELECT track_name, artist, danceability FROM tracks ORDER BY track_name")
	require.NoError(t, err)
	defer rows.Close()

	type track struct {
		name, artist string
		dance        float64
	}
	var got []track
	for rows.Next() {
		var r track
		require.NoError(t, rows.Scan(&r.name, &r.artist, &r.dance))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())

	want := []track{
		{"Halo", "Beyonce", 0.53},
		{"Jolene", "Dolly Parton", 0.62},
		{"One", "Metallica", 0.41},
	}
	assert.Equal(t, want, got)
}

// TestOpenInvalidConnection covers failure propagation from the engine
// factory: a database path in a directory that does not exist cannot be
// opened.
func TestOpenInvalidConnection(t *testing.T) {
	ctx := context.Background()
	_, err := storage.Open(ctx, storage.Config{
		Driver:   "sqlite",
		Database: filepath.Join(t.TempDir(), "missing", "nested", "spotify.db"),
	})
	require.Error(t, err)
}
