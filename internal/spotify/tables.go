// Package spotify declares the target table schemas for the Spotify track
// dump and the dataset catalog that binds each CSV file to its table and
// transformations.
package spotify

import "github.com/jarretjeter/Spotify-Data-Loader/internal/schema"

// ArtistsTable is the declared schema for the spotify_artists table.
func ArtistsTable() schema.Table {
	return schema.Table{
		Name: "spotify_artists",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.String, Size: 256, PrimaryKey: true},
			{Name: "name", Kind: schema.String, Size: 256},
			{Name: "artist_popularity", Kind: schema.Integer},
			{Name: "followers", Kind: schema.String, Size: 256},
			{Name: "genres", Kind: schema.String, Size: 256},
			{Name: "track_id", Kind: schema.String, Size: 256},
			{Name: "track_id_prev", Kind: schema.String, Size: 256},
			{Name: "type", Kind: schema.String, Size: 256},
		},
	}
}

// AlbumsTable is the declared schema for the spotify_albums table. Some
// columns (available_markets, external_urls, images) carry long JSON-ish
// payloads and get wider sizes.
func AlbumsTable() schema.Table {
	return schema.Table{
		Name: "spotify_albums",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.String, Size: 256, PrimaryKey: true},
			{Name: "name", Kind: schema.String, Size: 256},
			{Name: "album_type", Kind: schema.String, Size: 256},
			{Name: "artist_id", Kind: schema.String, Size: 256},
			{Name: "available_markets", Kind: schema.String, Size: 1000},
			{Name: "external_urls", Kind: schema.String, Size: 1000},
			{Name: "href", Kind: schema.String, Size: 1000},
			{Name: "images", Kind: schema.String, Size: 1000},
			{Name: "release_date", Kind: schema.String, Size: 256},
			{Name: "release_date_precision", Kind: schema.String, Size: 256},
			{Name: "total_tracks", Kind: schema.Integer},
			{Name: "track_id", Kind: schema.String, Size: 256},
			{Name: "track_name_prev", Kind: schema.String, Size: 256},
			{Name: "uri", Kind: schema.String, Size: 256},
			{Name: "type", Kind: schema.String, Size: 256},
		},
	}
}

// Dataset binds one CSV file to its target table and the row operations the
// pipeline applies before loading.
type Dataset struct {
	// Name identifies the dataset in logs.
	Name string

	// File is the CSV filename, resolved against the configured data dir.
	File string

	// Table is the declared target schema.
	Table schema.Table

	// IndexColumn and IndexKeys describe the dash-joined index built before
	// loading. The index column is dropped at insert time when it is not
	// part of the declared schema.
	IndexColumn string
	IndexKeys   []string

	// SortColumn, when set, orders rows before loading.
	SortColumn string
}

// Catalog lists the datasets the pipeline loads, in load order.
func Catalog() []Dataset {
	return []Dataset{
		{
			Name:        "artists",
			File:        "spotify_artists.csv",
			Table:       ArtistsTable(),
			IndexColumn: "id",
			IndexKeys:   []string{"id"},
			SortColumn:  "name",
		},
		{
			Name:        "albums",
			File:        "spotify_albums.csv",
			Table:       AlbumsTable(),
			IndexColumn: "album",
			IndexKeys:   []string{"name", "artist_id", "release_date"},
		},
	}
}
