package dataset

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadFileNormalizesHeaders(t *testing.T) {
	t.Parallel()

	fr, err := ReadFile(filepath.Join("testdata", "tracks.csv"), Options{TrimSpace: true})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// BOM stripped from the first cell, spaces to underscores, lowercase.
	want := []string{"track_name", "artist_name", "danceability"}
	if got := fr.Columns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	if fr.Len() != 3 {
		t.Fatalf("rows = %d, want 3", fr.Len())
	}
	if fr.Skipped() != 1 {
		t.Fatalf("skipped = %d, want 1 (the two-field row)", fr.Skipped())
	}
	if got := fr.Rows()[0]["track_name"]; got != "Halo" {
		t.Fatalf("first track_name = %v, want Halo", got)
	}
}

func TestReadFileFoldsDiacritics(t *testing.T) {
	t.Parallel()

	fr, err := ReadFile(filepath.Join("testdata", "accented.csv"), Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []string{"titulo_cancion", "artist", "plays"}
	if got := fr.Columns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
}

func TestReadFileEmptyCellBecomesNil(t *testing.T) {
	t.Parallel()

	fr, err := ReadFile(filepath.Join("testdata", "accented.csv"), Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	rows := fr.Rows()
	if rows[1]["plays"] != nil {
		t.Fatalf("empty cell = %v, want nil", rows[1]["plays"])
	}
	if rows[0]["plays"] != "1" {
		t.Fatalf("non-empty cell = %v, want \"1\"", rows[0]["plays"])
	}
}

func TestReadFileMissingPath(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist.csv"), Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error %v should wrap fs.ErrNotExist", err)
	}
}
