package ddl

import (
	"testing"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
)

func TestBuildCreateTableSQL(t *testing.T) {
	t.Parallel()

	tbl := schema.Table{
		Name: "tracks",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.String, PrimaryKey: true},
			{Name: "danceability", Kind: schema.Float},
			{Name: "plays", Kind: schema.Integer},
		},
	}
	got, err := BuildCreateTableSQL(tbl)
	if err != nil {
		t.Fatalf("BuildCreateTableSQL: %v", err)
	}
	want := "CREATE TABLE IF NOT EXISTS \"tracks\" (\n" +
		"  \"id\" TEXT NOT NULL,\n" +
		"  \"danceability\" REAL,\n" +
		"  \"plays\" INTEGER,\n" +
		"  PRIMARY KEY (\"id\")\n);"
	if got != want {
		t.Fatalf("sql mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildDropTableSQL(t *testing.T) {
	t.Parallel()

	if got := BuildDropTableSQL("tracks"); got != `DROP TABLE IF EXISTS "tracks";` {
		t.Fatalf("drop sql = %s", got)
	}
}
