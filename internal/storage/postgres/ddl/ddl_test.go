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
			{Name: "id", Kind: schema.String, Size: 256, PrimaryKey: true},
			{Name: "genres", Kind: schema.String},
			{Name: "total_tracks", Kind: schema.Integer},
		},
	}
	got, err := BuildCreateTableSQL(tbl)
	if err != nil {
		t.Fatalf("BuildCreateTableSQL: %v", err)
	}
	want := "CREATE TABLE IF NOT EXISTS \"tracks\" (\n" +
		"  \"id\" VARCHAR(256) NOT NULL,\n" +
		"  \"genres\" TEXT,\n" +
		"  \"total_tracks\" BIGINT,\n" +
		"  PRIMARY KEY (\"id\")\n);"
	if got != want {
		t.Fatalf("sql mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestMapTypeUnsizedStringIsText(t *testing.T) {
	t.Parallel()

	if got := MapType(schema.String, 0); got != "TEXT" {
		t.Fatalf("MapType = %s, want TEXT", got)
	}
}
