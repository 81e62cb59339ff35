package ddl

import (
	"strings"
	"testing"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
)

func TestBuildCreateTableSQLIsGuarded(t *testing.T) {
	t.Parallel()

	tbl := schema.Table{
		Name: "tracks",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.String, PrimaryKey: true},
			{Name: "popularity", Kind: schema.Integer},
		},
	}
	got, err := BuildCreateTableSQL(tbl)
	if err != nil {
		t.Fatalf("BuildCreateTableSQL: %v", err)
	}
	if !strings.HasPrefix(got, "IF OBJECT_ID(N'tracks', N'U') IS NULL CREATE TABLE [tracks]") {
		t.Fatalf("missing existence guard:\n%s", got)
	}
	if !strings.Contains(got, "[id] NVARCHAR(256) NOT NULL") {
		t.Fatalf("missing id column:\n%s", got)
	}
	if !strings.Contains(got, "PRIMARY KEY ([id])") {
		t.Fatalf("missing primary key clause:\n%s", got)
	}
}

func TestBuildDropTableSQLIsGuarded(t *testing.T) {
	t.Parallel()

	got := BuildDropTableSQL("tracks")
	if got != "IF OBJECT_ID(N'tracks', N'U') IS NOT NULL DROP TABLE [tracks];" {
		t.Fatalf("drop sql = %s", got)
	}
}
