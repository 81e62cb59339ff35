// Package ddl renders schema definitions into Postgres DDL.
package ddl

import (
	"fmt"
	"strings"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
)

// MapType maps a logical column kind to a Postgres type. String columns
// with a size hint become VARCHAR(n); unsized strings use TEXT.
func MapType(k schema.Kind, size int) string {
	switch k {
	case schema.Integer:
		return "BIGINT"
	case schema.Float:
		return "DOUBLE PRECISION"
	case schema.Boolean:
		return "BOOLEAN"
	case schema.Timestamp:
		return "TIMESTAMPTZ"
	default:
		if size > 0 {
			return fmt.Sprintf("VARCHAR(%d)", size)
		}
		return "TEXT"
	}
}

// BuildCreateTableSQL returns an idempotent CREATE TABLE IF NOT EXISTS
// statement for t.
func BuildCreateTableSQL(t schema.Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		var sb strings.Builder
		sb.WriteString(QuoteIdent(c.Name))
		sb.WriteByte(' ')
		sb.WriteString(MapType(c.Kind, c.Size))
		if c.NotNull || c.PrimaryKey {
			sb.WriteString(" NOT NULL")
		}
		cols = append(cols, sb.String())
		if c.PrimaryKey {
			pks = append(pks, QuoteIdent(c.Name))
		}
	}
	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}

	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		QuoteIdent(t.Name),
		strings.Join(cols, ",\n  "),
	), nil
}

// BuildDropTableSQL returns a DROP TABLE IF EXISTS statement.
func BuildDropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", QuoteIdent(table))
}

// QuoteIdent double-quotes an identifier, escaping embedded quotes.
func QuoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
