// Package ddl renders schema definitions into MySQL DDL.
package ddl

import (
	"fmt"
	"strings"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
)

// defaultStringSize is used for String columns without an explicit size.
const defaultStringSize = 256

// MapType maps a logical column kind to a MySQL type.
func MapType(k schema.Kind, size int) string {
	switch k {
	case schema.Integer:
		return "INT"
	case schema.Float:
		return "DOUBLE"
	case schema.Boolean:
		return "TINYINT(1)"
	case schema.Timestamp:
		return "DATETIME"
	default:
		if size <= 0 {
			size = defaultStringSize
		}
		return fmt.Sprintf("VARCHAR(%d)", size)
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

// QuoteIdent backtick-quotes an identifier, escaping embedded backticks.
func QuoteIdent(id string) string {
	return "`" + strings.ReplaceAll(id, "`", "``") + "`"
}
