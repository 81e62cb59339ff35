// Package ddl renders schema definitions into SQL Server DDL.
package ddl

import (
	"fmt"
	"strings"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
)

// defaultStringSize is used for String columns without an explicit size.
const defaultStringSize = 256

// MapType maps a logical column kind to a SQL Server type.
func MapType(k schema.Kind, size int) string {
	switch k {
	case schema.Integer:
		return "INT"
	case schema.Float:
		return "FLOAT"
	case schema.Boolean:
		return "BIT"
	case schema.Timestamp:
		return "DATETIME2"
	default:
		if size <= 0 {
			size = defaultStringSize
		}
		return fmt.Sprintf("NVARCHAR(%d)", size)
	}
}

// BuildCreateTableSQL returns an idempotent create statement. SQL Server has
// no CREATE TABLE IF NOT EXISTS, so the statement is guarded with an
// OBJECT_ID check instead.
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
		"IF OBJECT_ID(N'%s', N'U') IS NULL CREATE TABLE %s (\n  %s\n);",
		strings.ReplaceAll(t.Name, "'", "''"),
		QuoteIdent(t.Name),
		strings.Join(cols, ",\n  "),
	), nil
}

// BuildDropTableSQL returns a guarded drop statement.
func BuildDropTableSQL(table string) string {
	return fmt.Sprintf(
		"IF OBJECT_ID(N'%s', N'U') IS NOT NULL DROP TABLE %s;",
		strings.ReplaceAll(table, "'", "''"),
		QuoteIdent(table),
	)
}

// QuoteIdent bracket-quotes an identifier, escaping embedded brackets.
func QuoteIdent(id string) string {
	return "[" + strings.ReplaceAll(id, "]", "]]") + "]"
}
