// Package schema defines a small, dialect-agnostic model for relational table
// definitions. Column types are logical kinds; each storage backend maps them
// to its own SQL types when rendering DDL.
package schema

import (
	"fmt"
	"strings"
)

// Kind is the logical type of a column.
type Kind int

const (
	String Kind = iota
	Integer
	Float
	Boolean
	Timestamp
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Timestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column describes a single column in a table definition.
//
// Size is a character-length hint for String columns; backends substitute a
// default when it is zero. Columns are nullable unless NotNull is set or
// the column is part of the primary key.
type Column struct {
	Name       string
	Kind       Kind
	Size       int
	NotNull    bool
	PrimaryKey bool
}

// Table holds a table name and an ordered list of columns. The name is
// unquoted; quoting and escaping happen in the backend DDL renderers.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the declared column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the declared column with the given name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Validate checks the definition for structural problems: an empty table
// name, no columns, empty or duplicate column names.
func (t Table) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("schema: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("schema: table %s has no columns", t.Name)
	}
	seen := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("schema: table %s has a column with an empty name", t.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("schema: table %s declares column %s twice", t.Name, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
