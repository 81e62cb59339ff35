package schema

import (
	"reflect"
	"strings"
	"testing"
)

func TestTableValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{
			name:    "empty name",
			table:   Table{Name: " ", Columns: []Column{{Name: "id"}}},
			wantErr: "name must not be empty",
		},
		{
			name:    "no columns",
			table:   Table{Name: "t"},
			wantErr: "has no columns",
		},
		{
			name:    "empty column name",
			table:   Table{Name: "t", Columns: []Column{{Name: ""}}},
			wantErr: "empty name",
		},
		{
			name:    "duplicate column",
			table:   Table{Name: "t", Columns: []Column{{Name: "id"}, {Name: "id"}}},
			wantErr: "twice",
		},
		{
			name:  "valid",
			table: Table{Name: "t", Columns: []Column{{Name: "id", PrimaryKey: true}, {Name: "name"}}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.table.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestColumnNamesAndLookup(t *testing.T) {
	t.Parallel()

	tbl := Table{Name: "t", Columns: []Column{
		{Name: "id", Kind: String},
		{Name: "plays", Kind: Integer},
	}}

	if got := tbl.ColumnNames(); !reflect.DeepEqual(got, []string{"id", "plays"}) {
		t.Fatalf("ColumnNames = %v", got)
	}
	c, ok := tbl.Column("plays")
	if !ok || c.Kind != Integer {
		t.Fatalf("Column(plays) = %+v, %v", c, ok)
	}
	if _, ok := tbl.Column("nope"); ok {
		t.Fatal("Column(nope) should not exist")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for k, want := range map[Kind]string{
		String:    "string",
		Integer:   "integer",
		Float:     "float",
		Boolean:   "boolean",
		Timestamp: "timestamp",
	} {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
