package dataset

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Row is one record of the frame, keyed by normalized column name. Cell
// values are strings as read from the file, or nil for empty cells.
type Row map[string]any

// Frame is an ordered, in-memory table: a header (column names in file
// order) plus rows. It owns no external resources.
type Frame struct {
	path    string
	cols    []string
	rows    []Row
	skipped int
}

// NewFrame builds a Frame directly from columns and rows. It is mostly
// useful in tests and for synthetic data.
func NewFrame(cols []string, rows []Row) *Frame {
	return &Frame{cols: append([]string(nil), cols...), rows: rows}
}

// Path returns the file the frame was read from, if any.
func (f *Frame) Path() string { return f.path }

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return f.cols }

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.rows) }

// Skipped returns how many source rows were dropped during parsing.
func (f *Frame) Skipped() int { return f.skipped }

// Rows returns the underlying rows. Callers must not grow or shrink the
// slice; mutating individual rows is allowed.
func (f *Frame) Rows() []Row { return f.rows }

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.cols {
		if c == name {
			return true
		}
	}
	return false
}

// Head returns up to n leading rows. Negative n yields no rows.
func (f *Frame) Head(n int) []Row {
	if n < 0 {
		n = 0
	}
	if n > len(f.rows) {
		n = len(f.rows)
	}
	return f.rows[:n]
}

// Info writes a short per-column summary to w: name, and how many of the
// rows have a non-nil value in that column.
func (f *Frame) Info(w io.Writer) {
	fmt.Fprintf(w, "%d rows x %d columns (%d skipped)\n", len(f.rows), len(f.cols), f.skipped)
	for _, c := range f.cols {
		nonNull := 0
		for _, r := range f.rows {
			if r[c] != nil {
				nonNull++
			}
		}
		fmt.Fprintf(w, "  %-28s %d non-null\n", c, nonNull)
	}
}

// AddIndex builds an index column named name by joining the values of keys
// with a dash, and moves it to the front of the column order. If a column
// with that name already exists its values are overwritten in place.
//
// Nil key cells contribute an empty segment.
func (f *Frame) AddIndex(name string, keys []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("dataset: index name must not be empty")
	}
	if len(keys) == 0 {
		return fmt.Errorf("dataset: index %s needs at least one key column", name)
	}
	for _, k := range keys {
		if !f.HasColumn(k) {
			return fmt.Errorf("dataset: index key column %q not in frame", k)
		}
	}

	for _, r := range f.rows {
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = cellString(r[k])
		}
		r[name] = strings.Join(parts, "-")
	}

	// Reorder: index column first.
	cols := make([]string, 0, len(f.cols)+1)
	cols = append(cols, name)
	for _, c := range f.cols {
		if c != name {
			cols = append(cols, c)
		}
	}
	f.cols = cols
	return nil
}

// SortBy stably sorts rows by the named column. Values that parse as
// numbers compare numerically; otherwise comparison is lexicographic.
// Nil cells sort first.
func (f *Frame) SortBy(col string) error {
	if !f.HasColumn(col) {
		return fmt.Errorf("dataset: sort column %q not in frame", col)
	}
	sort.SliceStable(f.rows, func(i, j int) bool {
		return lessCell(f.rows[i][col], f.rows[j][col])
	})
	return nil
}

// Select returns a new Frame restricted to exactly cols, in the given
// order, sharing row storage with the receiver. Every requested column must
// exist in the frame.
func (f *Frame) Select(cols []string) (*Frame, error) {
	for _, c := range cols {
		if !f.HasColumn(c) {
			return nil, fmt.Errorf("dataset: column %q not in frame", c)
		}
	}
	return &Frame{
		path:    f.path,
		cols:    append([]string(nil), cols...),
		rows:    f.rows,
		skipped: f.skipped,
	}, nil
}

func lessCell(a, b any) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	as, bs := cellString(a), cellString(b)
	af, aerr := strconv.ParseFloat(as, 64)
	bf, berr := strconv.ParseFloat(bs, 64)
	if aerr == nil && berr == nil {
		return af < bf
	}
	return as < bs
}

// cellString renders a cell for index keys and comparisons. Nil becomes "".
func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}
