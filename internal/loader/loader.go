// Package loader implements the DataLoader: one loaded CSV dataset plus the
// operation that writes it to a relational table through a
// storage.Repository.
//
// The write path projects the frame down to exactly the declared schema
// columns before inserting. Historically the loader wrote every column the
// frame carried, so synthetic index columns (and any other stray column in
// the source file) leaked into the database; the projection closes that
// hole and the dropped names are reported instead.
package loader

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/dataset"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/logging"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/storage"
)

// DataLoader wraps one Frame read from a CSV file. It owns no external
// resources; the database connection is supplied per call.
type DataLoader struct {
	frame *dataset.Frame
}

// New reads the CSV at path into memory. The file must exist, be readable,
// and carry a header row.
func New(path string, opt dataset.Options) (*DataLoader, error) {
	fr, err := dataset.ReadFile(path, opt)
	if err != nil {
		return nil, err
	}
	return &DataLoader{frame: fr}, nil
}

// FromFrame wraps an already-built frame. Useful in tests.
func FromFrame(fr *dataset.Frame) *DataLoader { return &DataLoader{frame: fr} }

// Frame exposes the underlying frame.
func (l *DataLoader) Frame() *dataset.Frame { return l.frame }

// Head returns up to n leading rows.
func (l *DataLoader) Head(n int) []dataset.Row { return l.frame.Head(n) }

// Info writes a per-column summary of the frame to w.
func (l *DataLoader) Info(w io.Writer) { l.frame.Info(w) }

// AddIndex builds a dash-joined index column from keys; see Frame.AddIndex.
func (l *DataLoader) AddIndex(name string, keys []string) error {
	log := logging.GetLogger()
	log.Info().Str("index", name).Strs("keys", keys).Msg("adding index column")
	return l.frame.AddIndex(name, keys)
}

// SortBy sorts the frame by the named column.
func (l *DataLoader) SortBy(col string) error { return l.frame.SortBy(col) }

// Dedupe drops rows duplicated on keys, keeping the last occurrence.
func (l *DataLoader) Dedupe(keys []string) (int, error) { return l.frame.Dedupe(keys) }

// Report summarizes one completed load.
type Report struct {
	Table          string
	Inserted       int64
	SkippedRows    int
	DroppedColumns []string
	Elapsed        time.Duration
}

// LoadToDB writes the frame into the table described by t, using repo. The
// frame is first projected to exactly t's columns: every declared column
// must be present in the frame, and any extra frame column is dropped and
// listed in the report. Cells are coerced to the declared column kinds;
// a cell that cannot be coerced fails the load.
//
// The call either succeeds as a whole or returns the first error; there is
// no retry and no partial-success recovery.
func (l *DataLoader) LoadToDB(ctx context.Context, repo storage.Repository, t schema.Table, batchSize int) (*Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	columns := t.ColumnNames()
	projected, err := l.frame.Select(columns)
	if err != nil {
		return nil, fmt.Errorf("loader: table %s: %w", t.Name, err)
	}
	dropped := droppedColumns(l.frame.Columns(), columns)

	rows := make([][]any, 0, projected.Len())
	for i, rec := range projected.Rows() {
		row := make([]any, len(columns))
		for j, name := range columns {
			col, _ := t.Column(name)
			v, err := coerceCell(rec[name], col)
			if err != nil {
				return nil, fmt.Errorf("loader: %s row %d: %w", t.Name, i+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	log := logging.GetLogger()
	log.Info().
		Str("table", t.Name).
		Int("rows", len(rows)).
		Strs("dropped_columns", dropped).
		Msg("loading table")

	start := time.Now()
	n, err := storage.InsertBatches(ctx, repo, t.Name, columns, rows, batchSize)
	if err != nil {
		return nil, err
	}
	return &Report{
		Table:          t.Name,
		Inserted:       n,
		SkippedRows:    l.frame.Skipped(),
		DroppedColumns: dropped,
		Elapsed:        time.Since(start),
	}, nil
}

// droppedColumns returns the frame columns that are not declared in the
// schema, preserving frame order.
func droppedColumns(frameCols, declared []string) []string {
	keep := make(map[string]struct{}, len(declared))
	for _, c := range declared {
		keep[c] = struct{}{}
	}
	var dropped []string
	for _, c := range frameCols {
		if _, ok := keep[c]; !ok {
			dropped = append(dropped, c)
		}
	}
	return dropped
}

// timeLayouts are tried in order when coercing Timestamp cells.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// coerceCell converts a raw frame cell (string or nil) to the Go value the
// drivers expect for the declared kind. Nil stays nil unless the column is
// NOT NULL.
func coerceCell(v any, col schema.Column) (any, error) {
	if v == nil {
		if col.NotNull || col.PrimaryKey {
			return nil, fmt.Errorf("column %s: NULL in non-nullable column", col.Name)
		}
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		// Already typed (index columns are built as strings; anything else
		// came from a synthetic frame). Pass through.
		return v, nil
	}

	switch col.Kind {
	case schema.Integer:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			// Some exports serialize integers as "12.0".
			f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if ferr != nil || f != float64(int64(f)) {
				return nil, fmt.Errorf("column %s: %q is not an integer", col.Name, s)
			}
			return int64(f), nil
		}
		return n, nil
	case schema.Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not a float", col.Name, s)
		}
		return f, nil
	case schema.Boolean:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not a bool", col.Name, s)
		}
		return b, nil
	case schema.Timestamp:
		ts := strings.TrimSpace(s)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, ts); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("column %s: %q is not a timestamp", col.Name, s)
	default:
		return s, nil
	}
}
