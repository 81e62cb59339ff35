// Package dataset implements an in-memory tabular structure (Frame) loaded
// from CSV, plus the row-level operations the loaders need: head/info
// inspection, index construction, sorting, de-duplication, and projection.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/logging"
)

// Options configures CSV reading. All fields are optional; zero values fall
// back to sensible defaults.
type Options struct {
	// Comma is the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing spaces from each field value.
	TrimSpace bool
}

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// ReadFile loads the CSV at path into a Frame. The first row must be a
// header; its cells become the Frame's column names after normalization
// (lowercase, spaces to underscores, diacritics folded).
//
// Body rows whose width differs from the header are skipped and counted;
// the count is available via Frame.Skipped. Empty cells become nil so they
// reach the database as NULL.
func ReadFile(path string, opt Options) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	fr, err := read(f, opt)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	fr.path = path
	return fr, nil
}

func read(r io.Reader, opt Options) (*Frame, error) {
	cr := csv.NewReader(r)
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	// Width is enforced below against the header, not by encoding/csv, so a
	// ragged row is skipped instead of aborting the whole file.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := normalizeHeaders(header)

	log := logging.GetLogger()
	fr := &Frame{cols: cols}
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Int("row", line).Err(err).Msg("skipping unparsable row")
			fr.skipped++
			continue
		}
		if len(row) != len(cols) {
			log.Warn().Int("row", line).Int("expected", len(cols)).Int("got", len(row)).Msg("skipping row with wrong field count")
			fr.skipped++
			continue
		}

		rec := make(Row, len(row))
		for i, val := range row {
			if opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[cols[i]] = emptyToNil(val)
		}
		fr.rows = append(fr.rows, rec)
	}
	return fr, nil
}

// emptyToNil converts an empty string to nil; other values pass through.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// foldMarks removes combining marks so accented headers normalize to plain
// ASCII column names ("Título" -> "titulo").
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeaders produces canonical column names: BOM stripped from the
// first cell, diacritics folded, lowercased, spaces replaced by underscores.
// Empty header cells are given positional names so the unnamed index column
// some exports carry still gets a stable, visible name.
func normalizeHeaders(h []string) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		if folded, _, err := transform.String(foldMarks, c); err == nil {
			c = folded
		}
		c = strings.ReplaceAll(strings.ToLower(c), " ", "_")
		if c == "" {
			c = fmt.Sprintf("col_%d", i)
		}
		res[i] = c
	}
	return res
}
