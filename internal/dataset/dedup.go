package dataset

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Dedupe collapses rows that share the same key, keeping the last
// occurrence in file order. The key is the xxh3 fingerprint of the named
// columns' values joined with a NUL separator (nil cells contribute an
// empty segment). It returns the number of rows removed.
//
// Run Dedupe before loading so duplicate business keys never reach the
// database; primary-key constraints remain the backstop.
func (f *Frame) Dedupe(keys []string) (int, error) {
	if len(keys) == 0 {
		return 0, fmt.Errorf("dataset: dedupe needs at least one key column")
	}
	for _, k := range keys {
		if !f.HasColumn(k) {
			return 0, fmt.Errorf("dataset: dedupe key column %q not in frame", k)
		}
	}
	if len(f.rows) == 0 {
		return 0, nil
	}

	last := make(map[uint64]int, len(f.rows))
	for i, r := range f.rows {
		last[fingerprint(r, keys)] = i
	}

	if len(last) == len(f.rows) {
		return 0, nil
	}

	kept := make([]Row, 0, len(last))
	for i, r := range f.rows {
		if last[fingerprint(r, keys)] == i {
			kept = append(kept, r)
		}
	}
	removed := len(f.rows) - len(kept)
	f.rows = kept
	return removed, nil
}

func fingerprint(r Row, keys []string) uint64 {
	h := xxh3.New()
	for _, k := range keys {
		h.WriteString(cellString(r[k]))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
