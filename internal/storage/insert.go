package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/logging"
)

// DefaultBatchSize is used when a caller passes batchSize <= 0.
const DefaultBatchSize = 500

// InsertBatches writes rows into table in batches of batchSize, strictly in
// order on the calling goroutine. It returns the total number of rows the
// repository reported inserted and the first error encountered; there is no
// retry and no partial-success recovery beyond that count.
//
// A progress line with running totals and instantaneous rows/sec is logged
// after every batch.
func InsertBatches(
	ctx context.Context,
	repo Repository,
	table string,
	columns []string,
	rows [][]any,
	batchSize int,
) (int64, error) {
	if len(columns) == 0 {
		return 0, fmt.Errorf("storage: insert into %s: columns must not be empty", table)
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	log := logging.GetLogger()
	var (
		total   int64
		batches int
		start   = time.Now()
	)
	for off := 0; off < len(rows); off += batchSize {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		end := off + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		flushStart := time.Now()
		n, err := repo.Insert(ctx, table, columns, rows[off:end])
		total += n
		if err != nil {
			return total, fmt.Errorf("storage: insert into %s: %w", table, err)
		}

		batches++
		elapsed := time.Since(flushStart)
		rps := float64(0)
		if elapsed > 0 {
			rps = float64(n) / elapsed.Seconds()
		}
		log.Debug().
			Str("table", table).
			Int("batch", batches).
			Int64("inserted", n).
			Int64("total_inserted", total).
			Float64("rps", rps).
			Dur("elapsed", time.Since(start).Truncate(time.Millisecond)).
			Msg("batch flushed")
	}
	return total, nil
}
