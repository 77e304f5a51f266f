package lazy

import "sync/atomic"

// rowWorkQueue dispenses disjoint row ranges to worker goroutines during
// Materialise. It is the same atomic-counter dispenser shape as gonum's
// blas/gonum blockWorkQueue, specialised from a 2-D (i, j) block iteration
// to a 1-D row-range iteration: row kernels already compute an entire row
// per call, so there is no column-blocking dimension to partition.
type rowWorkQueue struct {
	head int64

	rows          int
	rowsPerWorker int
}

// reset prepares the queue to hand out ranges covering [0, rows) in chunks
// of rowsPerWorker.
func (q *rowWorkQueue) reset(rows, rowsPerWorker int) {
	q.head = 0
	q.rows = rows
	q.rowsPerWorker = rowsPerWorker
}

// next returns the next [start, end) row range, or ok=false once every row
// has been handed out.
func (q *rowWorkQueue) next() (start, end int, ok bool) {
	w := int(atomic.AddInt64(&q.head, 1)) - 1
	start = w * q.rowsPerWorker
	if start >= q.rows {
		return 0, 0, false
	}
	end = start + q.rowsPerWorker
	if end > q.rows {
		end = q.rows
	}
	return start, end, true
}
