package lazy

import (
	"runtime"
	"sync"

	"github.com/LorenzoFritzsch/hilbert-qusim/dvm"
)

// Materialise evaluates every row of the graph and returns the result as a
// dense dvm.Matrix. Work count = hardware concurrency, clamped to the
// number of rows: each worker pulls disjoint row ranges from a rowWorkQueue
// and writes them into its own stripe of the (pre-sized, never resized)
// output buffer, so no locking is required — reads against the graph are
// pure and writes are to disjoint regions. No append may run concurrently
// with Materialise; the caller owns that discipline (the arenas are
// append-only and Materialise never mutates them).
func (g *Graph) Materialise() dvm.Matrix {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return dvm.NewZero(rows, cols)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	rowsPerWorker := (rows + workers - 1) / workers

	out := make([]complex64, rows*cols)

	var queue rowWorkQueue
	queue.reset(rows, rowsPerWorker)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				start, end, ok := queue.next()
				if !ok {
					return
				}
				for r := start; r < end; r++ {
					copy(out[r*cols:(r+1)*cols], g.GetRow(r).Complex())
				}
			}
		}()
	}
	wg.Wait()

	m, err := dvm.New(rows, cols, out)
	if err != nil {
		panic(err)
	}
	return m
}
