package integrator

import (
	"runtime"
	"sync"
)

// ParallelFor executes fn over chunks of [0, n) and blocks until every chunk
// has finished. The wait is the barrier the stage protocol relies on: no
// particle enters the next phase before all particles finish the current
// one. Updates inside one stage touch only the particle being processed, so
// no finer locking is needed.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
