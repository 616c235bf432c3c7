package main

import "runtime"

// Worker sizing constants.
const (
	// minWorkers ensures at least one worker is available.
	minWorkers = 1

	// maxWorkers caps parallelism; conversion is CPU-bound and short, so
	// more workers than cores only adds scheduling churn.
	maxWorkers = 8
)

// resolveWorkers determines the worker count for batch conversion.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs in
// containers), clamped to [minWorkers, maxWorkers].
func resolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
