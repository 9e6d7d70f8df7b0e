// Package support answers support-point queries for convex shapes in bulk.
//
// The per-shape algorithms live in package shape; Batch spreads many
// directions for one shape over a fixed number of goroutines. Shapes are
// immutable values, so workers share them without locking.
package support

import (
	"sync"

	"github.com/akmonengine/support/shape"
	"github.com/akmonengine/support/vector"
)

const DEFAULT_WORKERS = 1

// task runs fn over data in contiguous chunks and returns the number of
// goroutines started, never more than one per element
func task[T any](workersCount int, data []T, fn func(index int, data T)) int {
	var wg sync.WaitGroup
	dataSize := len(data)
	workersCount = min(workersCount, max(1, dataSize))
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()

	return workersCount
}

// Batch returns s.Support(d) for every direction d, in input order.
// workers below DEFAULT_WORKERS are raised to it.
func Batch(workers int, s shape.Shape, directions []vector.Vec3) []vector.Vec3 {
	workers = max(DEFAULT_WORKERS, workers)
	points := make([]vector.Vec3, len(directions))

	task(workers, directions, func(i int, direction vector.Vec3) {
		points[i] = s.Support(direction)
	})

	return points
}
