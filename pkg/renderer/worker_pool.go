package renderer

import (
	"image"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Bounds image.Rectangle
}

// TileResult contains the statistics from rendering a tile
type TileResult struct {
	Stats RenderStats
}

// workerPool renders tiles of a single frame in parallel. Tiles have
// non-overlapping bounds, so workers write into the shared image without
// locks.
type workerPool struct {
	renderer    *Renderer
	img         *image.RGBA
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers.
func newWorkerPool(renderer *Renderer, img *image.RGBA, maxTiles, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		renderer:    renderer,
		img:         img,
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}
}

// start begins all workers
func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// submit queues a tile task
func (wp *workerPool) submit(task TileTask) {
	wp.taskQueue <- task
}

// wait collects the given number of results, shuts the pool down and
// returns the merged statistics.
func (wp *workerPool) wait(numTasks int) RenderStats {
	close(wp.taskQueue)

	var stats RenderStats
	for i := 0; i < numTasks; i++ {
		result := <-wp.resultQueue
		stats.merge(result.Stats)
	}
	wp.wg.Wait()
	return stats
}

// run is the main worker loop
func (wp *workerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		stats := wp.renderer.renderBounds(wp.img, task.Bounds)
		wp.resultQueue <- TileResult{Stats: stats}
	}
}
