package renderer

import (
	"image"
	"runtime"
	"sync"
)

// tileTask is one tile of a frame for the worker pool
type tileTask struct {
	id     int // deterministic jitter seeding and ordering
	bounds image.Rectangle
}

// workerPool renders tiles across parallel goroutines. Tasks and
// results flow over buffered channels sized for the whole frame, so
// submission never blocks the coordinating goroutine.
type workerPool struct {
	tasks      chan tileTask
	results    chan tileStats
	numWorkers int
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool for up to maxTasks tiles
func newWorkerPool(numWorkers, maxTasks int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &workerPool{
		tasks:      make(chan tileTask, maxTasks),
		results:    make(chan tileStats, maxTasks),
		numWorkers: numWorkers,
	}
}

// start launches the workers, each running render over tasks until the
// task channel is closed
func (wp *workerPool) start(render func(tileTask) tileStats) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.tasks {
				wp.results <- render(task)
			}
		}()
	}
}

// submit queues a tile for rendering
func (wp *workerPool) submit(task tileTask) {
	wp.tasks <- task
}

// result retrieves one completed tile's statistics
func (wp *workerPool) result() tileStats {
	return <-wp.results
}

// stop shuts the pool down after all submitted tiles have completed
func (wp *workerPool) stop() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}
