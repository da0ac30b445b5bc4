package runner

import (
	"context"
	"sync"

	"github.com/cybertec-postgresql/jsonlex/internal/discovery"
	"github.com/cybertec-postgresql/jsonlex/internal/logger"
)

// WorkerPool manages parallel file checking
type WorkerPool struct {
	checker    *Checker
	maxWorkers int
	verbose    bool
}

// NewWorkerPool creates a new worker pool for parallel file checking
func NewWorkerPool(checker *Checker, maxWorkers int, verbose bool) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		checker:    checker,
		maxWorkers: maxWorkers,
		verbose:    verbose,
	}
}

// CheckParallel tokenizes files with the configured concurrency limit.
// Results are returned in the order of files.
func (wp *WorkerPool) CheckParallel(ctx context.Context, files []discovery.DiscoveredFile) []*FileRun {
	numFiles := len(files)
	if numFiles == 0 {
		return nil
	}

	// If only one worker or one file, fall back to sequential checking
	if wp.maxWorkers == 1 || numFiles == 1 {
		return wp.checker.CheckBatch(ctx, files)
	}

	workers := min(wp.maxWorkers, numFiles)
	if wp.verbose {
		logger.Debug("starting parallel check with %d workers for %d files", workers, numFiles)
	}

	jobs := make(chan *checkJob, numFiles)
	results := make(chan *checkResult, numFiles)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, jobs, results, &wg)
	}

	for i := range files {
		jobs <- &checkJob{
			file:  &files[i],
			index: i,
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	runs := make([]*FileRun, numFiles)
	for result := range results {
		runs[result.index] = result.run
		if wp.verbose {
			logger.Debug("[%s] %s (worker %d)", result.run.Status, result.run.File.RelativePath, result.workerID)
		}
	}

	return runs
}

// checkJob represents a single file to check
type checkJob struct {
	file  *discovery.DiscoveredFile
	index int
}

// checkResult represents the result of a file check
type checkResult struct {
	run      *FileRun
	index    int
	workerID int
}

// worker is the goroutine that processes check jobs. Jobs received after
// ctx is cancelled are reported as FileCancelled without reading the file.
func (wp *WorkerPool) worker(ctx context.Context, workerID int, jobs <-chan *checkJob, results chan<- *checkResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		results <- &checkResult{
			run:      wp.checker.Check(ctx, job.file),
			index:    job.index,
			workerID: workerID,
		}
	}
}
