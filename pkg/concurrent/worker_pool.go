package concurrent

import (
	"context"
	"runtime"
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// WorkerPool. fixed number of goroutines applying one JobFunc to queued jobs.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// NewWorkerPool. numWorkers < 1 means one worker per cpu.
func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait. block until every worker returned, then close the results channel. call after Close.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob. enqueue job, false when ctx was done first.
func (wp *WorkerPool[T, G]) AddJob(ctx context.Context, job T) bool {
	select {
	case wp.jobQueue <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}

// Close. no more jobs.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

type indexed[T any] struct {
	i int
	v T
}

/*
Map. apply fn to every item on numWorkers goroutines, results keep the order of items.
items not yet queued when ctx is done are skipped and left as the zero value.
*/
func Map[T any, G any](ctx context.Context, numWorkers int, items []T, fn func(T) G) []G {
	out := make([]G, len(items))
	wp := NewWorkerPool[indexed[T], indexed[G]](numWorkers, len(items))
	wp.Start(func(job indexed[T]) indexed[G] {
		return indexed[G]{i: job.i, v: fn(job.v)}
	})

	go func() {
		defer wp.Close()
		for i, item := range items {
			if !wp.AddJob(ctx, indexed[T]{i: i, v: item}) {
				return
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		for res := range wp.CollectResults() {
			out[res.i] = res.v
		}
		close(done)
	}()

	wp.Wait()
	<-done
	return out
}
