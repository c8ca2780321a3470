package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/pkg/logger"
	"github.com/gravelgod/agf/pkg/metrics"
)

// Deriver re-derives and stores parameters for one athlete.
type Deriver interface {
	Rederive(ctx context.Context, athleteID string) (*model.DerivedParameters, error)
}

// Worker processes re-derivation jobs until its job channel is drained.
type Worker struct {
	queue   Queue
	deriver Deriver
	name    string
	logger  logger.Logger
}

// NewWorker creates a new worker with configuration options.
func NewWorker(queue Queue, deriver Deriver, opts ...WorkerOption) *Worker {
	w := &Worker{
		queue:   queue,
		deriver: deriver,
		name:    "worker",
		logger:  logger.Get().Named("pipeline"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run processes jobs until the queue is drained or ctx is canceled.
// It returns the number of jobs that completed and the number that failed.
func (w *Worker) Run(ctx context.Context) (done, failed int) {
	for j := range w.queue.Dequeue(ctx) {
		if err := w.process(ctx, j); err != nil {
			failed++
			w.logger.Error(ctx, "re-derivation failed",
				logger.String("worker", w.name),
				logger.String("athleteID", j.AthleteID),
				logger.Error(err),
			)
			continue
		}
		done++
	}
	return done, failed
}

func (w *Worker) process(ctx context.Context, j Job) error {
	d, err := w.deriver.Rederive(ctx, j.AthleteID)
	if err != nil {
		metrics.RecordBatchJob("failed")
		return fmt.Errorf("rederive %s: %w", j.AthleteID, err)
	}
	metrics.RecordBatchJob("done")
	w.logger.Info(ctx, "re-derived athlete",
		logger.String("worker", w.name),
		logger.String("athleteID", j.AthleteID),
		logger.String("tier", string(d.Tier)),
	)
	return nil
}

// Pool fans re-derivation jobs out over multiple workers.
type Pool struct {
	workers []*Worker
	queue   Queue
}

// NewPool creates a pool of workerCount workers reading from queue.
// A non-positive workerCount falls back to the CPU count.
func NewPool(workerCount int, queue Queue, deriver Deriver, opts ...WorkerOption) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}
	p := &Pool{
		workers: make([]*Worker, workerCount),
		queue:   queue,
	}
	for i := 0; i < workerCount; i++ {
		workerOpts := append([]WorkerOption{WithName("worker-" + strconv.Itoa(i))}, opts...)
		p.workers[i] = NewWorker(queue, deriver, workerOpts...)
	}
	return p
}

// Run starts all workers and blocks until the queue is drained.
// It returns the total completed and failed job counts.
func (p *Pool) Run(ctx context.Context) (done, failed int) {
	var doneCount, failedCount int64
	var wg sync.WaitGroup
	for _, w := range p.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			d, f := w.Run(ctx)
			atomic.AddInt64(&doneCount, int64(d))
			atomic.AddInt64(&failedCount, int64(f))
		}(w)
	}
	wg.Wait()
	return int(doneCount), int(failedCount)
}

// Submit enqueues every athlete ID and closes the queue so Run terminates
// once the backlog is drained.
func (p *Pool) Submit(ctx context.Context, athleteIDs []string) (queued int) {
	for _, id := range athleteIDs {
		if p.queue.Enqueue(ctx, Job{AthleteID: id}) {
			queued++
		}
	}
	_ = p.queue.Close()
	return queued
}
