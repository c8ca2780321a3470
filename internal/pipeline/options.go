package pipeline

import "github.com/gravelgod/agf/pkg/logger"

// Option applies a configuration option to the InMemoryQueue.
type Option func(*InMemoryQueue)

// WithCapacity sets the maximum capacity of the queue.
func WithCapacity(capacity int) Option {
	return func(q *InMemoryQueue) {
		if capacity > 0 {
			q.capacity = capacity
		}
	}
}

// WorkerOption applies a configuration option to a Worker.
type WorkerOption func(*Worker)

// WithName sets the worker name for identification and logging.
func WithName(name string) WorkerOption {
	return func(w *Worker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithWorkerLogger sets a custom logger for the worker.
func WithWorkerLogger(l logger.Logger) WorkerOption {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}
