// ABOUTME: History worker persists successful analyses in the background
// ABOUTME: Provides a bounded worker pool so history writes never block or fail a request

package workers

import (
	"context"
	"sync"
	"time"

	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/interfaces"
)

// HistoryWorker implements interfaces.HistoryRecorder on top of a HistoryStore
type HistoryWorker struct {
	store        interfaces.HistoryStore
	jobQueue     chan domain.HistoryRecord
	maxWorkers   int
	writeTimeout time.Duration
	logger       interfaces.Logger
	wg           sync.WaitGroup
	mu           sync.RWMutex
	running      bool
	stopped      bool
}

var _ interfaces.HistoryRecorder = (*HistoryWorker)(nil)

// WorkerConfig holds configuration for the history worker
type WorkerConfig struct {
	MaxWorkers   int
	QueueSize    int
	WriteTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers:   2,
		QueueSize:    256,
		WriteTimeout: 10 * time.Second,
	}
}

// NewHistoryWorker creates a new history worker. Call Start before Record.
func NewHistoryWorker(store interfaces.HistoryStore, config WorkerConfig, logger interfaces.Logger) *HistoryWorker {
	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &HistoryWorker{
		store:        store,
		jobQueue:     make(chan domain.HistoryRecord, config.QueueSize),
		maxWorkers:   config.MaxWorkers,
		writeTimeout: config.WriteTimeout,
		logger:       logger,
	}
}

// Start starts the worker pool. A stopped worker cannot be restarted.
func (hw *HistoryWorker) Start() error {
	hw.mu.Lock()
	defer hw.mu.Unlock()

	if hw.stopped {
		return ErrWorkerStopped
	}
	if hw.running {
		return nil
	}

	for i := 0; i < hw.maxWorkers; i++ {
		hw.wg.Add(1)
		go hw.run(i)
	}

	hw.running = true
	return nil
}

// Stop closes the queue and waits for queued records to be written, or for
// ctx to expire, whichever comes first.
func (hw *HistoryWorker) Stop(ctx context.Context) error {
	hw.mu.Lock()
	if !hw.running {
		hw.mu.Unlock()
		return nil
	}
	hw.running = false
	hw.stopped = true
	close(hw.jobQueue)
	hw.mu.Unlock()

	done := make(chan struct{})
	go func() {
		hw.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Record enqueues the history row for result. It never blocks; a full
// queue or a stopped pool drops the record with a warning.
func (hw *HistoryWorker) Record(ctx context.Context, result domain.AnalysisResult) {
	record := domain.NewHistoryRecord(result)
	if err := hw.Submit(record); err != nil {
		hw.logger.Warn("Dropping history record", map[string]interface{}{
			"id":     record.ID,
			"reason": err.Error(),
		})
	}
}

// Submit enqueues a record without blocking
func (hw *HistoryWorker) Submit(record domain.HistoryRecord) error {
	hw.mu.RLock()
	defer hw.mu.RUnlock()

	if !hw.running {
		return ErrWorkerNotRunning
	}

	select {
	case hw.jobQueue <- record:
		return nil
	default:
		return ErrQueueFull
	}
}

// run is the main loop for each worker; it exits when the queue is closed and drained
func (hw *HistoryWorker) run(id int) {
	defer hw.wg.Done()

	for record := range hw.jobQueue {
		hw.save(id, record)
	}
}

func (hw *HistoryWorker) save(id int, record domain.HistoryRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), hw.writeTimeout)
	defer cancel()

	if err := hw.store.SaveHistory(ctx, record); err != nil {
		hw.logger.Error("Failed to save history record", map[string]interface{}{
			"worker": id,
			"id":     record.ID,
			"error":  err.Error(),
		})
		return
	}

	hw.logger.Debug("History record saved", map[string]interface{}{
		"worker": id,
		"id":     record.ID,
	})
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrWorkerStopped    = &WorkerError{Message: "worker pool has been stopped"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
