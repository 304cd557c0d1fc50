package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/logger"
	"github.com/guttosm/coffeemaker-service/internal/service"
)

// AsyncJournalConfig holds configuration for the async journal.
type AsyncJournalConfig struct {
	// BufferSize is the size of the event channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing events.
	NumWorkers int
	// BatchSize is the largest batch a worker writes at once.
	BatchSize int
	// FlushInterval bounds how long an event waits in a partial batch.
	FlushInterval time.Duration
	// WriteTimeout is the timeout for writing one batch.
	WriteTimeout time.Duration
}

// DefaultAsyncJournalConfig returns sensible defaults for the async journal.
func DefaultAsyncJournalConfig() AsyncJournalConfig {
	return AsyncJournalConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// JournalStats are the async journal's counters.
type JournalStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Errors   int64
}

// AsyncJournal writes audit events to the event service from a fixed worker
// pool. Recording never blocks a request: when the buffer is full the event
// is dropped and counted.
//
// A nil *AsyncJournal is valid and discards everything, which is what the
// service runs with when MongoDB is disabled.
type AsyncJournal struct {
	events        service.EventService
	eventCh       chan *model.Event
	stopCh        chan struct{}
	stopOnce      sync.Once
	stopped       atomic.Bool
	wg            sync.WaitGroup
	batchSize     int
	flushInterval time.Duration
	writeTimeout  time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncJournal starts the worker pool. It returns nil if events is nil.
func NewAsyncJournal(events service.EventService, cfg AsyncJournalConfig) *AsyncJournal {
	if events == nil {
		return nil
	}
	def := DefaultAsyncJournalConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	j := &AsyncJournal{
		events:        events,
		eventCh:       make(chan *model.Event, cfg.BufferSize),
		stopCh:        make(chan struct{}),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		writeTimeout:  cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		j.wg.Add(1)
		go j.worker()
	}
	return j
}

func (j *AsyncJournal) worker() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.flushInterval)
	defer ticker.Stop()

	batch := make([]*model.Event, 0, j.batchSize)
	for {
		select {
		case event := <-j.eventCh:
			batch = append(batch, event)
			if len(batch) >= j.batchSize {
				batch = j.flush(batch)
			}
		case <-ticker.C:
			batch = j.flush(batch)
		case <-j.stopCh:
			for {
				select {
				case event := <-j.eventCh:
					batch = append(batch, event)
					if len(batch) >= j.batchSize {
						batch = j.flush(batch)
					}
				default:
					j.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes batch and returns it emptied for reuse.
func (j *AsyncJournal) flush(batch []*model.Event) []*model.Event {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.writeTimeout)
	defer cancel()

	if err := j.events.RecordBatch(ctx, batch); err != nil {
		j.errors.Add(int64(len(batch)))
		log := logger.Logger()
		log.Warn().Err(err).Int("events", len(batch)).Msg("Failed to write journal batch")
	} else {
		j.written.Add(int64(len(batch)))
	}
	return batch[:0]
}

// Record enqueues an event. It reports false if the event was dropped.
func (j *AsyncJournal) Record(event *model.Event) bool {
	if j == nil || event == nil {
		return false
	}
	if j.stopped.Load() {
		j.dropped.Add(1)
		return false
	}

	select {
	case j.eventCh <- event:
		j.enqueued.Add(1)
		return true
	default:
		j.dropped.Add(1)
		return false
	}
}

// Stop flushes pending events and waits for the workers. Safe to call more than once.
func (j *AsyncJournal) Stop() {
	if j == nil {
		return
	}
	j.stopOnce.Do(func() {
		j.stopped.Store(true)
		close(j.stopCh)
		j.wg.Wait()
	})
}

// Stats returns the journal's counters.
func (j *AsyncJournal) Stats() JournalStats {
	if j == nil {
		return JournalStats{}
	}
	return JournalStats{
		Enqueued: j.enqueued.Load(),
		Dropped:  j.dropped.Load(),
		Written:  j.written.Load(),
		Errors:   j.errors.Load(),
	}
}
