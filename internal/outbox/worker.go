package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"amistoso/internal/outbox/db"
	"amistoso/internal/sqlutil"
)

// Config controls outbox polling behavior
type Config struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxRetries   int
	RetryDelay   time.Duration
}

// DefaultConfig returns sensible polling defaults
func DefaultConfig() Config {
	return Config{
		PollInterval: 5 * time.Second,
		BatchSize:    100,
		MaxRetries:   3,
		RetryDelay:   time.Second,
	}
}

// Worker polls the match outbox and relays unsent events to the publisher.
// Rows are fetched FOR UPDATE SKIP LOCKED, so multiple workers never send
// the same event concurrently.
type Worker struct {
	database  *sql.DB
	queries   *db.Queries
	publisher EventPublisher
	config    Config

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewWorker creates a new outbox worker
func NewWorker(database *sql.DB, publisher EventPublisher, cfg Config) *Worker {
	return &Worker{
		database:  database,
		queries:   db.New(database),
		publisher: publisher,
		config:    cfg,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the polling loop
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("outbox worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run(ctx)

	log.Info().
		Dur("poll_interval", w.config.PollInterval).
		Int32("batch_size", w.config.BatchSize).
		Msg("outbox worker started")

	return nil
}

// Stop halts the polling loop and waits for the in-flight batch
func (w *Worker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return fmt.Errorf("outbox worker not running")
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()

	log.Info().Msg("outbox worker stopped")
	return nil
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	// Drain whatever is pending before the first tick
	w.processOutbox(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.processOutbox(ctx)
		}
	}
}

func (w *Worker) processOutbox(ctx context.Context) {
	err := sqlutil.Run(ctx, w.database,
		func(tx *sql.Tx) *db.Queries { return w.queries.WithTx(tx) },
		func(q *db.Queries) error {
			events, err := q.FetchUnsentOutbox(ctx, w.config.BatchSize)
			if err != nil {
				return fmt.Errorf("failed to fetch unsent events: %w", err)
			}
			if len(events) == 0 {
				return nil
			}

			var sent int
			for _, event := range events {
				outboxEvent := OutboxEvent{
					ID:        event.ID,
					MatchID:   event.MatchID,
					EventType: event.EventType,
					Payload:   event.Payload.RawMessage,
					CreatedAt: event.CreatedAt,
				}

				if err := w.publishWithRetry(ctx, outboxEvent); err != nil {
					log.Error().
						Err(err).
						Str("event_id", event.ID.String()).
						Str("event_type", event.EventType).
						Msg("failed to publish event")
					continue
				}

				if err := q.MarkOutboxSent(ctx, event.ID); err != nil {
					return fmt.Errorf("failed to mark event sent: %w", err)
				}
				sent++
			}

			log.Info().
				Int("total", len(events)).
				Int("sent", sent).
				Msg("processed outbox events")
			return nil
		})
	if err != nil {
		log.Error().Err(err).Msg("outbox batch failed")
	}
}

func (w *Worker) publishWithRetry(ctx context.Context, event OutboxEvent) error {
	var lastErr error

	for attempt := 0; attempt <= w.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.config.RetryDelay * time.Duration(attempt)):
			}
		}

		if err := w.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Str("event_id", event.ID.String()).
				Int("attempt", attempt+1).
				Msg("failed to publish event, retrying")
			continue
		}

		return nil
	}

	return fmt.Errorf("failed after %d attempts: %w", w.config.MaxRetries+1, lastErr)
}
