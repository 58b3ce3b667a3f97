package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/ledger"
	"github.com/lab10-coop/meth-cert-poc/internal/clock"
	"github.com/lab10-coop/meth-cert-poc/pkg/workerpool"
)

const (
	defaultRetryDelay     = 10 * time.Second
	defaultHydrateWorkers = 4
)

// Watcher consumes the ledger event streams and feeds the Engine. Requested
// events are hydrated from the document store on a worker pool; a failed
// hydration is logged, counted and dropped — the record only reappears on the
// next full replay.
type Watcher struct {
	logger  *zap.Logger
	engine  *Engine
	source  EventSource
	store   DocumentStore
	metrics WatcherMetrics
	archive Archiver // optional

	fromBlock      uint64
	hydrateWorkers int
	retryDelay     time.Duration
	sleep          func(context.Context, time.Duration) error

	headBlock uint64
}

// NewWatcher builds a Watcher with dependencies. archive may be nil.
func NewWatcher(
	engine *Engine,
	source EventSource,
	store DocumentStore,
	metrics WatcherMetrics,
	archive Archiver,
	fromBlock uint64,
	logger *zap.Logger,
) (*Watcher, error) {
	if engine == nil {
		return nil, errors.New("watcher engine is required")
	}
	if source == nil {
		return nil, errors.New("watcher event source is required")
	}
	if store == nil {
		return nil, errors.New("watcher document store is required")
	}
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}

	return &Watcher{
		logger:         logger.Named("watcher"),
		engine:         engine,
		source:         source,
		store:          store,
		metrics:        metrics,
		archive:        archive,
		fromBlock:      fromBlock,
		hydrateWorkers: defaultHydrateWorkers,
		retryDelay:     defaultRetryDelay,
		sleep:          clock.SleepWithContext,
	}, nil
}

// Run subscribes and processes events until the context is canceled. A broken
// subscription is reestablished from the configured start block after a
// backoff; the engine's idempotence absorbs the resulting redelivery.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			w.logger.Warn("event stream broken, resubscribing", zap.Error(err), zap.Duration("sleep", w.retryDelay))
			if sleepErr := w.sleep(ctx, w.retryDelay); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (w *Watcher) run(ctx context.Context) error {
	sub, err := w.source.Subscribe(ctx, w.fromBlock)
	if err != nil {
		return fmt.Errorf("subscribe from block %d: %w", w.fromBlock, err)
	}
	defer sub.Unsubscribe()

	w.logger.Info("watching ledger events", zap.Uint64("fromBlock", w.fromBlock))

	var burst []string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-sub.Events():
			if !ok {
				return ErrStreamClosed
			}
			w.handle(env, &burst)

			// Drain whatever is already queued before paying for hydration
			// round trips; replays deliver event floods back to back.
			closed := w.drain(sub.Events(), &burst)
			if err := w.flushHydrations(ctx, &burst); err != nil {
				return err
			}
			if closed {
				return ErrStreamClosed
			}
		}
	}
}

func (w *Watcher) drain(events <-chan ledger.Envelope, burst *[]string) (closed bool) {
	for {
		select {
		case env, ok := <-events:
			if !ok {
				return true
			}
			w.handle(env, burst)
		default:
			return false
		}
	}
}

func (w *Watcher) handle(env ledger.Envelope, burst *[]string) {
	if env.Err != nil {
		w.metrics.ObserveEvent("error", env.Err)
		w.logger.Warn("event delivery error", zap.Error(env.Err))
		return
	}

	switch ev := env.Event.(type) {
	case ledger.Requested:
		w.metrics.ObserveEvent("requested", nil)
		w.logger.Debug("cert requested event", zap.String("hash", ev.Hash), zap.Uint64("block", ev.Block))
		if _, ok := w.engine.Get(ev.Hash); ok {
			return // already materialized, typically by our own submit
		}
		if slices.Contains(*burst, ev.Hash) {
			return // redelivered within the same drain cycle
		}
		*burst = append(*burst, ev.Hash)

	case ledger.Confirmed:
		w.metrics.ObserveEvent("confirmed", nil)
		w.logger.Debug("cert confirmed event", zap.String("hash", ev.Hash), zap.String("by", ev.By))
		if w.engine.ApplyRemoteConfirmed(ev.Hash, ev.By, ev.Tx, w.confirmations(ev.Block)) {
			w.archiveRecord(ev.Hash)
		}

	case ledger.TokensIssued:
		w.metrics.ObserveEvent("tokens_issued", nil)
		w.logger.Info("tokens issued", zap.String("to", ev.To), zap.Uint64("amount", ev.Amount))

	case ledger.NewBlock:
		w.metrics.ObserveEvent("new_block", nil)
		if ev.Height > w.headBlock {
			w.headBlock = ev.Height
		}
		w.engine.ApplyBlockAdvanced()

	default:
		w.metrics.ObserveEvent("unknown", nil)
		w.logger.Warn("unknown ledger event", zap.Any("event", env.Event))
	}
}

func (w *Watcher) flushHydrations(ctx context.Context, burst *[]string) error {
	if len(*burst) == 0 {
		return nil
	}
	hashes := *burst
	*burst = nil

	return workerpool.Process(ctx, w.hydrateWorkers, hashes, w.hydrate, nil)
}

// hydrate fetches the fields for one hash and materializes the record. Fetch
// failures drop the event; there is no retry until the next replay.
func (w *Watcher) hydrate(ctx context.Context, hash string) error {
	start := time.Now()
	fields, requestTx, err := w.store.CertData(ctx, hash)
	w.metrics.ObserveHydration(err, start)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.logger.Warn("hydration failed, dropping event", zap.String("hash", hash), zap.Error(err))
		return nil
	}

	if w.engine.CompleteHydration(hash, fields, requestTx) {
		w.archiveRecord(hash)
	}
	return nil
}

func (w *Watcher) confirmations(txBlock uint64) uint64 {
	if w.headBlock >= txBlock && txBlock > 0 {
		return w.headBlock - txBlock + 1
	}
	return 1
}

func (w *Watcher) archiveRecord(hash string) {
	if w.archive == nil {
		return
	}
	rec, ok := w.engine.Get(hash)
	if !ok {
		return
	}
	if err := w.archive.Add(context.Background(), rec); err != nil {
		w.logger.Warn("archive append failed", zap.String("hash", hash), zap.Error(err))
	}
}
