package archive

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
	"github.com/lab10-coop/meth-cert-poc/pkg/batcher"
)

// Writer buffers reconciled records and flushes them to the repository in
// rate-limited batches. It satisfies the reconciliation services' Archiver.
type Writer struct {
	b *batcher.Batcher[model.Record]
}

// NewWriter builds a Writer flushing into repo.
func NewWriter(repo RecordInserter, flushSize int, flushInterval time.Duration, rps int, logger *zap.Logger) *Writer {
	return &Writer{
		b: batcher.New[model.Record](
			logger.Named("archiveWriter"),
			repo.InsertRecords,
			flushSize,
			flushInterval,
			rps,
		),
	}
}

// Start begins background flushing.
func (w *Writer) Start(ctx context.Context) {
	w.b.Start(ctx)
}

// Stop flushes remaining records and stops.
func (w *Writer) Stop() {
	w.b.Stop()
}

// Add queues one record version for archival.
func (w *Writer) Add(ctx context.Context, rec model.Record) error {
	return w.b.Add(ctx, rec)
}
