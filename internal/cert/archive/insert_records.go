package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

// InsertRecords stores record rows. Each call appends a new version per hash;
// reads resolve the latest version, so re-inserting after a promotion is how
// state transitions reach the archive.
func (r *Repository) InsertRecords(ctx context.Context, records []model.Record) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_records", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO certificates (
	hash,
	state,
	request_tx,
	confirm_tx,
	reviewer,
	confirmations,
	charge_id,
	fields,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare records batch: %w", err)
	}

	now := time.Now().UTC()
	for _, rec := range records {
		fields, marshalErr := json.Marshal(rec.Fields)
		if marshalErr != nil {
			err = fmt.Errorf("marshal fields for %s: %w", rec.Hash, marshalErr)
			return err
		}
		if err = batch.Append(
			rec.Hash,
			string(rec.State),
			rec.RequestTx,
			rec.ConfirmTx,
			rec.Reviewer,
			rec.Confirmations,
			rec.Fields.ValueByID("charge-id"),
			string(fields),
			now,
		); err != nil {
			err = fmt.Errorf("append record %s: %w", rec.Hash, err)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("send records batch: %w", err)
		return err
	}
	return nil
}
