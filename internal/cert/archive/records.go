package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

// Records returns the latest version of every archived certificate, most
// recently updated first.
func (r *Repository) Records(ctx context.Context) ([]model.Record, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("records", err, start)
	}()

	const query = `
SELECT
	hash,
	argMax(state, updated_at) AS state,
	argMax(request_tx, updated_at) AS request_tx,
	argMax(confirm_tx, updated_at) AS confirm_tx,
	argMax(reviewer, updated_at) AS reviewer,
	argMax(confirmations, updated_at) AS confirmations,
	argMax(fields, updated_at) AS fields,
	max(updated_at) AS last_update
FROM certificates
GROUP BY hash
ORDER BY last_update DESC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.Record
	for rows.Next() {
		var (
			rec        model.Record
			state      string
			fields     string
			lastUpdate time.Time
		)
		if err = rows.Scan(
			&rec.Hash,
			&state,
			&rec.RequestTx,
			&rec.ConfirmTx,
			&rec.Reviewer,
			&rec.Confirmations,
			&fields,
			&lastUpdate,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.State = model.State(state)
		if err = json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields for %s: %w", rec.Hash, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// RecordsByState returns the latest version of every certificate currently in
// the given state.
func (r *Repository) RecordsByState(ctx context.Context, state model.State) ([]model.Record, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("records_by_state", err, start)
	}()

	const query = `
SELECT
	hash,
	argMax(state, updated_at) AS state,
	argMax(request_tx, updated_at) AS request_tx,
	argMax(confirm_tx, updated_at) AS confirm_tx,
	argMax(reviewer, updated_at) AS reviewer,
	argMax(confirmations, updated_at) AS confirmations,
	argMax(fields, updated_at) AS fields,
	max(updated_at) AS last_update
FROM certificates
GROUP BY hash
HAVING state = ?
ORDER BY last_update DESC`

	rows, err := r.conn.Query(ctx, query, string(state))
	if err != nil {
		return nil, fmt.Errorf("query records by state %s: %w", state, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.Record
	for rows.Next() {
		var (
			rec        model.Record
			rowState   string
			fields     string
			lastUpdate time.Time
		)
		if err = rows.Scan(
			&rec.Hash,
			&rowState,
			&rec.RequestTx,
			&rec.ConfirmTx,
			&rec.Reviewer,
			&rec.Confirmations,
			&fields,
			&lastUpdate,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.State = model.State(rowState)
		if err = json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields for %s: %w", rec.Hash, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// RecordByHash returns the latest version of one certificate.
func (r *Repository) RecordByHash(ctx context.Context, hash string) (model.Record, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("record_by_hash", err, start)
	}()

	const query = `
SELECT
	hash,
	argMax(state, updated_at) AS state,
	argMax(request_tx, updated_at) AS request_tx,
	argMax(confirm_tx, updated_at) AS confirm_tx,
	argMax(reviewer, updated_at) AS reviewer,
	argMax(confirmations, updated_at) AS confirmations,
	argMax(fields, updated_at) AS fields
FROM certificates
WHERE hash = ?
GROUP BY hash`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return model.Record{}, false, fmt.Errorf("query record %s: %w", hash, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return model.Record{}, false, nil
	}

	var (
		rec    model.Record
		state  string
		fields string
	)
	if err = rows.Scan(
		&rec.Hash,
		&state,
		&rec.RequestTx,
		&rec.ConfirmTx,
		&rec.Reviewer,
		&rec.Confirmations,
		&fields,
	); err != nil {
		return model.Record{}, false, fmt.Errorf("scan record %s: %w", hash, err)
	}
	rec.State = model.State(state)
	if err = json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
		return model.Record{}, false, fmt.Errorf("unmarshal fields for %s: %w", hash, err)
	}
	return rec, true, nil
}
