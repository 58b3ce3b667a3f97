package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

// pendingConfirm holds a confirmation that arrived before its record existed
// locally. It is replayed exactly once, when the record materializes.
type pendingConfirm struct {
	by            string
	tx            string
	confirmations uint64
}

// Engine is the single writer of certificate record state. It reconciles the
// two ledger event streams with the out-of-band document store under arbitrary
// arrival order and at-least-once delivery. All access to the record set goes
// through its mutex; callers in other goroutines only ever see snapshots.
type Engine struct {
	logger *zap.Logger

	mu      sync.Mutex
	records map[string]*model.Record
	order   []string // arrival order, most recent first
	pending map[string]pendingConfirm
}

// NewEngine builds an empty Engine.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		logger:  logger.Named("engine"),
		records: make(map[string]*model.Record),
		pending: make(map[string]pendingConfirm),
	}
}

// ApplyLocalRequest records a request submitted by this node, before the
// document store write completes. Returns true if the visible list changed.
func (e *Engine) ApplyLocalRequest(hash string, fields model.FieldList, requestTx string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.insert(hash, fields, requestTx)
}

// CompleteHydration records a certificate whose fields were fetched from the
// document store after a remote Requested event. If a confirmation for the
// hash outran the request, the fresh record is promoted immediately and the
// pending entry consumed. Returns true if the visible list changed.
func (e *Engine) CompleteHydration(hash string, fields model.FieldList, requestTx string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	mutated := e.insert(hash, fields, requestTx)

	if pc, ok := e.pending[hash]; ok {
		delete(e.pending, hash)
		if e.promote(hash, pc.by, pc.tx, pc.confirmations) {
			mutated = true
		}
	}
	return mutated
}

// ApplyRemoteConfirmed promotes the record for hash to confirmed. Re-applying
// to an already confirmed record is a no-op and returns false. If no record
// exists yet the confirmation is parked in the pending set for replay by
// CompleteHydration, which is also reported as no list mutation.
func (e *Engine) ApplyRemoteConfirmed(hash, by, tx string, confirmations uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if confirmations == 0 {
		confirmations = 1
	}

	if _, ok := e.records[hash]; !ok {
		e.logger.Warn("confirmed certificate not known yet, parking", zap.String("hash", hash))
		e.pending[hash] = pendingConfirm{by: by, tx: tx, confirmations: confirmations}
		return false
	}
	return e.promote(hash, by, tx, confirmations)
}

// ApplyBlockAdvanced increments the confirmation counter of every confirmed
// record. Requested records are unaffected.
func (e *Engine) ApplyBlockAdvanced() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, rec := range e.records {
		if rec.State == model.StateConfirmed {
			rec.Confirmations++
		}
	}
}

// Get returns a copy of the record for hash.
func (e *Engine) Get(hash string) (model.Record, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[hash]
	if !ok {
		return model.Record{}, false
	}
	return e.copyRecord(rec), true
}

// Snapshot returns copies of all records in arrival order, most recent first.
// The presentation layer is a pure reader of these snapshots.
func (e *Engine) Snapshot() []model.Record {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.Record, 0, len(e.order))
	for _, hash := range e.order {
		out = append(out, e.copyRecord(e.records[hash]))
	}
	return out
}

// ChargeIDInUse reports whether any known record carries the given charge id.
func (e *Engine) ChargeIDInUse(chargeID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, rec := range e.records {
		if rec.Fields.ValueByID("charge-id") == chargeID {
			return true
		}
	}
	return false
}

// insert creates a requested record if absent. Caller holds the mutex.
func (e *Engine) insert(hash string, fields model.FieldList, requestTx string) bool {
	if _, ok := e.records[hash]; ok {
		return false
	}
	e.records[hash] = &model.Record{
		Hash:      hash,
		Fields:    fields,
		State:     model.StateRequested,
		RequestTx: requestTx,
	}
	e.order = append([]string{hash}, e.order...)
	e.logger.Debug("certificate requested", zap.String("hash", hash))
	return true
}

// promote moves a record to confirmed at most once. Caller holds the mutex.
func (e *Engine) promote(hash, by, tx string, confirmations uint64) bool {
	rec := e.records[hash]
	if rec.State == model.StateConfirmed {
		e.logger.Debug("certificate already confirmed", zap.String("hash", hash))
		return false
	}
	rec.State = model.StateConfirmed
	rec.Reviewer = by
	rec.ConfirmTx = tx
	rec.Confirmations = confirmations
	e.logger.Info("certificate confirmed", zap.String("hash", hash), zap.String("reviewer", by))
	return true
}

func (e *Engine) copyRecord(rec *model.Record) model.Record {
	out := *rec
	out.Fields = append(model.FieldList(nil), rec.Fields...)
	return out
}
