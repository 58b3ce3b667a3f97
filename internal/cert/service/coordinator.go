package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/docstore"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

// Receipt acknowledges a write path operation.
type Receipt struct {
	Hash string `json:"hash"`
	Tx   string `json:"tx"`
}

// Coordinator drives the two user-initiated actions. Each is a sequence of
// precondition check, ledger write, local state insert, document store write.
// The ledger and store writes are not atomic: a store failure after a
// successful ledger write leaves a local record without persisted backing and
// is reported as a StoreWriteError rather than rolled back.
type Coordinator struct {
	logger  *zap.Logger
	engine  *Engine
	ledger  Ledger
	store   DocumentStore
	metrics CoordinatorMetrics
	archive Archiver // optional

	// devMode skips the charge-id and amount preconditions, mirroring the
	// sample-data driven demo flow.
	devMode bool
}

// NewCoordinator builds a Coordinator. archive may be nil.
func NewCoordinator(
	engine *Engine,
	ledger Ledger,
	store DocumentStore,
	metrics CoordinatorMetrics,
	archive Archiver,
	devMode bool,
	logger *zap.Logger,
) (*Coordinator, error) {
	if engine == nil {
		return nil, errors.New("coordinator engine is required")
	}
	if ledger == nil {
		return nil, errors.New("coordinator ledger is required")
	}
	if store == nil {
		return nil, errors.New("coordinator document store is required")
	}
	if metrics == nil {
		return nil, errors.New("coordinator metrics is required")
	}

	return &Coordinator{
		logger:  logger.Named("coordinator"),
		engine:  engine,
		ledger:  ledger,
		store:   store,
		metrics: metrics,
		archive: archive,
		devMode: devMode,
	}, nil
}

// SubmitRequest anchors a new certificate request. The local record is created
// as soon as the ledger write succeeds, before the store write completes.
func (c *Coordinator) SubmitRequest(ctx context.Context, fields model.FieldList) (Receipt, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.ObserveSubmitRequest(err, start)
	}()

	if !c.devMode {
		if err = c.checkRequestPreconditions(fields); err != nil {
			return Receipt{}, err
		}
	}

	hash := fields.Hash()

	tx, err := c.ledger.Request(ctx, hash)
	if err != nil {
		c.logger.Error("ledger request failed", zap.String("hash", hash), zap.Error(err))
		err = errors.Join(errors.New("ledger request write failed"), err)
		return Receipt{}, err
	}
	c.logger.Info("certificate requested on ledger", zap.String("hash", hash), zap.String("tx", tx))

	if c.engine.ApplyLocalRequest(hash, fields, tx) {
		c.archiveRecord(hash)
	}

	if storeErr := c.store.PutRequest(ctx, docstore.RequestDoc{Hash: hash, Tx: tx, Data: fields}); storeErr != nil {
		// The ledger write already happened; the record stays, unbacked.
		err = &StoreWriteError{Hash: hash, Op: "certrequest", Err: storeErr}
		return Receipt{Hash: hash, Tx: tx}, err
	}

	return Receipt{Hash: hash, Tx: tx}, nil
}

// SubmitConfirmation confirms the certificate identified by claimedHash. The
// fingerprint is recomputed from the authoritative stored fields and must
// equal the claimed hash before anything is written. The local promotion only
// happens once the store acknowledges, keyed by the hash it echoes.
func (c *Coordinator) SubmitConfirmation(ctx context.Context, claimedHash, reviewer string) (Receipt, error) {
	start := time.Now()
	var err error
	defer func() {
		c.metrics.ObserveSubmitConfirmation(err, start)
	}()

	if reviewer == "" {
		err = ErrNoReviewer
		return Receipt{}, err
	}

	rec, ok := c.engine.Get(claimedHash)
	if !ok {
		err = ErrUnknownCertificate
		return Receipt{}, err
	}
	if rec.Confirmed() {
		err = ErrAlreadyConfirmed
		return Receipt{}, err
	}
	if !rec.Fields.VerifyHash(claimedHash) {
		err = ErrFingerprintMismatch
		return Receipt{}, err
	}

	amount, parseErr := strconv.ParseUint(rec.Fields.ValueByID("amount-kwh"), 10, 64)
	if parseErr != nil {
		err = ErrBadAmount
		return Receipt{}, err
	}

	tx, err := c.ledger.ConfirmAndIssue(ctx, claimedHash, amount)
	if err != nil {
		c.logger.Error("ledger confirm failed", zap.String("hash", claimedHash), zap.Error(err))
		err = errors.Join(errors.New("ledger confirm write failed"), err)
		return Receipt{}, err
	}
	c.logger.Info("certificate confirmed on ledger",
		zap.String("hash", claimedHash), zap.String("tx", tx), zap.String("reviewer", reviewer))

	echoed, storeErr := c.store.PutConfirm(ctx, docstore.ConfirmDoc{Hash: claimedHash, Tx: tx, Reviewer: reviewer})
	if storeErr != nil {
		// No promotion without the store acknowledgment; the confirmed event
		// will still arrive through the watcher.
		err = &StoreWriteError{Hash: claimedHash, Op: "certconfirm", Err: storeErr}
		return Receipt{Hash: claimedHash, Tx: tx}, err
	}

	if c.engine.ApplyRemoteConfirmed(echoed, reviewer, tx, 1) {
		c.archiveRecord(echoed)
	}

	return Receipt{Hash: claimedHash, Tx: tx}, nil
}

func (c *Coordinator) checkRequestPreconditions(fields model.FieldList) error {
	if _, err := strconv.ParseUint(fields.ValueByID("amount-kwh"), 10, 64); err != nil {
		return ErrBadAmount
	}
	chargeID := fields.ValueByID("charge-id")
	if chargeID == "" {
		return ErrEmptyChargeID
	}
	if c.engine.ChargeIDInUse(chargeID) {
		return ErrDuplicateChargeID
	}
	return nil
}

func (c *Coordinator) archiveRecord(hash string) {
	if c.archive == nil {
		return
	}
	rec, ok := c.engine.Get(hash)
	if !ok {
		return
	}
	if err := c.archive.Add(context.Background(), rec); err != nil {
		c.logger.Warn("archive append failed", zap.String("hash", hash), zap.Error(err))
	}
}
