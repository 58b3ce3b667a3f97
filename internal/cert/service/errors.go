package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReviewer rejects a confirmation submitted without a reviewer identity.
	ErrNoReviewer = errors.New("no reviewer selected")
	// ErrBadAmount rejects a request whose amount-kwh field is not a number.
	ErrBadAmount = errors.New("amount-kwh must be a number")
	// ErrEmptyChargeID rejects a request without a charge id.
	ErrEmptyChargeID = errors.New("charge-id must not be empty")
	// ErrDuplicateChargeID rejects a request reusing an existing charge id.
	ErrDuplicateChargeID = errors.New("charge-id already in use")
	// ErrFingerprintMismatch aborts a confirmation whose recomputed fingerprint
	// does not equal the claimed hash. No ledger write happens after this.
	ErrFingerprintMismatch = errors.New("fingerprint does not match certificate data")
	// ErrUnknownCertificate rejects a confirmation for a hash with no record.
	ErrUnknownCertificate = errors.New("no certificate for hash")
	// ErrAlreadyConfirmed rejects confirming a certificate twice.
	ErrAlreadyConfirmed = errors.New("certificate already confirmed")
	// ErrStreamClosed signals that the ledger event stream ended.
	ErrStreamClosed = errors.New("ledger event stream closed")
)

// StoreWriteError reports a document store write that failed after the ledger
// write succeeded. The local record already exists at that point; the two
// writes are not atomic and the inconsistency must reach the caller.
type StoreWriteError struct {
	Hash string
	Op   string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("document store %s for %s failed after ledger write: %v", e.Op, e.Hash, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
