// Package ledger defines the interfaces and event types the certificate
// services need from the certification smart contract. The ledger itself is an
// external collaborator; only its seams live here.
package ledger

import "context"

// Writer submits the two certificate transactions to the ledger.
type Writer interface {
	// Request anchors a certificate fingerprint and returns the transaction id.
	Request(ctx context.Context, hash string) (string, error)
	// ConfirmAndIssue confirms a previously requested fingerprint and issues
	// tokens for the certified amount, returning the transaction id.
	ConfirmAndIssue(ctx context.Context, hash string, amountKWh uint64) (string, error)
}

// Source delivers contract events, replayable from a starting block. Events for
// the same hash may arrive in any relative order and more than once.
type Source interface {
	Subscribe(ctx context.Context, fromBlock uint64) (Subscription, error)
}

// Subscription is a cancellable handle on an event stream. The channel is
// closed after Unsubscribe returns or the subscribe context ends.
type Subscription interface {
	Events() <-chan Envelope
	Unsubscribe()
}

// Envelope carries either an event or a delivery error, replacing the
// (err, result) callback pairs of the contract client.
type Envelope struct {
	Err   error
	Event Event
}

// Event is implemented by all contract event payloads.
type Event interface {
	eventMarker()
}

// Requested is emitted when a producer anchors a certificate fingerprint.
type Requested struct {
	Hash  string
	Tx    string
	Block uint64
}

// Confirmed is emitted when a reviewer confirms a fingerprint.
type Confirmed struct {
	Hash  string
	By    string
	Tx    string
	Block uint64
}

// TokensIssued is emitted when the contract mints tokens for a confirmation.
type TokensIssued struct {
	To     string
	Amount uint64
	Block  uint64
}

// NewBlock signals chain head advancement.
type NewBlock struct {
	Height uint64
}

func (Requested) eventMarker()    {}
func (Confirmed) eventMarker()    {}
func (TokensIssued) eventMarker() {}
func (NewBlock) eventMarker()     {}
