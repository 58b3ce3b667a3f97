package ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sim is an in-process ledger for development and demos. It mines a block on a
// fixed interval and emits contract events for every write, fanned out to all
// subscribers. A real chain client plugs in behind Writer and Source instead.
type Sim struct {
	logger        *zap.Logger
	blockInterval time.Duration

	mu     sync.Mutex
	height uint64
	subs   map[*simSubscription]struct{}
	closed bool
}

// NewSim returns a simulated ledger mining at the given interval.
func NewSim(blockInterval time.Duration, logger *zap.Logger) *Sim {
	if blockInterval <= 0 {
		blockInterval = 5 * time.Second
	}
	return &Sim{
		logger:        logger,
		blockInterval: blockInterval,
		height:        1,
		subs:          make(map[*simSubscription]struct{}),
	}
}

// Run mines blocks until the context ends, then closes all subscriptions.
func (s *Sim) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.blockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.close()
			return ctx.Err()
		case <-ticker.C:
			s.mu.Lock()
			s.height++
			height := s.height
			s.mu.Unlock()
			s.broadcast(NewBlock{Height: height})
		}
	}
}

// Request anchors a hash and emits a Requested event.
func (s *Sim) Request(_ context.Context, hash string) (string, error) {
	tx := newTxID()
	s.mu.Lock()
	height := s.height
	s.mu.Unlock()

	s.broadcast(Requested{Hash: hash, Tx: tx, Block: height})
	s.logger.Info("sim ledger: certificate requested",
		zap.String("hash", hash), zap.String("tx", tx), zap.Uint64("block", height))
	return tx, nil
}

// ConfirmAndIssue confirms a hash and emits Confirmed plus TokensIssued.
func (s *Sim) ConfirmAndIssue(_ context.Context, hash string, amountKWh uint64) (string, error) {
	tx := newTxID()
	s.mu.Lock()
	height := s.height
	s.mu.Unlock()

	s.broadcast(Confirmed{Hash: hash, By: "0x0000000000000000000000000000000000000001", Tx: tx, Block: height})
	s.broadcast(TokensIssued{To: "0x0000000000000000000000000000000000000002", Amount: amountKWh, Block: height})
	s.logger.Info("sim ledger: certificate confirmed",
		zap.String("hash", hash), zap.Uint64("amountKWh", amountKWh), zap.String("tx", tx))
	return tx, nil
}

// Subscribe registers a new event stream. fromBlock is ignored, the simulator
// keeps no history.
func (s *Sim) Subscribe(ctx context.Context, _ uint64) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("simulated ledger is shut down")
	}

	sub := &simSubscription{sim: s, events: make(chan Envelope, 256)}
	s.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
	}()
	return sub, nil
}

func (s *Sim) broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		select {
		case sub.events <- Envelope{Event: ev}:
		default:
			s.logger.Warn("sim ledger: subscriber queue full, dropping event")
		}
	}
}

func (s *Sim) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for sub := range s.subs {
		close(sub.events)
		delete(s.subs, sub)
	}
}

type simSubscription struct {
	sim    *Sim
	events chan Envelope
	once   sync.Once
}

func (s *simSubscription) Events() <-chan Envelope { return s.events }

func (s *simSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.sim.mu.Lock()
		defer s.sim.mu.Unlock()
		if _, ok := s.sim.subs[s]; ok {
			delete(s.sim.subs, s)
			close(s.events)
		}
	})
}

func newTxID() string {
	var buf [32]byte
	_, _ = rand.Read(buf[:])
	return "0x" + hex.EncodeToString(buf[:])
}
