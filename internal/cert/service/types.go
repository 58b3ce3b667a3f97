package service

import (
	"context"
	"time"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/docstore"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/ledger"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger submits certificate transactions.
	Ledger interface {
		Request(ctx context.Context, hash string) (string, error)
		ConfirmAndIssue(ctx context.Context, hash string, amountKWh uint64) (string, error)
	}

	// EventSource delivers contract events replayable from a starting block.
	EventSource interface {
		Subscribe(ctx context.Context, fromBlock uint64) (ledger.Subscription, error)
	}

	// DocumentStore is the hash-keyed store for certificate documents.
	DocumentStore interface {
		CertData(ctx context.Context, hash string) (model.FieldList, string, error)
		PutRequest(ctx context.Context, doc docstore.RequestDoc) error
		PutConfirm(ctx context.Context, doc docstore.ConfirmDoc) (string, error)
	}

	// Archiver accepts reconciled records for permanent storage.
	Archiver interface {
		Add(ctx context.Context, rec model.Record) error
	}

	// WatcherMetrics tracks ledger event handling.
	WatcherMetrics interface {
		ObserveEvent(kind string, err error)
		ObserveHydration(err error, started time.Time)
	}

	// CoordinatorMetrics tracks the two user-initiated write paths.
	CoordinatorMetrics interface {
		ObserveSubmitRequest(err error, started time.Time)
		ObserveSubmitConfirmation(err error, started time.Time)
	}
)
