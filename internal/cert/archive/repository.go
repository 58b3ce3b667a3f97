// Package archive persists reconciled certificate records to ClickHouse.
// Certificates are permanent, so the table is insert-only; the latest state of
// a hash wins via argMax over the insert timestamp.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics tracks repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RecordInserter is the write half of the repository, as needed by Writer.
	RecordInserter interface {
		InsertRecords(ctx context.Context, records []model.Record) error
	}
)

// Repository wraps a ClickHouse connection for the certificate archive.
type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

// NewRepository opens a connection for the given DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("archive metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}
