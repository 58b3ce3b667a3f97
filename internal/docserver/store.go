// Package docserver implements the hash-keyed certificate document store: a
// filesystem-backed JSON store plus HTML/PDF rendering of certificates.
package docserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/docstore"
)

// hashPattern accepts 0x-prefixed keccak digests. Hashes become file names,
// anything else is rejected before it touches the filesystem.
var hashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// ErrBadHash is returned for keys that are not a 0x-prefixed digest.
var ErrBadHash = errors.New("malformed certificate hash")

// Store keeps certificate documents on disk, one JSON file per hash, with the
// rendered artifacts next to them.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates the data directory if needed and returns a Store over it.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// SaveRequest persists the request document under its hash.
func (s *Store) SaveRequest(doc docstore.RequestDoc) error {
	if !hashPattern.MatchString(doc.Hash) {
		return ErrBadHash
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal request document %s: %w", doc.Hash, err)
	}
	if err := os.WriteFile(s.jsonPath(doc.Hash), payload, 0o644); err != nil {
		return fmt.Errorf("write request document %s: %w", doc.Hash, err)
	}
	return nil
}

// Request loads the persisted request document for a hash.
func (s *Store) Request(hash string) (docstore.RequestDoc, error) {
	if !hashPattern.MatchString(hash) {
		return docstore.RequestDoc{}, ErrBadHash
	}

	raw, err := os.ReadFile(s.jsonPath(hash))
	if err != nil {
		return docstore.RequestDoc{}, fmt.Errorf("read request document %s: %w", hash, err)
	}

	var doc docstore.RequestDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return docstore.RequestDoc{}, fmt.Errorf("decode request document %s: %w", hash, err)
	}
	return doc, nil
}

// RequestBytes returns the stored JSON as-is for serving over HTTP.
func (s *Store) RequestBytes(hash string) ([]byte, error) {
	if !hashPattern.MatchString(hash) {
		return nil, ErrBadHash
	}
	raw, err := os.ReadFile(s.jsonPath(hash))
	if err != nil {
		return nil, fmt.Errorf("read request document %s: %w", hash, err)
	}
	return raw, nil
}

// RetirePDF moves the current PDF aside before a re-render, so nobody sees the
// unconfirmed version while the confirmed one is still being generated.
func (s *Store) RetirePDF(hash string) {
	err := os.Rename(s.PDFPath(hash), s.retiredPDFPath(hash))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("failed to retire pdf", zap.String("hash", hash), zap.Error(err))
	}
}

// WriteHTML stores an intermediate HTML file and returns its path.
func (s *Store) WriteHTML(hash, stage string, html []byte) (string, error) {
	if !hashPattern.MatchString(hash) {
		return "", ErrBadHash
	}
	path := filepath.Join(s.dir, hash+"_"+stage+".html")
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return "", fmt.Errorf("write html %s: %w", path, err)
	}
	return path, nil
}

// PDFPath returns the canonical PDF location for a hash.
func (s *Store) PDFPath(hash string) string {
	return filepath.Join(s.dir, hash+".pdf")
}

func (s *Store) jsonPath(hash string) string {
	return filepath.Join(s.dir, hash+".json")
}

func (s *Store) retiredPDFPath(hash string) string {
	return filepath.Join(s.dir, hash+"_request.pdf")
}
