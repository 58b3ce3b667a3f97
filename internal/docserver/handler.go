package docserver

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/docstore"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

// Certificate wording stays German, matching the issued documents.
const (
	labelFingerprint = "Kryptographischer Fingerabdruck"
	labelRequestTx   = "Zertifikat beantragt in Transaktion"
	labelConfirmTx   = "Zertifikat bestätigt in Transaktion"
	labelReviewer    = "Gutachter"
	valueUnconfirmed = "NOCH NICHT BESTÄTIGT"
)

type (
	// Metrics tracks render jobs.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type renderJob struct {
	hash   string
	stage  string
	fields model.FieldList
	crypto []CryptoItem
	retire bool
}

// Server is the document store HTTP surface plus its render worker. Writes
// return as soon as the document is persisted; rendering happens in the
// background off the jobs queue.
type Server struct {
	store    *Store
	renderer *Renderer
	pdf      PDFGenerator
	metrics  Metrics
	logger   *zap.Logger
	jobs     chan renderJob
}

// NewServer wires the document store server.
func NewServer(store *Store, renderer *Renderer, pdf PDFGenerator, metrics Metrics, logger *zap.Logger) *Server {
	return &Server{
		store:    store,
		renderer: renderer,
		pdf:      pdf,
		metrics:  metrics,
		logger:   logger,
		jobs:     make(chan renderJob, 64),
	}
}

// Router returns the HTTP handler with permissive CORS, as the producer and
// reviewer frontends are served from other origins.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/certdata", s.handleCertData)
	r.Post("/certrequest", s.handleCertRequest)
	r.Post("/certconfirm", s.handleCertConfirm)
	r.Handle("/generated/*", http.StripPrefix("/generated/", http.FileServer(http.Dir(s.store.dir))))
	return cors.AllowAll().Handler(r)
}

// Run processes render jobs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-s.jobs:
			s.process(ctx, job)
		}
	}
}

func (s *Server) process(ctx context.Context, job renderJob) {
	started := time.Now()
	err := s.render(ctx, job)
	s.metrics.Observe("render_pdf", err, started)
	if err != nil {
		s.logger.Error("render job failed",
			zap.String("hash", job.hash), zap.String("stage", job.stage), zap.Error(err))
		return
	}
	s.logger.Info("certificate rendered",
		zap.String("hash", job.hash), zap.String("stage", job.stage))
}

func (s *Server) render(ctx context.Context, job renderJob) error {
	if job.retire {
		s.store.RetirePDF(job.hash)
	}

	html, err := s.renderer.Render(job.fields, job.crypto)
	if err != nil {
		return err
	}
	htmlPath, err := s.store.WriteHTML(job.hash, job.stage, html)
	if err != nil {
		return err
	}
	return s.pdf.Generate(ctx, htmlPath, s.store.PDFPath(job.hash))
}

func (s *Server) handleCertData(w http.ResponseWriter, r *http.Request) {
	hash := r.URL.Query().Get("hash")

	raw, err := s.store.RequestBytes(hash)
	switch {
	case errors.Is(err, ErrBadHash):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "unknown certificate", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("read certdata failed", zap.String("hash", hash), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (s *Server) handleCertRequest(w http.ResponseWriter, r *http.Request) {
	var doc docstore.RequestDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}

	if err := s.store.SaveRequest(doc); err != nil {
		if errors.Is(err, ErrBadHash) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("persist request failed", zap.String("hash", doc.Hash), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("certificate requested", zap.String("hash", doc.Hash), zap.String("tx", doc.Tx))

	if !s.enqueue(renderJob{
		hash:   doc.Hash,
		stage:  "request",
		fields: doc.Data,
		crypto: []CryptoItem{
			{Label: labelFingerprint, Value: doc.Hash},
			{Label: labelRequestTx, Value: doc.Tx, Tx: true},
			{Label: labelConfirmTx, Value: valueUnconfirmed},
		},
	}) {
		http.Error(w, "render queue full", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCertConfirm(w http.ResponseWriter, r *http.Request) {
	var doc docstore.ConfirmDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}

	persisted, err := s.store.Request(doc.Hash)
	switch {
	case errors.Is(err, ErrBadHash):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "unknown certificate", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("load request failed", zap.String("hash", doc.Hash), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("certificate confirmed",
		zap.String("hash", doc.Hash), zap.String("reviewer", doc.Reviewer), zap.String("tx", doc.Tx))

	if !s.enqueue(renderJob{
		hash:   doc.Hash,
		stage:  "confirm",
		fields: persisted.Data,
		retire: true,
		crypto: []CryptoItem{
			{Label: labelFingerprint, Value: doc.Hash},
			{Label: labelRequestTx, Value: persisted.Tx, Tx: true},
			{Label: labelConfirmTx, Value: doc.Tx, Tx: true},
			{Label: labelReviewer, Value: doc.Reviewer},
		},
	}) {
		http.Error(w, "render queue full", http.StatusServiceUnavailable)
		return
	}

	// The confirmation response echoes the hash as plain text.
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(doc.Hash))
}

func (s *Server) enqueue(job renderJob) bool {
	select {
	case s.jobs <- job:
		return true
	default:
		return false
	}
}
