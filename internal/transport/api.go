// Package transport exposes the HTTP API of the certificate watcher.
package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
	"github.com/lab10-coop/meth-cert-poc/internal/cert/service"
)

type (
	// Projection reads the reconciled certificate state.
	Projection interface {
		Snapshot() []model.Record
		Get(hash string) (model.Record, bool)
	}

	// Writer runs the certificate write paths.
	Writer interface {
		SubmitRequest(ctx context.Context, fields model.FieldList) (service.Receipt, error)
		SubmitConfirmation(ctx context.Context, hash, reviewer string) (service.Receipt, error)
	}
)

// Handler serves the certificate API.
type Handler struct {
	projection Projection
	writer     Writer
	logger     *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(projection Projection, writer Writer, logger *zap.Logger) *Handler {
	return &Handler{projection: projection, writer: writer, logger: logger}
}

// Router builds the HTTP routes, CORS-wrapped for the browser frontends.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/certs", h.listCerts)
	r.Get("/certs/{hash}", h.getCert)
	r.Post("/certs", h.submitRequest)
	r.Post("/certs/{hash}/confirm", h.submitConfirmation)
	return cors.AllowAll().Handler(r)
}

type requestBody struct {
	Data model.FieldList `json:"data"`
}

type confirmBody struct {
	Reviewer string `json:"reviewer"`
}

type receiptResponse struct {
	Hash string `json:"hash"`
	Tx   string `json:"tx"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hash  string `json:"hash,omitempty"`
	Tx    string `json:"tx,omitempty"`
}

func (h *Handler) listCerts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"certs": h.projection.Snapshot()})
}

func (h *Handler) getCert(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	rec, ok := h.projection.Get(hash)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no certificate for hash"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request) {
	var body requestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
		return
	}

	receipt, err := h.writer.SubmitRequest(r.Context(), body.Data)
	if err != nil {
		h.writeSubmitError(w, err, receipt)
		return
	}
	writeJSON(w, http.StatusCreated, receiptResponse{Hash: receipt.Hash, Tx: receipt.Tx})
}

func (h *Handler) submitConfirmation(w http.ResponseWriter, r *http.Request) {
	var body confirmBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
		return
	}

	receipt, err := h.writer.SubmitConfirmation(r.Context(), chi.URLParam(r, "hash"), body.Reviewer)
	if err != nil {
		h.writeSubmitError(w, err, receipt)
		return
	}
	writeJSON(w, http.StatusOK, receiptResponse{Hash: receipt.Hash, Tx: receipt.Tx})
}

// writeSubmitError maps write path failures to status codes. A store write
// failure reports the ledger receipt anyway: the on-chain half already
// happened and the caller needs the transaction id.
func (h *Handler) writeSubmitError(w http.ResponseWriter, err error, receipt service.Receipt) {
	var storeErr *service.StoreWriteError
	switch {
	case errors.As(err, &storeErr):
		h.logger.Error("document store write failed after ledger write",
			zap.String("hash", storeErr.Hash), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: err.Error(), Hash: receipt.Hash, Tx: receipt.Tx,
		})
	case errors.Is(err, service.ErrUnknownCertificate):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrAlreadyConfirmed),
		errors.Is(err, service.ErrDuplicateChargeID),
		errors.Is(err, service.ErrFingerprintMismatch):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoReviewer),
		errors.Is(err, service.ErrBadAmount),
		errors.Is(err, service.ErrEmptyChargeID):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("submit failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
