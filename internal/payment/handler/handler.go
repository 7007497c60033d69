// Package handler exposes the payment registry over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/payment/models"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/transport/http/shared"
	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
)

// Service defines the interface for payment registry operations.
type Service interface {
	Process(ctx context.Context, req models.Request) error
	FindByPayor(ctx context.Context, payorEmail string) (models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
}

// Handler handles payment-related endpoints.
type Handler struct {
	logger   *slog.Logger
	payments Service
}

// New creates a new payment Handler.
func New(payments Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, payments: payments}
}

// Register registers the payment routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/payments", h.handleProcess)
	r.Get("/payments", h.handleList)
	r.Get("/payments/{payorEmail}", h.handleFindByPayor)
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid payment request", "error", err.Error())
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.payments.Process(ctx, req); err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, shared.MessageResponse{Message: "payment processed successfully"})
}

// handleFindByPayor returns the payor's current payment. The registry keeps
// one record per payor, so this is a single lookup, 404 when the payor has
// never been charged.
func (h *Handler) handleFindByPayor(w http.ResponseWriter, r *http.Request) {
	payment, err := h.payments.FindByPayor(r.Context(), chi.URLParam(r, "payorEmail"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, payment)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, payments)
}
