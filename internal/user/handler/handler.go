// Package handler exposes the user registry over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/transport/http/shared"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/user/models"
	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
)

// Service defines the interface for user registry operations.
type Service interface {
	Register(ctx context.Context, reg models.Registration) error
	List(ctx context.Context, hasCreditCard *bool) ([]models.User, error)
}

// Handler handles user-related endpoints. It delegates to the user service
// without embedding business logic so transport concerns remain isolated.
type Handler struct {
	logger *slog.Logger
	users  Service
}

// New creates a new user Handler.
func New(users Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, users: users}
}

// Register registers the user routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/users/register", h.handleRegister)
	r.Get("/users", h.handleList)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.logger.WarnContext(ctx, "invalid registration request", "error", err.Error())
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.users.Register(ctx, reg); err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, shared.MessageResponse{Message: "user registered successfully"})
}

// handleList returns registered users, optionally filtered by card presence
// via ?hasCreditCard=yes|no. An unrecognized token is a bad request and the
// body stays an empty array so list consumers never see an error envelope.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter *bool
	if raw := r.URL.Query().Get("hasCreditCard"); raw != "" {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "yes":
			yes := true
			filter = &yes
		case "no":
			no := false
			filter = &no
		default:
			h.logger.WarnContext(ctx, "unrecognized credit card filter", "value", raw)
			shared.WriteJSON(w, http.StatusBadRequest, []models.User{})
			return
		}
	}

	users, err := h.users.List(ctx, filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, users)
}
