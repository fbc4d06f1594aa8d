package invitehandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	inviteservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/application"
	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
)

// Handlers serves invite administration.
type Handlers interface {
	HandleCreate(w http.ResponseWriter, r *http.Request)
	HandleList(w http.ResponseWriter, r *http.Request)
	HandleDelete(w http.ResponseWriter, r *http.Request)
}

// InviteHandlers implements the Handlers interface.
type InviteHandlers struct {
	service inviteservice.Service
	logger  *slog.Logger
}

// NewInviteHandlers creates a new InviteHandlers instance.
func NewInviteHandlers(service inviteservice.Service, logger *slog.Logger) Handlers {
	return &InviteHandlers{service: service, logger: logger}
}

type createResponse struct {
	Message    string               `json:"message"`
	InviteCode *invitedb.InviteCode `json:"inviteCode"`
}

func (h *InviteHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inviteservice.CreateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "If provided, maxUses must be a positive integer.")
		return
	}

	invite, err := h.service.CreateInvite(ctx, req)
	if err != nil {
		if errors.Is(err, inviteservice.ErrInvalidMaxUses) {
			httpjson.Message(w, http.StatusBadRequest, "If provided, maxUses must be a positive integer.")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to create invite code", attr.ExtractCorrelationID(ctx), attr.Error(err))
		if errors.Is(err, inviteservice.ErrCodeGenerationFailed) {
			httpjson.Message(w, http.StatusInternalServerError, "Failed to generate a unique invite code after 5 attempts.")
			return
		}
		httpjson.Message(w, http.StatusInternalServerError, "Failed to create invite code.")
		return
	}

	httpjson.Write(w, http.StatusCreated, createResponse{Message: "Invite code created successfully!", InviteCode: invite})
}

func (h *InviteHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invites, err := h.service.ListInvites(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list invite codes", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to retrieve invite codes.")
		return
	}

	httpjson.Write(w, http.StatusOK, invites)
}

func (h *InviteHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpjson.Message(w, http.StatusNotFound, fmt.Sprintf("Invite code with ID %s not found.", raw))
		return
	}

	invite, err := h.service.DeleteInvite(ctx, id)
	if err != nil {
		if errors.Is(err, inviteservice.ErrInviteNotFound) {
			httpjson.Message(w, http.StatusNotFound, fmt.Sprintf("Invite code with ID %d not found.", id))
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete invite code", attr.ExtractCorrelationID(ctx), attr.Int64("invite_id", id), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to delete invite code.")
		return
	}

	httpjson.Message(w, http.StatusOK, fmt.Sprintf("Invite code %s deleted successfully.", invite.Code))
}
