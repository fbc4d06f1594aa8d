package userhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	userservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// profileView renders roles as authorities (ROLE_ADMIN).
func profileView(p userservice.Profile) userservice.Profile {
	p.Roles = authdomain.Authorities(p.Roles)
	return p
}

func (h *UserHandlers) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleGetMe")
	defer span.End()

	userID, _ := authdomain.UserIDFromContext(ctx)

	profile, err := h.service.GetCurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			httpjson.Message(w, http.StatusNotFound, "User not found.")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch user details", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch user details.")
		return
	}

	httpjson.Write(w, http.StatusOK, profileView(profile))
}

type updateResponse struct {
	Message string              `json:"message"`
	User    userservice.Profile `json:"user"`
}

func (h *UserHandlers) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleUpdateMe")
	defer span.End()
	r = r.WithContext(ctx)

	userID, _ := authdomain.UserIDFromContext(ctx)

	var req userservice.ProfileUpdate
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := h.service.UpdateCurrentUser(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			httpjson.Message(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, userservice.ErrUsernameTaken):
			httpjson.Message(w, http.StatusBadRequest, "Failed! Username is already in use!")
		case errors.Is(err, userservice.ErrEmailTaken):
			httpjson.Message(w, http.StatusBadRequest, "Failed! Email is already in use!")
		case errors.Is(err, userservice.ErrInvalidUsername):
			httpjson.Message(w, http.StatusBadRequest, "Username cannot be empty.")
		case errors.Is(err, userservice.ErrInvalidEmail):
			httpjson.Message(w, http.StatusBadRequest, "Email cannot be empty.")
		default:
			h.logger.ErrorContext(ctx, "Failed to update profile", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
			httpjson.Message(w, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}

	msg := "No changes applied."
	if res.Changed {
		msg = "Profile updated successfully!"
	}
	httpjson.Write(w, http.StatusOK, updateResponse{Message: msg, User: profileView(res.Profile)})
}

func (h *UserHandlers) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleListUsers")
	defer span.End()

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch users", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}

	views := make([]userservice.Profile, 0, len(users))
	for _, u := range users {
		views = append(views, profileView(u))
	}
	httpjson.Data(w, http.StatusOK, "", views)
}

func (h *UserHandlers) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleDeleteUser")
	defer span.End()
	r = r.WithContext(ctx)

	actorID, _ := authdomain.UserIDFromContext(ctx)

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || targetID <= 0 {
		httpjson.Message(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	if err := h.service.DeleteUser(ctx, actorID, targetID); err != nil {
		switch {
		case errors.Is(err, userservice.ErrCannotDeleteSelf):
			httpjson.Message(w, http.StatusBadRequest, "Cannot delete your own account.")
		case errors.Is(err, userservice.ErrUserNotFound):
			httpjson.Message(w, http.StatusNotFound, "User not found.")
		default:
			h.logger.ErrorContext(ctx, "Failed to delete user", attr.ExtractCorrelationID(ctx), attr.UserID(targetID), attr.Error(err))
			httpjson.Message(w, http.StatusInternalServerError, "Failed to delete user.")
		}
		return
	}

	httpjson.Message(w, http.StatusOK, fmt.Sprintf("User %d deleted successfully.", targetID))
}

func (h *UserHandlers) HandleListLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleListLocations")
	defer span.End()

	locations, err := h.service.ListStoreLocations(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch store locations", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch store locations.")
		return
	}

	httpjson.Data(w, http.StatusOK, "", locations)
}
