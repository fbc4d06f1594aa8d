package authhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// AuthHandlers implements the Handlers interface.
type AuthHandlers struct {
	service authservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(service authservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

var signupMessages = map[error]string{
	authservice.ErrMissingFields:  "Username, email, and password are required.",
	authservice.ErrInviteRequired: "Invite code is required for signup.",
	authservice.ErrInvalidInvite:  "Invalid, already used, or expired invite code.",
	authservice.ErrUsernameTaken:  "Failed! Username is already in use!",
	authservice.ErrEmailTaken:     "Failed! Email is already in use!",
	authservice.ErrInvalidRoles:   "One or more specified roles are invalid.",
}

// HandleSignup registers an account.
func (h *AuthHandlers) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleSignup")
	defer span.End()
	r = r.WithContext(ctx)

	var req authservice.SignupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if _, err := h.service.Signup(ctx, req); err != nil {
		for target, msg := range signupMessages {
			if errors.Is(err, target) {
				httpjson.Message(w, http.StatusBadRequest, msg)
				return
			}
		}
		h.logger.ErrorContext(ctx, "Signup failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "An error occurred during signup.")
		return
	}

	httpjson.Message(w, http.StatusOK, "User was registered successfully!")
}

// HandleSignin exchanges credentials for an access token.
func (h *AuthHandlers) HandleSignin(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleSignin")
	defer span.End()
	r = r.WithContext(ctx)

	var req authservice.SigninRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := h.service.Signin(ctx, req)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			httpjson.Message(w, http.StatusUnauthorized, "Invalid Credentials.")
			return
		}
		h.logger.ErrorContext(ctx, "Signin failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "An error occurred during signin.")
		return
	}

	httpjson.Write(w, http.StatusOK, resp)
}
