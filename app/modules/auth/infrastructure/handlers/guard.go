package authhandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	authservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
)

// TokenHeader carries the access token issued at signin.
const TokenHeader = "x-access-token"

// Guard authenticates requests and enforces roles for other modules' routes.
type Guard struct {
	service authservice.Service
	logger  *slog.Logger
}

// NewGuard creates a Guard backed by the auth service.
func NewGuard(service authservice.Service, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{service: service, logger: logger}
}

func tokenFromRequest(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(TokenHeader)); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// RequireToken rejects requests without a valid access token and stores the
// caller's user id in the request context.
func (g *Guard) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			httpjson.Message(w, http.StatusForbidden, "No token provided!")
			return
		}

		claims, err := g.service.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, authjwt.ErrExpiredToken) {
				httpjson.Message(w, http.StatusUnauthorized, "Unauthorized! Token has expired.")
				return
			}
			httpjson.Message(w, http.StatusUnauthorized, "Unauthorized! Invalid Token.")
			return
		}

		next.ServeHTTP(w, r.WithContext(authdomain.WithUserID(r.Context(), claims.UserID)))
	})
}

var roleDeniedMessages = map[authdomain.Role]string{
	authdomain.RoleAdmin:     "Require Admin Role!",
	authdomain.RoleBudtender: "Require Budtender Role!",
	authdomain.RoleUser:      "Require User Role!",
}

// RequireRole admits callers holding role. It must run after RequireToken.
func (g *Guard) RequireRole(role authdomain.Role) func(http.Handler) http.Handler {
	denied := roleDeniedMessages[role]
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID, ok := authdomain.UserIDFromContext(ctx)
			if !ok {
				httpjson.Message(w, http.StatusForbidden, "No token provided!")
				return
			}

			allowed, err := g.service.HasRole(ctx, userID, role)
			if err != nil {
				g.logger.ErrorContext(ctx, "Role check failed",
					attr.ExtractCorrelationID(ctx),
					attr.UserID(userID),
					attr.String("role", string(role)),
					attr.Error(err),
				)
				httpjson.Message(w, http.StatusInternalServerError, "Error checking "+string(role)+" role.")
				return
			}
			if !allowed {
				httpjson.Message(w, http.StatusForbidden, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
