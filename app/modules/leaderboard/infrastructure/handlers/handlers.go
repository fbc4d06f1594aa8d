package leaderboardhandlers

import (
	"log/slog"
	"net/http"

	leaderboardservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// LeaderboardHandlers implements the Handlers interface.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

var cultivatedMessages = map[leaderboardservice.Status]string{
	leaderboardservice.StatusListed:          "Cultivated list fetched successfully",
	leaderboardservice.StatusNoQuestions:     "Cultivated data unavailable (no questions).",
	leaderboardservice.StatusNoMasteredUsers: "No users have achieved 100% mastery for the Cultivated list yet.",
}

func (h *LeaderboardHandlers) HandleCultivated(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleCultivated")
	defer span.End()

	list, err := h.service.Cultivated(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch Cultivated list", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch Cultivated list.")
		return
	}

	httpjson.Data(w, http.StatusOK, cultivatedMessages[list.Status], list.Entries)
}
