package scorehandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	scoreservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// ScoreHandlers implements the Handlers interface.
type ScoreHandlers struct {
	service scoreservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(service scoreservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &ScoreHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		now:     time.Now,
	}
}

var submitMessages = map[error]string{
	scoreservice.ErrInvalidSubmission: "Invalid score data provided. Ensure score, totalQuestions, and results array are present.",
	scoreservice.ErrInvalidTotal:      "totalQuestions must be a positive number.",
	scoreservice.ErrResultsMismatch:   "Results array must contain one entry per question with a valid numeric questionId.",
	scoreservice.ErrScoreOutOfRange:   "Score must be a number between 0 and totalQuestions.",
}

func (h *ScoreHandlers) HandleSubmitRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleSubmitRound")
	defer span.End()
	r = r.WithContext(ctx)

	userID, ok := authdomain.UserIDFromContext(ctx)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var sub scoreservice.Submission
	if err := httpjson.Decode(r, &sub); err != nil {
		httpjson.Message(w, http.StatusBadRequest, submitMessages[scoreservice.ErrInvalidSubmission])
		return
	}

	score, err := h.service.SubmitRound(ctx, userID, sub)
	if err != nil {
		for target, msg := range submitMessages {
			if errors.Is(err, target) {
				httpjson.Message(w, http.StatusBadRequest, msg)
				return
			}
		}
		h.logger.ErrorContext(ctx, "Failed to submit score",
			attr.ExtractCorrelationID(ctx),
			attr.UserID(userID),
			attr.Error(err),
		)
		httpjson.Message(w, http.StatusInternalServerError, "Failed to submit score/stats.")
		return
	}

	httpjson.Data(w, http.StatusCreated, "Score and stats submitted successfully!", score)
}

func (h *ScoreHandlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleHistory")
	defer span.End()
	r = r.WithContext(ctx)

	userID, ok := authdomain.UserIDFromContext(ctx)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	since, err := scoreservice.ParseSince(r.URL.Query().Get("since"), h.now())
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Could not understand the since filter.")
		return
	}

	scores, err := h.service.History(ctx, userID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch score history", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch score history.")
		return
	}

	httpjson.Data(w, http.StatusOK, "User score history fetched successfully", scores)
}

func (h *ScoreHandlers) HandleHistoryChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleHistoryChart")
	defer span.End()

	userID, ok := authdomain.UserIDFromContext(ctx)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	png, err := h.service.HistoryChart(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to render score history chart", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to render score history.")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
