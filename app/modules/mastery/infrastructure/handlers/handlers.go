package masteryhandlers

import (
	"log/slog"
	"net/http"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	masteryservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// MasteryHandlers implements the Handlers interface.
type MasteryHandlers struct {
	service masteryservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewMasteryHandlers creates a new MasteryHandlers instance.
func NewMasteryHandlers(service masteryservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &MasteryHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *MasteryHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MasteryHandlers.HandleSummary")
	defer span.End()

	userID, ok := authdomain.UserIDFromContext(ctx)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch progress summary", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch progress summary.")
		return
	}

	if summary.TotalQuestionsAvailable == 0 {
		httpjson.Data(w, http.StatusOK, "No questions in database.", summary)
		return
	}
	httpjson.Data(w, http.StatusOK, "Progress summary fetched successfully", summary)
}

func (h *MasteryHandlers) HandleSubCategoryMastery(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "MasteryHandlers.HandleSubCategoryMastery")
	defer span.End()

	userID, ok := authdomain.UserIDFromContext(ctx)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	rows, err := h.service.SubCategoryBreakdown(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch sub-category mastery", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch sub-category mastery.")
		return
	}

	httpjson.Data(w, http.StatusOK, "", rows)
}
