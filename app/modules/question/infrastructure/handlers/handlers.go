package questionhandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

const (
	// maxUploadBytes caps spreadsheet uploads.
	maxUploadBytes = 10 << 20
	uploadField    = "file"
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// QuestionHandlers implements the Handlers interface.
type QuestionHandlers struct {
	service questionservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewQuestionHandlers creates a new QuestionHandlers instance.
func NewQuestionHandlers(service questionservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &QuestionHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *QuestionHandlers) HandleNextRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuestionHandlers.HandleNextRound")
	defer span.End()

	userID, ok := authdomain.UserIDFromContext(ctx)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	round, err := h.service.NextRound(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch trivia questions", attr.ExtractCorrelationID(ctx), attr.UserID(userID), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch trivia questions.")
		return
	}

	if len(round) == 0 {
		httpjson.Data(w, http.StatusOK, "Congratulations! You've answered all available questions.", round)
		return
	}
	httpjson.Data(w, http.StatusOK, "", round)
}

func (h *QuestionHandlers) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuestionHandlers.HandleListQuestions")
	defer span.End()
	r = r.WithContext(ctx)

	filter := questiondb.AdminFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	questions, err := h.service.ListQuestions(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve questions", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to retrieve questions.")
		return
	}

	httpjson.Data(w, http.StatusOK, "", questions)
}

var updateMessages = map[error]string{
	questionservice.ErrMissingFields:      "Missing required question fields (question, options, correct_answer, category).",
	questionservice.ErrTooFewOptions:      "Options must be an array with at least 2 choices.",
	questionservice.ErrAnswerNotInOptions: "The correct answer must exactly match one of the provided options.",
}

func (h *QuestionHandlers) HandleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuestionHandlers.HandleUpdateQuestion")
	defer span.End()
	r = r.WithContext(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpjson.Message(w, http.StatusNotFound, "Question not found.")
		return
	}

	var input questionservice.QuestionInput
	if err := httpjson.Decode(r, &input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "options" {
			httpjson.Message(w, http.StatusBadRequest, updateMessages[questionservice.ErrTooFewOptions])
			return
		}
		httpjson.Message(w, http.StatusBadRequest, updateMessages[questionservice.ErrMissingFields])
		return
	}

	q, err := h.service.UpdateQuestion(ctx, id, input)
	if err != nil {
		for target, msg := range updateMessages {
			if errors.Is(err, target) {
				httpjson.Message(w, http.StatusBadRequest, msg)
				return
			}
		}
		if errors.Is(err, questionservice.ErrQuestionNotFound) {
			httpjson.Message(w, http.StatusNotFound, "Question not found.")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to update question", attr.ExtractCorrelationID(ctx), attr.Int64("question_id", id), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to update question.")
		return
	}

	httpjson.Data(w, http.StatusOK, "Question updated successfully.", q)
}

func (h *QuestionHandlers) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuestionHandlers.HandleListCategories")
	defer span.End()

	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch categories", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	httpjson.Data(w, http.StatusOK, "", categories)
}

type importErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (h *QuestionHandlers) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuestionHandlers.HandleImport")
	defer span.End()
	r = r.WithContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "An .xlsx file is required in the \"file\" field.")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		httpjson.Message(w, http.StatusBadRequest, "Unsupported file type; upload an .xlsx spreadsheet.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Failed to read uploaded file.")
		return
	}

	outcome, err := h.service.SubmitImport(ctx, header.Filename, data)
	if err != nil {
		if errors.Is(err, questionservice.ErrInvalidSpreadsheet) {
			httpjson.Write(w, http.StatusBadRequest, importErrorResponse{
				Message: "The spreadsheet could not be read.",
				Error:   err.Error(),
			})
			return
		}
		h.logger.ErrorContext(ctx, "Failed to import questions", attr.ExtractCorrelationID(ctx), attr.String("file_name", header.Filename), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to import questions.")
		return
	}

	if outcome.Queued {
		httpjson.Data(w, http.StatusAccepted, "Question import queued.", outcome)
		return
	}
	httpjson.Data(w, http.StatusOK, fmt.Sprintf("Imported %d questions.", outcome.Report.Imported), outcome)
}

func (h *QuestionHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "QuestionHandlers.HandleExport")
	defer span.End()

	data, err := h.service.ExportSpreadsheet(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to export questions", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Failed to export questions.")
		return
	}

	name := fmt.Sprintf("questions-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
