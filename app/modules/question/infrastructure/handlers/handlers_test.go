package questionhandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRouter(svc *FakeService) http.Handler {
	h := NewQuestionHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	r.Get("/api/trivia/questions", h.HandleNextRound)
	r.Get("/api/questions/all", h.HandleListQuestions)
	r.Get("/api/questions/categories", h.HandleListCategories)
	r.Put("/api/questions/{id}", h.HandleUpdateQuestion)
	r.Post("/api/questions/import", h.HandleImport)
	r.Get("/api/questions/export", h.HandleExport)
	return r
}

func asUser(req *http.Request, id int64) *http.Request {
	return req.WithContext(authdomain.WithUserID(req.Context(), id))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleNextRound(t *testing.T) {
	t.Run("returns round", func(t *testing.T) {
		svc := &FakeService{NextRoundFunc: func(ctx context.Context, userID int64) ([]questiondb.RoundQuestion, error) {
			assert.Equal(t, int64(4), userID)
			return []questiondb.RoundQuestion{{ID: 1, Question: "q", Options: []string{"a", "b"}, Category: "c"}}, nil
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/trivia/questions", nil), 4))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		data := body["data"].([]any)
		require.Len(t, data, 1)
		item := data[0].(map[string]any)
		assert.NotContains(t, item, "correct_answer")
		assert.NotContains(t, body, "message")
	})

	t.Run("exhausted bank", func(t *testing.T) {
		svc := &FakeService{NextRoundFunc: func(context.Context, int64) ([]questiondb.RoundQuestion, error) {
			return []questiondb.RoundQuestion{}, nil
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/trivia/questions", nil), 4))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Congratulations! You've answered all available questions.", body["message"])
		assert.Equal(t, []any{}, body["data"])
	})

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(&FakeService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trivia/questions", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &FakeService{NextRoundFunc: func(context.Context, int64) ([]questiondb.RoundQuestion, error) {
			return nil, errors.New("boom")
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/trivia/questions", nil), 4))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch trivia questions.", decodeBody(t, rec)["message"])
	})
}

func TestHandleListQuestions(t *testing.T) {
	svc := &FakeService{ListQuestionsFunc: func(ctx context.Context, filter questiondb.AdminFilter) ([]questiondb.Question, error) {
		assert.Equal(t, questiondb.AdminFilter{Search: "pine", Category: "Terpenes"}, filter)
		return []questiondb.Question{{ID: 2, Category: "Terpenes"}}, nil
	}}
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions/all?search=pine&category=Terpenes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"], 1)
}

func TestHandleUpdateQuestion(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "updated",
			path:       "/api/questions/5",
			body:       `{"question":"q","options":["a","b"],"correct_answer":"a","category":"c"}`,
			wantStatus: http.StatusOK,
			wantMsg:    "Question updated successfully.",
		},
		{
			name:       "missing fields",
			path:       "/api/questions/5",
			body:       `{"question":"q"}`,
			serviceErr: questionservice.ErrMissingFields,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required question fields (question, options, correct_answer, category).",
		},
		{
			name:       "options not an array",
			path:       "/api/questions/5",
			body:       `{"question":"q","options":"a,b","correct_answer":"a","category":"c"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Options must be an array with at least 2 choices.",
		},
		{
			name:       "answer not an option",
			path:       "/api/questions/5",
			body:       `{"question":"q","options":["a","b"],"correct_answer":"z","category":"c"}`,
			serviceErr: questionservice.ErrAnswerNotInOptions,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "The correct answer must exactly match one of the provided options.",
		},
		{
			name:       "not found",
			path:       "/api/questions/5",
			body:       `{"question":"q","options":["a","b"],"correct_answer":"a","category":"c"}`,
			serviceErr: questionservice.ErrQuestionNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Question not found.",
		},
		{
			name:       "bad id",
			path:       "/api/questions/abc",
			body:       `{}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Question not found.",
		},
		{
			name:       "infrastructure error",
			path:       "/api/questions/5",
			body:       `{"question":"q","options":["a","b"],"correct_answer":"a","category":"c"}`,
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to update question.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{UpdateQuestionFunc: func(ctx context.Context, id int64, input questionservice.QuestionInput) (*questiondb.Question, error) {
				assert.Equal(t, int64(5), id)
				if tt.serviceErr != nil {
					return nil, fmt.Errorf("UpdateQuestion: %w", tt.serviceErr)
				}
				return &questiondb.Question{ID: id, Question: input.Question, Options: input.Options}, nil
			}}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMsg, body["message"])
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, float64(5), body["data"].(map[string]any)["id"])
			}
		})
	}
}

func TestHandleListCategories(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &FakeService{ListCategoriesFunc: func(context.Context) ([]string, error) {
			return []string{"Compliance", "Terpenes"}, nil
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions/categories", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{"Compliance", "Terpenes"}, decodeBody(t, rec)["data"])
	})

	t.Run("error", func(t *testing.T) {
		svc := &FakeService{ListCategoriesFunc: func(context.Context) ([]string, error) {
			return nil, errors.New("boom")
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions/categories", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch categories.", decodeBody(t, rec)["message"])
	})
}

func multipartUpload(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(uploadField, fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/questions/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleImport(t *testing.T) {
	t.Run("synchronous import", func(t *testing.T) {
		svc := &FakeService{SubmitImportFunc: func(ctx context.Context, fileName string, data []byte) (*questionservice.ImportOutcome, error) {
			assert.Equal(t, "bank.xlsx", fileName)
			assert.Equal(t, []byte("xlsx-bytes"), data)
			return &questionservice.ImportOutcome{Report: &questionservice.ImportReport{Imported: 4, Skipped: []questionservice.RowError{}}}, nil
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, multipartUpload(t, "bank.xlsx", []byte("xlsx-bytes")))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Imported 4 questions.", decodeBody(t, rec)["message"])
	})

	t.Run("queued import", func(t *testing.T) {
		svc := &FakeService{SubmitImportFunc: func(context.Context, string, []byte) (*questionservice.ImportOutcome, error) {
			return &questionservice.ImportOutcome{Queued: true, JobID: 11}, nil
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, multipartUpload(t, "bank.XLSX", []byte("xlsx-bytes")))

		require.Equal(t, http.StatusAccepted, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(11), body["data"].(map[string]any)["jobId"])
	})

	t.Run("wrong extension", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(&FakeService{}).ServeHTTP(rec, multipartUpload(t, "bank.csv", []byte("a,b")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(&FakeService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/questions/import", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unreadable spreadsheet", func(t *testing.T) {
		svc := &FakeService{SubmitImportFunc: func(context.Context, string, []byte) (*questionservice.ImportOutcome, error) {
			return nil, fmt.Errorf("%w: %w", questionservice.ErrInvalidSpreadsheet, errors.New("zip: not a valid zip file"))
		}}
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, multipartUpload(t, "bank.xlsx", []byte("nope")))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "The spreadsheet could not be read.", body["message"])
		assert.Contains(t, body["error"], "not a valid zip file")
	})
}

func TestHandleExport(t *testing.T) {
	svc := &FakeService{ExportSpreadsheetFunc: func(context.Context) ([]byte, error) {
		return []byte("PK-data"), nil
	}}
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMediaType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=\"questions-")
	assert.Equal(t, "PK-data", rec.Body.String())
}
