package masteryhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	masteryservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/application"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type FakeService struct {
	SummaryFunc              func(ctx context.Context, userID int64) (masteryservice.Summary, error)
	SubCategoryBreakdownFunc func(ctx context.Context, userID int64) ([]masteryservice.SubCategoryMastery, error)
}

func (f *FakeService) Summary(ctx context.Context, userID int64) (masteryservice.Summary, error) {
	if f.SummaryFunc != nil {
		return f.SummaryFunc(ctx, userID)
	}
	return masteryservice.Summary{}, nil
}

func (f *FakeService) SubCategoryBreakdown(ctx context.Context, userID int64) ([]masteryservice.SubCategoryMastery, error) {
	if f.SubCategoryBreakdownFunc != nil {
		return f.SubCategoryBreakdownFunc(ctx, userID)
	}
	return []masteryservice.SubCategoryMastery{}, nil
}

func newRouter(svc *FakeService) http.Handler {
	h := NewMasteryHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	r.Get("/api/stats/summary", h.HandleSummary)
	r.Get("/api/stats/mastery-by-subcategory", h.HandleSubCategoryMastery)
	return r
}

func get(t *testing.T, svc *FakeService, path string, userID int64) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != 0 {
		req = req.WithContext(authdomain.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestHandleSummary(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		svc := &FakeService{SummaryFunc: func(ctx context.Context, userID int64) (masteryservice.Summary, error) {
			assert.Equal(t, int64(5), userID)
			return masteryservice.Summary{
				OverallMastery:          70,
				CategoryMastery:         map[string]float64{"Strains": 70},
				SubCategoryMastery:      map[string]float64{},
				TotalQuestionsAvailable: 10,
				TotalUniqueCorrect:      7,
			}, nil
		}}
		code, body := get(t, svc, "/api/stats/summary", 5)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Progress summary fetched successfully", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, 70.0, data["overallMastery"])
		assert.Equal(t, 10.0, data["totalQuestionsAvailable"])
		assert.Equal(t, 7.0, data["totalUniqueCorrect"])
	})

	t.Run("empty bank", func(t *testing.T) {
		svc := &FakeService{SummaryFunc: func(ctx context.Context, userID int64) (masteryservice.Summary, error) {
			return masteryservice.Summary{CategoryMastery: map[string]float64{}, SubCategoryMastery: map[string]float64{}}, nil
		}}
		code, body := get(t, svc, "/api/stats/summary", 5)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "No questions in database.", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, map[string]any{}, data["categoryMastery"])
	})

	t.Run("service error", func(t *testing.T) {
		svc := &FakeService{SummaryFunc: func(ctx context.Context, userID int64) (masteryservice.Summary, error) {
			return masteryservice.Summary{}, errors.New("boom")
		}}
		code, body := get(t, svc, "/api/stats/summary", 5)
		require.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to fetch progress summary.", body["message"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		code, _ := get(t, &FakeService{}, "/api/stats/summary", 0)
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestHandleSubCategoryMastery(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		svc := &FakeService{SubCategoryBreakdownFunc: func(ctx context.Context, userID int64) ([]masteryservice.SubCategoryMastery, error) {
			return []masteryservice.SubCategoryMastery{{MainCategory: "Strains", SubCategory: "Indica", Mastery: 50}}, nil
		}}
		code, body := get(t, svc, "/api/stats/mastery-by-subcategory", 5)
		require.Equal(t, http.StatusOK, code)
		rows := body["data"].([]any)
		require.Len(t, rows, 1)
		row := rows[0].(map[string]any)
		assert.Equal(t, "Strains", row["mainCategory"])
		assert.Equal(t, "Indica", row["subCategory"])
		assert.Equal(t, 50.0, row["mastery"])
	})

	t.Run("service error", func(t *testing.T) {
		svc := &FakeService{SubCategoryBreakdownFunc: func(ctx context.Context, userID int64) ([]masteryservice.SubCategoryMastery, error) {
			return nil, errors.New("boom")
		}}
		code, body := get(t, svc, "/api/stats/mastery-by-subcategory", 5)
		require.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to fetch sub-category mastery.", body["message"])
	})
}
