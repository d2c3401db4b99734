package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubCandidateRecUC struct {
	items  []usecase.CandidateRecommendationItem
	err    error
	params usecase.RecommendationParams
}

func (s *stubCandidateRecUC) GetCandidatesForJob(_ context.Context, _ uuid.UUID, params usecase.RecommendationParams) ([]usecase.CandidateRecommendationItem, error) {
	s.params = params
	return s.items, s.err
}

type stubJobRecUC struct {
	items []usecase.JobRecommendationItem
	err   error
}

func (s *stubJobRecUC) GetJobsForCandidate(context.Context, uuid.UUID, usecase.RecommendationParams) ([]usecase.JobRecommendationItem, error) {
	return s.items, s.err
}

func newTestApp(candUC usecase.CandidateRecommendationUsecase, jobUC usecase.JobRecommendationUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	v1 := app.Group("/api").Group("/v1")
	NewCandidateRecommendationHandler(candUC).RegisterRoutes(v1)
	NewJobRecommendationHandler(jobUC).RegisterRoutes(v1)
	return app
}

func decodeResponse(t *testing.T, body io.Reader) semanticResponse {
	t.Helper()
	var out semanticResponse
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCandidateRecommendations_InvalidJobID(t *testing.T) {
	app := newTestApp(&stubCandidateRecUC{}, &stubJobRecUC{})

	req := httptest.NewRequest("GET", "/api/v1/jobs/not-a-uuid/candidate-recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeResponse(t, resp.Body)
	if body.Message != "Invalid job id" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestCandidateRecommendations_DefaultsAndPayload(t *testing.T) {
	stub := &stubCandidateRecUC{items: []usecase.CandidateRecommendationItem{{
		CandidateID:   uuid.New(),
		FullName:      "Ayu Lestari",
		Location:      "Jakarta",
		OverallScore:  91,
		Compatibility: "Exceptional — Perfect alignment",
		Strength:      "high",
	}}}
	app := newTestApp(stub, &stubJobRecUC{})

	req := httptest.NewRequest("GET", "/api/v1/jobs/"+uuid.NewString()+"/candidate-recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.params.MinScore != 60 {
		t.Fatalf("default min_score should be 60, got %d", stub.params.MinScore)
	}

	body := decodeResponse(t, resp.Body)
	var items []map[string]any
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0]["full_name"] != "Ayu Lestari" {
		t.Fatalf("unexpected payload: %v", items[0])
	}
	if items[0]["overall_score"] != float64(91) {
		t.Fatalf("unexpected score: %v", items[0]["overall_score"])
	}
}

func TestCandidateRecommendations_QueryOverrides(t *testing.T) {
	stub := &stubCandidateRecUC{}
	app := newTestApp(stub, &stubJobRecUC{})

	req := httptest.NewRequest("GET", "/api/v1/jobs/"+uuid.NewString()+"/candidate-recommendations?limit=5&min_score=80", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("request: %v", err)
	}
	if stub.params.Limit != 5 || stub.params.MinScore != 80 {
		t.Fatalf("query params not forwarded: %+v", stub.params)
	}
}

func TestCandidateRecommendations_NotFound(t *testing.T) {
	app := newTestApp(&stubCandidateRecUC{err: usecase.ErrJobNotFound}, &stubJobRecUC{})

	req := httptest.NewRequest("GET", "/api/v1/jobs/"+uuid.NewString()+"/candidate-recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCandidateRecommendations_InternalErrorHidesCause(t *testing.T) {
	app := newTestApp(&stubCandidateRecUC{err: usecase.ErrInternal}, &stubJobRecUC{})

	req := httptest.NewRequest("GET", "/api/v1/jobs/"+uuid.NewString()+"/candidate-recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body := decodeResponse(t, resp.Body)
	if body.Message != "internal server error" {
		t.Fatalf("internal cause should not leak, got %q", body.Message)
	}
}

func TestJobRecommendations_OK(t *testing.T) {
	app := newTestApp(&stubCandidateRecUC{}, &stubJobRecUC{items: []usecase.JobRecommendationItem{{
		JobID:         uuid.New(),
		Title:         "Backend Engineer",
		Company:       "Nusantara Tech",
		OverallScore:  77,
		Compatibility: "Excellent — Strong match",
		Strength:      "high",
	}}})

	req := httptest.NewRequest("GET", "/api/v1/candidates/"+uuid.NewString()+"/job-recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeResponse(t, resp.Body)
	var items []map[string]any
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 || items[0]["title"] != "Backend Engineer" {
		t.Fatalf("unexpected payload: %v", items)
	}
}
