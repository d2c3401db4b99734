package handler

import (
	"errors"
	"strconv"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidateRecommendationHandler struct {
	uc usecase.CandidateRecommendationUsecase
}

func NewCandidateRecommendationHandler(uc usecase.CandidateRecommendationUsecase) *CandidateRecommendationHandler {
	return &CandidateRecommendationHandler{uc: uc}
}

func (h *CandidateRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:id/candidate-recommendations", h.GetRecommendations)
}

func (h *CandidateRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	params := usecase.RecommendationParams{
		Limit:    parseQueryInt(c, "limit", 0),
		MinScore: parseQueryInt(c, "min_score", matching.DefaultCandidateMinScore),
	}

	items, err := h.uc.GetCandidatesForJob(c.Context(), jobID, params)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateRecommendationResponses(items))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrNoCandidatesFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No matching candidates found", nil, err)
	case errors.Is(err, usecase.ErrNoJobsFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No matching jobs found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
