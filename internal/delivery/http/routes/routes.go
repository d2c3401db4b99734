package routes

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health        *handler.HealthHandler
	candidateRecs *handler.CandidateRecommendationHandler
	jobRecs       *handler.JobRecommendationHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	candidateRecs *handler.CandidateRecommendationHandler,
	jobRecs *handler.JobRecommendationHandler,
) *Registry {
	return &Registry{health: health, candidateRecs: candidateRecs, jobRecs: jobRecs}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.candidateRecs.RegisterRoutes(v1)
	r.jobRecs.RegisterRoutes(v1)
}
