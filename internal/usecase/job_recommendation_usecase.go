package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type JobRecommendationItem struct {
	JobID         uuid.UUID
	Title         string
	Company       string
	Location      string
	OverallScore  int
	Compatibility string
	Strength      matching.Strength
	Breakdown     MatchBreakdown
}

type JobRecommendationUsecase interface {
	GetJobsForCandidate(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]JobRecommendationItem, error)
}

type JobRecommendation struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	engine     *matching.Engine
	cache      RecommendationCache
}

func NewJobRecommendationUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository, engine *matching.Engine, cache RecommendationCache) *JobRecommendation {
	return &JobRecommendation{candidates: candidates, jobs: jobs, engine: engine, cache: cache}
}

func (u *JobRecommendation) GetJobsForCandidate(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]JobRecommendationItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	opts := matching.JobSearchOptions()
	opts.Limit = clampLimit(params.Limit, opts.Limit)
	opts.MinScore = params.MinScore

	key := JobRecommendationsCacheKey(candidateID, opts.Limit, opts.MinScore)
	if u.cache != nil {
		var cached []JobRecommendationItem
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	row, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	subject := engineCandidate(row)
	if err := matching.ValidateCandidate(subject); err != nil {
		return nil, ErrInvalidInput
	}

	jobRows, err := u.jobs.ListOpenJobs(ctx, poolLimit)
	if err != nil {
		return nil, ErrInternal
	}
	if len(jobRows) == 0 {
		return nil, ErrNoJobsFound
	}

	byID := make(map[uuid.UUID]repository.Job, len(jobRows))
	pool := make([]matching.Job, 0, len(jobRows))
	for _, jr := range jobRows {
		j := engineJob(jr)
		if err := matching.ValidateJob(j); err != nil {
			continue
		}
		byID[jr.ID] = jr
		pool = append(pool, j)
	}

	results := u.engine.RecommendJobs(subject, pool, opts)
	if len(results) == 0 {
		return nil, ErrNoJobsFound
	}

	out := make([]JobRecommendationItem, 0, len(results))
	for _, r := range results {
		jr := byID[r.JobID]
		out = append(out, JobRecommendationItem{
			JobID:         r.JobID,
			Title:         jr.Title,
			Company:       jr.Company,
			Location:      jr.Location,
			OverallScore:  r.OverallScore,
			Compatibility: r.Compatibility,
			Strength:      r.Strength,
			Breakdown:     breakdownOf(r),
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}
