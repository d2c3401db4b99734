package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type CandidateRecommendationItem struct {
	CandidateID   uuid.UUID
	FullName      string
	Location      string
	OverallScore  int
	Compatibility string
	Strength      matching.Strength
	Breakdown     MatchBreakdown
}

type CandidateRecommendationUsecase interface {
	GetCandidatesForJob(ctx context.Context, jobID uuid.UUID, params RecommendationParams) ([]CandidateRecommendationItem, error)
}

type CandidateRecommendation struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	engine     *matching.Engine
	cache      RecommendationCache
}

func NewCandidateRecommendationUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, engine *matching.Engine, cache RecommendationCache) *CandidateRecommendation {
	return &CandidateRecommendation{jobs: jobs, candidates: candidates, engine: engine, cache: cache}
}

func (u *CandidateRecommendation) GetCandidatesForJob(ctx context.Context, jobID uuid.UUID, params RecommendationParams) ([]CandidateRecommendationItem, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	opts := matching.CandidateSearchOptions()
	opts.Limit = clampLimit(params.Limit, opts.Limit)
	opts.MinScore = params.MinScore

	key := CandidateRecommendationsCacheKey(jobID, opts.Limit, opts.MinScore)
	if u.cache != nil {
		var cached []CandidateRecommendationItem
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	target := engineJob(job)
	if err := matching.ValidateJob(target); err != nil {
		return nil, ErrInvalidInput
	}

	rows, err := u.candidates.ListCandidates(ctx, poolLimit)
	if err != nil {
		return nil, ErrInternal
	}
	if len(rows) == 0 {
		return nil, ErrNoCandidatesFound
	}

	byID := make(map[uuid.UUID]repository.Candidate, len(rows))
	pool := make([]matching.Candidate, 0, len(rows))
	for _, row := range rows {
		c := engineCandidate(row)
		// A malformed stored row is dropped instead of failing the request.
		if err := matching.ValidateCandidate(c); err != nil {
			continue
		}
		byID[row.ID] = row
		pool = append(pool, c)
	}

	results := u.engine.RecommendCandidates(target, pool, opts)
	if len(results) == 0 {
		return nil, ErrNoCandidatesFound
	}

	out := make([]CandidateRecommendationItem, 0, len(results))
	for _, r := range results {
		row := byID[r.CandidateID]
		out = append(out, CandidateRecommendationItem{
			CandidateID:   r.CandidateID,
			FullName:      row.FullName,
			Location:      row.Location,
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
