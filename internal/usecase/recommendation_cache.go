package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecommendationCache stores ranked recommendation lists. A nil or
// bypassed cache must report misses instead of errors.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type recommendationCacheKeyInput struct {
	Subject  string `json:"subject"`
	ID       string `json:"id"`
	Limit    int    `json:"limit"`
	MinScore int    `json:"min_score"`
}

func recommendationCacheKey(prefix, subject string, id uuid.UUID, limit, minScore int) string {
	in := recommendationCacheKeyInput{
		Subject:  subject,
		ID:       id.String(),
		Limit:    limit,
		MinScore: minScore,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return prefix + hex.EncodeToString(sum[:])
}

func CandidateRecommendationsCacheKey(jobID uuid.UUID, limit, minScore int) string {
	return recommendationCacheKey("recommend:candidates:", "job", jobID, limit, minScore)
}

func JobRecommendationsCacheKey(candidateID uuid.UUID, limit, minScore int) string {
	return recommendationCacheKey("recommend:jobs:", "candidate", candidateID, limit, minScore)
}
