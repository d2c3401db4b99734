package dto

import (
	"github.com/google/uuid"

	"talent-match/internal/usecase"
)

type SkillsBreakdownResponse struct {
	Score    int      `json:"score"`
	Coverage int      `json:"coverage"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
}

type LocationBreakdownResponse struct {
	Score            int  `json:"score"`
	IsSameLocation   bool `json:"is_same_location"`
	IsRemoteFriendly bool `json:"is_remote_friendly"`
	IsNearby         bool `json:"is_nearby"`
	IsPreferred      bool `json:"is_preferred"`
}

type ExperienceBreakdownResponse struct {
	Score            int  `json:"score"`
	IsPerfectMatch   bool `json:"is_perfect_match"`
	IsUnderqualified bool `json:"is_underqualified"`
	IsOverqualified  bool `json:"is_overqualified"`
}

type AvailabilityBreakdownResponse struct {
	Score              int  `json:"score"`
	IsAvailable        bool `json:"is_available"`
	VisaStatusSuitable bool `json:"visa_status_suitable"`
}

type MatchBreakdownResponse struct {
	Skills       SkillsBreakdownResponse       `json:"skills"`
	Location     LocationBreakdownResponse     `json:"location"`
	Experience   ExperienceBreakdownResponse   `json:"experience"`
	Availability AvailabilityBreakdownResponse `json:"availability"`
}

type CandidateRecommendationResponse struct {
	CandidateID   uuid.UUID              `json:"candidate_id"`
	FullName      string                 `json:"full_name"`
	Location      string                 `json:"location"`
	OverallScore  int                    `json:"overall_score"`
	Compatibility string                 `json:"compatibility"`
	Strength      string                 `json:"strength"`
	Breakdown     MatchBreakdownResponse `json:"breakdown"`
}

type JobRecommendationResponse struct {
	JobID         uuid.UUID              `json:"job_id"`
	Title         string                 `json:"title"`
	Company       string                 `json:"company"`
	Location      string                 `json:"location"`
	OverallScore  int                    `json:"overall_score"`
	Compatibility string                 `json:"compatibility"`
	Strength      string                 `json:"strength"`
	Breakdown     MatchBreakdownResponse `json:"breakdown"`
}

func breakdownResponse(b usecase.MatchBreakdown) MatchBreakdownResponse {
	matched := b.Skills.Matched
	if matched == nil {
		matched = []string{}
	}
	missing := b.Skills.Missing
	if missing == nil {
		missing = []string{}
	}
	return MatchBreakdownResponse{
		Skills: SkillsBreakdownResponse{
			Score:    b.Skills.Score,
			Coverage: b.Skills.Coverage,
			Matched:  matched,
			Missing:  missing,
		},
		Location: LocationBreakdownResponse{
			Score:            b.Location.Score,
			IsSameLocation:   b.Location.IsSameLocation,
			IsRemoteFriendly: b.Location.IsRemoteFriendly,
			IsNearby:         b.Location.IsNearby,
			IsPreferred:      b.Location.IsPreferred,
		},
		Experience: ExperienceBreakdownResponse{
			Score:            b.Experience.Score,
			IsPerfectMatch:   b.Experience.IsPerfectMatch,
			IsUnderqualified: b.Experience.IsUnderqualified,
			IsOverqualified:  b.Experience.IsOverqualified,
		},
		Availability: AvailabilityBreakdownResponse{
			Score:              b.Availability.Score,
			IsAvailable:        b.Availability.IsAvailable,
			VisaStatusSuitable: b.Availability.VisaStatusSuitable,
		},
	}
}

func NewCandidateRecommendationResponses(items []usecase.CandidateRecommendationItem) []CandidateRecommendationResponse {
	out := make([]CandidateRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CandidateRecommendationResponse{
			CandidateID:   it.CandidateID,
			FullName:      it.FullName,
			Location:      it.Location,
			OverallScore:  it.OverallScore,
			Compatibility: it.Compatibility,
			Strength:      string(it.Strength),
			Breakdown:     breakdownResponse(it.Breakdown),
		})
	}
	return out
}

func NewJobRecommendationResponses(items []usecase.JobRecommendationItem) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, JobRecommendationResponse{
			JobID:         it.JobID,
			Title:         it.Title,
			Company:       it.Company,
			Location:      it.Location,
			OverallScore:  it.OverallScore,
			Compatibility: it.Compatibility,
			Strength:      string(it.Strength),
			Breakdown:     breakdownResponse(it.Breakdown),
		})
	}
	return out
}
