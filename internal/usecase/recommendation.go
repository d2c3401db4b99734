package usecase

import (
	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"
)

// poolLimit caps how many rows are pulled from storage for a single
// ranking pass.
const poolLimit = 500

const maxRecommendationLimit = 50

// RecommendationParams come straight from the query string. A
// non-positive Limit falls back to the per-direction default and a
// negative MinScore disables the score cutoff.
type RecommendationParams struct {
	Limit    int
	MinScore int
}

// MatchBreakdown carries the per-factor results alongside the overall
// score so clients can explain a ranking.
type MatchBreakdown struct {
	Skills       matching.SkillsMatch
	Location     matching.LocationMatch
	Experience   matching.ExperienceMatch
	Availability matching.AvailabilityMatch
}

func breakdownOf(r matching.MatchResult) MatchBreakdown {
	return MatchBreakdown{
		Skills:       r.Skills,
		Location:     r.Location,
		Experience:   r.Experience,
		Availability: r.Availability,
	}
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxRecommendationLimit {
		return maxRecommendationLimit
	}
	return limit
}

func engineCandidate(c repository.Candidate) matching.Candidate {
	return matching.Candidate{
		ID:                 c.ID,
		Skills:             c.Skills,
		Location:           c.Location,
		YearsExperience:    c.YearsExperience,
		Availability:       matching.Availability(c.Availability),
		VisaStatus:         matching.VisaStatus(c.VisaStatus),
		PreferredLocations: c.PreferredLocations,
	}
}

func engineJob(j repository.Job) matching.Job {
	return matching.Job{
		ID:              j.ID,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		Location:        j.Location,
		ExperienceLevel: j.ExperienceLevel,
	}
}
