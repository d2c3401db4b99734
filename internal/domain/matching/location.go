package matching

import "strings"

// LocationMatch describes geographic fit. The score never drops below
// 40: relocation keeps every pairing possible, so location alone cannot
// disqualify a candidate.
type LocationMatch struct {
	Score            int
	IsSameLocation   bool
	IsRemoteFriendly bool
	IsNearby         bool
	IsPreferred      bool
}

const locationFloorScore = 40

func (e *Engine) MatchLocation(candidateLocation, jobLocation string, preferredLocations []string) LocationMatch {
	cand := normalizeTerm(candidateLocation)
	job := normalizeTerm(jobLocation)

	m := LocationMatch{
		IsSameLocation:   cand != "" && cand == job,
		IsRemoteFriendly: strings.Contains(job, "remote") || strings.Contains(job, "anywhere"),
		IsNearby:         e.regions.Adjacent(cand, job),
	}
	if job != "" {
		for _, p := range preferredLocations {
			if normalizeTerm(p) == job {
				m.IsPreferred = true
				break
			}
		}
	}

	switch {
	case m.IsSameLocation:
		m.Score = 100
	case m.IsRemoteFriendly:
		m.Score = 95
	case m.IsNearby:
		m.Score = 75
	default:
		m.Score = locationFloorScore
	}

	if m.IsPreferred && m.Score <= 75 {
		m.Score += 20
		if m.Score > 100 {
			m.Score = 100
		}
	}

	return m
}
