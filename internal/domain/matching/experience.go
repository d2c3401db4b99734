package matching

import "strings"

// ExperienceBand is a named experience tier mapped to a years range and
// the ideal years within it.
type ExperienceBand struct {
	Min   int
	Max   int
	Ideal int
}

// unboundedYears stands in for an open upper bound on unrecognized
// band labels. Kept well below MaxInt so Max+3 cannot overflow.
const unboundedYears = 1 << 30

var experienceBands = map[string]ExperienceBand{
	"entry level":  {Min: 0, Max: 2, Ideal: 1},
	"junior":       {Min: 1, Max: 3, Ideal: 2},
	"mid level":    {Min: 3, Max: 6, Ideal: 4},
	"senior level": {Min: 5, Max: 12, Ideal: 8},
	"lead":         {Min: 7, Max: 15, Ideal: 10},
	"principal":    {Min: 10, Max: 20, Ideal: 14},
	"architect":    {Min: 10, Max: 25, Ideal: 15},
}

// ExperienceMatch describes how candidate years line up against a
// job's experience band. Overqualification is only flagged past a
// 3-year grace window above the band maximum.
type ExperienceMatch struct {
	Score            int
	Band             ExperienceBand
	IsPerfectMatch   bool
	IsUnderqualified bool
	IsOverqualified  bool
}

func lookupBand(level string) (ExperienceBand, bool) {
	key := normalizeTerm(strings.ReplaceAll(level, "-", " "))
	band, ok := experienceBands[key]
	return band, ok
}

func (e *Engine) MatchExperience(candidateYears int, jobExperienceLevel string) ExperienceMatch {
	band, ok := lookupBand(jobExperienceLevel)
	if !ok {
		// Unscoped or unrecognized postings never penalize the candidate.
		band = ExperienceBand{Min: 0, Max: unboundedYears, Ideal: candidateYears}
	}

	m := ExperienceMatch{Band: band}

	// The three branches are intentionally discontinuous at the band
	// boundaries; each has its own floor.
	switch {
	case candidateYears >= band.Min && candidateYears <= band.Max:
		m.IsPerfectMatch = true
		diff := candidateYears - band.Ideal
		if diff < 0 {
			diff = -diff
		}
		s := 100 - 5*diff
		if s < 80 {
			s = 80
		}
		m.Score = s
	case candidateYears < band.Min:
		m.IsUnderqualified = true
		s := 60 - 15*(band.Min-candidateYears)
		if s < 20 {
			s = 20
		}
		m.Score = s
	default:
		m.IsOverqualified = candidateYears > band.Max+3
		s := 70 - 5*(candidateYears-band.Max)
		if s < 30 {
			s = 30
		}
		m.Score = s
	}

	return m
}
