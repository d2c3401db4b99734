package matching

import (
	"errors"
	"math"
)

type Strength string

const (
	StrengthHigh   Strength = "high"
	StrengthMedium Strength = "medium"
	StrengthLow    Strength = "low"
)

// Weights is the component weight vector applied by the aggregator.
// It must sum to 1.0.
type Weights struct {
	Skills       float64
	Location     float64
	Experience   float64
	Availability float64
}

// The two shipped presets. CandidateSearchWeights (a job looking for
// candidates) is deliberately skill-dominant; JobSearchWeights (a
// candidate looking for jobs) spreads weight across location and
// experience and ignores availability. Both are kept as tuned.
var (
	CandidateSearchWeights = Weights{Skills: 0.90, Location: 0.05, Experience: 0.03, Availability: 0.02}
	JobSearchWeights       = Weights{Skills: 0.50, Location: 0.25, Experience: 0.25, Availability: 0}
)

var ErrInvalidWeights = errors.New("weights must be non-negative and sum to 1.0")

func (w Weights) Validate() error {
	if w.Skills < 0 || w.Location < 0 || w.Experience < 0 || w.Availability < 0 {
		return ErrInvalidWeights
	}
	sum := w.Skills + w.Location + w.Experience + w.Availability
	if math.Abs(sum-1.0) > 1e-9 {
		return ErrInvalidWeights
	}
	return nil
}

// Aggregate is the combined outcome of the four component scores.
type Aggregate struct {
	OverallScore  int
	Compatibility string
	Strength      Strength
}

func AggregateScores(skills, location, experience, availability int, w Weights) Aggregate {
	total := float64(skills)*w.Skills +
		float64(location)*w.Location +
		float64(experience)*w.Experience +
		float64(availability)*w.Availability

	score := clampScore(int(math.Round(total)))
	label, strength := compatibilityFor(score)

	return Aggregate{OverallScore: score, Compatibility: label, Strength: strength}
}

// compatibilityFor maps a score onto the fixed tier labels. The exact
// wording and thresholds are part of the observable contract.
func compatibilityFor(score int) (string, Strength) {
	switch {
	case score >= 85:
		return "Exceptional — Perfect alignment", StrengthHigh
	case score >= 75:
		return "Excellent — Strong match", StrengthHigh
	case score >= 65:
		return "Very good — good alignment", StrengthMedium
	case score >= 55:
		return "Good — solid match, room for growth", StrengthMedium
	case score >= 45:
		return "Potential — needs development", StrengthLow
	default:
		return "Limited match", StrengthLow
	}
}
