package matching

// AvailabilityMatch checks minimal eligibility. Like location, it is
// advisory: the score bottoms out at 30, never 0.
type AvailabilityMatch struct {
	Score              int
	IsAvailable        bool
	VisaStatusSuitable bool
}

func (e *Engine) MatchAvailability(c Candidate) AvailabilityMatch {
	m := AvailabilityMatch{
		IsAvailable: c.Availability != AvailabilityUnavailable,
	}

	switch c.VisaStatus {
	case VisaCitizen, VisaPermanentResident, VisaWorkPermit:
		m.VisaStatusSuitable = true
	}

	switch {
	case m.IsAvailable && m.VisaStatusSuitable:
		m.Score = 100
	case m.IsAvailable || m.VisaStatusSuitable:
		m.Score = 70
	default:
		m.Score = 30
	}

	return m
}
