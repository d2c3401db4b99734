package matching

import "github.com/google/uuid"

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityConditional Availability = "conditionally_available"
	AvailabilityUnavailable Availability = "unavailable"
)

type VisaStatus string

const (
	VisaCitizen           VisaStatus = "citizen"
	VisaPermanentResident VisaStatus = "permanent_resident"
	VisaWorkPermit        VisaStatus = "work_permit"
	VisaOther             VisaStatus = "other"
)

// Candidate is the engine-side view of a candidate profile. Optional
// fields may be left zero-valued; the matchers treat them as empty.
type Candidate struct {
	ID                 uuid.UUID    `validate:"required"`
	Skills             []string
	Location           string
	YearsExperience    int          `validate:"gte=0"`
	Availability       Availability `validate:"omitempty,oneof=available conditionally_available unavailable"`
	VisaStatus         VisaStatus   `validate:"omitempty,oneof=citizen permanent_resident work_permit other"`
	PreferredLocations []string
}

// Job is the engine-side view of a posting. PreferredSkills are
// informational and do not affect the required-skill score.
type Job struct {
	ID              uuid.UUID `validate:"required"`
	RequiredSkills  []string
	PreferredSkills []string
	Location        string
	ExperienceLevel string
}

// MatchResult is an immutable value object describing one evaluated
// candidate/job pair.
type MatchResult struct {
	CandidateID   uuid.UUID
	JobID         uuid.UUID
	OverallScore  int
	Skills        SkillsMatch
	Location      LocationMatch
	Experience    ExperienceMatch
	Availability  AvailabilityMatch
	Compatibility string
	Strength      Strength
}
