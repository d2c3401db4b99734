package matching

import "testing"

func TestMatchAvailability(t *testing.T) {
	e := NewEngine()

	cases := []struct {
		name         string
		availability Availability
		visa         VisaStatus
		score        int
		available    bool
		visaOK       bool
	}{
		{"both suitable", AvailabilityAvailable, VisaCitizen, 100, true, true},
		{"conditionally available", AvailabilityConditional, VisaWorkPermit, 100, true, true},
		{"visa only", AvailabilityUnavailable, VisaPermanentResident, 70, false, true},
		{"available only", AvailabilityAvailable, VisaOther, 70, true, false},
		{"neither", AvailabilityUnavailable, VisaOther, 30, false, false},
		{"empty visa status", AvailabilityAvailable, "", 70, true, false},
	}

	for _, tc := range cases {
		res := e.MatchAvailability(Candidate{Availability: tc.availability, VisaStatus: tc.visa})
		if res.Score != tc.score {
			t.Fatalf("%s: expected score=%d, got %d", tc.name, tc.score, res.Score)
		}
		if res.IsAvailable != tc.available {
			t.Fatalf("%s: expected is_available=%v", tc.name, tc.available)
		}
		if res.VisaStatusSuitable != tc.visaOK {
			t.Fatalf("%s: expected visa_status_suitable=%v", tc.name, tc.visaOK)
		}
	}
}
