package matching

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestValidateCandidate(t *testing.T) {
	valid := Candidate{ID: uuid.New()}
	if err := ValidateCandidate(valid); err != nil {
		t.Fatalf("expected zero-valued optionals to pass, got %v", err)
	}

	negYears := Candidate{ID: uuid.New(), YearsExperience: -1}
	if err := ValidateCandidate(negYears); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for negative years, got %v", err)
	}

	badEnum := Candidate{ID: uuid.New(), Availability: "sometimes"}
	if err := ValidateCandidate(badEnum); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for unknown availability, got %v", err)
	}

	noID := Candidate{}
	if err := ValidateCandidate(noID); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for missing id, got %v", err)
	}
}

func TestValidateJob(t *testing.T) {
	if err := ValidateJob(Job{ID: uuid.New()}); err != nil {
		t.Fatalf("expected empty job to pass, got %v", err)
	}
	if err := ValidateJob(Job{}); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for missing id, got %v", err)
	}
}
