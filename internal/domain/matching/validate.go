package matching

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var ErrMalformedRecord = errors.New("malformed record")

// ValidateCandidate rejects malformed candidate records before scoring.
// Absent optional fields are fine; wrong values (negative years,
// unknown enum labels) are not, since coercing them would corrupt the
// scoring guarantees downstream.
func ValidateCandidate(c Candidate) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: candidate %s: %v", ErrMalformedRecord, c.ID, err)
	}
	return nil
}

// ValidateJob rejects malformed job records before scoring.
func ValidateJob(j Job) error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("%w: job %s: %v", ErrMalformedRecord, j.ID, err)
	}
	return nil
}
