package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type Candidate struct {
	ID                 uuid.UUID
	FullName           string
	Skills             []string
	Location           string
	YearsExperience    int
	Availability       string
	VisaStatus         string
	PreferredLocations []string
}

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	ListCandidates(ctx context.Context, limit int) ([]Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, COALESCE(full_name, ''), COALESCE(skills, '{}'::text[]), COALESCE(location, ''),
	 COALESCE(years_experience, 0), COALESCE(availability, 'available'), COALESCE(visa_status, 'other'),
	 COALESCE(preferred_locations, '{}'::text[])`

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`,
		id,
	)

	var c Candidate
	if err := scanCandidate(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Candidate{}, ErrCandidateNotFound
		}
		return Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) ListCandidates(ctx context.Context, limit int) ([]Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC, id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candidate, 0)
	for rows.Next() {
		var c Candidate
		if err := scanCandidate(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCandidate(row database.Row, c *Candidate) error {
	return row.Scan(
		&c.ID, &c.FullName, &c.Skills, &c.Location,
		&c.YearsExperience, &c.Availability, &c.VisaStatus,
		&c.PreferredLocations,
	)
}
