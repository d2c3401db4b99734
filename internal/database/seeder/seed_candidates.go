package seeder

import (
	"context"

	"talent-match/internal/database"
)

// CandidatesSeeder inserts a small demo candidate pool for local
// development. Rows are keyed by full_name and never overwritten.
type CandidatesSeeder struct{}

func (CandidatesSeeder) Name() string { return "candidates" }

func (CandidatesSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		FullName           string
		Skills             []string
		Location           string
		YearsExperience    int
		Availability       string
		VisaStatus         string
		PreferredLocations []string
	}{
		{"Ayu Lestari", []string{"Go", "PostgreSQL", "Docker"}, "Jakarta", 5, "available", "citizen", []string{}},
		{"Borislav Petrov", []string{"React", "TypeScript", "Next.js"}, "Berlin", 3, "available", "work_permit", []string{"Amsterdam", "Remote"}},
		{"Clara Nilsson", []string{"Python", "Django", "AWS"}, "Stockholm", 8, "conditionally_available", "citizen", []string{"Uppsala"}},
		{"Dimas Prasetyo", []string{"Java", "Spring Boot", "Kafka"}, "Bandung", 2, "available", "citizen", []string{"Jakarta"}},
		{"Elin Haugen", []string{"Kubernetes", "Terraform", "CI/CD"}, "Oslo", 11, "unavailable", "permanent_resident", []string{}},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO candidates (full_name, skills, location, years_experience, availability, visa_status, preferred_locations)
			 SELECT $1, $2, $3, $4, $5, $6, $7
			 WHERE NOT EXISTS (SELECT 1 FROM candidates WHERE full_name = $1)`,
			it.FullName, it.Skills, it.Location, it.YearsExperience,
			it.Availability, it.VisaStatus, it.PreferredLocations,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
