package seeder

import (
	"context"

	"talent-match/internal/database"
)

// JobsSeeder inserts a small demo job pool, keyed by title+company.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Title           string
		Company         string
		Location        string
		RequiredSkills  []string
		PreferredSkills []string
		ExperienceLevel string
	}{
		{"Backend Engineer", "Nusantara Tech", "Jakarta", []string{"Go", "PostgreSQL"}, []string{"Docker", "Redis"}, "mid level"},
		{"Frontend Developer", "Nordlys AB", "Remote (Europe)", []string{"React", "TypeScript"}, []string{"Next.js"}, "junior"},
		{"Platform Engineer", "Fjord Systems", "Oslo", []string{"Kubernetes", "Terraform", "AWS"}, []string{}, "senior level"},
		{"Data Engineer", "Skyward Analytics", "Stockholm", []string{"Python", "SQL", "Airflow"}, []string{"Spark"}, "mid level"},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO jobs (title, company, location, required_skills, preferred_skills, experience_level)
			 SELECT $1, $2, $3, $4, $5, $6
			 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company = $2)`,
			it.Title, it.Company, it.Location,
			it.RequiredSkills, it.PreferredSkills, it.ExperienceLevel,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
