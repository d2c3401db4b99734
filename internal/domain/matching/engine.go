package matching

import "sort"

// Engine evaluates candidate/job pairs. It holds only the static
// lookup tables, so a single Engine is safe for concurrent use and a
// given input always produces the same output.
type Engine struct {
	thesaurus *Thesaurus
	regions   *Regions
}

// NewEngine builds an engine on the embedded default tables.
func NewEngine() *Engine {
	return NewEngineWithTables(DefaultThesaurus(), DefaultRegions())
}

// NewEngineWithTables builds an engine on externally loaded tables.
// Nil tables fall back to empty lookups, not the defaults.
func NewEngineWithTables(thesaurus *Thesaurus, regions *Regions) *Engine {
	return &Engine{thesaurus: thesaurus, regions: regions}
}

// Match runs the four matchers and the aggregator for one pair.
func (e *Engine) Match(c Candidate, j Job, w Weights) MatchResult {
	skills := e.MatchSkills(c.Skills, j.RequiredSkills)
	location := e.MatchLocation(c.Location, j.Location, c.PreferredLocations)
	experience := e.MatchExperience(c.YearsExperience, j.ExperienceLevel)
	availability := e.MatchAvailability(c)

	agg := AggregateScores(skills.Score, location.Score, experience.Score, availability.Score, w)

	return MatchResult{
		CandidateID:   c.ID,
		JobID:         j.ID,
		OverallScore:  agg.OverallScore,
		Skills:        skills,
		Location:      location,
		Experience:    experience,
		Availability:  availability,
		Compatibility: agg.Compatibility,
		Strength:      agg.Strength,
	}
}

// RecommendOptions controls ranking. A negative MinScore disables the
// cutoff; a non-positive Limit falls back to the direction default.
type RecommendOptions struct {
	Weights  Weights
	Limit    int
	MinScore int
}

const (
	DefaultCandidateLimit    = 15
	DefaultJobLimit          = 20
	DefaultCandidateMinScore = 60
)

// CandidateSearchOptions are the defaults for ranking candidates
// against one job.
func CandidateSearchOptions() RecommendOptions {
	return RecommendOptions{Weights: CandidateSearchWeights, Limit: DefaultCandidateLimit, MinScore: DefaultCandidateMinScore}
}

// JobSearchOptions are the defaults for ranking jobs for one
// candidate. No cutoff: low-fit jobs stay visible, ranked last.
func JobSearchOptions() RecommendOptions {
	return RecommendOptions{Weights: JobSearchWeights, Limit: DefaultJobLimit, MinScore: -1}
}

func (e *Engine) RecommendCandidates(job Job, pool []Candidate, opts RecommendOptions) []MatchResult {
	if opts.Limit <= 0 {
		opts.Limit = DefaultCandidateLimit
	}
	results := make([]MatchResult, 0, len(pool))
	for _, c := range pool {
		results = append(results, e.Match(c, job, opts.Weights))
	}
	return rank(results, opts.Limit, opts.MinScore)
}

func (e *Engine) RecommendJobs(candidate Candidate, pool []Job, opts RecommendOptions) []MatchResult {
	if opts.Limit <= 0 {
		opts.Limit = DefaultJobLimit
	}
	results := make([]MatchResult, 0, len(pool))
	for _, j := range pool {
		results = append(results, e.Match(candidate, j, opts.Weights))
	}
	return rank(results, opts.Limit, opts.MinScore)
}

// rank filters by the cutoff, sorts descending by overall score with
// ties kept in input order, and truncates to limit.
func rank(results []MatchResult, limit, minScore int) []MatchResult {
	kept := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if minScore >= 0 && r.OverallScore <= minScore {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].OverallScore > kept[j].OverallScore
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
