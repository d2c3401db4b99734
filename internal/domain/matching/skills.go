package matching

import (
	"math"
	"strings"
)

// SkillsMatch describes how a candidate's skill set satisfies a job's
// required skills. Matched holds the candidate skill (original casing)
// that satisfied each required skill; Missing holds the normalized
// required skills nothing satisfied. Together they cover the deduped
// required-skill set exactly.
type SkillsMatch struct {
	Score    int
	Coverage int
	Matched  []string
	Missing  []string
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (e *Engine) MatchSkills(candidateSkills, jobSkills []string) SkillsMatch {
	required := dedupeNormalized(jobSkills)

	matched := make([]string, 0, len(required))
	missing := make([]string, 0)

	for _, req := range required {
		hit, ok := e.findSkillMatch(candidateSkills, req)
		if !ok {
			missing = append(missing, req)
			continue
		}
		matched = append(matched, hit)
	}

	score := 0
	if len(required) > 0 {
		score = roundPct(len(matched), len(required))
	}

	return SkillsMatch{
		Score:    score,
		Coverage: skillCoverage(candidateSkills, required),
		Matched:  matched,
		Missing:  missing,
	}
}

// findSkillMatch resolves one required skill against the candidate's
// skills in three tiers, stopping at the first hit: exact equality,
// substring containment in either direction, then thesaurus relation.
func (e *Engine) findSkillMatch(candidateSkills []string, required string) (string, bool) {
	for _, raw := range candidateSkills {
		if normalizeTerm(raw) == required {
			return strings.TrimSpace(raw), true
		}
	}

	for _, raw := range candidateSkills {
		cand := normalizeTerm(raw)
		if cand == "" {
			continue
		}
		if strings.Contains(cand, required) || strings.Contains(required, cand) {
			return strings.TrimSpace(raw), true
		}
	}

	for _, raw := range candidateSkills {
		cand := normalizeTerm(raw)
		if cand == "" {
			continue
		}
		if e.thesaurus.AreRelated(required, cand) {
			return strings.TrimSpace(raw), true
		}
	}

	return "", false
}

// skillCoverage measures what fraction of the candidate's own skills is
// relevant to the job at all, independent of the required-skill score.
func skillCoverage(candidateSkills, required []string) int {
	total := 0
	relevant := 0
	for _, raw := range candidateSkills {
		cand := normalizeTerm(raw)
		if cand == "" {
			continue
		}
		total++
		for _, req := range required {
			if strings.Contains(cand, req) || strings.Contains(req, cand) {
				relevant++
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return roundPct(relevant, total)
}

func dedupeNormalized(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		n := normalizeTerm(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func roundPct(part, total int) int {
	if total <= 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(part) / float64(total) * 100)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
