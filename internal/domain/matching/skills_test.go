package matching

import "testing"

func TestMatchSkills_ExactAndMissing(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"React", "TypeScript"}, []string{"react", "redux"})

	if res.Score != 50 {
		t.Fatalf("expected score=50, got %d", res.Score)
	}
	if len(res.Matched) != 1 || res.Matched[0] != "React" {
		t.Fatalf("expected matched=[React], got %v", res.Matched)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "redux" {
		t.Fatalf("expected missing=[redux], got %v", res.Missing)
	}
}

func TestMatchSkills_SubstringTier(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"React Hooks"}, []string{"react"})
	if res.Score != 100 {
		t.Fatalf("expected score=100, got %d", res.Score)
	}
	if len(res.Matched) != 1 || res.Matched[0] != "React Hooks" {
		t.Fatalf("expected matched=[React Hooks], got %v", res.Matched)
	}
	if len(res.Missing) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.Missing)
	}
}

func TestMatchSkills_ThesaurusTier(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"Django"}, []string{"python"})
	if res.Score != 100 {
		t.Fatalf("expected thesaurus match, score=100, got %d", res.Score)
	}
	if len(res.Matched) != 1 || res.Matched[0] != "Django" {
		t.Fatalf("expected matched=[Django], got %v", res.Matched)
	}
}

func TestMatchSkills_EmptyCandidateSkills(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills(nil, []string{"go", "postgresql", "docker"})
	if res.Score != 0 {
		t.Fatalf("expected score=0, got %d", res.Score)
	}
	if res.Coverage != 0 {
		t.Fatalf("expected coverage=0, got %d", res.Coverage)
	}
	if len(res.Missing) != 3 {
		t.Fatalf("expected 3 missing skills, got %d", len(res.Missing))
	}
	if len(res.Matched) != 0 {
		t.Fatalf("expected no matched skills, got %v", res.Matched)
	}
}

func TestMatchSkills_EmptyJobSkills(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"go"}, nil)
	if res.Score != 0 {
		t.Fatalf("expected score=0, got %d", res.Score)
	}
	if len(res.Missing) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.Missing)
	}
}

func TestMatchSkills_DedupesRequiredCaseInsensitively(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"Go"}, []string{"Go", "go", " GO "})
	if got := len(res.Matched) + len(res.Missing); got != 1 {
		t.Fatalf("expected 1 required-skill slot after dedup, got %d", got)
	}
	if res.Score != 100 {
		t.Fatalf("expected score=100, got %d", res.Score)
	}
}

func TestMatchSkills_PartitionInvariant(t *testing.T) {
	e := NewEngine()

	cases := []struct {
		name      string
		candidate []string
		job       []string
	}{
		{"all match", []string{"go", "docker"}, []string{"go", "docker"}},
		{"partial", []string{"go"}, []string{"go", "docker", "kafka"}},
		{"none", []string{"cooking"}, []string{"go", "docker"}},
		{"dirty input", []string{" Go ", ""}, []string{"GO", "go", " docker", ""}},
	}

	for _, tc := range cases {
		res := e.MatchSkills(tc.candidate, tc.job)
		required := dedupeNormalized(tc.job)
		if got := len(res.Matched) + len(res.Missing); got != len(required) {
			t.Fatalf("%s: matched+missing=%d, want %d", tc.name, got, len(required))
		}
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("%s: score out of range: %d", tc.name, res.Score)
		}
		if res.Coverage < 0 || res.Coverage > 100 {
			t.Fatalf("%s: coverage out of range: %d", tc.name, res.Coverage)
		}
	}
}

func TestMatchSkills_Coverage(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"react", "typescript", "cooking"}, []string{"react"})
	if res.Score != 100 {
		t.Fatalf("expected score=100, got %d", res.Score)
	}
	if res.Coverage != 33 {
		t.Fatalf("expected coverage=33, got %d", res.Coverage)
	}
}

func TestMatchSkills_UnknownThesaurusKey(t *testing.T) {
	e := NewEngine()

	res := e.MatchSkills([]string{"underwater basket weaving"}, []string{"quantum knitting"})
	if res.Score != 0 {
		t.Fatalf("expected score=0, got %d", res.Score)
	}
	if len(res.Missing) != 1 {
		t.Fatalf("expected 1 missing skill, got %v", res.Missing)
	}
}
