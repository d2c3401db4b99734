package matching

import "testing"

func TestMatchExperience_BandBoundariesArePerfect(t *testing.T) {
	e := NewEngine()

	// senior level: min=5, max=12, ideal=8.
	res := e.MatchExperience(5, "senior level")
	if !res.IsPerfectMatch {
		t.Fatalf("expected perfect match at band min")
	}
	if res.Score != 85 {
		t.Fatalf("expected score=85 at min, got %d", res.Score)
	}

	res = e.MatchExperience(12, "senior level")
	if !res.IsPerfectMatch {
		t.Fatalf("expected perfect match at band max")
	}
	if res.Score != 80 {
		t.Fatalf("expected floor score=80 at max, got %d", res.Score)
	}

	res = e.MatchExperience(8, "senior level")
	if res.Score != 100 {
		t.Fatalf("expected score=100 at ideal, got %d", res.Score)
	}
}

func TestMatchExperience_Underqualified(t *testing.T) {
	e := NewEngine()

	res := e.MatchExperience(4, "senior level")
	if !res.IsUnderqualified {
		t.Fatalf("expected is_underqualified=true")
	}
	if res.Score != 45 {
		t.Fatalf("expected score=45 one year below min, got %d", res.Score)
	}

	res = e.MatchExperience(1, "senior level")
	if res.Score != 20 {
		t.Fatalf("expected floored score=20, got %d", res.Score)
	}
}

func TestMatchExperience_Overqualified(t *testing.T) {
	e := NewEngine()

	// Inside the 3-year grace window: over branch scores, flag stays off.
	res := e.MatchExperience(13, "senior level")
	if res.IsOverqualified {
		t.Fatalf("expected no overqualified flag within grace window")
	}
	if res.Score != 65 {
		t.Fatalf("expected score=65, got %d", res.Score)
	}

	res = e.MatchExperience(16, "senior level")
	if !res.IsOverqualified {
		t.Fatalf("expected is_overqualified=true past grace window")
	}
	if res.Score != 50 {
		t.Fatalf("expected score=50, got %d", res.Score)
	}

	res = e.MatchExperience(1000000, "senior level")
	if res.Score != 30 {
		t.Fatalf("expected floor score=30 at extreme years, got %d", res.Score)
	}
}

func TestMatchExperience_UnrecognizedBand(t *testing.T) {
	e := NewEngine()

	for _, level := range []string{"", "rockstar", "10x engineer"} {
		res := e.MatchExperience(7, level)
		if !res.IsPerfectMatch {
			t.Fatalf("level %q: expected perfect match for unscoped posting", level)
		}
		if res.Score != 100 {
			t.Fatalf("level %q: expected score=100, got %d", level, res.Score)
		}
	}
}

func TestMatchExperience_LabelNormalization(t *testing.T) {
	e := NewEngine()

	res := e.MatchExperience(4, "Mid-Level")
	if !res.IsPerfectMatch {
		t.Fatalf("expected hyphenated label to resolve to the mid level band")
	}
	if res.Score != 100 {
		t.Fatalf("expected score=100 at mid level ideal, got %d", res.Score)
	}
}

func TestMatchExperience_IdealDistance(t *testing.T) {
	e := NewEngine()

	// mid level: min=3, max=6, ideal=4.
	res := e.MatchExperience(6, "mid level")
	if res.Score != 90 {
		t.Fatalf("expected score=90 two years from ideal, got %d", res.Score)
	}
}
