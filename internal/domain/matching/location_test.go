package matching

import "testing"

func TestMatchLocation_SameLocation(t *testing.T) {
	e := NewEngine()

	res := e.MatchLocation("Stockholm", " stockholm ", nil)
	if !res.IsSameLocation {
		t.Fatalf("expected is_same_location=true")
	}
	if res.Score != 100 {
		t.Fatalf("expected score=100, got %d", res.Score)
	}
}

func TestMatchLocation_RemoteFriendly(t *testing.T) {
	e := NewEngine()

	res := e.MatchLocation("Stockholm", "Remote (Sweden)", nil)
	if !res.IsRemoteFriendly {
		t.Fatalf("expected is_remote_friendly=true")
	}
	if res.Score != 95 {
		t.Fatalf("expected score=95, got %d", res.Score)
	}

	// Preferred locations must not change the remote outcome.
	res = e.MatchLocation("Stockholm", "Remote (Sweden)", []string{"Remote (Sweden)"})
	if res.Score != 95 {
		t.Fatalf("expected score=95 regardless of preferred locations, got %d", res.Score)
	}

	res = e.MatchLocation("Oslo", "Work from Anywhere", nil)
	if !res.IsRemoteFriendly || res.Score != 95 {
		t.Fatalf("expected anywhere to be remote-friendly with score=95, got %+v", res)
	}
}

func TestMatchLocation_NearbyIsSymmetric(t *testing.T) {
	e := NewEngine()

	res := e.MatchLocation("Uppsala", "Stockholm", nil)
	if !res.IsNearby || res.Score != 75 {
		t.Fatalf("expected nearby score=75, got %+v", res)
	}

	res = e.MatchLocation("Stockholm", "Uppsala", nil)
	if !res.IsNearby || res.Score != 75 {
		t.Fatalf("expected reversed lookup to also be nearby, got %+v", res)
	}
}

func TestMatchLocation_FloorNeverZero(t *testing.T) {
	e := NewEngine()

	cases := [][2]string{
		{"Jakarta", "Berlin"},
		{"", ""},
		{"Nowhere", ""},
		{"", "Somewhere"},
	}
	for _, c := range cases {
		res := e.MatchLocation(c[0], c[1], nil)
		if res.Score != 40 {
			t.Fatalf("(%q,%q): expected floor score=40, got %d", c[0], c[1], res.Score)
		}
	}
}

func TestMatchLocation_PreferredBoost(t *testing.T) {
	e := NewEngine()

	res := e.MatchLocation("Jakarta", "Berlin", []string{"Berlin", "Amsterdam"})
	if !res.IsPreferred {
		t.Fatalf("expected is_preferred=true")
	}
	if res.Score != 60 {
		t.Fatalf("expected boosted score=60, got %d", res.Score)
	}

	// Nearby plus preferred boosts from 75 to 95.
	res = e.MatchLocation("Uppsala", "Stockholm", []string{"Stockholm"})
	if res.Score != 95 {
		t.Fatalf("expected boosted nearby score=95, got %d", res.Score)
	}
}
