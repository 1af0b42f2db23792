package responder

import (
	"fmt"
	"math"
	"testing"

	"reliefreach/domain/response"
)

func profileWithSkills(n int) response.CandidateProfile {
	skills := make([]string, n)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill-%d", i)
	}
	return response.CandidateProfile{
		ID:     "p-1",
		Name:   "Jordan Reyes",
		Skills: skills,
	}
}

func TestScoreProfile_SkillSaturation(t *testing.T) {
	cases := []struct {
		skills int
		want   float64
	}{
		{0, 0},
		{1, 0.2},
		{4, 0.8},
		{5, 1.0},
		{50, 1.0},
	}
	for _, tc := range cases {
		got := ScoreProfile(profileWithSkills(tc.skills)).Skill
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%d skills: expected skill score %v, got %v", tc.skills, tc.want, got)
		}
	}
}

func TestScoreProfile_AvailabilityAndLocation(t *testing.T) {
	p := profileWithSkills(3)

	scores := ScoreProfile(p)
	if scores.Availability != 0.7 {
		t.Errorf("expected 0.7 for deferred availability, got %v", scores.Availability)
	}
	if scores.Location != 0.5 {
		t.Errorf("expected 0.5 without location, got %v", scores.Location)
	}

	p.Availability.Immediate = true
	p.Location = "Houston"
	scores = ScoreProfile(p)
	if scores.Availability != 1 {
		t.Errorf("expected 1 for immediate availability, got %v", scores.Availability)
	}
	if scores.Location != 0.8 {
		t.Errorf("expected 0.8 with location, got %v", scores.Location)
	}
}

func TestScoreProfile_MiamiScenario(t *testing.T) {
	p := profileWithSkills(6)
	p.Location = "Miami"
	p.Availability.Immediate = true
	p.Verified = true

	scores := ScoreProfile(p)
	if scores.Skill != 1 || scores.Availability != 1 || scores.Location != 0.8 {
		t.Fatalf("unexpected component scores: %+v", scores)
	}
	// (1 + 1 + 0.8)/3 + 0.2 = 1.133..., capped at 1.
	if scores.Overall != 1 {
		t.Errorf("expected overall score capped at 1, got %v", scores.Overall)
	}
}

func TestScoreProfile_VerificationBonus(t *testing.T) {
	p := profileWithSkills(2)
	base := ScoreProfile(p).Overall

	p.Verified = true
	boosted := ScoreProfile(p).Overall
	if math.Abs(boosted-(base+0.2)) > 1e-9 {
		t.Errorf("expected +0.2 verification bonus, got %v -> %v", base, boosted)
	}
}

func TestScoreProfile_Pure(t *testing.T) {
	p := profileWithSkills(3)
	p.Location = "Tampa"
	p.Verified = true

	first := ScoreProfile(p)
	for i := 0; i < 10; i++ {
		if got := ScoreProfile(p); got != first {
			t.Fatalf("scores changed across calls: %+v vs %+v", first, got)
		}
	}
}
