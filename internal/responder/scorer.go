package responder

import (
	"reliefreach/domain/response"
)

const (
	// skillSaturation is the skill count at which the skill score caps at 1.
	skillSaturation = 5

	// verificationBonus is added to the overall score of verified profiles.
	verificationBonus = 0.2
)

// ScoreProfile computes the heuristic scores for a candidate profile. The
// function is pure and deterministic: identical profiles always score
// identically. Every score lands in [0,1].
func ScoreProfile(profile response.CandidateProfile) response.Scores {
	skill := float64(len(profile.Skills)) / skillSaturation
	if skill > 1 {
		skill = 1
	}

	availability := 0.7
	if profile.Availability.Immediate {
		availability = 1
	}

	location := 0.5
	if profile.Location != "" {
		location = 0.8
	}

	overall := (skill + availability + location) / 3
	if profile.Verified {
		overall += verificationBonus
	}
	if overall > 1 {
		overall = 1
	}

	return response.Scores{
		Skill:        skill,
		Availability: availability,
		Location:     location,
		Overall:      overall,
	}
}
