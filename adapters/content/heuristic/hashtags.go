package heuristic

import (
	"math/rand"
	"strings"
)

var (
	baseHashtags = []string{"#DisasterRelief", "#Jobs", "#Hiring", "#Community"}

	disasterHashtags = map[string][]string{
		"hurricane":  {"#HurricaneRelief", "#StormRecovery"},
		"earthquake": {"#EarthquakeRelief", "#Rebuild"},
		"flood":      {"#FloodRelief", "#WaterDamage"},
		"wildfire":   {"#WildfireRelief", "#FireRecovery"},
		"tornado":    {"#TornadoRelief", "#StormDamage"},
	}

	skillHashtags = []string{
		"#Construction", "#Medical", "#Logistics", "#Volunteers",
		"#CleanupCrew", "#EmergencyResponse", "#FirstAid", "#HeavyEquipment",
	}
)

// generateHashtags assembles base, disaster-specific and two randomly drawn
// skill hashtags, deduplicated and capped at ten.
func generateHashtags(prompt string, stream *rand.Rand) []string {
	tags := make([]string, 0, 10)
	tags = append(tags, baseHashtags...)

	lower := strings.ToLower(prompt)
	for _, keyword := range disasterKeywords {
		if strings.Contains(lower, keyword) {
			tags = append(tags, disasterHashtags[keyword]...)
		}
	}

	for i := 0; i < 2; i++ {
		tags = append(tags, skillHashtags[stream.Intn(len(skillHashtags))])
	}

	seen := make(map[string]bool, len(tags))
	unique := tags[:0]
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}
	if len(unique) > 10 {
		unique = unique[:10]
	}
	return unique
}
