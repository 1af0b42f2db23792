package abtest

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"reliefreach/domain/experiment"
)

// generateInsights produces the textual summary attached to a results
// snapshot: relative improvement of best over worst, the leader's engagement
// and click-through rates, an informational conversion z-test, and elapsed
// duration. Callers must hold e.mu.
func (e *Evaluator) generateInsights(exec *experiment.Execution) []string {
	insights := []string{}

	ranked := make([]*experiment.Performance, 0, len(exec.Variants))
	for _, v := range exec.Variants {
		ranked = append(ranked, exec.Results[v.ID])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score(exec.Config.Criterion) > ranked[j].Score(exec.Config.Criterion)
	})

	if len(ranked) >= 2 {
		best := ranked[0]
		worst := ranked[len(ranked)-1]

		bestScore := best.Score(exec.Config.Criterion)
		worstScore := worst.Score(exec.Config.Criterion)
		if worstScore > 0 {
			improvement := float64(bestScore-worstScore) / float64(worstScore) * 100
			insights = append(insights, fmt.Sprintf("Best variation performed %.1f%% better than the worst", improvement))
		}

		if best.Impressions > 0 {
			engagementRate := float64(best.Engagement) / float64(best.Impressions) * 100
			insights = append(insights, fmt.Sprintf("Winner achieved %.1f%% engagement rate", engagementRate))

			ctr := float64(best.Clicks) / float64(best.Impressions) * 100
			insights = append(insights, fmt.Sprintf("Winner achieved %.2f%% click-through rate", ctr))
		}

		// Advisory only: winner determination stays on the ratio heuristic.
		if p, ok := conversionZTest(ranked[0], ranked[1]); ok {
			insights = append(insights, fmt.Sprintf("Conversion rate difference between top variants: p=%.3f (two-proportion z-test)", p))
		}
	}

	durationHours := exec.EndTime.Sub(exec.StartTime).Hours()
	insights = append(insights, fmt.Sprintf("Test completed in %.1f hours", durationHours))

	return insights
}

// conversionZTest runs a two-proportion z-test on the conversion rates of two
// variants and returns the two-sided p-value. Reports ok=false when either
// variant has no impressions or the pooled proportion is degenerate.
func conversionZTest(a, b *experiment.Performance) (float64, bool) {
	n1 := float64(a.Impressions)
	n2 := float64(b.Impressions)
	if n1 == 0 || n2 == 0 {
		return 0, false
	}

	p1 := float64(a.Clicks) / n1
	p2 := float64(b.Clicks) / n2
	pooled := (float64(a.Clicks) + float64(b.Clicks)) / (n1 + n2)

	se := math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))
	if se == 0 {
		return 0, false
	}

	z := (p1 - p2) / se
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * (1 - norm.CDF(math.Abs(z)))
	return p, true
}
