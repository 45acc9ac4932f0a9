// Package readiness derives the placement readiness score and the
// improvement plan from a student's four assessment scores.
// Everything here is pure: no I/O, no state.
package readiness

import (
	"math"

	"github.com/aanand-mishra/readiness-api/internal/types"
)

// Weights of each dimension in the readiness score. They sum to 1.
const (
	AptitudeWeight  = 0.3
	CodingWeight    = 0.4
	ResumeWeight    = 0.2
	InterviewWeight = 0.1
)

// Threshold is the score a dimension must reach to need no recommendation.
const Threshold = 75

// Score returns the weighted readiness score rounded to the nearest
// integer, halves rounded up. Inputs are not clamped.
func Score(s types.ScoreCard) int {
	weighted := float64(s.Aptitude)*AptitudeWeight +
		float64(s.Coding)*CodingWeight +
		float64(s.Resume)*ResumeWeight +
		float64(s.Interview)*InterviewWeight

	return int(math.Floor(weighted + 0.5))
}

type rule struct {
	score func(types.PlanScores) float64
	rec   types.Recommendation
}

// rules are evaluated in order; the plan keeps that order.
var rules = []rule{
	{
		score: func(s types.PlanScores) float64 { return s.Aptitude },
		rec: types.Recommendation{
			Title:       "Improve Aptitude",
			Description: "Practice speed math and logical reasoning.",
			Priority:    types.PriorityHigh,
		},
	},
	{
		score: func(s types.PlanScores) float64 { return s.Coding },
		rec: types.Recommendation{
			Title:       "Enhance Coding Skills",
			Description: "Solve more coding problems and participate in contests.",
			Priority:    types.PriorityHigh,
		},
	},
	{
		score: func(s types.PlanScores) float64 { return s.Resume },
		rec: types.Recommendation{
			Title:       "Strengthen Resume",
			Description: "Add impactful projects and achievements.",
			Priority:    types.PriorityMedium,
		},
	},
	{
		score: func(s types.PlanScores) float64 { return s.Interview },
		rec: types.Recommendation{
			Title:       "Practice Interviewing",
			Description: "Conduct mock interviews and get feedback.",
			Priority:    types.PriorityMedium,
		},
	},
}

// ImprovementPlan returns one recommendation per dimension scoring below
// Threshold, ordered aptitude, coding, resume, interview.
// The result is never nil so it encodes as [] rather than null.
func ImprovementPlan(s types.PlanScores) []types.Recommendation {
	plan := make([]types.Recommendation, 0, len(rules))
	for _, r := range rules {
		if r.score(s) < Threshold {
			plan = append(plan, r.rec)
		}
	}
	return plan
}
