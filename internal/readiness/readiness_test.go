package readiness

import (
	"testing"

	"github.com/aanand-mishra/readiness-api/internal/types"
	"github.com/google/go-cmp/cmp"
)

func card(a, c, r, i int) types.ScoreCard {
	return types.ScoreCard{Aptitude: a, Coding: c, Resume: r, Interview: i}
}

func checkScore(t *testing.T, s types.ScoreCard, expected int) {
	t.Helper()
	if got := Score(s); got != expected {
		t.Fatalf("Invalid readiness score for %+v: %d, expected: %d", s, got, expected)
	}
}

func TestScore(t *testing.T) {
	checkScore(t, card(80, 90, 70, 60), 80)
	checkScore(t, card(0, 0, 0, 0), 0)
	checkScore(t, card(100, 100, 100, 100), 100)
	checkScore(t, card(100, 0, 0, 0), 30)
	checkScore(t, card(0, 100, 0, 0), 40)
	checkScore(t, card(0, 0, 100, 0), 20)
	checkScore(t, card(0, 0, 0, 100), 10)
	// 0.4*1 + 0.1*1 = 0.5 rounds up
	checkScore(t, card(0, 1, 0, 1), 1)
	// 0.3 rounds down
	checkScore(t, card(1, 0, 0, 0), 0)
	// 0.7 rounds up
	checkScore(t, card(1, 1, 0, 0), 1)
	// no clamping above 100
	checkScore(t, card(200, 200, 200, 200), 200)
	// -0.5 rounds up towards zero
	checkScore(t, card(0, 0, 0, -5), 0)
	checkScore(t, card(0, 0, 0, -6), -1)
}

func TestImprovementPlanEmptyWhenAllAboveThreshold(t *testing.T) {
	plan := ImprovementPlan(card(80, 80, 80, 80).PlanScores())
	if plan == nil {
		t.Fatalf("plan must be an empty slice, not nil")
	}
	if len(plan) != 0 {
		t.Fatalf("Unexpected plan: %+v", plan)
	}

	if plan := ImprovementPlan(card(Threshold, Threshold, Threshold, Threshold).PlanScores()); len(plan) != 0 {
		t.Fatalf("Scores at the threshold must not produce entries: %+v", plan)
	}
}

func TestImprovementPlanOrder(t *testing.T) {
	plan := ImprovementPlan(card(60, 60, 80, 80).PlanScores())
	expected := []types.Recommendation{
		{Title: "Improve Aptitude", Description: "Practice speed math and logical reasoning.", Priority: types.PriorityHigh},
		{Title: "Enhance Coding Skills", Description: "Solve more coding problems and participate in contests.", Priority: types.PriorityHigh},
	}
	if diff := cmp.Diff(expected, plan); diff != "" {
		t.Fatalf("Unexpected plan (-want +got):\n%s", diff)
	}
}

func TestImprovementPlanAllDimensions(t *testing.T) {
	plan := ImprovementPlan(card(74, 0, -1, 10).PlanScores())

	titles := make([]string, 0, len(plan))
	priorities := make([]types.Priority, 0, len(plan))
	for _, rec := range plan {
		titles = append(titles, rec.Title)
		priorities = append(priorities, rec.Priority)
	}

	wantTitles := []string{"Improve Aptitude", "Enhance Coding Skills", "Strengthen Resume", "Practice Interviewing"}
	if diff := cmp.Diff(wantTitles, titles); diff != "" {
		t.Fatalf("Unexpected titles (-want +got):\n%s", diff)
	}
	wantPriorities := []types.Priority{types.PriorityHigh, types.PriorityHigh, types.PriorityMedium, types.PriorityMedium}
	if diff := cmp.Diff(wantPriorities, priorities); diff != "" {
		t.Fatalf("Unexpected priorities (-want +got):\n%s", diff)
	}
}

func TestImprovementPlanSingleDimension(t *testing.T) {
	plan := ImprovementPlan(card(90, 90, 90, 74).PlanScores())
	if len(plan) != 1 || plan[0].Title != "Practice Interviewing" || plan[0].Priority != types.PriorityMedium {
		t.Fatalf("Unexpected plan: %+v", plan)
	}
}

func TestImprovementPlanFractionalScores(t *testing.T) {
	plan := ImprovementPlan(types.PlanScores{Aptitude: 74.5, Coding: 75, Resume: 75.5, Interview: 74.99})
	titles := make([]string, 0, len(plan))
	for _, rec := range plan {
		titles = append(titles, rec.Title)
	}
	if diff := cmp.Diff([]string{"Improve Aptitude", "Practice Interviewing"}, titles); diff != "" {
		t.Fatalf("Unexpected titles (-want +got):\n%s", diff)
	}
}
