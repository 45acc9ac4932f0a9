// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, storage, and the scoring logic can all import types without
// depending on each other.
package types

// Student is one row of the students table.
//
// Name is the lookup key for every route, ID is assigned by the store.
type Student struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Aptitude  int    `json:"aptitude"`
	Coding    int    `json:"coding"`
	Resume    int    `json:"resume"`
	Interview int    `json:"interview"`
}

// ScoreCard holds the four assessment scores of a student.
type ScoreCard struct {
	Aptitude  int `json:"aptitude"`
	Coding    int `json:"coding"`
	Resume    int `json:"resume"`
	Interview int `json:"interview"`
}

// Scores returns the student's current score card.
func (s Student) Scores() ScoreCard {
	return ScoreCard{
		Aptitude:  s.Aptitude,
		Coding:    s.Coding,
		Resume:    s.Resume,
		Interview: s.Interview,
	}
}

// PlanScores holds the four scores an improvement plan is computed from.
// Unlike ScoreCard they may be fractional, as nothing is stored.
type PlanScores struct {
	Aptitude  float64 `json:"aptitude"`
	Coding    float64 `json:"coding"`
	Resume    float64 `json:"resume"`
	Interview float64 `json:"interview"`
}

// PlanScores widens the score card for plan computation.
func (s ScoreCard) PlanScores() PlanScores {
	return PlanScores{
		Aptitude:  float64(s.Aptitude),
		Coding:    float64(s.Coding),
		Resume:    float64(s.Resume),
		Interview: float64(s.Interview),
	}
}

// Priority tags an improvement recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Recommendation is one entry of an improvement plan.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// ScoresRequest carries the four integer scores of POST /readiness.
//
// The scores are pointers so that a missing or null field fails the
// "required" rule while an explicit 0 passes it.
type ScoresRequest struct {
	Aptitude  *int `json:"aptitude"  validate:"required"`
	Coding    *int `json:"coding"    validate:"required"`
	Resume    *int `json:"resume"    validate:"required"`
	Interview *int `json:"interview" validate:"required"`
}

// ScoreCard converts a validated request into a ScoreCard.
// It must only be called after validation succeeded.
func (r ScoresRequest) ScoreCard() ScoreCard {
	return ScoreCard{
		Aptitude:  *r.Aptitude,
		Coding:    *r.Coding,
		Resume:    *r.Resume,
		Interview: *r.Interview,
	}
}

// PlanRequest is the request body of POST /improvement-plan.
type PlanRequest struct {
	Aptitude  *float64 `json:"aptitude"  validate:"required"`
	Coding    *float64 `json:"coding"    validate:"required"`
	Resume    *float64 `json:"resume"    validate:"required"`
	Interview *float64 `json:"interview" validate:"required"`
}

// PlanScores converts a validated request into PlanScores.
func (r PlanRequest) PlanScores() PlanScores {
	return PlanScores{
		Aptitude:  *r.Aptitude,
		Coding:    *r.Coding,
		Resume:    *r.Resume,
		Interview: *r.Interview,
	}
}

// ReadinessRequest is the request body of POST /readiness.
type ReadinessRequest struct {
	Name string `json:"name" validate:"required"`
	ScoresRequest
}

// RegisterRequest is the request body of POST /student.
type RegisterRequest struct {
	Name string `json:"name" validate:"required"`
}
