// Package assessment contains the HTTP handlers that score students and
// build their improvement plans.
package assessment

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aanand-mishra/readiness-api/internal/readiness"
	"github.com/aanand-mishra/readiness-api/internal/storage"
	"github.com/aanand-mishra/readiness-api/internal/types"
	"github.com/aanand-mishra/readiness-api/internal/utils/request"
	"github.com/aanand-mishra/readiness-api/internal/utils/response"
)

// ScoreResponse is the body of a successful POST /readiness.
type ScoreResponse struct {
	Message        string `json:"message"`
	ReadinessScore int    `json:"readinessScore"`
}

// PlanResponse is the body of a successful POST /improvement-plan.
type PlanResponse struct {
	ImprovementPlan []types.Recommendation `json:"improvementPlan"`
}

const (
	errMissingNameOrScores = "Missing name or scores in request body"
	errMissingScores       = "Missing scores in request body"
)

// decode reads and validates the body into v. On failure it writes a 400
// with msg and reports false. Decoder and validator details only go to
// the log.
func decode(w http.ResponseWriter, r *http.Request, log *zap.Logger, v any, msg string) bool {
	err := request.DecodeJSON(r, v)
	if err == nil {
		err = request.Validate(v)
	}
	if err != nil {
		log.Debug("invalid request", zap.String("path", r.URL.Path), zap.Error(err))
		response.WriteJSON(w, http.StatusBadRequest, response.Error(msg))
		return false
	}
	return true
}

// Score handles POST /readiness.
// Stores the four scores on an existing student and returns the
// readiness score computed from them.
//
// Request body (JSON), a score of 0 is valid but null is not:
//
//	{ "name": "Alice", "aptitude": 80, "coding": 90, "resume": 70, "interview": 60 }
//
// Success response (200 OK):
//
//	{ "message": "Scores updated", "readinessScore": 80 }
//
// Error responses:
//
//	400 Bad Request  - missing name or any score
//	404 Not Found    - no student with that name; nothing is inserted
//	500 Internal     - database error
func Score(store storage.Storage, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ReadinessRequest
		if !decode(w, r, log, &req, errMissingNameOrScores) {
			return
		}

		scores := req.ScoreCard()

		err := store.UpdateScores(r.Context(), req.Name, scores)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.Error("Student not found"))
			return
		}
		if err != nil {
			log.Error("error updating scores", zap.String("name", req.Name), zap.Error(err))
			response.WriteJSON(w, http.StatusInternalServerError, response.Error("Failed to update scores"))
			return
		}

		score := readiness.Score(scores)
		log.Info("scores updated", zap.String("name", req.Name), zap.Int("readiness", score))

		response.WriteJSON(w, http.StatusOK, ScoreResponse{
			Message:        "Scores updated",
			ReadinessScore: score,
		})
	}
}

// Plan handles POST /improvement-plan.
// Pure computation: nothing is read from or written to the store.
//
// Request body (JSON):
//
//	{ "aptitude": 60, "coding": 72.5, "resume": 80, "interview": 80 }
//
// Scores may be fractional since nothing is stored.
//
// Success response (200 OK):
//
//	{ "improvementPlan": [ { "title": "Improve Aptitude", "description": "...", "priority": "high" }, ... ] }
//
// Error responses:
//
//	400 Bad Request  - missing any score
func Plan(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PlanRequest
		if !decode(w, r, log, &req, errMissingScores) {
			return
		}

		response.WriteJSON(w, http.StatusOK, PlanResponse{
			ImprovementPlan: readiness.ImprovementPlan(req.PlanScores()),
		})
	}
}
