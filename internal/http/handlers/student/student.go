// Package student contains the HTTP handlers for looking up and
// registering students.
//
// Handlers are built by factory functions that receive their
// dependencies once at startup and return the http.HandlerFunc the
// router calls on every request:
//
//	r.Get("/student/{name}", student.Get(store, log))
package student

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aanand-mishra/readiness-api/internal/storage"
	"github.com/aanand-mishra/readiness-api/internal/types"
	"github.com/aanand-mishra/readiness-api/internal/utils/request"
	"github.com/aanand-mishra/readiness-api/internal/utils/response"
)

// RegisterResponse is the body of a successful POST /student.
type RegisterResponse struct {
	Message string        `json:"message"`
	Student types.Student `json:"student"`
}

const (
	MessageExists = "Student exists"
	MessageAdded  = "Student added"
)

// nameParam returns the {name} path segment, unescaped.
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	// chi matches on RawPath when the path holds escapes that differ
	// from the default encoding, e.g. %2F.
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

// Get handles GET /student/{name}.
//
// Success response (200 OK):
//
//	{ "id": 1, "name": "Alice", "aptitude": 80, "coding": 90, "resume": 70, "interview": 60 }
//
// Error responses:
//
//	400 Bad Request - name is not a valid path escape
//	404 Not Found   - no student with that name
//	500 Internal    - database error
func Get(store storage.Storage, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := nameParam(r)
		if err != nil {
			log.Debug("invalid student name", zap.String("path", r.URL.Path), zap.Error(err))
			response.WriteJSON(w, http.StatusBadRequest, response.Error("Invalid student name"))
			return
		}
		log.Debug("getting a student", zap.String("name", name))

		student, err := store.GetStudentByName(r.Context(), name)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.Error("Student not found"))
			return
		}
		if err != nil {
			log.Error("error getting student", zap.String("name", name), zap.Error(err))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Error("Failed to fetch student data"))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// Register handles POST /student.
// Returns the existing student with that name, or creates one with all
// scores set to 0.
//
// Request body (JSON):
//
//	{ "name": "Alice" }
//
// Success response (200 OK):
//
//	{ "message": "Student added", "student": { "id": 1, "name": "Alice", "aptitude": 0, ... } }
//
// Error responses:
//
//	400 Bad Request  - empty body, malformed JSON, or missing name
//	                   (always "Student name is required")
//	500 Internal     - database error
func Register(store storage.Storage, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RegisterRequest

		err := request.DecodeJSON(r, &req)
		if err == nil {
			err = request.Validate(req)
		}
		if err != nil {
			log.Debug("invalid register request", zap.Error(err))
			response.WriteJSON(w, http.StatusBadRequest, response.Error("Student name is required"))
			return
		}

		ctx := r.Context()

		existing, err := store.GetStudentByName(ctx, req.Name)
		switch {
		case err == nil:
			response.WriteJSON(w, http.StatusOK, RegisterResponse{Message: MessageExists, Student: existing})
			return
		case !errors.Is(err, storage.ErrNotFound):
			log.Error("error looking up student", zap.String("name", req.Name), zap.Error(err))
			response.WriteJSON(w, http.StatusInternalServerError, response.Error("Database error"))
			return
		}

		created, err := store.CreateStudent(ctx, req.Name)
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Lost a race with a concurrent registration of the same name.
			existing, err = store.GetStudentByName(ctx, req.Name)
			if err != nil {
				log.Error("error reloading student", zap.String("name", req.Name), zap.Error(err))
				response.WriteJSON(w, http.StatusInternalServerError, response.Error("Database error"))
				return
			}
			response.WriteJSON(w, http.StatusOK, RegisterResponse{Message: MessageExists, Student: existing})
			return
		}
		if err != nil {
			log.Error("error creating student", zap.String("name", req.Name), zap.Error(err))
			response.WriteJSON(w, http.StatusInternalServerError, response.Error("Failed to add student"))
			return
		}

		log.Info("student created", zap.Int64("id", created.ID), zap.String("name", created.Name))
		response.WriteJSON(w, http.StatusOK, RegisterResponse{Message: MessageAdded, Student: created})
	}
}
