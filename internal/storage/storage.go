// Package storage defines the Storage interface, the contract any
// database backend must satisfy to hold the students table.
//
// Handlers depend only on this interface, so the SQLite and PostgreSQL
// backends are interchangeable and tests can pass an in-memory fake.
package storage

import (
	"context"

	"github.com/aanand-mishra/readiness-api/internal/types"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when no student has the requested name.
	ErrNotFound = errors.New("student not found")

	// ErrAlreadyExists is returned when a student with the same name
	// was inserted first.
	ErrAlreadyExists = errors.New("student already exists")
)

// Storage is the database contract.
type Storage interface {
	// GetStudentByName fetches a student by exact, case-sensitive name.
	// Returns ErrNotFound if there is none.
	GetStudentByName(ctx context.Context, name string) (types.Student, error)

	// CreateStudent inserts a student with all scores set to 0 and returns
	// the stored row including its generated ID.
	// Returns ErrAlreadyExists if the name is taken.
	CreateStudent(ctx context.Context, name string) (types.Student, error)

	// UpdateScores overwrites all four scores of the named student.
	// Returns ErrNotFound if there is none.
	UpdateScores(ctx context.Context, name string, scores types.ScoreCard) error

	// CountStudents returns the number of stored students.
	CountStudents(ctx context.Context) (int64, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}
