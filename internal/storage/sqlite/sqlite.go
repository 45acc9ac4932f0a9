// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using database/sql and the mattn/go-sqlite3
// driver. Queries are built with squirrel.
package sqlite

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/readiness-api/internal/storage"
	"github.com/aanand-mishra/readiness-api/internal/types"
)

const schema = `
	CREATE TABLE IF NOT EXISTS students (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		name      TEXT    NOT NULL UNIQUE,
		aptitude  INTEGER NOT NULL DEFAULT 0,
		coding    INTEGER NOT NULL DEFAULT 0,
		resume    INTEGER NOT NULL DEFAULT 0,
		interview INTEGER NOT NULL DEFAULT 0
	)
`

var studentColumns = []string{"id", "name", "aptitude", "coding", "resume", "interview"}

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database file at path, creates the students
// table if it does not already exist, and returns a ready-to-use *SQLite.
func New(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite.New: open db")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "sqlite.New: create table")
	}

	return &SQLite{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

func (s *SQLite) GetStudentByName(ctx context.Context, name string) (types.Student, error) {
	query, args, err := s.sb.Select(studentColumns...).
		From("students").
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return types.Student{}, errors.Wrap(err, "GetStudentByName: build query")
	}

	var student types.Student
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&student.ID,
		&student.Name,
		&student.Aptitude,
		&student.Coding,
		&student.Resume,
		&student.Interview,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, storage.ErrNotFound
		}
		return types.Student{}, errors.Wrap(err, "GetStudentByName: scan")
	}

	return student, nil
}

func (s *SQLite) CreateStudent(ctx context.Context, name string) (types.Student, error) {
	query, args, err := s.sb.Insert("students").
		Columns("name", "aptitude", "coding", "resume", "interview").
		Values(name, 0, 0, 0, 0).
		ToSql()
	if err != nil {
		return types.Student{}, errors.Wrap(err, "CreateStudent: build query")
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return types.Student{}, storage.ErrAlreadyExists
		}
		return types.Student{}, errors.Wrap(err, "CreateStudent: exec")
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Student{}, errors.Wrap(err, "CreateStudent: last insert id")
	}

	return types.Student{ID: lastID, Name: name}, nil
}

func (s *SQLite) UpdateScores(ctx context.Context, name string, scores types.ScoreCard) error {
	query, args, err := s.sb.Update("students").
		Set("aptitude", scores.Aptitude).
		Set("coding", scores.Coding).
		Set("resume", scores.Resume).
		Set("interview", scores.Interview).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "UpdateScores: build query")
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "UpdateScores: exec")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "UpdateScores: rows affected")
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *SQLite) CountStudents(ctx context.Context) (int64, error) {
	query, args, err := s.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "CountStudents: build query")
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "CountStudents: scan")
	}
	return count, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
