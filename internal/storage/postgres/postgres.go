// Package postgres implements storage.Storage on top of a pgx connection pool.
package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/readiness-api/internal/storage"
	"github.com/aanand-mishra/readiness-api/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS students (
  id        BIGSERIAL PRIMARY KEY,
  name      TEXT    NOT NULL,
  aptitude  INTEGER NOT NULL DEFAULT 0,
  coding    INTEGER NOT NULL DEFAULT 0,
  resume    INTEGER NOT NULL DEFAULT 0,
  interview INTEGER NOT NULL DEFAULT 0,
  CONSTRAINT students_name_key UNIQUE (name)
)`

const uniqueViolation = "23505"

var studentColumns = []string{"id", "name", "aptitude", "coding", "resume", "interview"}

// Postgres stores students in a PostgreSQL database.
type Postgres struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

var _ storage.Storage = (*Postgres)(nil)

// New connects to dsn, verifies the connection and ensures the schema.
func New(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres.New: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres.New: ping")
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres.New: create table")
	}

	return &Postgres{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "students_name_key"
}

func (p *Postgres) GetStudentByName(ctx context.Context, name string) (types.Student, error) {
	query, args, err := p.sb.Select(studentColumns...).
		From("students").
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return types.Student{}, errors.Wrap(err, "GetStudentByName: build query")
	}

	var student types.Student
	err = p.pool.QueryRow(ctx, query, args...).Scan(
		&student.ID, &student.Name, &student.Aptitude, &student.Coding, &student.Resume, &student.Interview)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Student{}, storage.ErrNotFound
		}
		return types.Student{}, errors.Wrap(err, "GetStudentByName: scan")
	}

	return student, nil
}

func (p *Postgres) CreateStudent(ctx context.Context, name string) (types.Student, error) {
	query, args, err := p.sb.Insert("students").
		Columns("name", "aptitude", "coding", "resume", "interview").
		Values(name, 0, 0, 0, 0).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return types.Student{}, errors.Wrap(err, "CreateStudent: build query")
	}

	student := types.Student{Name: name}
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&student.ID); err != nil {
		if isUniqueViolation(err) {
			return types.Student{}, storage.ErrAlreadyExists
		}
		return types.Student{}, errors.Wrap(err, "CreateStudent: exec")
	}

	return student, nil
}

func (p *Postgres) UpdateScores(ctx context.Context, name string, scores types.ScoreCard) error {
	query, args, err := p.sb.Update("students").
		Set("aptitude", scores.Aptitude).
		Set("coding", scores.Coding).
		Set("resume", scores.Resume).
		Set("interview", scores.Interview).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "UpdateScores: build query")
	}

	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "UpdateScores: exec")
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (p *Postgres) CountStudents(ctx context.Context) (int64, error) {
	query, args, err := p.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "CountStudents: build query")
	}

	var count int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "CountStudents: scan")
	}
	return count, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
