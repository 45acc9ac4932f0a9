package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/readiness-api/internal/storage"
	"github.com/aanand-mishra/readiness-api/internal/storage/sqlite"
	"github.com/aanand-mishra/readiness-api/internal/types"
)

func openStore(t *testing.T) *sqlite.SQLite {
	t.Helper()

	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "students.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	created, err := store.CreateStudent(ctx, "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a generated id, got %+v", created)
	}

	got, err := store.GetStudentByName(ctx, "Alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := types.Student{ID: created.ID, Name: "Alice"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Unexpected student (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Fatalf("Created and stored rows differ (-created +stored):\n%s", diff)
	}

	second, err := store.CreateStudent(ctx, "Bob")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID == created.ID {
		t.Fatalf("ids must be unique, both are %d", second.ID)
	}
}

func TestGetIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	if _, err := store.CreateStudent(ctx, "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.GetStudentByName(ctx, "alice"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUnknown(t *testing.T) {
	store := openStore(t)

	_, err := store.GetStudentByName(context.Background(), "nobody")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	if _, err := store.CreateStudent(ctx, "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreateStudent(ctx, "Alice"); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	count, err := store.CountStudents(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 student, got %d", count)
	}
}

func TestUpdateScores(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	created, err := store.CreateStudent(ctx, "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	scores := types.ScoreCard{Aptitude: 80, Coding: 90, Resume: 70, Interview: 0}
	if err := store.UpdateScores(ctx, "Alice", scores); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.GetStudentByName(ctx, "Alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := types.Student{ID: created.ID, Name: "Alice", Aptitude: 80, Coding: 90, Resume: 70, Interview: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Unexpected student (-want +got):\n%s", diff)
	}
}

func TestUpdateUnknownDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	err := store.UpdateScores(ctx, "ghost", types.ScoreCard{Aptitude: 1})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	count, err := store.CountStudents(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "students.db")

	store, err := sqlite.New(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	created, err := store.CreateStudent(ctx, "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.Close()

	reopened, err := sqlite.New(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetStudentByName(ctx, "Alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}
}
