package chat

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	ex := Exchange{
		ID:        "ex-1",
		ResumeID:  "resume-1",
		UserID:    "user-1",
		Question:  "what are her skills?",
		Answer:    "Python, Go, SQL",
		Source:    "sections",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO chat_exchanges").
		WithArgs(
			ex.ID,
			ex.ResumeID,
			ex.UserID,
			ex.Question,
			ex.Answer,
			ex.Source,
			ex.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), ex); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "resume_id", "user_id", "question", "answer", "source", "created_at"}).
		AddRow("ex-2", "resume-1", "user-1", "education?", "BSc", "structured", now).
		AddRow("ex-1", "resume-1", "user-1", "skills?", "Python", "sections", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, resume_id, user_id, question, answer, source, created_at").
		WithArgs("user-1", "resume-1", 50, 0).
		WillReturnRows(rows)

	out, err := repo.ListByResume(context.Background(), "user-1", "resume-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByResume: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != "ex-2" || out[1].ID != "ex-1" {
		t.Fatalf("order = %q, %q", out[0].ID, out[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
