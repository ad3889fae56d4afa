package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-chat-backend/internal/parsing"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	res := Resume{
		ID:         "resume-1",
		UserID:     "user-1",
		FileName:   "jane.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  2048,
		StorageKey: "resumes/user-1/resume-1/jane.pdf",
		Status:     StatusUploaded,
		CreatedAt:  now,
	}

	parsed, err := marshalParsed(res.Parsed)
	if err != nil {
		t.Fatalf("marshalParsed: %v", err)
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			res.ID,
			res.UserID,
			res.FileName,
			res.MimeType,
			res.SizeBytes,
			sqlmock.AnyArg(),
			StatusUploaded,
			parsed,
			sqlmock.AnyArg(),
			res.CreatedAt,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	parsed := []byte(`{"contact":{"name":"Jane Doe"},"skills":["Go","SQL"]}`)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_name", "mime_type", "size_bytes",
		"storage_key", "status", "parsed", "raw_text", "created_at", "parsed_at",
	}).AddRow(
		"resume-1", "user-1", "jane.pdf", "application/pdf", int64(2048),
		"resumes/user-1/resume-1/jane.pdf", StatusParsed, parsed, "Jane Doe", now, now,
	)

	mock.ExpectQuery("SELECT id, user_id, file_name").
		WithArgs("user-1", "resume-1").
		WillReturnRows(rows)

	res, err := repo.GetByID(context.Background(), "user-1", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if res.Parsed.Contact.Name != "Jane Doe" {
		t.Fatalf("Contact.Name = %q", res.Parsed.Contact.Name)
	}
	if len(res.Parsed.Skills) != 2 {
		t.Fatalf("Skills = %v", res.Parsed.Skills)
	}
	if res.Parsed.RawText != "Jane Doe" {
		t.Fatalf("RawText = %q", res.Parsed.RawText)
	}
	if res.ParsedAt == nil {
		t.Fatalf("ParsedAt = nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, file_name").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "file_name", "mime_type", "size_bytes",
			"storage_key", "status", "parsed", "raw_text", "created_at", "parsed_at",
		}))

	_, err = repo.GetByID(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_name", "mime_type", "size_bytes",
		"storage_key", "status", "parsed", "raw_text", "created_at", "parsed_at",
	}).AddRow(
		"resume-2", "user-1", "b.pdf", "application/pdf", int64(1), nil,
		StatusUploaded, []byte(`{}`), nil, now, nil,
	).AddRow(
		"resume-1", "user-1", "a.pdf", "application/pdf", int64(1), nil,
		StatusUploaded, []byte(`{}`), nil, now.Add(-time.Hour), nil,
	)

	mock.ExpectQuery("SELECT id, user_id, file_name").
		WithArgs("user-1", 100, 0).
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), "user-1", 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != "resume-2" {
		t.Fatalf("order: first = %q", out[0].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateParsed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	record := parsing.ParsedResume{
		Contact: parsing.ContactInfo{Name: "Jane Doe"},
		Skills:  []string{"Go"},
	}

	payload, err := marshalParsed(record)
	if err != nil {
		t.Fatalf("marshalParsed: %v", err)
	}

	mock.ExpectExec("UPDATE resumes").
		WithArgs(StatusParsed, payload, "Jane Doe\nSkills\nGo", now, "resume-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateParsed(context.Background(), "resume-1", StatusParsed, record, "Jane Doe\nSkills\nGo", now); err != nil {
		t.Fatalf("UpdateParsed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
