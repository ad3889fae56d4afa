package resumes

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"resume-chat-backend/internal/parsing"
	"resume-chat-backend/internal/queue"
	"resume-chat-backend/internal/shared/storage/object/local"
)

const sampleText = "Jane Doe\n" +
	"jane@example.com | (555) 123-4567\n" +
	"\n" +
	"Objective\n" +
	"Seeking a backend role.\n" +
	"\n" +
	"Skills\n" +
	"Python, Go, SQL\n" +
	"\n" +
	"Experience\n" +
	"Jan 2020 - Present\n" +
	"Acme Co\n" +
	"Engineer\n" +
	"- Built internal tools\n"

type stubQueue struct {
	sent []queue.Message
	fail bool
}

func (q *stubQueue) Send(_ context.Context, msg queue.Message) error {
	if q.fail {
		return errors.New("queue down")
	}
	q.sent = append(q.sent, msg)
	return nil
}

type stubVision struct {
	text string
	err  error
}

func (v stubVision) RecognizeText(context.Context, []byte, string) (string, error) {
	return v.text, v.err
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store:  local.New(t.TempDir()),
		Repo:   NewMemoryRepo(),
		Parser: parsing.New(),
	}
}

func TestUpload_ParsesInline(t *testing.T) {
	svc := newTestService(t)

	res, queued, err := svc.Upload(context.Background(), "user-1", "resume.txt", strings.NewReader(sampleText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if queued {
		t.Fatalf("expected inline parse without a queue")
	}
	if res.Status != StatusParsed {
		t.Fatalf("status = %q, want %q", res.Status, StatusParsed)
	}
	if res.Parsed.Contact.Email != "jane@example.com" {
		t.Fatalf("email = %q", res.Parsed.Contact.Email)
	}
	if res.Parsed.RawSections.Skills != "Python, Go, SQL" {
		t.Fatalf("raw skills = %q", res.Parsed.RawSections.Skills)
	}
	if res.RawText == "" {
		t.Fatalf("expected raw text retained")
	}

	current, err := svc.Current(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.ID != res.ID {
		t.Fatalf("current = %q, want %q", current.ID, res.ID)
	}
}

func TestUpload_EnqueuesWhenQueueConfigured(t *testing.T) {
	svc := newTestService(t)
	q := &stubQueue{}
	svc.Queue = q

	res, queued, err := svc.Upload(context.Background(), "user-1", "resume.txt", strings.NewReader(sampleText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !queued {
		t.Fatalf("expected queued upload")
	}
	if res.Status != StatusUploaded {
		t.Fatalf("status = %q, want %q", res.Status, StatusUploaded)
	}
	if len(q.sent) != 1 || q.sent[0].ResumeID != res.ID || q.sent[0].Version != 1 {
		t.Fatalf("unexpected queue message: %+v", q.sent)
	}

	// The worker picks the message up later.
	if err := svc.ProcessResume(context.Background(), res.ID); err != nil {
		t.Fatalf("ProcessResume: %v", err)
	}
	after, err := svc.Get(context.Background(), "user-1", res.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if after.Status != StatusParsed {
		t.Fatalf("status after processing = %q", after.Status)
	}
	if after.Parsed.Contact.Name != "Jane Doe" {
		t.Fatalf("name = %q", after.Parsed.Contact.Name)
	}
}

func TestUpload_QueueFailureFallsBackInline(t *testing.T) {
	svc := newTestService(t)
	svc.Queue = &stubQueue{fail: true}

	res, queued, err := svc.Upload(context.Background(), "user-1", "resume.txt", strings.NewReader(sampleText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if queued {
		t.Fatalf("queue failure must fall back to inline parsing")
	}
	if res.Status != StatusParsed {
		t.Fatalf("status = %q", res.Status)
	}
}

func TestUpload_UnsupportedTypeStoresEmptyRecord(t *testing.T) {
	svc := newTestService(t)

	res, _, err := svc.Upload(context.Background(), "user-1", "mystery.bin", bytes.NewReader([]byte{0x00, 0x01, 0x02}))
	if err != nil {
		t.Fatalf("extraction failure must not surface: %v", err)
	}
	if res.Status != StatusFailed {
		t.Fatalf("status = %q, want %q", res.Status, StatusFailed)
	}
	if res.Parsed.Skills == nil || len(res.Parsed.Skills) != 0 {
		t.Fatalf("expected empty normalized skills, got %#v", res.Parsed.Skills)
	}
	if res.RawText != "" {
		t.Fatalf("raw text = %q, want empty", res.RawText)
	}
}

func TestUploadText(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.UploadText(context.Background(), "user-1", "", sampleText)
	if err != nil {
		t.Fatalf("UploadText: %v", err)
	}
	if res.FileName != "pasted.txt" {
		t.Fatalf("fileName = %q", res.FileName)
	}
	if res.Status != StatusParsed {
		t.Fatalf("status = %q", res.Status)
	}
	if len(res.Parsed.Experience) != 1 {
		t.Fatalf("experience entries = %d", len(res.Parsed.Experience))
	}
}

func TestUploadText_RequiresText(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.UploadText(context.Background(), "user-1", "a.txt", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScan_Disabled(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Scan(context.Background(), "user-1", "", base64.StdEncoding.EncodeToString([]byte("img")))
	if !errors.Is(err, ErrVisionDisabled) {
		t.Fatalf("expected ErrVisionDisabled, got %v", err)
	}
}

func TestScan_RecognizesAndParses(t *testing.T) {
	svc := newTestService(t)
	svc.Vision = stubVision{text: sampleText}

	res, err := svc.Scan(context.Background(), "user-1", "", base64.StdEncoding.EncodeToString([]byte("img")))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.FileName != "scanned.txt" {
		t.Fatalf("fileName = %q", res.FileName)
	}
	if res.Status != StatusParsed {
		t.Fatalf("status = %q", res.Status)
	}
	if res.Parsed.RawSections.Skills != "Python, Go, SQL" {
		t.Fatalf("raw skills = %q", res.Parsed.RawSections.Skills)
	}
}

func TestScan_RecognitionFailure(t *testing.T) {
	svc := newTestService(t)
	svc.Vision = stubVision{err: errors.New("model offline")}

	_, err := svc.Scan(context.Background(), "user-1", "", base64.StdEncoding.EncodeToString([]byte("img")))
	if !errors.Is(err, ErrNoTextRecognized) {
		t.Fatalf("expected ErrNoTextRecognized, got %v", err)
	}
}

func TestScan_EmptyRecognition(t *testing.T) {
	svc := newTestService(t)
	svc.Vision = stubVision{text: "   "}

	_, err := svc.Scan(context.Background(), "user-1", "", base64.StdEncoding.EncodeToString([]byte("img")))
	if !errors.Is(err, ErrNoTextRecognized) {
		t.Fatalf("expected ErrNoTextRecognized, got %v", err)
	}
}

func TestReparse_Inline(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.UploadText(context.Background(), "user-1", "resume.txt", sampleText)
	if err != nil {
		t.Fatalf("UploadText: %v", err)
	}

	res, queued, err := svc.Reparse(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}
	if queued {
		t.Fatalf("expected inline reparse without a queue")
	}
	if res.Status != StatusParsed {
		t.Fatalf("status = %q", res.Status)
	}
	if res.Parsed.RawSections.Skills != "Python, Go, SQL" {
		t.Fatalf("raw skills = %q", res.Parsed.RawSections.Skills)
	}
}

func TestDecodeImage_DataURL(t *testing.T) {
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("img-bytes"))
	data, mimeType, err := decodeImage(payload)
	if err != nil {
		t.Fatalf("decodeImage: %v", err)
	}
	if string(data) != "img-bytes" {
		t.Fatalf("data = %q", data)
	}
	if mimeType != "image/jpeg" {
		t.Fatalf("mimeType = %q", mimeType)
	}
}

func TestDecodeImage_InvalidBase64(t *testing.T) {
	if _, _, err := decodeImage("%%%not-base64%%%"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
