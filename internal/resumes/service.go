package resumes

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-chat-backend/internal/extract"
	"resume-chat-backend/internal/parsing"
	"resume-chat-backend/internal/queue"
	"resume-chat-backend/internal/shared/metrics"
	"resume-chat-backend/internal/shared/storage/object"
	"resume-chat-backend/internal/shared/telemetry"
	"resume-chat-backend/internal/vision"
)

// Service contains business logic for resumes.
type Service struct {
	Store  object.ObjectStore
	Repo   ResumesRepo
	Parser *parsing.Parser
	Vision vision.Client // optional
	Queue  queue.Client  // optional; parsing runs inline when absent
}

// Upload saves the file, records the resume, and runs or enqueues parsing.
// The bool reports whether parsing was deferred to the queue.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, bool, error) {
	if userID == "" || strings.TrimSpace(fileName) == "" {
		return Resume{}, false, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Resume{}, false, err
	}

	res := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		Status:     StatusUploaded,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, false, err
	}

	if s.enqueue(ctx, res.ID) {
		return res, true, nil
	}

	parsed, err := s.parseStored(ctx, res)
	return parsed, false, err
}

// UploadText records a resume supplied as raw text and parses it inline.
func (s *Service) UploadText(ctx context.Context, userID, fileName, text string) (Resume, error) {
	if userID == "" || strings.TrimSpace(text) == "" {
		return Resume{}, ErrInvalidInput
	}
	if strings.TrimSpace(fileName) == "" {
		fileName = "pasted.txt"
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, strings.NewReader(text))
	if err != nil {
		return Resume{}, err
	}

	res := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		Status:     StatusUploaded,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}

	return s.storeParsed(ctx, res, text)
}

// Scan recognizes text from a base64 document image and runs the text
// pipeline over it. Recognition failures surface as ErrNoTextRecognized,
// never as a provider error.
func (s *Service) Scan(ctx context.Context, userID, fileName, imageBase64 string) (Resume, error) {
	if s.Vision == nil {
		return Resume{}, ErrVisionDisabled
	}
	if userID == "" || strings.TrimSpace(imageBase64) == "" {
		return Resume{}, ErrInvalidInput
	}

	image, mimeType, err := decodeImage(imageBase64)
	if err != nil {
		return Resume{}, err
	}

	text, err := s.Vision.RecognizeText(ctx, image, mimeType)
	if err != nil {
		telemetry.Error("image recognition failed", map[string]any{"error": err.Error()})
		return Resume{}, ErrNoTextRecognized
	}
	if strings.TrimSpace(text) == "" {
		return Resume{}, ErrNoTextRecognized
	}

	if strings.TrimSpace(fileName) == "" {
		fileName = "scanned.txt"
	}
	return s.UploadText(ctx, userID, fileName, text)
}

// Get returns one resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// Current returns the latest resume for a user.
func (s *Service) Current(ctx context.Context, userID string) (Resume, error) {
	if userID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns resumes for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Reparse re-runs the parsing pipeline over a stored resume, picking up
// dictionary changes. The bool reports whether the work was enqueued.
func (s *Service) Reparse(ctx context.Context, userID, resumeID string) (Resume, bool, error) {
	res, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, false, err
	}

	if s.enqueue(ctx, res.ID) {
		return res, true, nil
	}

	parsed, err := s.reprocess(ctx, res)
	return parsed, false, err
}

// ProcessResume is the queue consumer entry point: it re-runs extraction and
// parsing for one stored resume.
func (s *Service) ProcessResume(ctx context.Context, resumeID string) error {
	if strings.TrimSpace(resumeID) == "" {
		return ErrInvalidInput
	}
	res, err := s.Repo.GetAnyByID(ctx, resumeID)
	if err != nil {
		return err
	}
	_, err = s.reprocess(ctx, res)
	return err
}

// reprocess prefers the stored extracted text and falls back to re-reading
// the original object.
func (s *Service) reprocess(ctx context.Context, res Resume) (Resume, error) {
	if res.RawText != "" {
		return s.storeParsed(ctx, res, res.RawText)
	}
	return s.parseStored(ctx, res)
}

func (s *Service) parseStored(ctx context.Context, res Resume) (Resume, error) {
	text := ""
	if res.StorageKey != "" {
		extracted, err := extract.ExtractText(ctx, s.Store, res.StorageKey, res.MimeType, res.FileName)
		if err != nil {
			telemetry.Error("text extraction failed", map[string]any{
				"resumeId": res.ID,
				"error":    err.Error(),
			})
		} else {
			text = extracted
		}
	}
	return s.storeParsed(ctx, res, text)
}

// storeParsed parses text and persists the outcome. Parsing itself cannot
// fail: empty or hostile text still yields a valid record.
func (s *Service) storeParsed(ctx context.Context, res Resume, text string) (Resume, error) {
	metrics.IncParseStarted()
	started := metrics.NowMillis()
	record := s.Parser.Parse(text)
	metrics.ObserveParseDurationMs(metrics.NowMillis() - started)
	record.RawText = text

	status := StatusParsed
	if strings.TrimSpace(text) == "" {
		status = StatusFailed
		metrics.IncParseFailed()
	} else {
		metrics.IncParseCompleted()
	}
	parsedAt := time.Now().UTC()
	if err := s.Repo.UpdateParsed(ctx, res.ID, status, *record, text, parsedAt); err != nil {
		return Resume{}, err
	}

	res.Status = status
	res.Parsed = *record
	res.RawText = text
	res.ParsedAt = &parsedAt
	return res, nil
}

// enqueue defers parsing to the queue. False means the caller must parse
// inline, either because no queue is configured or because the send failed.
func (s *Service) enqueue(ctx context.Context, resumeID string) bool {
	if s.Queue == nil {
		return false
	}
	msg := queue.Message{
		ResumeID:   resumeID,
		RequestID:  RequestIDFromContext(ctx),
		EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    1,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		telemetry.Error("enqueue parse failed, parsing inline", map[string]any{
			"resumeId": resumeID,
			"error":    err.Error(),
		})
		return false
	}
	return true
}

// decodeImage accepts raw base64 or a data URL and returns the image bytes
// with their MIME type.
func decodeImage(payload string) ([]byte, string, error) {
	payload = strings.TrimSpace(payload)
	mimeType := "image/png"
	if strings.HasPrefix(payload, "data:") {
		meta, rest, ok := strings.Cut(payload, ",")
		if !ok {
			return nil, "", fmt.Errorf("%w: malformed data url", ErrInvalidInput)
		}
		payload = rest
		meta = strings.TrimPrefix(meta, "data:")
		if semi := strings.Index(meta, ";"); semi >= 0 {
			meta = meta[:semi]
		}
		if meta != "" {
			mimeType = meta
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid base64 image", ErrInvalidInput)
	}
	return data, mimeType, nil
}
