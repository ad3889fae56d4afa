package resumes

import (
	"context"
	"time"

	"resume-chat-backend/internal/parsing"
)

// ResumesRepo defines persistence operations for resumes.
type ResumesRepo interface {
	Create(ctx context.Context, res Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	// GetAnyByID loads a resume by ID regardless of owner. Queue consumers
	// have no user context.
	GetAnyByID(ctx context.Context, resumeID string) (Resume, error)
	GetCurrentByUser(ctx context.Context, userID string) (Resume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error)
	UpdateParsed(ctx context.Context, resumeID string, status string, parsed parsing.ParsedResume, rawText string, parsedAt time.Time) error
}
