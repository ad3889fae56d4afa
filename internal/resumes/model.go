package resumes

import (
	"time"

	"resume-chat-backend/internal/parsing"
)

// Resume statuses. StatusFailed means extraction produced no usable text;
// the stored record is still a valid, possibly empty, parsed record.
const (
	StatusUploaded = "uploaded"
	StatusParsed   = "parsed"
	StatusFailed   = "failed"
)

// Resume represents an uploaded resume owned by a user, together with the
// structured record parsed from it.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	Status     string
	Parsed     parsing.ParsedResume
	RawText    string
	CreatedAt  time.Time
	ParsedAt   *time.Time
}
