package resumes

import (
	"time"

	"resume-chat-backend/internal/parsing"
)

// ResumeResponse is the outward-facing representation of a resume. The raw
// document text never leaves the server; hasRawText tells clients whether
// grounded generation is possible.
type ResumeResponse struct {
	ResumeID   string               `json:"resumeId"`
	FileName   string               `json:"fileName"`
	MimeType   string               `json:"mimeType"`
	SizeBytes  int64                `json:"sizeBytes"`
	Status     string               `json:"status"`
	Parsed     parsing.ParsedResume `json:"parsed"`
	HasRawText bool                 `json:"hasRawText"`
	UploadedAt time.Time            `json:"uploadedAt"`
	ParsedAt   *time.Time           `json:"parsedAt,omitempty"`
}

// ResumeSummary is the list-view representation.
type ResumeSummary struct {
	ResumeID   string    `json:"resumeId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(res Resume) ResumeResponse {
	parsed := res.Parsed
	parsed.RawText = ""
	return ResumeResponse{
		ResumeID:   res.ID,
		FileName:   res.FileName,
		MimeType:   res.MimeType,
		SizeBytes:  res.SizeBytes,
		Status:     res.Status,
		Parsed:     parsed,
		HasRawText: res.RawText != "",
		UploadedAt: res.CreatedAt,
		ParsedAt:   res.ParsedAt,
	}
}

func toSummary(res Resume) ResumeSummary {
	return ResumeSummary{
		ResumeID:   res.ID,
		FileName:   res.FileName,
		MimeType:   res.MimeType,
		SizeBytes:  res.SizeBytes,
		Status:     res.Status,
		UploadedAt: res.CreatedAt,
	}
}
