package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-chat-backend/internal/parsing"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// Create stores a resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.Status == "" {
		res.Status = StatusUploaded
	}
	parsing.Normalize(&res.Parsed)
	r.data[res.UserID] = append(r.data[res.UserID], res)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.data[userID] {
		if res.ID == resumeID {
			return res, nil
		}
	}
	return Resume{}, ErrNotFound
}

// GetAnyByID returns a resume by ID regardless of owner.
func (r *MemoryRepo) GetAnyByID(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, all := range r.data {
		for _, res := range all {
			if res.ID == resumeID {
				return res, nil
			}
		}
	}
	return Resume{}, ErrNotFound
}

// GetCurrentByUser returns the latest resume for a user.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.data[userID]
	if len(all) == 0 {
		return Resume{}, ErrNotFound
	}
	latest := all[0]
	for _, res := range all[1:] {
		if res.CreatedAt.After(latest.CreatedAt) {
			latest = res
		}
	}
	return latest, nil
}

// ListByUser returns resumes for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	stored := r.data[userID]
	r.mu.RUnlock()

	if len(stored) == 0 || offset >= len(stored) {
		return []Resume{}, nil
	}

	out := make([]Resume, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// UpdateParsed stores the parsed record, raw text, and status for a resume.
func (r *MemoryRepo) UpdateParsed(ctx context.Context, resumeID string, status string, parsed parsing.ParsedResume, rawText string, parsedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, all := range r.data {
		for i := range all {
			if all[i].ID != resumeID {
				continue
			}
			parsing.Normalize(&parsed)
			parsed.RawText = rawText
			all[i].Status = status
			all[i].Parsed = parsed
			all[i].RawText = rawText
			at := parsedAt
			all[i].ParsedAt = &at
			r.data[userID] = all
			return nil
		}
	}
	return ErrNotFound
}

var _ ResumesRepo = (*MemoryRepo)(nil)
