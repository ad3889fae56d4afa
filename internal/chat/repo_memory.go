package chat

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ExchangesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Exchange // resumeId -> exchanges
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Exchange),
	}
}

// Create stores one exchange.
func (r *MemoryRepo) Create(ctx context.Context, ex Exchange) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[ex.ResumeID] = append(r.data[ex.ResumeID], ex)
	return nil
}

// ListByResume returns exchanges for a resume, newest first.
func (r *MemoryRepo) ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 50
	}

	r.mu.RLock()
	stored := r.data[resumeID]
	r.mu.RUnlock()

	var out []Exchange
	for _, ex := range stored {
		if ex.UserID == userID {
			out = append(out, ex)
		}
	}
	if len(out) == 0 || offset >= len(out) {
		return []Exchange{}, nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ ExchangesRepo = (*MemoryRepo)(nil)
