package chat

import "context"

// ExchangesRepo defines persistence operations for chat exchanges.
type ExchangesRepo interface {
	Create(ctx context.Context, ex Exchange) error
	// ListByResume returns exchanges for one resume, newest first.
	ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]Exchange, error)
}
