package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-chat-backend/internal/answers"
	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/shared/metrics"
)

// ResumeSource loads the resume a question is asked about.
type ResumeSource interface {
	Get(ctx context.Context, userID, resumeID string) (resumes.Resume, error)
	Current(ctx context.Context, userID string) (resumes.Resume, error)
}

// Service answers questions about stored resumes and keeps the exchange
// history.
type Service struct {
	Resumes   ResumeSource
	Responder *answers.Responder
	Repo      ExchangesRepo
}

// Ask answers one question against a resume. resumeID may be empty, in which
// case the user's latest resume is used. Answering itself cannot fail: a
// record with no matching data still yields the fixed not-found answer.
func (s *Service) Ask(ctx context.Context, userID, resumeID, question string) (Exchange, error) {
	if userID == "" {
		return Exchange{}, ErrInvalidInput
	}

	res, err := s.resolveResume(ctx, userID, resumeID)
	if err != nil {
		return Exchange{}, err
	}

	record := res.Parsed
	record.RawText = res.RawText
	answer, source := s.Responder.Answer(ctx, &record, question)
	metrics.IncAnswerServed()

	ex := Exchange{
		ID:        uuid.NewString(),
		ResumeID:  res.ID,
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Source:    string(source),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, ex); err != nil {
		return Exchange{}, err
	}
	return ex, nil
}

// History lists past exchanges for a resume, newest first.
func (s *Service) History(ctx context.Context, userID, resumeID string, limit, offset int) ([]Exchange, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	res, err := s.resolveResume(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, userID, res.ID, limit, offset)
}

func (s *Service) resolveResume(ctx context.Context, userID, resumeID string) (resumes.Resume, error) {
	var (
		res resumes.Resume
		err error
	)
	if strings.TrimSpace(resumeID) == "" {
		res, err = s.Resumes.Current(ctx, userID)
	} else {
		res, err = s.Resumes.Get(ctx, userID, resumeID)
	}
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, ErrNotFound
		}
		return resumes.Resume{}, err
	}
	return res, nil
}
