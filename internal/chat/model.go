package chat

import "time"

// Exchange is one question/answer turn against a stored resume. Source
// records which responder path produced the answer.
type Exchange struct {
	ID        string
	ResumeID  string
	UserID    string
	Question  string
	Answer    string
	Source    string
	CreatedAt time.Time
}
