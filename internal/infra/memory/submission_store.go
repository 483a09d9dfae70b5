package memory

import (
	"context"
	"sync"

	"art-quiz-service/internal/domain"
)

// SubmissionStore is an in-memory implementation of app.SubmissionStore.
// It backs the no-redis mode and doubles as the test fake: same append-only
// contract as the durable store, nothing survives the process.
type SubmissionStore struct {
	mu   sync.RWMutex
	subs []domain.Submission
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{}
}

func (s *SubmissionStore) LoadAll(_ context.Context) []domain.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Submission(nil), s.subs...)
}

func (s *SubmissionStore) Append(_ context.Context, sub domain.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}
