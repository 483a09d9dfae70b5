package redis

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"art-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SubmissionStore is the durable implementation of app.SubmissionStore.
// The whole submission log lives as one JSON array under a single namespaced
// key, the same blob layout the classroom browser deployment kept in local
// storage. Notes:
//   - The log is read once, lazily, then served from an in-memory mirror;
//     every Append rewrites the full blob.
//   - A failed read (missing key, redis down, corrupt blob) is logged and
//     treated as an empty log. It never surfaces to the caller.
//   - A failed write is logged and swallowed: the mirror still reflects the
//     submission for the rest of the session, but a fresh store will not see
//     it. Accepted session-only data loss, not a silent bug.
type SubmissionStore struct {
	client *redis.Client
	key    string

	mu     sync.RWMutex
	loaded bool
	subs   []domain.Submission
}

func NewSubmissionStore(client *redis.Client, key string) *SubmissionStore {
	return &SubmissionStore{client: client, key: key}
}

func (s *SubmissionStore) LoadAll(ctx context.Context) []domain.Submission {
	s.mu.Lock()
	s.loadLocked(ctx)
	out := append([]domain.Submission(nil), s.subs...)
	s.mu.Unlock()
	return out
}

func (s *SubmissionStore) Append(ctx context.Context, sub domain.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Hydrate before the first append so the rewrite cannot clobber records
	// persisted by an earlier session.
	s.loadLocked(ctx)
	s.subs = append(s.subs, sub)

	data, err := json.Marshal(s.subs)
	if err != nil {
		log.Printf("marshal submissions: %v", err)
		return
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		log.Printf("persist submissions (kept in session only): %v", err)
	}
}

func (s *SubmissionStore) loadLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return
	}
	if err != nil {
		log.Printf("read submissions, starting empty: %v", err)
		return
	}
	var subs []domain.Submission
	if err := json.Unmarshal(raw, &subs); err != nil {
		log.Printf("decode submissions blob, starting empty: %v", err)
		return
	}
	s.subs = subs
}
