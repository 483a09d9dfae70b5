package app

import (
	"context"
	"sync"
	"time"

	"art-quiz-service/internal/domain"
	"art-quiz-service/internal/export"
	"github.com/google/uuid"
)

// SubmissionStore abstracts how submissions are persisted (in-memory, Redis, etc).
// LoadAll never fails: a missing or unreadable blob is an empty list by
// contract, and Append swallows persistence failures after logging them.
type SubmissionStore interface {
	LoadAll(ctx context.Context) []domain.Submission
	Append(ctx context.Context, sub domain.Submission)
}

// CatalogRepository loads question catalogs (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// QuizService contains the student and teacher use cases.
type QuizService struct {
	store      SubmissionStore
	catalogs   CatalogRepository
	catalogID  string
	passphrase string
	now        func() time.Time
	newID      func() string

	mu          sync.Mutex
	subscribers map[chan domain.Submission]struct{}
}

func NewQuizService(store SubmissionStore, catalogs CatalogRepository, catalogID, passphrase string) *QuizService {
	return NewQuizServiceWithClock(store, catalogs, catalogID, passphrase, time.Now, uuid.NewString)
}

// NewQuizServiceWithClock is test-only for deterministic timestamps and ids.
func NewQuizServiceWithClock(store SubmissionStore, catalogs CatalogRepository, catalogID, passphrase string, now func() time.Time, newID func() string) *QuizService {
	return &QuizService{
		store:       store,
		catalogs:    catalogs,
		catalogID:   catalogID,
		passphrase:  passphrase,
		now:         now,
		newID:       newID,
		subscribers: make(map[chan domain.Submission]struct{}),
	}
}

// Questions returns the catalog for the student view, with the correct-answer
// markers stripped so they never reach the browser.
func (s *QuizService) Questions(ctx context.Context) ([]domain.QuizQuestion, error) {
	catalog, err := s.catalogs.GetCatalog(ctx, s.catalogID)
	if err != nil {
		return nil, err
	}
	questions := make([]domain.QuizQuestion, len(catalog.Questions))
	copy(questions, catalog.Questions)
	for i := range questions {
		questions[i].CorrectAnswerID = ""
	}
	return questions, nil
}

// Submit validates the student's identification, scores the answer set
// against the catalog and appends the resulting submission to the store.
// The stored answer list is parallel to catalog order, one entry per
// question; ids absent from answers and present-but-nil entries both count
// as unanswered.
func (s *QuizService) Submit(ctx context.Context, info domain.StudentInfo, answers map[int]*string) (domain.Submission, error) {
	if err := domain.ValidStudentInfo(info); err != nil {
		return domain.Submission{}, err
	}

	catalog, err := s.catalogs.GetCatalog(ctx, s.catalogID)
	if err != nil {
		return domain.Submission{}, err
	}

	recorded := make([]domain.StudentAnswer, 0, len(catalog.Questions))
	for _, q := range catalog.Questions {
		recorded = append(recorded, domain.StudentAnswer{
			QuestionID:       q.ID,
			SelectedOptionID: answers[q.ID],
		})
	}

	sub := domain.Submission{
		ID:             s.newID(),
		StudentName:    info.Name,
		School:         info.School,
		ClassName:      info.ClassName,
		Score:          Score(catalog, answers),
		TotalQuestions: len(catalog.Questions),
		Answers:        recorded,
		Timestamp:      s.now().UnixMilli(),
	}
	s.store.Append(ctx, sub)
	s.broadcast(sub)
	return sub, nil
}

// Submissions returns the filtered, newest-first view of the store.
func (s *QuizService) Submissions(ctx context.Context, filter domain.Filter) []domain.Submission {
	return View(s.store.LoadAll(ctx), NormalizeFilter(filter))
}

// ExportCSV serializes the filtered view for download. An empty view refuses
// the export: the caller must surface domain.ErrNoSubmissions as a notice
// instead of producing an empty file.
func (s *QuizService) ExportCSV(ctx context.Context, filter domain.Filter) (filename, payload string, err error) {
	filter = NormalizeFilter(filter)
	subs := s.Submissions(ctx, filter)
	if len(subs) == 0 {
		return "", "", domain.ErrNoSubmissions
	}
	return export.Filename(filter), export.Serialize(subs), nil
}

// Authenticate gates the teacher dashboard behind the shared passphrase.
// Exact equality, unlimited retries, no lockout: a classroom-trust gate,
// not a security boundary.
func (s *QuizService) Authenticate(passphrase string) error {
	if passphrase != s.passphrase {
		return domain.ErrWrongPassphrase
	}
	return nil
}

// Subscribe returns a channel that receives each newly stored submission.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(_ context.Context) (<-chan domain.Submission, func()) {
	ch := make(chan domain.Submission, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *QuizService) broadcast(sub domain.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- sub:
		default:
			// Drop the oldest entry so a stalled dashboard never blocks Submit.
			select {
			case <-ch:
			default:
			}
			ch <- sub
		}
	}
}
