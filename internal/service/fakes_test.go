package service

import (
	"context"
	"sync"
	"time"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/contract"
	"ai-tutoring-be/internal/repository/specification"
	"ai-tutoring-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

type completionKey struct {
	student uuid.UUID
	unit    uuid.UUID
}

// fakeCompletionRepo mimics the upsert semantics of the SQL layer: one row
// per natural key, updated in place. The mutex stands in for the database's
// atomicity guarantee.
type fakeCompletionRepo struct {
	mu      sync.Mutex
	rows    map[completionKey]*entity.CompletionRecord
	upserts int
	err     error // Returned while failN != 0
	failN   int   // Remaining failing upserts; negative means fail forever
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{rows: make(map[completionKey]*entity.CompletionRecord)}
}

func (f *fakeCompletionRepo) Upsert(_ context.Context, record *entity.CompletionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if f.err != nil && f.failN != 0 {
		if f.failN > 0 {
			f.failN--
		}
		return f.err
	}
	key := completionKey{record.StudentId, record.LogicalUnitId}
	if existing, ok := f.rows[key]; ok {
		existing.Title = record.Title
		existing.SessionId = record.SessionId
		existing.CompletedAt = record.CompletedAt
		existing.UpdatedAt = time.Now()
		return nil
	}
	stored := *record
	stored.Id = uuid.New()
	f.rows[key] = &stored
	return nil
}

func (f *fakeCompletionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.CompletionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range specs {
		if spec, ok := s.(specification.ByLogicalUnit); ok {
			if r, found := f.rows[completionKey{spec.StudentID, spec.LogicalUnitID}]; found {
				copied := *r
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeCompletionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.CompletionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.CompletionRecord, 0, len(f.rows))
	for _, r := range f.rows {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCompletionRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

type fakeTopicRepo struct {
	mu       sync.Mutex
	topics   []*entity.Topic
	findAlls int
}

func (f *fakeTopicRepo) Create(_ context.Context, t *entity.Topic) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.Id = uuid.New()
	t.CreatedAt = time.Now()
	f.topics = append(f.topics, t)
	return nil
}

func (f *fakeTopicRepo) Update(_ context.Context, _ *entity.Topic) error { return nil }
func (f *fakeTopicRepo) Delete(_ context.Context, _ uuid.UUID) error     { return nil }

func (f *fakeTopicRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.Topic, error) {
	return nil, nil
}

func (f *fakeTopicRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findAlls++
	var out []*entity.Topic
	for _, t := range f.topics {
		if topicMatches(t, specs) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.topics)), nil
}

func topicMatches(t *entity.Topic, specs []specification.Specification) bool {
	for _, s := range specs {
		if spec, ok := s.(specification.ByStudentID); ok && t.StudentId != spec.StudentID {
			return false
		}
	}
	return true
}

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions []*entity.Question
	findAlls  int
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q.Id = uuid.New()
	f.questions = append(f.questions, q)
	return nil
}

func (f *fakeQuestionRepo) CreateBatch(ctx context.Context, qs []*entity.Question) error {
	for _, q := range qs {
		if err := f.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeQuestionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeQuestionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findAlls++
	var out []*entity.Question
	for _, q := range f.questions {
		if questionMatches(q, specs) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, q := range f.questions {
		if questionMatches(q, specs) {
			n++
		}
	}
	return n, nil
}

func questionMatches(q *entity.Question, specs []specification.Specification) bool {
	for _, s := range specs {
		if spec, ok := s.(specification.ByTopicID); ok && q.TopicId != spec.TopicID {
			return false
		}
	}
	return true
}

// fakeUnitOfWork hands out the fixed fakes above; transactions are no-ops
type fakeUnitOfWork struct {
	completions *fakeCompletionRepo
	topics      *fakeTopicRepo
	questions   *fakeQuestionRepo
}

func (f *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                 { return nil }
func (f *fakeUnitOfWork) Rollback() error               { return nil }

func (f *fakeUnitOfWork) TemplateRepository() contract.TemplateRepository { return nil }

func (f *fakeUnitOfWork) CompletionRepository() contract.CompletionRepository {
	return f.completions
}

func (f *fakeUnitOfWork) TopicRepository() contract.TopicRepository { return f.topics }

func (f *fakeUnitOfWork) QuestionRepository() contract.QuestionRepository { return f.questions }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			completions: newFakeCompletionRepo(),
			topics:      &fakeTopicRepo{},
			questions:   &fakeQuestionRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}
