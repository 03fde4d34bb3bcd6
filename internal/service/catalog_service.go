package service

import (
	"context"
	"fmt"

	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/internal/repository/specification"
	"ai-tutoring-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICatalogService interface {
	GetTopics(ctx context.Context, studentId uuid.UUID) ([]*dto.GetTopicResponse, error)
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*dto.CreateTopicResponse, error)
	GetQuestions(ctx context.Context, topicId uuid.UUID) ([]*dto.GetQuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
}

// catalogService serves topic/question reads through the TTL cache. Writes
// invalidate their namespace synchronously so they are visible immediately;
// everything else rides out the TTL window.
type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.TTLCache
	logger     logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.TTLCache,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     log,
	}
}

func topicsCacheKey(studentId uuid.UUID) string {
	return memory.NamespaceTopics + studentId.String()
}

func questionsCacheKey(topicId uuid.UUID) string {
	return memory.NamespaceQuestions + topicId.String()
}

func (s *catalogService) GetTopics(ctx context.Context, studentId uuid.UUID) ([]*dto.GetTopicResponse, error) {
	key := topicsCacheKey(studentId)
	if cached, hit := s.cache.Get(key); hit {
		return cached.([]*dto.GetTopicResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	topics, err := uow.TopicRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	result := make([]*dto.GetTopicResponse, len(topics))
	for i, t := range topics {
		result[i] = &dto.GetTopicResponse{
			Id:        t.Id,
			Name:      t.Name,
			Category:  t.Category,
			Level:     t.Level,
			CreatedAt: t.CreatedAt,
		}
	}

	s.cache.Set(key, result)
	return result, nil
}

func (s *catalogService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*dto.CreateTopicResponse, error) {
	topic := &entity.Topic{
		StudentId: req.StudentId,
		Name:      req.Name,
		Category:  req.Category,
		Level:     req.Level,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TopicRepository().Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	// The new topic must be visible on the next read, not after TTL expiry
	s.cache.Invalidate(topicsCacheKey(req.StudentId))

	return &dto.CreateTopicResponse{Id: topic.Id}, nil
}

func (s *catalogService) GetQuestions(ctx context.Context, topicId uuid.UUID) ([]*dto.GetQuestionResponse, error) {
	key := questionsCacheKey(topicId)
	if cached, hit := s.cache.Get(key); hit {
		return cached.([]*dto.GetQuestionResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByTopicID{TopicID: topicId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	result := make([]*dto.GetQuestionResponse, len(questions))
	for i, q := range questions {
		result[i] = &dto.GetQuestionResponse{
			Id:       q.Id,
			Prompt:   q.Prompt,
			Answer:   q.Answer,
			Position: q.Position,
		}
	}

	s.cache.Set(key, result)
	return result, nil
}

func (s *catalogService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.QuestionRepository().Count(ctx, specification.ByTopicID{TopicID: req.TopicId})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	question := &entity.Question{
		TopicId:  req.TopicId,
		Prompt:   req.Prompt,
		Answer:   req.Answer,
		Position: int(count),
	}
	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	s.cache.Invalidate(questionsCacheKey(req.TopicId))

	return &dto.CreateQuestionResponse{Id: question.Id}, nil
}
