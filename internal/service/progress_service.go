package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/specification"
	"ai-tutoring-be/internal/repository/unitofwork"
	"ai-tutoring-be/pkg/events"
	pkgNats "ai-tutoring-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const upsertRetries = 3

type IProgressService interface {
	MarkCompleted(ctx context.Context, req *dto.MarkCompletedRequest) (*dto.MarkCompletedResponse, error)
	HasCompleted(ctx context.Context, studentId, logicalUnitId uuid.UUID) (bool, error)
	GetStatus(ctx context.Context, studentId, logicalUnitId uuid.UUID) (*dto.CompletionStatusResponse, error)
}

// progressService records completions idempotently. The logical unit id
// arrives pre-derived from stable sub-topic identity, so re-completing a
// regenerated unit lands on the same row.
type progressService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	natsPub          *pkgNats.Publisher
	logger           logger.ILogger
}

func NewProgressService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	natsPub *pkgNats.Publisher,
	log logger.ILogger,
) IProgressService {
	return &progressService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		natsPub:          natsPub,
		logger:           log,
	}
}

func (s *progressService) MarkCompleted(ctx context.Context, req *dto.MarkCompletedRequest) (*dto.MarkCompletedResponse, error) {
	record := &entity.CompletionRecord{
		StudentId:     req.StudentId,
		LogicalUnitId: req.LogicalUnitId,
		Title:         req.Title,
		SessionId:     req.SessionId,
		CompletedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var err error
	for attempt := 1; attempt <= upsertRetries; attempt++ {
		err = uow.CompletionRepository().Upsert(ctx, record)
		if err == nil {
			break
		}
		if !isRetryableConflict(err) {
			return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
		}
		s.logger.Warn("PROGRESS_SERVICE", "Upsert conflict, retrying", map[string]interface{}{
			"attempt":         attempt,
			"student_id":      req.StudentId.String(),
			"logical_unit_id": req.LogicalUnitId.String(),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceConflict, err)
	}

	s.publishCompletionEvents(ctx, req)

	return &dto.MarkCompletedResponse{
		LogicalUnitId: record.LogicalUnitId,
		CompletedAt:   record.CompletedAt,
	}, nil
}

func (s *progressService) HasCompleted(ctx context.Context, studentId, logicalUnitId uuid.UUID) (bool, error) {
	status, err := s.GetStatus(ctx, studentId, logicalUnitId)
	if err != nil {
		return false, err
	}
	return status.Completed, nil
}

func (s *progressService) GetStatus(ctx context.Context, studentId, logicalUnitId uuid.UUID) (*dto.CompletionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.CompletionRepository().FindOne(ctx, specification.ByLogicalUnit{
		StudentID:     studentId,
		LogicalUnitID: logicalUnitId,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	status := &dto.CompletionStatusResponse{
		LogicalUnitId: logicalUnitId,
	}
	if record != nil {
		status.Completed = true
		t := record.CompletedAt
		status.CompletedAt = &t
	}
	return status, nil
}

// publishCompletionEvents is best-effort: the completion is already durable,
// a lost event only delays cache refresh or a notification.
func (s *progressService) publishCompletionEvents(ctx context.Context, req *dto.MarkCompletedRequest) {
	msg := dto.CompletionRecordedMessage{
		StudentId:     req.StudentId,
		LogicalUnitId: req.LogicalUnitId,
		Title:         req.Title,
	}
	payload, err := json.Marshal(msg)
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("PROGRESS_SERVICE", "Failed to publish completion message", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	event := events.New(events.TypeLessonCompleted, map[string]interface{}{
		"student_id":      req.StudentId.String(),
		"logical_unit_id": req.LogicalUnitId.String(),
		"title":           req.Title,
	})
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("PROGRESS_SERVICE", "Failed to publish NATS completion event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// isRetryableConflict recognizes serialization/deadlock conflicts worth
// retrying. The unique index resolves row-level races; these remain for
// serializable transaction settings.
func isRetryableConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 40001") || strings.Contains(msg, "deadlock detected")
}
