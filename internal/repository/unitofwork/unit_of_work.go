package unitofwork

import (
	"context"

	"ai-tutoring-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TemplateRepository() contract.TemplateRepository
	CompletionRepository() contract.CompletionRepository
	TopicRepository() contract.TopicRepository
	QuestionRepository() contract.QuestionRepository
}
