package service

import (
	"context"
	"encoding/json"

	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService listens for completion events and evicts the affected
// student's cached topic views, so progress changes show up before the TTL
// would have expired them.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	cache     *memory.TTLCache
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	cache *memory.TTLCache,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		cache:     cache,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.CompletionRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER_SERVICE", "Failed to unmarshal completion message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.cache.InvalidatePrefix(memory.NamespaceTopics + payload.StudentId.String())
	cs.logger.Info("CONSUMER_SERVICE", "Invalidated topic cache after completion", map[string]interface{}{
		"student_id":      payload.StudentId.String(),
		"logical_unit_id": payload.LogicalUnitId.String(),
	})

	msg.Ack()
}
