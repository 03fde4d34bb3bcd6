package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "LESSON_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// In-process pub/sub topic for progress events
const TopicProgress = "PROGRESS_EVENTS"

// Event type codes
const (
	TypeLessonGenerated  = "LESSON_GENERATED"
	TypeLessonCompleted  = "LESSON_COMPLETED"
	TypeQuestionsChanged = "QUESTIONS_CHANGED"
	TypeTopicsChanged    = "TOPICS_CHANGED"
)

// BaseEvent is the generic implementation used across services
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
