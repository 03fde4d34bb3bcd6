package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := NewTTLCache(time.Minute, time.Minute)

	_, hit := c.Get("topics:student-1")
	assert.False(t, hit)

	c.Set("topics:student-1", []string{"a", "b"})

	value, hit := c.Get("topics:student-1")
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestCacheExpiry(t *testing.T) {
	c := NewTTLCache(20*time.Millisecond, time.Minute)

	c.Set("topics:student-1", "cached")
	time.Sleep(40 * time.Millisecond)

	_, hit := c.Get("topics:student-1")
	assert.False(t, hit, "entry must expire after TTL")
}

func TestInvalidate(t *testing.T) {
	c := NewTTLCache(time.Minute, time.Minute)

	c.Set("topics:student-1", "cached")
	c.Invalidate("topics:student-1")

	_, hit := c.Get("topics:student-1")
	assert.False(t, hit)
}

func TestInvalidatePrefixIsNamespaceScoped(t *testing.T) {
	c := NewTTLCache(time.Minute, time.Minute)

	c.Set(NamespaceTopics+"student-1", "topics A")
	c.Set(NamespaceTopics+"student-2", "topics B")
	c.Set(NamespaceQuestions+"topic-1", "questions")

	c.InvalidatePrefix(NamespaceTopics)

	_, hit := c.Get(NamespaceTopics + "student-1")
	assert.False(t, hit)
	_, hit = c.Get(NamespaceTopics + "student-2")
	assert.False(t, hit)

	// The other namespace survives
	value, hit := c.Get(NamespaceQuestions + "topic-1")
	assert.True(t, hit)
	assert.Equal(t, "questions", value)
}

func TestInvalidatePrefixSingleStudent(t *testing.T) {
	c := NewTTLCache(time.Minute, time.Minute)

	c.Set(NamespaceTopics+"student-1", "topics A")
	c.Set(NamespaceTopics+"student-2", "topics B")

	c.InvalidatePrefix(NamespaceTopics + "student-1")

	_, hit := c.Get(NamespaceTopics + "student-1")
	assert.False(t, hit)
	_, hit = c.Get(NamespaceTopics + "student-2")
	assert.True(t, hit)
}

func TestClear(t *testing.T) {
	c := NewTTLCache(time.Minute, time.Minute)

	c.Set(NamespaceTopics+"student-1", "a")
	c.Set(NamespaceQuestions+"topic-1", "b")
	assert.Equal(t, 2, c.ItemCount())

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
}
