package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mudaeroll/internal/domain"
)

func TestLogRing_DropsOldestBeyondCapacity(t *testing.T) {
	ring := domain.NewLogRing(3)
	for i := 0; i < 5; i++ {
		ring.Append(domain.LogInfo, fmt.Sprintf("entry %d", i))
	}

	assert.Equal(t, 3, ring.Len())
	tail := ring.Tail(10)
	require.Len(t, tail, 3)
	assert.Equal(t, "entry 2", tail[0].Message)
	assert.Equal(t, "entry 4", tail[2].Message)
}

func TestLogRing_TailReturnsNewestInOrder(t *testing.T) {
	ring := domain.NewLogRing(10)
	ring.Append(domain.LogInfo, "one")
	ring.Append(domain.LogWarning, "two")
	ring.Append(domain.LogError, "three")

	tail := ring.Tail(2)
	require.Len(t, tail, 2)
	assert.Equal(t, "two", tail[0].Message)
	assert.Equal(t, "three", tail[1].Message)
	assert.Equal(t, domain.LogError, tail[1].Level)
}

func TestMessageNewer(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := domain.Message{ID: "200", Timestamp: base}
	newer := domain.Message{ID: "100", Timestamp: base.Add(time.Second)}

	assert.True(t, newer.Newer(older), "timestamp dominates the ID")
	assert.False(t, older.Newer(newer))

	// Equal timestamps fall back to snowflake ordering: longer IDs are
	// larger, equal lengths compare lexicographically.
	a := domain.Message{ID: "999", Timestamp: base}
	b := domain.Message{ID: "1000", Timestamp: base}
	assert.True(t, b.Newer(a))
	c := domain.Message{ID: "1001", Timestamp: base}
	assert.True(t, c.Newer(b))
}

func TestComponentEmojiName(t *testing.T) {
	bare := domain.Component{Type: domain.ComponentButton}
	assert.Empty(t, bare.EmojiName())

	named := domain.Component{Type: domain.ComponentButton, Emoji: &domain.Emoji{Name: "kakeraP"}}
	assert.Equal(t, "kakeraP", named.EmojiName())
	assert.True(t, named.IsButton())
	assert.False(t, named.IsGroup())
}
