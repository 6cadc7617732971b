package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/analytics"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

func TestAggregateDaily_SingleExchange(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "I have a complaint about billing", base),
		msgAt(t, "a1", models.RoleAssistant, "Sorry to hear that...", base.Add(2*time.Minute)),
	}

	buckets, err := analytics.AggregateDaily(messages)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	assert.Equal(t, "2024-01-01", buckets[0].Date)
	assert.Equal(t, 1, buckets[0].Conversations)
	assert.Equal(t, 1, buckets[0].ResponseCount)
	assert.InDelta(t, 2.0, buckets[0].AverageResponseTime(), 1e-9)
}

func TestAggregateDaily_NearestPrecedingUserWins(t *testing.T) {
	// Two interleaved sessions on one day. The reply at 10:06 must pair
	// with the 10:05 user message, not the stale 10:00 one.
	base := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "first question", base),
		msgAt(t, "a1", models.RoleAssistant, "first answer", base.Add(1*time.Minute)),
		msgAt(t, "u2", models.RoleUser, "second question", base.Add(5*time.Minute)),
		msgAt(t, "a2", models.RoleAssistant, "second answer", base.Add(6*time.Minute)),
	}

	buckets, err := analytics.AggregateDaily(messages)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	assert.Equal(t, 2, buckets[0].ResponseCount)
	// Both replies arrived one minute after their own question.
	assert.InDelta(t, 1.0, buckets[0].AverageResponseTime(), 1e-9)
}

func TestAggregateDaily_UnmatchedAssistantsExcluded(t *testing.T) {
	base := time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "a1", models.RoleAssistant, "hello, how can I help?", base),
		msgAt(t, "a2", models.RoleAssistant, "still here", base.Add(time.Minute)),
	}

	buckets, err := analytics.AggregateDaily(messages)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	// They still open the day's bucket but contribute no latency samples
	// and no conversation volume.
	assert.Equal(t, 0, buckets[0].Conversations)
	assert.Equal(t, 0, buckets[0].ResponseCount)
	assert.Zero(t, buckets[0].AverageResponseTime())
}

func TestAggregateDaily_OrderInsensitive(t *testing.T) {
	base := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "q1", base),
		msgAt(t, "a1", models.RoleAssistant, "r1", base.Add(3*time.Minute)),
		msgAt(t, "u2", models.RoleUser, "q2", base.Add(24*time.Hour)),
		msgAt(t, "a2", models.RoleAssistant, "r2", base.Add(24*time.Hour+7*time.Minute)),
	}

	forward, err := analytics.AggregateDaily(messages)
	require.NoError(t, err)

	reversed := make([]*models.ChatMessage, len(messages))
	for i, m := range messages {
		reversed[len(messages)-1-i] = m
	}
	backward, err := analytics.AggregateDaily(reversed)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestAggregateDaily_BucketsSortedAscendingByDate(t *testing.T) {
	messages := []*models.ChatMessage{
		msgAt(t, "u2", models.RoleUser, "later", time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)),
		msgAt(t, "u1", models.RoleUser, "earlier", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	}

	buckets, err := analytics.AggregateDaily(messages)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2024-05-01", buckets[0].Date)
	assert.Equal(t, "2024-05-03", buckets[1].Date)
}

func TestAggregateDaily_UTCDateBoundary(t *testing.T) {
	// 23:58 UTC and a reply four minutes later land on different dates;
	// the latency sample belongs to the reply's date.
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "late question", time.Date(2024, 6, 1, 23, 58, 0, 0, time.UTC)),
		msgAt(t, "a1", models.RoleAssistant, "past-midnight answer", time.Date(2024, 6, 2, 0, 2, 0, 0, time.UTC)),
	}

	buckets, err := analytics.AggregateDaily(messages)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, 1, buckets[0].Conversations)
	assert.Equal(t, 0, buckets[0].ResponseCount)
	assert.Equal(t, 0, buckets[1].Conversations)
	assert.Equal(t, 1, buckets[1].ResponseCount)
	assert.InDelta(t, 4.0, buckets[1].AverageResponseTime(), 1e-9)
}

func TestAggregateDaily_Empty(t *testing.T) {
	buckets, err := analytics.AggregateDaily(nil)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestAggregateDaily_RejectsMissingTimestamp(t *testing.T) {
	messages := []*models.ChatMessage{
		{ID: "m1", UserID: "u", Role: models.RoleUser, Content: "no timestamp"},
	}

	_, err := analytics.AggregateDaily(messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "createdAt")
}
