package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/analytics"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

func TestBuildReport_EmptyLog(t *testing.T) {
	report, err := analytics.BuildReport(nil)
	require.NoError(t, err)

	assert.Empty(t, report.DailyData)
	assert.Equal(t, 0, report.Summary.TotalConversations)
	assert.Zero(t, report.Summary.AverageResponseTime)
	assert.Nil(t, report.Summary.BusiestDay)
	assert.Equal(t, 0, report.Summary.TotalDays)
}

func TestBuildReport_WorkedExample(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "I have a complaint about billing", base),
		msgAt(t, "a1", models.RoleAssistant, "Sorry to hear that...", base.Add(2*time.Minute)),
	}

	report, err := analytics.BuildReport(messages)
	require.NoError(t, err)

	require.Len(t, report.DailyData, 1)
	assert.Equal(t, "2024-01-01", report.DailyData[0].Date)
	assert.Equal(t, 1, report.DailyData[0].Conversations)
	assert.InDelta(t, 2.0, report.DailyData[0].ResponseTime, 1e-9)

	assert.Equal(t, 1, report.Summary.TotalConversations)
	assert.InDelta(t, 2.0, report.Summary.AverageResponseTime, 1e-9)
	require.NotNil(t, report.Summary.BusiestDay)
	assert.Equal(t, "2024-01-01", *report.Summary.BusiestDay)
	assert.Equal(t, 1, report.Summary.TotalDays)
}

func TestReduce_BusiestDayTieResolvesToEarliest(t *testing.T) {
	buckets := analytics.DailyBuckets{
		{Date: "2024-01-01", Conversations: 3},
		{Date: "2024-01-02", Conversations: 3},
		{Date: "2024-01-03", Conversations: 1},
	}

	summary := analytics.Reduce(buckets)
	require.NotNil(t, summary.BusiestDay)
	assert.Equal(t, "2024-01-01", *summary.BusiestDay)
	assert.Equal(t, 7, summary.TotalConversations)
	assert.Equal(t, 3, summary.TotalDays)
}

func TestReduce_MeanOfDailyMeans(t *testing.T) {
	// Day one averages 4 minutes over two replies, day two averages 1
	// minute over one reply. The summary is (4+1)/2, not the weighted
	// (3+5+1)/3.
	buckets := analytics.DailyBuckets{
		{Date: "2024-01-01", Conversations: 2, TotalResponseTime: 8, ResponseCount: 2},
		{Date: "2024-01-02", Conversations: 1, TotalResponseTime: 1, ResponseCount: 1},
	}

	summary := analytics.Reduce(buckets)
	assert.InDelta(t, 2.5, summary.AverageResponseTime, 1e-9)
}

func TestReduce_DaysWithoutPairingsDragTheMean(t *testing.T) {
	buckets := analytics.DailyBuckets{
		{Date: "2024-01-01", Conversations: 1, TotalResponseTime: 4, ResponseCount: 1},
		{Date: "2024-01-02", Conversations: 1},
	}

	summary := analytics.Reduce(buckets)
	assert.InDelta(t, 2.0, summary.AverageResponseTime, 1e-9)
}

func TestBuildReport_Idempotent(t *testing.T) {
	base := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "question", base),
		msgAt(t, "a1", models.RoleAssistant, "answer", base.Add(90*time.Second)),
		msgAt(t, "u2", models.RoleUser, "followup", base.Add(48*time.Hour)),
	}

	first, err := analytics.BuildReport(messages)
	require.NoError(t, err)
	second, err := analytics.BuildReport(messages)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
