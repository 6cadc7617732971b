// Package analytics turns a raw chat message log into dashboard-ready
// statistics. Every function here is a pure transformation over an
// in-memory slice: no I/O, no retained state, safe to call concurrently.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// Report is the payload served by the analytics endpoint. Field names are
// part of the contract consumed by the dashboard charts.
type Report struct {
	DailyData []DailyData `json:"dailyData"`
	Summary   Summary     `json:"summary"`
}

// DailyData is one calendar day of conversation activity.
type DailyData struct {
	Date          string  `json:"date"`
	Conversations int     `json:"conversations"`
	ResponseTime  float64 `json:"responseTime"`
}

// Summary aggregates the daily data into headline numbers. BusiestDay is
// nil (JSON null) when the input log is empty.
type Summary struct {
	TotalConversations  int     `json:"totalConversations"`
	AverageResponseTime float64 `json:"averageResponseTime"`
	BusiestDay          *string `json:"busiestDay"`
	TotalDays           int     `json:"totalDays"`
}

// BuildReport runs the full pipeline: validate, sort by time, bucket by
// day, reduce to a summary. An empty log yields zero-valued summaries, not
// an error.
func BuildReport(messages []*models.ChatMessage) (*Report, error) {
	buckets, err := AggregateDaily(messages)
	if err != nil {
		return nil, err
	}

	return &Report{
		DailyData: buckets.DailyData(),
		Summary:   Reduce(buckets),
	}, nil
}

// validate rejects records that would silently poison the aggregates
// downstream. Timestamps are the ordering key for everything, so a zero
// CreatedAt is a data-quality error, not something to skip over.
func validate(messages []*models.ChatMessage) error {
	for _, m := range messages {
		if m.CreatedAt.IsZero() {
			return fmt.Errorf("message %s has no createdAt timestamp", m.ID)
		}
	}
	return nil
}

// sortedAscending returns a copy of the log ordered by CreatedAt ascending.
// The caller's slice is never mutated and storage order never leaks into
// the aggregates.
func sortedAscending(messages []*models.ChatMessage) []*models.ChatMessage {
	sorted := make([]*models.ChatMessage, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// dateKey truncates a timestamp to its UTC calendar date.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
