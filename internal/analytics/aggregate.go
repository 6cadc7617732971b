package analytics

import (
	"sort"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// DailyBucket accumulates one calendar day of activity. Conversations
// counts user messages only; assistant replies feed the latency
// accumulators instead.
type DailyBucket struct {
	Date              string
	Conversations     int
	TotalResponseTime float64
	ResponseCount     int
}

// AverageResponseTime is the bucket's mean latency in minutes, 0 when the
// day saw no paired replies.
func (b *DailyBucket) AverageResponseTime() float64 {
	if b.ResponseCount == 0 {
		return 0
	}
	return b.TotalResponseTime / float64(b.ResponseCount)
}

// DailyBuckets is a day-ordered sequence of buckets.
type DailyBuckets []*DailyBucket

// DailyData projects the buckets into the chart payload, ascending by date.
func (bs DailyBuckets) DailyData() []DailyData {
	out := make([]DailyData, 0, len(bs))
	for _, b := range bs {
		out = append(out, DailyData{
			Date:          b.Date,
			Conversations: b.Conversations,
			ResponseTime:  b.AverageResponseTime(),
		})
	}
	return out
}

// AggregateDaily partitions the message log into per-UTC-date buckets,
// counting user messages as conversation volume and folding paired
// response latencies into the day's accumulators. The returned buckets are
// sorted ascending by date regardless of input order.
func AggregateDaily(messages []*models.ChatMessage) (DailyBuckets, error) {
	if err := validate(messages); err != nil {
		return nil, err
	}

	sorted := sortedAscending(messages)

	byDate := make(map[string]*DailyBucket)
	bucket := func(date string) *DailyBucket {
		b, ok := byDate[date]
		if !ok {
			b = &DailyBucket{Date: date}
			byDate[date] = b
		}
		return b
	}

	// Every message opens its date's bucket, so a day with only assistant
	// traffic still shows up in the chart with zero conversations.
	for _, m := range sorted {
		b := bucket(dateKey(m.CreatedAt))
		if m.IsUserMessage() {
			b.Conversations++
		}
	}

	for _, pair := range pairResponses(sorted) {
		b := bucket(dateKey(pair.Assistant.CreatedAt))
		b.TotalResponseTime += pair.Minutes
		b.ResponseCount++
	}

	buckets := make(DailyBuckets, 0, len(byDate))
	for _, b := range byDate {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})

	return buckets, nil
}
