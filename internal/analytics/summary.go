package analytics

// Reduce collapses the day-ordered buckets into the headline summary.
//
// AverageResponseTime is the mean of the per-day averages, not a weighted
// mean over individual replies. The dashboards have always displayed the
// per-day mean, so it is preserved here for output parity.
func Reduce(buckets DailyBuckets) Summary {
	summary := Summary{TotalDays: len(buckets)}
	if len(buckets) == 0 {
		return summary
	}

	var responseTimeSum float64
	busiest := buckets[0]

	for _, b := range buckets {
		summary.TotalConversations += b.Conversations
		responseTimeSum += b.AverageResponseTime()
		// Strictly greater keeps the earliest date on ties.
		if b.Conversations > busiest.Conversations {
			busiest = b
		}
	}

	summary.AverageResponseTime = responseTimeSum / float64(len(buckets))
	busiestDay := busiest.Date
	summary.BusiestDay = &busiestDay

	return summary
}
