package analytics

import (
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// ResponsePair links an assistant reply to the user message it answered.
type ResponsePair struct {
	Assistant *models.ChatMessage
	User      *models.ChatMessage
	// Minutes is the latency between the user message and the reply.
	Minutes float64
}

// pairResponses matches each assistant message in an ascending-time-ordered
// log with the nearest preceding user message and computes the response
// latency in minutes. Assistant messages with no earlier user message are
// excluded, not counted as zero-latency.
//
// The hosted dashboard this replaces paired a reply with the *first* user
// message earlier in the window, which attributes replies to stale turns
// when sessions interleave. Nearest-preceding is the corrected behavior.
func pairResponses(sorted []*models.ChatMessage) []ResponsePair {
	var pairs []ResponsePair

	for i, m := range sorted {
		if !m.IsAssistantMessage() {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			prev := sorted[j]
			if !prev.IsUserMessage() || !prev.CreatedAt.Before(m.CreatedAt) {
				continue
			}
			pairs = append(pairs, ResponsePair{
				Assistant: m,
				User:      prev,
				Minutes:   m.CreatedAt.Sub(prev.CreatedAt).Minutes(),
			})
			break
		}
	}

	return pairs
}
