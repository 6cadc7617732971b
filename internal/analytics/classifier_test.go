package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/analytics"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

func TestClassify_RuleMatching(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected analytics.Category
	}{
		{"feedback keyword", "I have some feedback for you", analytics.CategoryFeedback},
		{"suggestion keyword", "A suggestion: add dark mode", analytics.CategoryFeedback},
		{"complaint keyword", "I have a complaint about billing", analytics.CategoryComplaint},
		{"issue keyword", "There is an issue with my invoice", analytics.CategoryComplaint},
		{"problem keyword", "Big problem here", analytics.CategoryComplaint},
		{"password keyword", "Please reset my password", analytics.CategoryUser},
		{"account keyword", "Delete my account", analytics.CategoryUser},
		{"login keyword", "Cannot login anymore", analytics.CategoryUser},
		{"no keyword", "What are your opening hours?", analytics.CategoryGeneral},
		{"empty content", "", analytics.CategoryGeneral},
		{"case insensitive", "FEEDBACK please", analytics.CategoryFeedback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analytics.Classify(tt.content))
		})
	}
}

func TestClassify_RuleOrderWins(t *testing.T) {
	// Matches both the feedback rule and the user rule; the earlier rule
	// must win.
	assert.Equal(t, analytics.CategoryFeedback, analytics.Classify("feedback about my account"))

	// Matches both the complaint rule and the user rule.
	assert.Equal(t, analytics.CategoryComplaint, analytics.Classify("an issue with my profile"))
}

func TestClassifyMessage_TypePrecedence(t *testing.T) {
	msg := &models.ChatMessage{
		Content:   "please reset my password",
		Type:      "feedback",
		CreatedAt: time.Now().UTC(),
	}
	assert.Equal(t, analytics.CategoryFeedback, analytics.ClassifyMessage(msg))

	// A widget-taxonomy type that is not a dashboard category falls back
	// to content classification.
	msg.Type = "billing_inquiry"
	assert.Equal(t, analytics.CategoryUser, analytics.ClassifyMessage(msg))
}

func TestCategorize_EveryMessageInExactlyOneBucket(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	messages := []*models.ChatMessage{
		msgAt(t, "u1", models.RoleUser, "I have a complaint about billing", base),
		msgAt(t, "a1", models.RoleAssistant, "Sorry to hear that...", base.Add(2*time.Minute)),
		msgAt(t, "u2", models.RoleUser, "feedback about my account", base.Add(5*time.Minute)),
		msgAt(t, "u3", models.RoleUser, "hello there", base.Add(7*time.Minute)),
		msgAt(t, "u4", models.RoleUser, "reset my password", base.Add(9*time.Minute)),
	}

	out, err := analytics.Categorize(messages)
	require.NoError(t, err)

	total := len(out.Feedback) + len(out.Complaints) + len(out.General) + len(out.User)
	assert.Equal(t, len(messages), total)
	assert.Len(t, out.Complaints, 1)
	assert.Len(t, out.Feedback, 1)
	assert.Len(t, out.User, 1)
	assert.Len(t, out.General, 2)
}

func TestCategorize_NewestFirstWithinBuckets(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	older := msgAt(t, "g1", models.RoleUser, "hello", base)
	newer := msgAt(t, "g2", models.RoleUser, "hi again", base.Add(time.Hour))

	// Feed oldest-first; output must still be newest-first.
	out, err := analytics.Categorize([]*models.ChatMessage{older, newer})
	require.NoError(t, err)

	require.Len(t, out.General, 2)
	assert.Equal(t, "g2", out.General[0].ID)
	assert.Equal(t, "g1", out.General[1].ID)
}

func TestCategorize_RejectsMissingTimestamp(t *testing.T) {
	messages := []*models.ChatMessage{
		{ID: "bad", UserID: "u", Role: models.RoleUser, Content: "hello"},
	}

	_, err := analytics.Categorize(messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

// msgAt builds a test message with an explicit timestamp.
func msgAt(t *testing.T, id string, role models.MessageRole, content string, at time.Time) *models.ChatMessage {
	t.Helper()
	return &models.ChatMessage{
		ID:        id,
		UserID:    "user-test-123",
		Role:      role,
		Content:   content,
		CreatedAt: at,
	}
}
