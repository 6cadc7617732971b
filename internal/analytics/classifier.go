package analytics

import (
	"sort"
	"strings"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// Category is a dashboard topic bucket for a message.
type Category string

const (
	CategoryFeedback  Category = "feedback"
	CategoryComplaint Category = "complaint"
	CategoryUser      Category = "user"
	CategoryGeneral   Category = "general"
)

// classifierRules is evaluated top to bottom, first match wins. The order
// is load-bearing: "feedback about my account" must land in feedback, not
// user, to match what the dashboard has always shown.
var classifierRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"feedback", "suggestion"}, CategoryFeedback},
	{[]string{"complaint", "issue", "problem"}, CategoryComplaint},
	{[]string{"user", "account", "profile", "login", "signup", "password"}, CategoryUser},
}

// Classify assigns exactly one category to the given message content.
// Matching is case-insensitive substring search; content that matches no
// rule (including the empty string) is general.
func Classify(content string) Category {
	content = strings.ToLower(content)
	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(content, keyword) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// ClassifyMessage categorizes a message, honoring a pre-assigned type when
// it names one of the dashboard categories. Any other type value belongs
// to the chat widget's own taxonomy and is ignored here.
func ClassifyMessage(m *models.ChatMessage) Category {
	switch Category(m.Type) {
	case CategoryFeedback, CategoryComplaint, CategoryUser, CategoryGeneral:
		return Category(m.Type)
	}
	return Classify(m.Content)
}

// CategorizedMessages groups a message log into the four dashboard topic
// buckets. Each group keeps newest-first order.
type CategorizedMessages struct {
	Feedback   []*models.ChatMessage `json:"feedback"`
	Complaints []*models.ChatMessage `json:"complaints"`
	General    []*models.ChatMessage `json:"general"`
	User       []*models.ChatMessage `json:"user"`
}

// Categorize splits the log into topic buckets, ordered descending by
// CreatedAt within each bucket. Every message lands in exactly one bucket.
func Categorize(messages []*models.ChatMessage) (*CategorizedMessages, error) {
	if err := validate(messages); err != nil {
		return nil, err
	}

	sorted := make([]*models.ChatMessage, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	out := &CategorizedMessages{
		Feedback:   []*models.ChatMessage{},
		Complaints: []*models.ChatMessage{},
		General:    []*models.ChatMessage{},
		User:       []*models.ChatMessage{},
	}

	for _, m := range sorted {
		switch ClassifyMessage(m) {
		case CategoryFeedback:
			out.Feedback = append(out.Feedback, m)
		case CategoryComplaint:
			out.Complaints = append(out.Complaints, m)
		case CategoryUser:
			out.User = append(out.User, m)
		default:
			out.General = append(out.General, m)
		}
	}

	return out, nil
}
