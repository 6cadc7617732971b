package assistant

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// OpenAIService implements Service against the OpenAI chat completion API.
type OpenAIService struct {
	client       *openai.Client
	model        string
	systemPrompt string
	maxTokens    int
	logger       zerolog.Logger
}

// Config holds the OpenAI assistant configuration.
type Config struct {
	APIKey       string
	Model        string
	SystemPrompt string
	MaxTokens    int
}

// NewOpenAIService creates an assistant backed by OpenAI chat completions.
func NewOpenAIService(cfg Config, logger zerolog.Logger) (*OpenAIService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	return &OpenAIService{
		client:       openai.NewClient(cfg.APIKey),
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
		maxTokens:    cfg.MaxTokens,
		logger:       logger,
	}, nil
}

// Reply generates an assistant response to the conversation.
func (s *OpenAIService) Reply(ctx context.Context, conversation []*models.ChatMessage) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(conversation)+1)
	if s.systemPrompt != "" {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: s.systemPrompt,
		})
	}
	for _, m := range conversation {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		Messages:  chatMessages,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	s.logger.Debug().
		Str("model", resp.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("assistant reply generated")

	return resp.Choices[0].Message.Content, nil
}
