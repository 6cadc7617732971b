package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/cache"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/errors"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/assistant"
)

// ChatHandler handles the chat widget endpoints.
type ChatHandler struct {
	docDBClient docdb.Client
	assistant   assistant.Service
	cache       cache.Cache
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(docDBClient docdb.Client, assistantService assistant.Service, c cache.Cache) *ChatHandler {
	return &ChatHandler{
		docDBClient: docDBClient,
		assistant:   assistantService,
		cache:       c,
	}
}

// ChatTurn is one conversation entry in a chat request.
type ChatTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// SendChatRequest represents the request body for sending a chat message.
type SendChatRequest struct {
	Messages []ChatTurn `json:"messages" binding:"required,min=1,dive"`
}

// SendChatResponse represents the response for a chat exchange.
type SendChatResponse struct {
	Reply            string              `json:"reply"`
	UserMessage      *models.ChatMessage `json:"userMessage,omitempty"`
	AssistantMessage *models.ChatMessage `json:"assistantMessage,omitempty"`
}

// Send handles POST /chat
// @Summary Send a chat message
// @Description Generates an AI reply to the conversation and persists both turns
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body SendChatRequest true "Conversation ending with the user's new message"
// @Success 200 {object} SendChatResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	var req SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	last := req.Messages[len(req.Messages)-1]
	if last.Role != string(models.RoleUser) {
		middleware.HandleError(c, errors.NewValidationError("no user message found", "last message must have role user"))
		return
	}

	conversation := make([]*models.ChatMessage, 0, len(req.Messages))
	for _, turn := range req.Messages {
		conversation = append(conversation, &models.ChatMessage{
			Role:    models.MessageRole(turn.Role),
			Content: turn.Content,
		})
	}

	reply, err := h.assistant.Reply(ctx, conversation)
	if err != nil {
		middleware.HandleError(c, errors.NewServiceUnavailableError("assistant", err))
		return
	}

	// Persist both turns. A storage failure is logged but the user still
	// gets their reply.
	userMessage := models.NewChatMessage(userID, models.RoleUser, last.Content)
	assistantMessage := models.NewChatMessage(userID, models.RoleAssistant, reply)

	stored := true
	if err := h.docDBClient.Messages().Add(ctx, userMessage); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to store user message")
		stored = false
	}
	if stored {
		if err := h.docDBClient.Messages().Add(ctx, assistantMessage); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to store assistant message")
			stored = false
		}
	}

	resp := SendChatResponse{Reply: reply}
	if stored {
		resp.UserMessage = userMessage
		resp.AssistantMessage = assistantMessage
		invalidateAnalyticsCache(c, h.cache, userID)
	}

	c.JSON(http.StatusOK, resp)
}

// HistoryResponse represents the chat history payload.
type HistoryResponse struct {
	Messages []*models.ChatMessage `json:"messages"`
}

// History handles GET /chat/history
// @Summary Get chat history
// @Description Returns the caller's chat messages, oldest first
// @Tags Chat
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /chat/history [get]
func (h *ChatHandler) History(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	messages, err := h.docDBClient.Messages().List(ctx, &docdb.ListMessagesOptions{
		UserID:  userID,
		OrderBy: docdb.SortOrderAsc,
	})
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to fetch chat history", err))
		return
	}

	if messages == nil {
		messages = []*models.ChatMessage{}
	}

	c.JSON(http.StatusOK, HistoryResponse{Messages: messages})
}
