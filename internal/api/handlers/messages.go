package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/analytics"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/errors"
)

// MessagesHandler serves the categorized message feed for the dashboard.
type MessagesHandler struct {
	docDBClient docdb.Client
}

// NewMessagesHandler creates a new MessagesHandler.
func NewMessagesHandler(docDBClient docdb.Client) *MessagesHandler {
	return &MessagesHandler{docDBClient: docDBClient}
}

// List handles GET /messages
// @Summary Categorized messages
// @Description Returns the caller's messages grouped into dashboard categories, newest first
// @Tags Messages
// @Produce json
// @Success 200 {object} analytics.CategorizedMessages
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /messages [get]
func (h *MessagesHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	messages, err := h.docDBClient.Messages().List(c.Request.Context(), &docdb.ListMessagesOptions{
		UserID:  userID,
		OrderBy: docdb.SortOrderDesc,
	})
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to fetch messages", err))
		return
	}

	categorized, err := analytics.Categorize(messages)
	if err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid message data", err.Error()))
		return
	}

	c.JSON(http.StatusOK, categorized)
}
