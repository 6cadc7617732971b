package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/errors"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/mailer"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	mailer    mailer.Mailer
	recipient string
}

// NewContactHandler creates a new ContactHandler. recipient is the inbox
// that receives contact-form submissions.
func NewContactHandler(m mailer.Mailer, recipient string) *ContactHandler {
	return &ContactHandler{mailer: m, recipient: recipient}
}

// ContactRequest is a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /contact
// @Summary Submit the contact form
// @Description Forwards a contact-form submission to the support inbox. No authentication required.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Submission"
// @Success 200 {object} map[string]string
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	body := fmt.Sprintf(
		"<h2>New contact form submission</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		req.Name, req.Email, req.Message,
	)

	msg := &mailer.Message{
		To:      h.recipient,
		Subject: fmt.Sprintf("Contact form: %s", req.Name),
		HTML:    body,
	}
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		middleware.HandleError(c, errors.NewServiceUnavailableError("email delivery", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
