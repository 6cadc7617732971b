package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/errors"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/mailer"
)

// EmailHandler manages outreach email: sending, templates, and contacts.
type EmailHandler struct {
	docDBClient docdb.Client
	mailer      mailer.Mailer
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(docDBClient docdb.Client, m mailer.Mailer) *EmailHandler {
	return &EmailHandler{docDBClient: docDBClient, mailer: m}
}

// SendEmailRequest is the outreach send payload. When TemplateID is set the
// stored template supplies the subject and content; explicit fields win.
type SendEmailRequest struct {
	To         string `json:"to" binding:"required,email"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
	TemplateID string `json:"templateId"`
}

// CreateTemplateRequest is the template creation payload.
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ImportContactsRequest is the contact import payload.
type ImportContactsRequest struct {
	Contacts []ContactEntry `json:"contacts" binding:"required,min=1,dive"`
	Source   string         `json:"source"`
}

// ContactEntry is one imported contact.
type ContactEntry struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Send handles POST /email/send
// @Summary Send an outreach email
// @Description Sends an email, optionally rendered from a stored template, and records it
// @Tags Email
// @Accept json
// @Produce json
// @Param request body SendEmailRequest true "Email"
// @Success 200 {object} models.SentEmail
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /email/send [post]
func (h *EmailHandler) Send(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	subject, content := req.Subject, req.Content
	if req.TemplateID != "" {
		template, err := h.docDBClient.Outreach().GetTemplate(c.Request.Context(), userID, req.TemplateID)
		if err != nil {
			middleware.HandleError(c, errors.NewInternalError("failed to load template", err))
			return
		}
		if template == nil {
			middleware.HandleError(c, errors.NewNotFoundError("template", req.TemplateID))
			return
		}
		if subject == "" {
			subject = template.Subject
		}
		if content == "" {
			content = template.Content
		}
	}
	if subject == "" || content == "" {
		middleware.HandleError(c, errors.NewValidationError("subject and content are required", "provide them inline or via templateId"))
		return
	}

	if err := h.mailer.Send(c.Request.Context(), &mailer.Message{To: req.To, Subject: subject, HTML: content}); err != nil {
		middleware.HandleError(c, errors.NewServiceUnavailableError("email delivery", err))
		return
	}

	record := &models.SentEmail{
		ID:         uuid.NewString(),
		UserID:     userID,
		Recipient:  req.To,
		Subject:    subject,
		Content:    content,
		TemplateID: req.TemplateID,
		SentAt:     time.Now().UTC(),
	}
	if err := h.docDBClient.Outreach().RecordSentEmail(c.Request.Context(), record); err != nil {
		// The email already left; the missing record is not worth a 500.
		log.Error().Err(err).Str("user_id", userID).Msg("failed to record sent email")
	}

	c.JSON(http.StatusOK, record)
}

// CreateTemplate handles POST /email/templates
// @Summary Create an email template
// @Tags Email
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Template"
// @Success 201 {object} models.EmailTemplate
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /email/templates [post]
func (h *EmailHandler) CreateTemplate(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	template := models.NewEmailTemplate(userID, req.Name, req.Subject, req.Content)
	if err := h.docDBClient.Outreach().AddTemplate(c.Request.Context(), template); err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to save template", err))
		return
	}

	c.JSON(http.StatusCreated, template)
}

// ListTemplates handles GET /email/templates
// @Summary List email templates
// @Tags Email
// @Produce json
// @Success 200 {array} models.EmailTemplate
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /email/templates [get]
func (h *EmailHandler) ListTemplates(c *gin.Context) {
	userID := middleware.GetUserID(c)

	templates, err := h.docDBClient.Outreach().ListTemplates(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to list templates", err))
		return
	}
	if templates == nil {
		templates = []*models.EmailTemplate{}
	}

	c.JSON(http.StatusOK, templates)
}

// ImportContacts handles POST /email/contacts
// @Summary Import contacts
// @Tags Email
// @Accept json
// @Produce json
// @Param request body ImportContactsRequest true "Contacts"
// @Success 201 {array} models.Contact
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /email/contacts [post]
func (h *EmailHandler) ImportContacts(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ImportContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	source := req.Source
	if source == "" {
		source = "import"
	}

	now := time.Now().UTC()
	contacts := make([]*models.Contact, 0, len(req.Contacts))
	for _, entry := range req.Contacts {
		contacts = append(contacts, &models.Contact{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      entry.Name,
			Email:     entry.Email,
			Source:    source,
			CreatedAt: now,
		})
	}

	if err := h.docDBClient.Outreach().AddContacts(c.Request.Context(), contacts); err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to import contacts", err))
		return
	}

	c.JSON(http.StatusCreated, contacts)
}

// ListContacts handles GET /email/contacts
// @Summary List contacts
// @Tags Email
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /email/contacts [get]
func (h *EmailHandler) ListContacts(c *gin.Context) {
	userID := middleware.GetUserID(c)

	contacts, err := h.docDBClient.Outreach().ListContacts(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to list contacts", err))
		return
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}

	c.JSON(http.StatusOK, contacts)
}
