package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/errors"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/pkg/encryption"
)

// SettingsHandler manages per-user dashboard settings.
type SettingsHandler struct {
	docDBClient docdb.Client
	encryptor   encryption.Encryptor
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(docDBClient docdb.Client, encryptor encryption.Encryptor) *SettingsHandler {
	return &SettingsHandler{docDBClient: docDBClient, encryptor: encryptor}
}

// UpdateSettingsRequest is the settings update payload. EmailPassword is
// accepted on write but never returned on read.
type UpdateSettingsRequest struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"darkMode"`
	Language      string `json:"language" binding:"required"`
	Timezone      string `json:"timezone" binding:"required"`
	EmailAddress  string `json:"emailAddress" binding:"omitempty,email"`
	EmailPassword string `json:"emailPassword"`
}

// Get handles GET /settings
// @Summary Get settings
// @Description Returns the caller's settings, or defaults when none are saved
// @Tags Settings
// @Produce json
// @Success 200 {object} models.UserSettings
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)

	settings, err := h.docDBClient.Settings().Get(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to fetch settings", err))
		return
	}
	if settings == nil {
		settings = models.DefaultSettings(userID)
	}

	c.JSON(http.StatusOK, settings)
}

// Update handles POST /settings
// @Summary Update settings
// @Description Creates or replaces the caller's settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /settings [post]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	settings := &models.UserSettings{
		UserID:        userID,
		Notifications: req.Notifications,
		DarkMode:      req.DarkMode,
		Language:      req.Language,
		Timezone:      req.Timezone,
		EmailAddress:  req.EmailAddress,
	}

	if req.EmailPassword != "" {
		encrypted, err := h.encryptor.EncryptString(req.EmailPassword)
		if err != nil {
			middleware.HandleError(c, errors.NewInternalError("failed to encrypt credentials", err))
			return
		}
		settings.EmailPassword = encrypted
	} else if existing, err := h.docDBClient.Settings().Get(c.Request.Context(), userID); err == nil && existing != nil {
		// An update without a new password keeps the stored one.
		settings.EmailPassword = existing.EmailPassword
	}

	if err := h.docDBClient.Settings().Upsert(c.Request.Context(), settings); err != nil {
		middleware.HandleError(c, errors.NewInternalError("failed to save settings", err))
		return
	}

	c.JSON(http.StatusOK, settings)
}
