package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	domainerrors "github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/errors"
)

// DocumentsHandler manages the per-user knowledge base files.
type DocumentsHandler struct {
	docDBClient docdb.Client
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(docDBClient docdb.Client) *DocumentsHandler {
	return &DocumentsHandler{docDBClient: docDBClient}
}

// Upload handles POST /knowledge-base/documents
// @Summary Upload a document
// @Description Stores a knowledge-base file for the caller
// @Tags KnowledgeBase
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to upload"
// @Success 201 {object} models.Document
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /knowledge-base/documents [post]
func (h *DocumentsHandler) Upload(c *gin.Context) {
	userID := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("no file provided", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("failed to read uploaded file", err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.docDBClient.Documents().Upload(c.Request.Context(), userID, fileHeader.Filename, contentType, file)
	if err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("failed to store document", err))
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// List handles GET /knowledge-base/documents
// @Summary List documents
// @Description Returns the caller's knowledge-base documents
// @Tags KnowledgeBase
// @Produce json
// @Success 200 {array} models.Document
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /knowledge-base/documents [get]
func (h *DocumentsHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	docs, err := h.docDBClient.Documents().List(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleError(c, domainerrors.NewInternalError("failed to list documents", err))
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Delete handles DELETE /knowledge-base/documents/:id
// @Summary Delete a document
// @Description Removes a knowledge-base document owned by the caller
// @Tags KnowledgeBase
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /knowledge-base/documents/{id} [delete]
func (h *DocumentsHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	err := h.docDBClient.Documents().Delete(c.Request.Context(), userID, id)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, docdb.ErrDocumentNotFound):
		middleware.HandleError(c, domainerrors.NewNotFoundError("document", id))
	case errors.Is(err, docdb.ErrNotOwner):
		middleware.HandleError(c, domainerrors.NewForbiddenError("document belongs to another user"))
	default:
		middleware.HandleError(c, domainerrors.NewInternalError("failed to delete document", err))
	}
}
