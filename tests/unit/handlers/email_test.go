package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/handlers"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/mailer"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/tests/mocks"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/tests/testutils"
)

func setupEmailRouter(handler *handlers.EmailHandler) *gin.Engine {
	router := testutils.SetupTestRouter()
	authMw := middleware.NewAuthMiddleware()
	email := router.Group("/email", authMw.Authenticate())
	email.POST("/send", handler.Send)
	email.POST("/templates", handler.CreateTemplate)
	email.GET("/templates", handler.ListTemplates)
	email.POST("/contacts", handler.ImportContacts)
	email.GET("/contacts", handler.ListContacts)
	return router
}

func TestEmailHandler_Send_Inline(t *testing.T) {
	// Setup
	mockDocDB := mocks.NewMockDocDBClient()
	mockMailer := &mocks.MockMailer{}

	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *mailer.Message) bool {
		return msg.To == "lead@example.com" && msg.Subject == "Hello"
	})).Return(nil)
	mockDocDB.OutreachStore.On("RecordSentEmail", mock.Anything, mock.Anything).Return(nil)

	handler := handlers.NewEmailHandler(mockDocDB, mockMailer)
	router := setupEmailRouter(handler)

	body := handlers.SendEmailRequest{To: "lead@example.com", Subject: "Hello", Content: "<p>Hi</p>"}

	// Execute
	w := testutils.PerformRequest(router, "POST", "/email/send", body, testutils.AuthHeaders(testutils.TestUserID))

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)

	var sent models.SentEmail
	testutils.ParseJSONResponse(t, w, &sent)
	assert.Equal(t, "lead@example.com", sent.Recipient)

	mockMailer.AssertExpectations(t)
	mockDocDB.OutreachStore.AssertExpectations(t)
}

func TestEmailHandler_Send_FromTemplate(t *testing.T) {
	// Setup
	mockDocDB := mocks.NewMockDocDBClient()
	mockMailer := &mocks.MockMailer{}

	template := testutils.NewTestTemplate()
	mockDocDB.OutreachStore.On("GetTemplate", mock.Anything, testutils.TestUserID, template.ID).Return(template, nil)
	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *mailer.Message) bool {
		return msg.Subject == template.Subject && msg.HTML == template.Content
	})).Return(nil)
	mockDocDB.OutreachStore.On("RecordSentEmail", mock.Anything, mock.Anything).Return(nil)

	handler := handlers.NewEmailHandler(mockDocDB, mockMailer)
	router := setupEmailRouter(handler)

	body := handlers.SendEmailRequest{To: "lead@example.com", TemplateID: template.ID}

	// Execute
	w := testutils.PerformRequest(router, "POST", "/email/send", body, testutils.AuthHeaders(testutils.TestUserID))

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)
	mockMailer.AssertExpectations(t)
}

func TestEmailHandler_Send_UnknownTemplate(t *testing.T) {
	// Setup
	mockDocDB := mocks.NewMockDocDBClient()
	mockDocDB.OutreachStore.On("GetTemplate", mock.Anything, testutils.TestUserID, "missing").Return(nil, nil)

	handler := handlers.NewEmailHandler(mockDocDB, &mocks.MockMailer{})
	router := setupEmailRouter(handler)

	body := handlers.SendEmailRequest{To: "lead@example.com", TemplateID: "missing"}

	// Execute
	w := testutils.PerformRequest(router, "POST", "/email/send", body, testutils.AuthHeaders(testutils.TestUserID))

	// Assert
	testutils.AssertStatusCode(t, http.StatusNotFound, w)
}

func TestEmailHandler_Send_DeliveryFailure(t *testing.T) {
	// Setup
	mockMailer := &mocks.MockMailer{}
	mockMailer.On("Send", mock.Anything, mock.Anything).Return(assert.AnError)

	handler := handlers.NewEmailHandler(mocks.NewMockDocDBClient(), mockMailer)
	router := setupEmailRouter(handler)

	body := handlers.SendEmailRequest{To: "lead@example.com", Subject: "Hello", Content: "<p>Hi</p>"}

	// Execute
	w := testutils.PerformRequest(router, "POST", "/email/send", body, testutils.AuthHeaders(testutils.TestUserID))

	// Assert
	testutils.AssertStatusCode(t, http.StatusServiceUnavailable, w)
}

func TestEmailHandler_CreateAndListTemplates(t *testing.T) {
	// Setup
	mockDocDB := mocks.NewMockDocDBClient()
	mockDocDB.OutreachStore.On("AddTemplate", mock.Anything, mock.MatchedBy(func(tmpl *models.EmailTemplate) bool {
		return tmpl.UserID == testutils.TestUserID && tmpl.Name == "welcome" && tmpl.ID != ""
	})).Return(nil)
	mockDocDB.OutreachStore.On("ListTemplates", mock.Anything, testutils.TestUserID).
		Return([]*models.EmailTemplate{testutils.NewTestTemplate()}, nil)

	handler := handlers.NewEmailHandler(mockDocDB, &mocks.MockMailer{})
	router := setupEmailRouter(handler)

	body := handlers.CreateTemplateRequest{Name: "welcome", Subject: "Welcome aboard", Content: "<p>Hi</p>"}

	// Execute
	created := testutils.PerformRequest(router, "POST", "/email/templates", body, testutils.AuthHeaders(testutils.TestUserID))
	listed := testutils.PerformRequest(router, "GET", "/email/templates", nil, testutils.AuthHeaders(testutils.TestUserID))

	// Assert
	testutils.AssertStatusCode(t, http.StatusCreated, created)
	testutils.AssertStatusCode(t, http.StatusOK, listed)

	var templates []*models.EmailTemplate
	testutils.ParseJSONResponse(t, listed, &templates)
	assert.Len(t, templates, 1)

	mockDocDB.OutreachStore.AssertExpectations(t)
}

func TestEmailHandler_ImportContacts(t *testing.T) {
	// Setup
	mockDocDB := mocks.NewMockDocDBClient()
	mockDocDB.OutreachStore.On("AddContacts", mock.Anything, mock.MatchedBy(func(contacts []*models.Contact) bool {
		return len(contacts) == 2 && contacts[0].UserID == testutils.TestUserID && contacts[0].Source == "csv"
	})).Return(nil)

	handler := handlers.NewEmailHandler(mockDocDB, &mocks.MockMailer{})
	router := setupEmailRouter(handler)

	body := handlers.ImportContactsRequest{
		Source: "csv",
		Contacts: []handlers.ContactEntry{
			{Name: "Ada", Email: "ada@example.com"},
			{Name: "Grace", Email: "grace@example.com"},
		},
	}

	// Execute
	w := testutils.PerformRequest(router, "POST", "/email/contacts", body, testutils.AuthHeaders(testutils.TestUserID))

	// Assert
	testutils.AssertStatusCode(t, http.StatusCreated, w)
	mockDocDB.OutreachStore.AssertExpectations(t)
}

func TestContactHandler_Submit(t *testing.T) {
	// Setup
	mockMailer := &mocks.MockMailer{}
	mockMailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *mailer.Message) bool {
		return msg.To == "support@supportgenie.io"
	})).Return(nil)

	handler := handlers.NewContactHandler(mockMailer, "support@supportgenie.io")

	router := testutils.SetupTestRouter()
	router.POST("/contact", handler.Submit)

	body := handlers.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Love the product"}

	// Execute: no auth headers, the contact form is public
	w := testutils.PerformRequest(router, "POST", "/contact", body, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusOK, w)
	mockMailer.AssertExpectations(t)
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	// Setup
	handler := handlers.NewContactHandler(&mocks.MockMailer{}, "support@supportgenie.io")

	router := testutils.SetupTestRouter()
	router.POST("/contact", handler.Submit)

	body := handlers.ContactRequest{Name: "Ada", Email: "not-an-email", Message: "hi"}

	// Execute
	w := testutils.PerformRequest(router, "POST", "/contact", body, nil)

	// Assert
	testutils.AssertStatusCode(t, http.StatusBadRequest, w)
}
