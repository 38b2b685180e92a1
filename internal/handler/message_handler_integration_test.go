package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/say2me/backend/internal/handler"
	"github.com/say2me/backend/internal/models"
	"github.com/say2me/backend/internal/repository"
	"github.com/say2me/backend/internal/service"
	"github.com/say2me/backend/internal/testutil"
	"github.com/say2me/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MessageHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB   *testutil.TestDatabase
	router   *gin.Engine
	testUser *models.User
}

func (s *MessageHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	s.testDB = testutil.SetupTestDatabase(s.T())

	userRepo := repository.NewUserRepository(s.testDB.DB)
	messageRepo := repository.NewMessageRepository(s.testDB.DB)
	pageService := service.NewPageService(userRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, 100)

	pageHandler := handler.NewPageHandler(pageService)
	messageHandler := handler.NewMessageHandler(messageService)

	s.router = gin.New()
	s.router.POST("/api/pages", pageHandler.CreatePage)
	s.router.GET("/api/pages/:username", pageHandler.GetPage)
	s.router.GET("/api/messages", messageHandler.ListGlobal)
	s.router.POST("/api/messages", messageHandler.PostGlobal)
	s.router.GET("/api/messages/:userId", messageHandler.ListForUser)
	s.router.POST("/api/messages/:userId", messageHandler.PostToUser)
}

func (s *MessageHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *MessageHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	s.testUser = testutil.CreateTestUser("alice")
	assert.NoError(s.T(), s.testDB.DB.Create(s.testUser).Error)
}

func (s *MessageHandlerIntegrationTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MessageHandlerIntegrationTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// The end-to-end flow: create alice's page, post to it, read it back.
func (s *MessageHandlerIntegrationTestSuite) TestPostAndReadUserFeed() {
	w := s.request(http.MethodPost, "/api/messages/"+s.testUser.ID.String(), `{"text":"hello"}`)
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	response := s.decode(w)
	assert.Equal(s.T(), "Message saved successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(s.T(), "hello", data["message_text"])
	assert.NotEmpty(s.T(), data["id"])
	assert.NotEmpty(s.T(), data["timestamp"])

	w = s.request(http.MethodGet, "/api/messages/"+s.testUser.ID.String()+"?page=1", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	feed := s.decode(w)["data"].([]interface{})
	assert.Len(s.T(), feed, 1)
	first := feed[0].(map[string]interface{})
	assert.Equal(s.T(), "hello", first["message_text"])
}

func (s *MessageHandlerIntegrationTestSuite) TestPostToUnknownUser() {
	w := s.request(http.MethodPost, "/api/messages/"+uuid.New().String(), `{"text":"hello"}`)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	response := s.decode(w)
	assert.Equal(s.T(), "User not found", response["error"])

	var count int64
	s.testDB.DB.Model(&models.Message{}).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

func (s *MessageHandlerIntegrationTestSuite) TestPostToMalformedUserID() {
	w := s.request(http.MethodPost, "/api/messages/not-a-uuid", `{"text":"hello"}`)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *MessageHandlerIntegrationTestSuite) TestPostGlobal() {
	w := s.request(http.MethodPost, "/api/messages", `{"text":"to the wall"}`)
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/api/messages", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	feed := s.decode(w)["data"].([]interface{})
	assert.Len(s.T(), feed, 1)
	first := feed[0].(map[string]interface{})
	assert.Equal(s.T(), "to the wall", first["message_text"])
}

func (s *MessageHandlerIntegrationTestSuite) TestPostValidationFailure() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "Empty text", body: `{"text":""}`},
		{name: "Whitespace text", body: `{"text":"   "}`},
		{name: "Missing text", body: `{}`},
		{name: "Non-string text", body: `{"text":123}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := s.request(http.MethodPost, "/api/messages", tc.body)
			assert.Equal(s.T(), http.StatusBadRequest, w.Code)

			response := s.decode(w)
			assert.Equal(s.T(), "Validation failed", response["message"])
			assert.NotEmpty(s.T(), response["errors"])
		})
	}
}

func (s *MessageHandlerIntegrationTestSuite) TestPostStoresEscapedMarkup() {
	w := s.request(http.MethodPost, "/api/messages", `{"text":"<script>alert(1)</script>"}`)
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	data := s.decode(w)["data"].(map[string]interface{})
	assert.NotContains(s.T(), data["message_text"], "<script>")
	assert.Contains(s.T(), data["message_text"], "&lt;script&gt;")
}

func (s *MessageHandlerIntegrationTestSuite) TestListPaginates() {
	for i := 0; i < 25; i++ {
		w := s.request(http.MethodPost, "/api/messages", `{"text":"wall-`+strconv.Itoa(i)+`"}`)
		assert.Equal(s.T(), http.StatusCreated, w.Code)
	}

	w := s.request(http.MethodGet, "/api/messages?page=1", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Len(s.T(), s.decode(w)["data"].([]interface{}), 20)

	w = s.request(http.MethodGet, "/api/messages?page=2", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Len(s.T(), s.decode(w)["data"].([]interface{}), 5)

	// Out-of-range page: empty data, still 200
	w = s.request(http.MethodGet, "/api/messages?page=9", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Empty(s.T(), s.decode(w)["data"])
}

func (s *MessageHandlerIntegrationTestSuite) TestListNonNumericPageDefaultsToFirst() {
	w := s.request(http.MethodPost, "/api/messages", `{"text":"hello"}`)
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/api/messages?page=abc", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Len(s.T(), s.decode(w)["data"].([]interface{}), 1)
}

func (s *MessageHandlerIntegrationTestSuite) TestListForMalformedUserID() {
	// An unknown id matches no rows, a malformed one behaves the same
	w := s.request(http.MethodGet, "/api/messages/not-a-uuid", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Empty(s.T(), s.decode(w)["data"])
}

func TestMessageHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerIntegrationTestSuite))
}
