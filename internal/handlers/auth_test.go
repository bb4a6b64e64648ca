package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/constants"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/repository"
	"github.com/ikedoebber/organizer-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler. The
// session middleware is required here, so these tests go through a
// full router instead of bare test contexts.
type AuthHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{})
	suite.Require().NoError(err)

	authService := services.NewAuthService(repository.NewUserRepository(suite.db))
	handler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("test-secret"))))
	suite.router.POST("/api/auth/signup", handler.Signup)
	suite.router.POST("/api/auth/login", handler.Login)
	suite.router.POST("/api/auth/logout", handler.Logout)
}

// TearDownTest runs after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthHandlerTestSuite) signup(username, password string) {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusCreated, w.Code)
}

func (suite *AuthHandlerTestSuite) login(target, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestSignup_NeverReturnsPassword() {
	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"password": "password123",
	})
	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "password")
	assert.NotContains(suite.T(), w.Body.String(), "hash")
}

func (suite *AuthHandlerTestSuite) TestSignup_DuplicateUsername() {
	suite.signup("alice", "password123")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password123"})
	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_SetsSessionCookie() {
	suite.signup("alice", "password123")

	w := suite.login("/api/auth/login", "alice", "password123")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotEmpty(suite.T(), w.Header().Get("Set-Cookie"))

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "/", response["redirect"])
	user := response["user"].(map[string]interface{})
	assert.Equal(suite.T(), "alice", user["username"])
}

func (suite *AuthHandlerTestSuite) TestLogin_HonorsSafeNext() {
	suite.signup("alice", "password123")

	w := suite.login("/api/auth/login?next=%2Fapi%2Ftasks", "alice", "password123")

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "/api/tasks", response["redirect"])
}

func (suite *AuthHandlerTestSuite) TestLogin_RejectsExternalNext() {
	suite.signup("alice", "password123")

	w := suite.login("/api/auth/login?next=https%3A%2F%2Fevil.example", "alice", "password123")

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "/", response["redirect"])
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.signup("alice", "password123")

	w := suite.login("/api/auth/login", "alice", "wrongpassword")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Empty(suite.T(), w.Header().Get("Set-Cookie"))
}

func (suite *AuthHandlerTestSuite) TestLogout() {
	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Logged out successfully")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
