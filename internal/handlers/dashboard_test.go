package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *DashboardHandler
}

// SetupTest runs before each test
func (suite *DashboardHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Goal{},
		&models.Appointment{},
	)
	suite.Require().NoError(err)

	dashboardService := services.NewDashboardService(
		repository.NewTaskRepository(suite.db),
		repository.NewGoalRepository(suite.db),
		repository.NewAppointmentRepository(suite.db),
	)

	suite.handler = NewDashboardHandler(dashboardService, nil)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *DashboardHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *DashboardHandlerTestSuite) createAuthContext(userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/dashboard", nil)
	c.Set(constants.ContextKeyUserID, userID)
	return c, w
}

func (suite *DashboardHandlerTestSuite) TestMainDashboard_EmptyState() {
	user := suite.createTestUser("alice")

	c, w := suite.createAuthContext(user.ID)
	suite.handler.MainDashboard(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Dashboard", response["page_title"])

	dashboard := response["dashboard"].(map[string]interface{})
	assert.Empty(suite.T(), dashboard["todo_tasks"])
	assert.Empty(suite.T(), dashboard["recent_goals"])
	assert.Empty(suite.T(), dashboard["all_recent_appointments"])

	taskStats := dashboard["task_stats"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), taskStats["total_tasks"])
}

func (suite *DashboardHandlerTestSuite) TestMainDashboard_AggregatesAllEntities() {
	user := suite.createTestUser("alice")
	today := time.Now().Format(models.DateLayout)

	suite.db.Create(&models.Task{
		Title:        "pending task",
		Priority:     models.PriorityHigh,
		Status:       models.TaskStatusTodo,
		AssignedToID: user.ID,
		CreatedByID:  user.ID,
	})
	suite.db.Create(&models.Goal{
		Title:       "weekly goal",
		Priority:    models.PriorityMedium,
		Status:      models.GoalStatusInProgress,
		Period:      models.GoalPeriodWeekly,
		CreatedByID: user.ID,
	})
	suite.db.Create(&models.Appointment{
		Title:     "today's meeting",
		Type:      models.AppointmentTypeReuniao,
		Priority:  models.AppointmentPriorityMedia,
		Status:    models.AppointmentStatusAgendado,
		UserID:    user.ID,
		Date:      today,
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	c, w := suite.createAuthContext(user.ID)
	suite.handler.MainDashboard(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	dashboard := response["dashboard"].(map[string]interface{})

	assert.Len(suite.T(), dashboard["todo_tasks"], 1)
	assert.Len(suite.T(), dashboard["goals_weekly"], 1)
	assert.Len(suite.T(), dashboard["recent_goals"], 1)
	assert.Len(suite.T(), dashboard["today_appointments"], 1)
	assert.Len(suite.T(), dashboard["all_recent_appointments"], 1)

	goalStats := dashboard["goal_stats"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), goalStats["total_goals"])
}

func (suite *DashboardHandlerTestSuite) TestMainDashboard_ScopedToUser() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")

	suite.db.Create(&models.Task{
		Title:        "bob's task",
		Priority:     models.PriorityMedium,
		Status:       models.TaskStatusTodo,
		AssignedToID: bob.ID,
		CreatedByID:  bob.ID,
	})

	c, w := suite.createAuthContext(alice.ID)
	suite.handler.MainDashboard(c)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	dashboard := response["dashboard"].(map[string]interface{})
	assert.Empty(suite.T(), dashboard["todo_tasks"])

	taskStats := dashboard["task_stats"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), taskStats["total_tasks"])
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
