package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

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

// GoalHandlerTestSuite defines the test suite for GoalHandler
type GoalHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *GoalHandler
}

// SetupTest runs before each test
func (suite *GoalHandlerTestSuite) SetupTest() {
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

	goalRepo := repository.NewGoalRepository(suite.db)
	dashboardService := services.NewDashboardService(
		repository.NewTaskRepository(suite.db),
		goalRepo,
		repository.NewAppointmentRepository(suite.db),
	)
	suite.handler = NewGoalHandler(goalRepo, services.NewGoalService(goalRepo), dashboardService, nil)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *GoalHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *GoalHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *GoalHandlerTestSuite) createTestGoal(title string, userID uint64, period models.GoalPeriod) *models.Goal {
	goal := &models.Goal{
		Title:       title,
		Priority:    models.PriorityMedium,
		Status:      models.GoalStatusNotStarted,
		Period:      period,
		CreatedByID: userID,
	}
	suite.db.Create(goal)
	return goal
}

func (suite *GoalHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func (suite *GoalHandlerTestSuite) TestCreateGoal_DefaultsPeriodToAnnual() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{"title": "Nova meta"})
	c, w := suite.createAuthContext("POST", "/api/goals", body, user.ID)

	suite.handler.CreateGoal(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var stored models.Goal
	suite.db.First(&stored)
	assert.Equal(suite.T(), models.GoalPeriodAnnual, stored.Period)
	assert.Equal(suite.T(), models.GoalStatusNotStarted, stored.Status)
}

func (suite *GoalHandlerTestSuite) TestUpdateGoalPeriod_Success() {
	user := suite.createTestUser("alice")
	goal := suite.createTestGoal("Test Goal", user.ID, models.GoalPeriodWeekly)

	body, _ := json.Marshal(map[string]interface{}{
		"id":     goal.ID,
		"period": "monthly",
	})
	c, w := suite.createAuthContext("POST", "/api/goals/update-period", body, user.ID)

	suite.handler.UpdateGoalPeriod(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["success"])
	assert.Equal(suite.T(), "Período atualizado com sucesso.", response["message"])
	assert.Equal(suite.T(), "monthly", response["new_period"])

	var stored models.Goal
	suite.db.First(&stored, goal.ID)
	assert.Equal(suite.T(), models.GoalPeriodMonthly, stored.Period)
}

func (suite *GoalHandlerTestSuite) TestUpdateGoalPeriod_InvalidPeriod() {
	user := suite.createTestUser("alice")
	goal := suite.createTestGoal("Test Goal", user.ID, models.GoalPeriodWeekly)

	body, _ := json.Marshal(map[string]interface{}{
		"id":     goal.ID,
		"period": "decennial",
	})
	c, w := suite.createAuthContext("POST", "/api/goals/update-period", body, user.ID)

	suite.handler.UpdateGoalPeriod(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Período inválido.")

	var stored models.Goal
	suite.db.First(&stored, goal.ID)
	assert.Equal(suite.T(), models.GoalPeriodWeekly, stored.Period)
}

func (suite *GoalHandlerTestSuite) TestUpdateGoalPeriod_MissingFields() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{"period": ""})
	c, w := suite.createAuthContext("POST", "/api/goals/update-period", body, user.ID)

	suite.handler.UpdateGoalPeriod(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ID e período são obrigatórios.")
}

func (suite *GoalHandlerTestSuite) TestUpdateGoalPeriod_RejectsNonPost() {
	user := suite.createTestUser("alice")

	c, w := suite.createAuthContext("GET", "/api/goals/update-period", nil, user.ID)

	suite.handler.UpdateGoalPeriod(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Método inválido")
}

func (suite *GoalHandlerTestSuite) TestUpdateGoalPeriod_NotOwnedReportsNotFound() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	goal := suite.createTestGoal("bob's goal", bob.ID, models.GoalPeriodWeekly)

	body, _ := json.Marshal(map[string]interface{}{
		"id":     goal.ID,
		"period": "annual",
	})
	c, w := suite.createAuthContext("POST", "/api/goals/update-period", body, alice.ID)

	suite.handler.UpdateGoalPeriod(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Meta não encontrada.")
}

func (suite *GoalHandlerTestSuite) TestGoalsBoard_PartitionsByPeriod() {
	user := suite.createTestUser("alice")
	suite.createTestGoal("weekly goal", user.ID, models.GoalPeriodWeekly)
	suite.createTestGoal("annual goal", user.ID, models.GoalPeriodAnnual)

	c, w := suite.createAuthContext("GET", "/api/goals/board", nil, user.ID)
	c.Request.Header.Set(constants.XHRHeader, constants.XHRHeaderValue)

	suite.handler.GoalsBoard(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var board map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &board))
	assert.Len(suite.T(), board["goals_weekly"], 1)
	assert.Len(suite.T(), board["goals_annual"], 1)
	assert.Empty(suite.T(), board["goals_monthly"])
}

func (suite *GoalHandlerTestSuite) TestListGoals_PeriodFilter() {
	user := suite.createTestUser("alice")
	suite.createTestGoal("weekly goal", user.ID, models.GoalPeriodWeekly)
	suite.createTestGoal("annual goal", user.ID, models.GoalPeriodAnnual)

	c, w := suite.createAuthContext("GET", "/api/goals", nil, user.ID)
	c.Request.URL.RawQuery = "period=weekly"

	suite.handler.ListGoals(c)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	goals := response["goals"].([]interface{})
	suite.Require().Len(goals, 1)
	assert.Equal(suite.T(), "weekly goal", goals[0].(map[string]interface{})["title"])
}

func (suite *GoalHandlerTestSuite) TestGoalDashboard_StatsAndRecent() {
	user := suite.createTestUser("alice")
	for i := 0; i < 7; i++ {
		suite.createTestGoal(fmt.Sprintf("Goal %d", i), user.ID, models.GoalPeriodWeekly)
	}
	completed := suite.createTestGoal("done goal", user.ID, models.GoalPeriodAnnual)
	suite.db.Model(completed).Update("status", models.GoalStatusCompleted)

	c, w := suite.createAuthContext("GET", "/api/goals/dashboard", nil, user.ID)
	suite.handler.GoalDashboard(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	stats := response["stats"].(map[string]interface{})
	assert.Equal(suite.T(), float64(8), stats["total_goals"])
	assert.Equal(suite.T(), float64(1), stats["completed_goals"])

	recent := response["recent_goals"].([]interface{})
	assert.Len(suite.T(), recent, 5)
}

func (suite *GoalHandlerTestSuite) TestGoalDashboard_ScopedToUser() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	suite.createTestGoal("bob's goal", bob.ID, models.GoalPeriodWeekly)

	c, w := suite.createAuthContext("GET", "/api/goals/dashboard", nil, alice.ID)
	suite.handler.GoalDashboard(c)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	stats := response["stats"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), stats["total_goals"])
	assert.Empty(suite.T(), response["recent_goals"])
}

func (suite *GoalHandlerTestSuite) TestListGoals_IncludesChoiceSets() {
	user := suite.createTestUser("alice")

	c, w := suite.createAuthContext("GET", "/api/goals", nil, user.ID)
	suite.handler.ListGoals(c)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	periods := response["period_choices"].([]interface{})
	suite.Require().Len(periods, 5)
	first := periods[0].(map[string]interface{})
	assert.Equal(suite.T(), "weekly", first["value"])
	assert.Equal(suite.T(), "Semanal", first["label"])

	assert.Len(suite.T(), response["status_choices"], 3)
	assert.Len(suite.T(), response["priority_choices"], 3)
}

func TestGoalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}
