package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/cache"
	"github.com/ikedoebber/organizer-api/internal/dto"
	apierrors "github.com/ikedoebber/organizer-api/internal/errors"
	"github.com/ikedoebber/organizer-api/internal/middleware"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/repository"
	"github.com/ikedoebber/organizer-api/internal/services"
	"github.com/ikedoebber/organizer-api/internal/utils"
	"gorm.io/gorm"
)

type GoalHandler struct {
	goalRepo         repository.GoalRepository
	goalService      *services.GoalService
	dashboardService *services.DashboardService
	dashboardCache   *cache.DashboardCache
}

func NewGoalHandler(
	goalRepo repository.GoalRepository,
	goalService *services.GoalService,
	dashboardService *services.DashboardService,
	dashboardCache *cache.DashboardCache,
) *GoalHandler {
	return &GoalHandler{
		goalRepo:         goalRepo,
		goalService:      goalService,
		dashboardService: dashboardService,
		dashboardCache:   dashboardCache,
	}
}

// ListGoals returns the user's goals with optional status, priority,
// period and free-text filters, paginated at a fixed page size.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var filter repository.GoalListFilter
	if raw := c.Query("status"); raw != "" {
		status := models.GoalStatus(raw)
		if status.IsValid() {
			filter.Status = &status
		}
	}
	if raw := c.Query("priority"); raw != "" {
		priority := models.Priority(raw)
		if priority.IsValid() {
			filter.Priority = &priority
		}
	}
	if raw := c.Query("period"); raw != "" {
		period := models.GoalPeriod(raw)
		if period.IsValid() {
			filter.Period = &period
		}
	}
	filter.Search = c.Query("search")

	goals, pagination, err := h.goalRepo.List(userID, filter, utils.GetPaginationParams(c))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch goals")
		return
	}

	c.JSON(http.StatusOK, dto.GoalListResponse{
		Goals:           dto.ToGoalDTOs(goals, time.Now()),
		Pagination:      pagination,
		StatusChoices:   dto.GoalStatusChoices(),
		PriorityChoices: dto.PriorityChoices(),
		PeriodChoices:   dto.GoalPeriodChoices(),
	})
}

// GetGoal returns one of the user's goals by ID.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	goal, ok := h.findGoal(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalDTO(*goal, time.Now()))
}

// CreateGoal creates a new goal owned by the current user.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateGoalRequest struct {
		Title       string     `json:"title" binding:"required,max=200"`
		Description string     `json:"description"`
		Priority    string     `json:"priority"`
		Status      string     `json:"status"`
		Period      string     `json:"period"`
		DueDate     *time.Time `json:"due_date"`
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	goal := models.Goal{
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.PriorityMedium,
		Status:      models.GoalStatusNotStarted,
		Period:      models.GoalPeriodAnnual,
		CreatedByID: userID,
		DueDate:     req.DueDate,
	}
	if req.Priority != "" {
		priority := models.Priority(req.Priority)
		if !priority.IsValid() {
			apierrors.BadRequest(c, "Prioridade inválida")
			return
		}
		goal.Priority = priority
	}
	if req.Status != "" {
		status := models.GoalStatus(req.Status)
		if !status.IsValid() {
			apierrors.BadRequest(c, "Status inválido")
			return
		}
		goal.Status = status
	}
	if req.Period != "" {
		period := models.GoalPeriod(req.Period)
		if !period.IsValid() {
			apierrors.BadRequest(c, "Período inválido")
			return
		}
		goal.Period = period
	}

	if err := h.goalRepo.Create(&goal); err != nil {
		apierrors.InternalError(c, "Failed to create goal")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusCreated, dto.ToGoalDTO(goal, time.Now()))
}

// UpdateGoal replaces the editable fields of one of the user's goals.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	goal, ok := h.findGoal(c, userID)
	if !ok {
		return
	}

	type UpdateGoalRequest struct {
		Title       string     `json:"title" binding:"required,max=200"`
		Description string     `json:"description"`
		Priority    string     `json:"priority" binding:"required"`
		Status      string     `json:"status" binding:"required"`
		Period      string     `json:"period" binding:"required"`
		DueDate     *time.Time `json:"due_date"`
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	priority := models.Priority(req.Priority)
	status := models.GoalStatus(req.Status)
	period := models.GoalPeriod(req.Period)
	if !priority.IsValid() {
		apierrors.BadRequest(c, "Prioridade inválida")
		return
	}
	if !status.IsValid() {
		apierrors.BadRequest(c, "Status inválido")
		return
	}
	if !period.IsValid() {
		apierrors.BadRequest(c, "Período inválido")
		return
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Priority = priority
	goal.Status = status
	goal.Period = period
	goal.DueDate = req.DueDate

	if err := h.goalRepo.Update(goal); err != nil {
		apierrors.InternalError(c, "Failed to update goal")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, dto.ToGoalDTO(*goal, time.Now()))
}

// DeleteGoal removes one of the user's goals.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	goal, ok := h.findGoal(c, userID)
	if !ok {
		return
	}

	if err := h.goalRepo.Delete(goal.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete goal")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Meta excluída com sucesso",
	})
}

// GoalsBoard partitions the user's goals by period. XHR callers get
// the bare partial; page callers get the wrapped payload.
func (h *GoalHandler) GoalsBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	board, err := h.goalRepo.Board(userID)
	if err != nil {
		log.Printf("goals board failed for user %d: %v", userID, err)
		if middleware.IsXHR(c) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar goals"})
		}
		return
	}

	boardDTO := dto.ToGoalBoardDTO(board, time.Now())
	if middleware.IsXHR(c) {
		c.JSON(http.StatusOK, boardDTO)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page_title": "Board de Metas",
		"board":      boardDTO,
	})
}

// GoalDashboard returns the per-entity goal summary.
func (h *GoalHandler) GoalDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	summary, err := h.dashboardService.GoalSummary(userID, time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to load goal dashboard")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateGoalPeriod applies a period change via AJAX. Only POST is
// accepted; anything else is a 400.
func (h *GoalHandler) UpdateGoalPeriod(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Método inválido"})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdatePeriodRequest struct {
		ID     uint64 `json:"id"`
		Period string `json:"period"`
	}

	var req UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido."})
		return
	}
	if req.ID == 0 || req.Period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID e período são obrigatórios."})
		return
	}

	goal, err := h.goalService.UpdatePeriod(userID, req.ID, models.GoalPeriod(req.Period))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Período inválido."})
		case errors.Is(err, services.ErrGoalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meta não encontrada."})
		default:
			log.Printf("goal period update failed for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno ao atualizar a meta."})
		}
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Período atualizado com sucesso.",
		"goal_id":    goal.ID,
		"new_period": goal.Period,
	})
}

// findGoal resolves the :id parameter to one of the user's goals,
// writing the error response on failure.
func (h *GoalHandler) findGoal(c *gin.Context, userID uint64) (*models.Goal, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid goal ID")
		return nil, false
	}

	goal, err := h.goalRepo.FindByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Meta não encontrada")
		} else {
			apierrors.InternalError(c, "Failed to fetch goal")
		}
		return nil, false
	}
	return goal, true
}
