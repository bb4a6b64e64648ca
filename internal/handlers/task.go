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

type TaskHandler struct {
	taskRepo         repository.TaskRepository
	taskService      *services.TaskService
	dashboardService *services.DashboardService
	dashboardCache   *cache.DashboardCache
}

func NewTaskHandler(
	taskRepo repository.TaskRepository,
	taskService *services.TaskService,
	dashboardService *services.DashboardService,
	dashboardCache *cache.DashboardCache,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:         taskRepo,
		taskService:      taskService,
		dashboardService: dashboardService,
		dashboardCache:   dashboardCache,
	}
}

// ListTasks returns the user's tasks with optional status, priority and
// free-text filters, paginated at a fixed page size.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var filter repository.TaskListFilter
	if raw := c.Query("status"); raw != "" {
		status := models.TaskStatus(raw)
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
	filter.Search = c.Query("search")

	tasks, pagination, err := h.taskRepo.List(userID, filter, utils.GetPaginationParams(c))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks:           dto.ToTaskDTOs(tasks, time.Now()),
		Pagination:      pagination,
		StatusChoices:   dto.TaskStatusChoices(),
		PriorityChoices: dto.PriorityChoices(),
	})
}

// GetTask returns one of the user's tasks by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	task, ok := h.findTask(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task, time.Now()))
}

// CreateTask creates a new task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title          string     `json:"title" binding:"required,max=200"`
		Description    string     `json:"description"`
		Priority       string     `json:"priority"`
		Status         string     `json:"status"`
		DueDate        *time.Time `json:"due_date"`
		EstimatedHours *float64   `json:"estimated_hours"`
		ActualHours    *float64   `json:"actual_hours"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task := models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       models.PriorityMedium,
		Status:         models.TaskStatusTodo,
		AssignedToID:   userID,
		CreatedByID:    userID,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
	}
	if req.Priority != "" {
		priority := models.Priority(req.Priority)
		if !priority.IsValid() {
			apierrors.BadRequest(c, "Prioridade inválida")
			return
		}
		task.Priority = priority
	}
	if req.Status != "" {
		status := models.TaskStatus(req.Status)
		if !status.IsValid() {
			apierrors.BadRequest(c, "Status inválido")
			return
		}
		task.Status = status
	}

	if err := h.taskRepo.Create(&task); err != nil {
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusCreated, dto.ToTaskDTO(task, time.Now()))
}

// UpdateTask replaces the editable fields of one of the user's tasks.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	task, ok := h.findTask(c, userID)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title          string     `json:"title" binding:"required,max=200"`
		Description    string     `json:"description"`
		Priority       string     `json:"priority" binding:"required"`
		Status         string     `json:"status" binding:"required"`
		DueDate        *time.Time `json:"due_date"`
		EstimatedHours *float64   `json:"estimated_hours"`
		ActualHours    *float64   `json:"actual_hours"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	priority := models.Priority(req.Priority)
	status := models.TaskStatus(req.Status)
	if !priority.IsValid() {
		apierrors.BadRequest(c, "Prioridade inválida")
		return
	}
	if !status.IsValid() {
		apierrors.BadRequest(c, "Status inválido")
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Priority = priority
	task.Status = status
	task.DueDate = req.DueDate
	task.EstimatedHours = req.EstimatedHours
	task.ActualHours = req.ActualHours

	if err := h.taskRepo.Update(task); err != nil {
		apierrors.InternalError(c, "Failed to update task")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task, time.Now()))
}

// DeleteTask removes one of the user's tasks.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	task, ok := h.findTask(c, userID)
	if !ok {
		return
	}

	if err := h.taskRepo.Delete(task.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Tarefa excluída com sucesso",
	})
}

// TasksBoard partitions the user's tasks by status. XHR callers get
// the bare partial; page callers get the wrapped payload. The data is
// the same either way.
func (h *TaskHandler) TasksBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	board, err := h.taskRepo.Board(userID)
	if err != nil {
		log.Printf("tasks board failed for user %d: %v", userID, err)
		if middleware.IsXHR(c) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar tasks"})
		}
		return
	}

	now := time.Now()
	boardDTO := dto.TaskBoardDTO{
		Todo:       dto.ToTaskDTOs(board[models.TaskStatusTodo], now),
		InProgress: dto.ToTaskDTOs(board[models.TaskStatusInProgress], now),
		Done:       dto.ToTaskDTOs(board[models.TaskStatusDone], now),
	}

	if middleware.IsXHR(c) {
		c.JSON(http.StatusOK, boardDTO)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page_title": "Board de Tarefas",
		"board":      boardDTO,
	})
}

// TaskDashboard returns the per-entity task summary.
func (h *TaskHandler) TaskDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	summary, err := h.dashboardService.TaskSummary(userID, time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to load task dashboard")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateTaskStatus applies a status transition via AJAX. Only POST is
// accepted; anything else is a 400.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Método inválido"})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateStatusRequest struct {
		ID     uint64 `json:"id"`
		Status string `json:"status"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}
	if req.ID == 0 || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID e status são obrigatórios"})
		return
	}

	task, err := h.taskService.UpdateStatus(userID, req.ID, models.TaskStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido"})
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tarefa não encontrada"})
		default:
			log.Printf("task status update failed for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno ao atualizar a tarefa"})
		}
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Status atualizado com sucesso",
		"task_id":    task.ID,
		"new_status": task.Status,
	})
}

// findTask resolves the :id parameter to one of the user's tasks,
// writing the error response on failure. Tasks owned by someone else
// report not found.
func (h *TaskHandler) findTask(c *gin.Context, userID uint64) (*models.Task, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return nil, false
	}

	task, err := h.taskRepo.FindByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Tarefa não encontrada")
		} else {
			apierrors.InternalError(c, "Failed to fetch task")
		}
		return nil, false
	}
	return task, true
}
