package repository

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/constants"
	"github.com/ikedoebber/organizer-api/internal/database"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
	"gorm.io/gorm"
)

// priorityRank orders the low/medium/high enum by urgency in SQL.
const priorityRank = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END"

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) scoped(userID uint64) *gorm.DB {
	return r.db.Model(&models.Task{}).Where("created_by_id = ?", userID)
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByIDForUser finds a task by ID, scoped to its creator
func (r *GormTaskRepository) FindByIDForUser(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND created_by_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves the user's tasks with filtering and clamped pagination
func (r *GormTaskRepository) List(userID uint64, filter TaskListFilter, params utils.PaginationParams) ([]models.Task, utils.PaginationResponse, error) {
	query := r.scoped(userID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.PaginationResponse{}, err
	}

	params = params.Clamp(total)

	var tasks []models.Task
	err := query.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error
	if err != nil {
		return nil, utils.PaginationResponse{}, err
	}

	return tasks, utils.PaginationResponse{
		Page:       params.Page,
		PageSize:   params.Limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, params.Limit),
	}, nil
}

// Board partitions the user's tasks by status, newest first
func (r *GormTaskRepository) Board(userID uint64) (map[models.TaskStatus][]models.Task, error) {
	board := make(map[models.TaskStatus][]models.Task, len(models.TaskStatuses))
	for _, status := range models.TaskStatuses {
		var tasks []models.Task
		err := r.scoped(userID).
			Where("status = ?", status).
			Order("created_at DESC").
			Find(&tasks).Error
		if err != nil {
			return nil, err
		}
		board[status] = tasks
	}
	return board, nil
}

// DashboardLists returns the dashboard's three bounded task lists
func (r *GormTaskRepository) DashboardLists(userID uint64) (todo, inProgress, done []models.Task, err error) {
	err = r.scoped(userID).
		Where("status = ?", models.TaskStatusTodo).
		Order(priorityRank + " DESC, created_at DESC").
		Limit(constants.DashboardTaskListLimit).
		Find(&todo).Error
	if err != nil {
		return nil, nil, nil, err
	}

	err = r.scoped(userID).
		Where("status = ?", models.TaskStatusInProgress).
		Order(priorityRank + " DESC, created_at DESC").
		Limit(constants.DashboardTaskListLimit).
		Find(&inProgress).Error
	if err != nil {
		return nil, nil, nil, err
	}

	err = r.scoped(userID).
		Where("status = ?", models.TaskStatusDone).
		Order("updated_at DESC").
		Limit(constants.DashboardTaskListLimit).
		Find(&done).Error
	if err != nil {
		return nil, nil, nil, err
	}

	return todo, inProgress, done, nil
}

// Recent returns the user's newest tasks, bounded by limit
func (r *GormTaskRepository) Recent(userID uint64, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.scoped(userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// Stats computes the user's task counters
func (r *GormTaskRepository) Stats(userID uint64, now time.Time) (TaskStats, error) {
	var stats TaskStats

	counts := []struct {
		dest  *int64
		apply func(*gorm.DB) *gorm.DB
	}{
		{&stats.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&stats.Pending, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.TaskStatusTodo) }},
		{&stats.InProgress, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.TaskStatusInProgress) }},
		{&stats.Completed, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.TaskStatusDone) }},
		{&stats.Overdue, func(q *gorm.DB) *gorm.DB {
			return q.Where("due_date < ? AND status IN ?", now,
				[]models.TaskStatus{models.TaskStatusTodo, models.TaskStatusInProgress})
		}},
	}

	for _, c := range counts {
		if err := c.apply(r.scoped(userID)).Count(c.dest).Error; err != nil {
			return TaskStats{}, err
		}
	}
	return stats, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
