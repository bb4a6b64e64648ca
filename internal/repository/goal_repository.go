package repository

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/database"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
	"gorm.io/gorm"
)

// GormGoalRepository is a GORM implementation of GoalRepository
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &GormGoalRepository{db: db}
}

func (r *GormGoalRepository) scoped(userID uint64) *gorm.DB {
	return r.db.Model(&models.Goal{}).Where("created_by_id = ?", userID)
}

// Create creates a new goal
func (r *GormGoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// FindByIDForUser finds a goal by ID, scoped to its creator
func (r *GormGoalRepository) FindByIDForUser(id, userID uint64) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("id = ? AND created_by_id = ?", id, userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// List retrieves the user's goals with filtering and clamped pagination
func (r *GormGoalRepository) List(userID uint64, filter GoalListFilter, params utils.PaginationParams) ([]models.Goal, utils.PaginationResponse, error) {
	query := r.scoped(userID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Period != nil {
		query = query.Where("period = ?", *filter.Period)
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

	var goals []models.Goal
	err := query.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&goals).Error
	if err != nil {
		return nil, utils.PaginationResponse{}, err
	}

	return goals, utils.PaginationResponse{
		Page:       params.Page,
		PageSize:   params.Limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, params.Limit),
	}, nil
}

// Board partitions the user's goals by period, newest first
func (r *GormGoalRepository) Board(userID uint64) (map[models.GoalPeriod][]models.Goal, error) {
	board := make(map[models.GoalPeriod][]models.Goal, len(models.GoalPeriods))
	for _, period := range models.GoalPeriods {
		var goals []models.Goal
		err := r.scoped(userID).
			Where("period = ?", period).
			Order("created_at DESC").
			Find(&goals).Error
		if err != nil {
			return nil, err
		}
		board[period] = goals
	}
	return board, nil
}

// Recent returns the user's newest goals, bounded by limit
func (r *GormGoalRepository) Recent(userID uint64, limit int) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.scoped(userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&goals).Error
	return goals, err
}

// Stats computes the user's goal counters
func (r *GormGoalRepository) Stats(userID uint64, now time.Time) (GoalStats, error) {
	var stats GoalStats

	counts := []struct {
		dest  *int64
		apply func(*gorm.DB) *gorm.DB
	}{
		{&stats.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&stats.Pending, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.GoalStatusNotStarted) }},
		{&stats.InProgress, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.GoalStatusInProgress) }},
		{&stats.Completed, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.GoalStatusCompleted) }},
		{&stats.Overdue, func(q *gorm.DB) *gorm.DB {
			return q.Where("due_date < ? AND status IN ?", now,
				[]models.GoalStatus{models.GoalStatusNotStarted, models.GoalStatusInProgress})
		}},
	}

	for _, c := range counts {
		if err := c.apply(r.scoped(userID)).Count(c.dest).Error; err != nil {
			return GoalStats{}, err
		}
	}
	return stats, nil
}

// Update updates a goal
func (r *GormGoalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// UpdatePeriod persists only the goal's period column
func (r *GormGoalRepository) UpdatePeriod(goal *models.Goal, period models.GoalPeriod) error {
	return r.db.Model(goal).Update("period", period).Error
}

// Delete removes a goal
func (r *GormGoalRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Goal{}, id).Error
}
