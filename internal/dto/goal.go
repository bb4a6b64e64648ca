package dto

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
)

// GoalDTO represents a goal in API responses
type GoalDTO struct {
	ID            uint64            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Priority      models.Priority   `json:"priority"`
	PriorityLabel string            `json:"priority_label"`
	Status        models.GoalStatus `json:"status"`
	StatusLabel   string            `json:"status_label"`
	Period        models.GoalPeriod `json:"period"`
	PeriodLabel   string            `json:"period_label"`
	CreatedByID   uint64            `json:"created_by_id"`
	DueDate       *time.Time        `json:"due_date"`
	IsOverdue     bool              `json:"is_overdue"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// GoalListResponse represents a paginated list of goals plus the
// choice sets the list's filter controls are built from
type GoalListResponse struct {
	Goals           []GoalDTO                `json:"goals"`
	Pagination      utils.PaginationResponse `json:"pagination"`
	StatusChoices   []ChoiceDTO              `json:"status_choices"`
	PriorityChoices []ChoiceDTO              `json:"priority_choices"`
	PeriodChoices   []ChoiceDTO              `json:"period_choices"`
}

// GoalBoardDTO partitions goals by period for the board view
type GoalBoardDTO struct {
	Weekly    []GoalDTO `json:"goals_weekly"`
	Monthly   []GoalDTO `json:"goals_monthly"`
	Quarterly []GoalDTO `json:"goals_quarterly"`
	Biannual  []GoalDTO `json:"goals_biannual"`
	Annual    []GoalDTO `json:"goals_annual"`
}

// ToGoalDTO converts a Goal model to GoalDTO
func ToGoalDTO(goal models.Goal, now time.Time) GoalDTO {
	return GoalDTO{
		ID:            goal.ID,
		Title:         goal.Title,
		Description:   goal.Description,
		Priority:      goal.Priority,
		PriorityLabel: goal.Priority.Label(),
		Status:        goal.Status,
		StatusLabel:   goal.Status.Label(),
		Period:        goal.Period,
		PeriodLabel:   goal.Period.Label(),
		CreatedByID:   goal.CreatedByID,
		DueDate:       goal.DueDate,
		IsOverdue:     goal.IsOverdue(now),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToGoalDTOs converts a slice of Goal models
func ToGoalDTOs(goals []models.Goal, now time.Time) []GoalDTO {
	dtos := make([]GoalDTO, len(goals))
	for i, goal := range goals {
		dtos[i] = ToGoalDTO(goal, now)
	}
	return dtos
}

// ToGoalBoardDTO shapes the period partitions into the board payload
func ToGoalBoardDTO(board map[models.GoalPeriod][]models.Goal, now time.Time) GoalBoardDTO {
	return GoalBoardDTO{
		Weekly:    ToGoalDTOs(board[models.GoalPeriodWeekly], now),
		Monthly:   ToGoalDTOs(board[models.GoalPeriodMonthly], now),
		Quarterly: ToGoalDTOs(board[models.GoalPeriodQuarterly], now),
		Biannual:  ToGoalDTOs(board[models.GoalPeriodBiannual], now),
		Annual:    ToGoalDTOs(board[models.GoalPeriodAnnual], now),
	}
}
