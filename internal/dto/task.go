package dto

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID             uint64            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Priority       models.Priority   `json:"priority"`
	PriorityLabel  string            `json:"priority_label"`
	Status         models.TaskStatus `json:"status"`
	StatusLabel    string            `json:"status_label"`
	AssignedToID   uint64            `json:"assigned_to_id"`
	CreatedByID    uint64            `json:"created_by_id"`
	DueDate        *time.Time        `json:"due_date"`
	EstimatedHours *float64          `json:"estimated_hours"`
	ActualHours    *float64          `json:"actual_hours"`
	IsOverdue      bool              `json:"is_overdue"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks plus the
// choice sets the list's filter controls are built from
type TaskListResponse struct {
	Tasks           []TaskDTO                `json:"tasks"`
	Pagination      utils.PaginationResponse `json:"pagination"`
	StatusChoices   []ChoiceDTO              `json:"status_choices"`
	PriorityChoices []ChoiceDTO              `json:"priority_choices"`
}

// TaskBoardDTO partitions tasks by status for the board view
type TaskBoardDTO struct {
	Todo       []TaskDTO `json:"tasks_todo"`
	InProgress []TaskDTO `json:"tasks_in_progress"`
	Done       []TaskDTO `json:"tasks_done"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task, now time.Time) TaskDTO {
	return TaskDTO{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Priority:       task.Priority,
		PriorityLabel:  task.Priority.Label(),
		Status:         task.Status,
		StatusLabel:    task.Status.Label(),
		AssignedToID:   task.AssignedToID,
		CreatedByID:    task.CreatedByID,
		DueDate:        task.DueDate,
		EstimatedHours: task.EstimatedHours,
		ActualHours:    task.ActualHours,
		IsOverdue:      task.IsOverdue(now),
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task, now time.Time) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task, now)
	}
	return dtos
}
