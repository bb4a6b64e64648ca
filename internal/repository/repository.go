package repository

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
)

// Every query method takes the owning user's ID and applies it before
// any other filter; a record that exists but belongs to someone else is
// indistinguishable from a missing one.

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	// FindByIDForUser finds a task by ID, scoped to its creator.
	FindByIDForUser(id, userID uint64) (*models.Task, error)

	// List retrieves the user's tasks with filtering and clamped pagination.
	List(userID uint64, filter TaskListFilter, params utils.PaginationParams) ([]models.Task, utils.PaginationResponse, error)

	// Board partitions the user's tasks by status, newest first.
	Board(userID uint64) (map[models.TaskStatus][]models.Task, error)

	// DashboardLists returns the dashboard's three bounded task lists.
	DashboardLists(userID uint64) (todo, inProgress, done []models.Task, err error)

	// Recent returns the user's newest tasks, bounded by limit.
	Recent(userID uint64, limit int) ([]models.Task, error)

	// Stats computes the user's task counters.
	Stats(userID uint64, now time.Time) (TaskStats, error)

	Update(task *models.Task) error

	Delete(id uint64) error
}

// TaskListFilter holds the list view's optional filters.
type TaskListFilter struct {
	Status   *models.TaskStatus
	Priority *models.Priority
	Search   string
}

// TaskStats mirrors the dashboard's task counters.
type TaskStats struct {
	Total      int64 `json:"total_tasks"`
	Pending    int64 `json:"pending_tasks"`
	InProgress int64 `json:"in_progress_tasks"`
	Completed  int64 `json:"completed_tasks"`
	Overdue    int64 `json:"overdue_tasks"`
}

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	Create(goal *models.Goal) error

	FindByIDForUser(id, userID uint64) (*models.Goal, error)

	List(userID uint64, filter GoalListFilter, params utils.PaginationParams) ([]models.Goal, utils.PaginationResponse, error)

	// Board partitions the user's goals by period, newest first.
	Board(userID uint64) (map[models.GoalPeriod][]models.Goal, error)

	// Recent returns the user's newest goals, bounded by limit.
	Recent(userID uint64, limit int) ([]models.Goal, error)

	Stats(userID uint64, now time.Time) (GoalStats, error)

	Update(goal *models.Goal) error

	// UpdatePeriod persists only the goal's period column.
	UpdatePeriod(goal *models.Goal, period models.GoalPeriod) error

	Delete(id uint64) error
}

// GoalListFilter holds the list view's optional filters.
type GoalListFilter struct {
	Status   *models.GoalStatus
	Priority *models.Priority
	Period   *models.GoalPeriod
	Search   string
}

// GoalStats mirrors the dashboard's goal counters.
type GoalStats struct {
	Total      int64 `json:"total_goals"`
	Pending    int64 `json:"pending_goals"`
	InProgress int64 `json:"in_progress_goals"`
	Completed  int64 `json:"completed_goals"`
	Overdue    int64 `json:"overdue_goals"`
}

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error

	FindByIDForUser(id, userID uint64) (*models.Appointment, error)

	List(userID uint64, filter AppointmentListFilter, params utils.PaginationParams) ([]models.Appointment, utils.PaginationResponse, error)

	// OnDate returns the user's appointments on one day, by start time.
	OnDate(userID uint64, date string, limit int) ([]models.Appointment, error)

	// InRange returns appointments with from < date <= to when
	// exclusiveFrom is set, or from <= date <= to otherwise, ordered by
	// (date, start_time).
	InRange(userID uint64, from, to string, exclusiveFrom bool, limit int) ([]models.Appointment, error)

	// PastRange returns appointments in [from, to] newest first.
	PastRange(userID uint64, from, to string, limit int) ([]models.Appointment, error)

	Stats(userID uint64, today string) (AppointmentStats, error)

	Update(appointment *models.Appointment) error

	Delete(id uint64) error
}

// AppointmentListFilter holds the list view's optional filters.
type AppointmentListFilter struct {
	Status *models.AppointmentStatus
	Type   *models.AppointmentType
	Date   string
	Search string
}

// AppointmentStats mirrors the dashboard's appointment counters.
type AppointmentStats struct {
	Total     int64 `json:"total_appointments"`
	Today     int64 `json:"today_appointments"`
	Upcoming  int64 `json:"upcoming_appointments"`
	Confirmed int64 `json:"confirmed_appointments"`
	Urgent    int64 `json:"urgent_appointments"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error

	FindByID(id uint64) (*models.User, error)

	FindByUsername(username string) (*models.User, error)
}
