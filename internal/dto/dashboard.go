package dto

import (
	"github.com/ikedoebber/organizer-api/internal/repository"
)

// DashboardSummary is the landing page's aggregated cross-entity view.
// The field names follow the template context the frontend consumes.
type DashboardSummary struct {
	TodoTasks       []TaskDTO            `json:"todo_tasks"`
	InProgressTasks []TaskDTO            `json:"in_progress_tasks"`
	DoneTasks       []TaskDTO            `json:"done_tasks"`
	TaskStats       repository.TaskStats `json:"task_stats"`

	GoalsWeekly    []GoalDTO            `json:"goals_weekly"`
	GoalsMonthly   []GoalDTO            `json:"goals_monthly"`
	GoalsQuarterly []GoalDTO            `json:"goals_quarterly"`
	GoalsBiannual  []GoalDTO            `json:"goals_biannual"`
	GoalsAnnual    []GoalDTO            `json:"goals_annual"`
	RecentGoals    []GoalDTO            `json:"recent_goals"`
	GoalStats      repository.GoalStats `json:"goal_stats"`

	TodayAppointments    []AppointmentDTO            `json:"today_appointments"`
	UpcomingAppointments []AppointmentDTO            `json:"upcoming_appointments"`
	RecentAppointments   []AppointmentDTO            `json:"all_recent_appointments"`
	AppointmentStats     repository.AppointmentStats `json:"appointment_stats"`
}

// TaskDashboardDTO is the per-entity task summary view.
type TaskDashboardDTO struct {
	Stats       repository.TaskStats `json:"stats"`
	RecentTasks []TaskDTO            `json:"recent_tasks"`
}

// GoalDashboardDTO is the per-entity goal summary view.
type GoalDashboardDTO struct {
	Stats       repository.GoalStats `json:"stats"`
	RecentGoals []GoalDTO            `json:"recent_goals"`
}

// AppointmentDashboardDTO is the per-entity appointment summary view.
type AppointmentDashboardDTO struct {
	Today    []AppointmentDTO `json:"appointments_today"`
	Upcoming []AppointmentDTO `json:"appointments_upcoming"`
	Past     []AppointmentDTO `json:"appointments_past"`
	TodayKey string           `json:"today"`
}
