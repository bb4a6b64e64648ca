package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/ikedoebber/organizer-api/internal/constants"
	"github.com/ikedoebber/organizer-api/internal/dto"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/repository"
)

// DashboardService computes the per-user cross-entity aggregation for
// the main dashboard and the per-entity summary views.
type DashboardService struct {
	taskRepo        repository.TaskRepository
	goalRepo        repository.GoalRepository
	appointmentRepo repository.AppointmentRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	taskRepo repository.TaskRepository,
	goalRepo repository.GoalRepository,
	appointmentRepo repository.AppointmentRepository,
) *DashboardService {
	return &DashboardService{
		taskRepo:        taskRepo,
		goalRepo:        goalRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Summary builds the main dashboard payload for one user as of now.
func (s *DashboardService) Summary(userID uint64, now time.Time) (*dto.DashboardSummary, error) {
	summary := &dto.DashboardSummary{}

	// Tasks
	todo, inProgress, done, err := s.taskRepo.DashboardLists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task lists: %w", err)
	}
	summary.TodoTasks = dto.ToTaskDTOs(todo, now)
	summary.InProgressTasks = dto.ToTaskDTOs(inProgress, now)
	summary.DoneTasks = dto.ToTaskDTOs(done, now)

	summary.TaskStats, err = s.taskRepo.Stats(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load task stats: %w", err)
	}

	// Goals
	goalBoard, err := s.goalRepo.Board(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal partitions: %w", err)
	}
	summary.GoalsWeekly = dto.ToGoalDTOs(goalBoard[models.GoalPeriodWeekly], now)
	summary.GoalsMonthly = dto.ToGoalDTOs(goalBoard[models.GoalPeriodMonthly], now)
	summary.GoalsQuarterly = dto.ToGoalDTOs(goalBoard[models.GoalPeriodQuarterly], now)
	summary.GoalsBiannual = dto.ToGoalDTOs(goalBoard[models.GoalPeriodBiannual], now)
	summary.GoalsAnnual = dto.ToGoalDTOs(goalBoard[models.GoalPeriodAnnual], now)

	recentGoals, err := s.goalRepo.Recent(userID, constants.DashboardRecentGoalsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent goals: %w", err)
	}
	summary.RecentGoals = dto.ToGoalDTOs(recentGoals, now)

	summary.GoalStats, err = s.goalRepo.Stats(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal stats: %w", err)
	}

	// Appointments
	today := now.Format(models.DateLayout)
	nextWeek := now.AddDate(0, 0, constants.DashboardUpcomingWindowDays).Format(models.DateLayout)

	todayAppointments, err := s.appointmentRepo.OnDate(userID, today, constants.DashboardTodayApptLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's appointments: %w", err)
	}
	upcomingAppointments, err := s.appointmentRepo.InRange(userID, today, nextWeek, true, constants.DashboardUpcomingApptLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming appointments: %w", err)
	}

	summary.TodayAppointments = dto.ToAppointmentDTOs(todayAppointments, today)
	summary.UpcomingAppointments = dto.ToAppointmentDTOs(upcomingAppointments, today)
	summary.RecentAppointments = dto.ToAppointmentDTOs(
		MergeRecentAppointments(todayAppointments, upcomingAppointments, constants.DashboardRecentApptLimit),
		today,
	)

	summary.AppointmentStats, err = s.appointmentRepo.Stats(userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment stats: %w", err)
	}

	return summary, nil
}

// MergeRecentAppointments combines the already-fetched today and
// upcoming lists into one list sorted by (date, start_time) and
// truncated to limit. The two source windows are disjoint (date=today
// vs date>today), so no entry can appear twice.
func MergeRecentAppointments(today, upcoming []models.Appointment, limit int) []models.Appointment {
	merged := make([]models.Appointment, 0, len(today)+len(upcoming))
	merged = append(merged, today...)
	merged = append(merged, upcoming...)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Date != merged[j].Date {
			return merged[i].Date < merged[j].Date
		}
		return merged[i].StartTime < merged[j].StartTime
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// TaskSummary builds the per-entity task dashboard.
func (s *DashboardService) TaskSummary(userID uint64, now time.Time) (*dto.TaskDashboardDTO, error) {
	stats, err := s.taskRepo.Stats(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load task stats: %w", err)
	}
	recent, err := s.taskRepo.Recent(userID, constants.DashboardRecentTasksLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent tasks: %w", err)
	}
	return &dto.TaskDashboardDTO{
		Stats:       stats,
		RecentTasks: dto.ToTaskDTOs(recent, now),
	}, nil
}

// GoalSummary builds the per-entity goal dashboard.
func (s *DashboardService) GoalSummary(userID uint64, now time.Time) (*dto.GoalDashboardDTO, error) {
	stats, err := s.goalRepo.Stats(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal stats: %w", err)
	}
	recent, err := s.goalRepo.Recent(userID, constants.DashboardRecentGoalsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent goals: %w", err)
	}
	return &dto.GoalDashboardDTO{
		Stats:       stats,
		RecentGoals: dto.ToGoalDTOs(recent, now),
	}, nil
}

// AppointmentSummary builds the per-entity appointment dashboard:
// today's appointments, the next seven days, and the last thirty days.
func (s *DashboardService) AppointmentSummary(userID uint64, now time.Time) (*dto.AppointmentDashboardDTO, error) {
	today := now.Format(models.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(models.DateLayout)
	nextWeek := now.AddDate(0, 0, constants.DashboardUpcomingWindowDays).Format(models.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)
	lastMonth := now.AddDate(0, 0, -constants.DashboardPastApptWindowDays).Format(models.DateLayout)

	todayList, err := s.appointmentRepo.OnDate(userID, today, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's appointments: %w", err)
	}
	upcoming, err := s.appointmentRepo.InRange(userID, tomorrow, nextWeek, false, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming appointments: %w", err)
	}
	past, err := s.appointmentRepo.PastRange(userID, lastMonth, yesterday, constants.DashboardPastApptLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load past appointments: %w", err)
	}

	return &dto.AppointmentDashboardDTO{
		Today:    dto.ToAppointmentDTOs(todayList, today),
		Upcoming: dto.ToAppointmentDTOs(upcoming, today),
		Past:     dto.ToAppointmentDTOs(past, today),
		TodayKey: today,
	}, nil
}
