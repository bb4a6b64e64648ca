package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		dueDate *time.Time
		status  TaskStatus
		want    bool
	}{
		{"past due and todo", &past, TaskStatusTodo, true},
		{"past due and in progress", &past, TaskStatusInProgress, true},
		{"past due but done", &past, TaskStatusDone, false},
		{"future due", &future, TaskStatusTodo, false},
		{"no due date", nil, TaskStatusTodo, false},
		{"no due date and done", nil, TaskStatusDone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate, Status: tt.status}
			assert.Equal(t, tt.want, task.IsOverdue(now))
		})
	}
}

func TestGoalIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)

	goal := Goal{DueDate: &past, Status: GoalStatusNotStarted}
	assert.True(t, goal.IsOverdue(now))

	goal.Status = GoalStatusInProgress
	assert.True(t, goal.IsOverdue(now))

	goal.Status = GoalStatusCompleted
	assert.False(t, goal.IsOverdue(now))

	goal = Goal{Status: GoalStatusNotStarted}
	assert.False(t, goal.IsOverdue(now))
}

func TestAppointmentDerivedFields(t *testing.T) {
	appointment := Appointment{
		Date:      "2024-06-15",
		StartTime: "09:00",
		EndTime:   "10:00",
	}

	assert.Equal(t, 60, appointment.Duration())
	assert.True(t, appointment.IsToday("2024-06-15"))
	assert.False(t, appointment.IsUpcoming("2024-06-15"))
	assert.True(t, appointment.IsUpcoming("2024-06-14"))
	assert.False(t, appointment.IsToday("2024-06-14"))

	appointment.EndTime = "10:45"
	assert.Equal(t, 105, appointment.Duration())
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, TaskStatus("in_progress").IsValid())
	assert.False(t, TaskStatus("IN_PROGRESS").IsValid())
	assert.False(t, TaskStatus("archived").IsValid())

	assert.True(t, GoalPeriod("biannual").IsValid())
	assert.False(t, GoalPeriod("daily").IsValid())

	assert.True(t, AppointmentStatus("confirmado").IsValid())
	assert.False(t, AppointmentStatus("cancelado").IsValid())
	assert.Equal(t, "status-confirmado", AppointmentStatusConfirmado.CSSClass())
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
}

func TestUserDisplayName(t *testing.T) {
	user := User{Username: "alice", FullName: "Alice Example"}
	assert.Equal(t, "Alice Example", user.DisplayName())

	user.FullName = ""
	assert.Equal(t, "alice", user.DisplayName())
}
