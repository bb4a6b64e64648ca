package models

import (
	"time"
)

type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not_started"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
)

var GoalStatuses = []GoalStatus{GoalStatusNotStarted, GoalStatusInProgress, GoalStatusCompleted}

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusNotStarted, GoalStatusInProgress, GoalStatusCompleted:
		return true
	}
	return false
}

func (s GoalStatus) Label() string {
	switch s {
	case GoalStatusNotStarted:
		return "Não Iniciado"
	case GoalStatusInProgress:
		return "Em Progresso"
	case GoalStatusCompleted:
		return "Concluído"
	}
	return string(s)
}

type GoalPeriod string

const (
	GoalPeriodWeekly    GoalPeriod = "weekly"
	GoalPeriodMonthly   GoalPeriod = "monthly"
	GoalPeriodQuarterly GoalPeriod = "quarterly"
	GoalPeriodBiannual  GoalPeriod = "biannual"
	GoalPeriodAnnual    GoalPeriod = "annual"
)

// GoalPeriods lists every valid goal period, in board order.
var GoalPeriods = []GoalPeriod{
	GoalPeriodWeekly,
	GoalPeriodMonthly,
	GoalPeriodQuarterly,
	GoalPeriodBiannual,
	GoalPeriodAnnual,
}

func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalPeriodWeekly, GoalPeriodMonthly, GoalPeriodQuarterly, GoalPeriodBiannual, GoalPeriodAnnual:
		return true
	}
	return false
}

func (p GoalPeriod) Label() string {
	switch p {
	case GoalPeriodWeekly:
		return "Semanal"
	case GoalPeriodMonthly:
		return "Mensal"
	case GoalPeriodQuarterly:
		return "Trimestral"
	case GoalPeriodBiannual:
		return "Semestral"
	case GoalPeriodAnnual:
		return "Anual"
	}
	return string(p)
}

type Goal struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    Priority   `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Status      GoalStatus `gorm:"type:varchar(15);not null;default:'not_started'" json:"status"`
	Period      GoalPeriod `gorm:"type:varchar(15);not null;default:'annual'" json:"period"`
	CreatedByID uint64     `gorm:"not null;index" json:"created_by_id"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// IsOverdue reports whether the goal's due date has passed while the
// goal is not completed.
func (g *Goal) IsOverdue(now time.Time) bool {
	if g.DueDate == nil || g.Status == GoalStatusCompleted {
		return false
	}
	return g.DueDate.Before(now)
}
