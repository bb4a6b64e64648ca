package dto

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
)

// AppointmentDTO represents an appointment in API responses
type AppointmentDTO struct {
	ID            uint64                     `json:"id"`
	Title         string                     `json:"title"`
	Description   string                     `json:"description"`
	Type          models.AppointmentType     `json:"appointment_type"`
	TypeLabel     string                     `json:"type_label"`
	Priority      models.AppointmentPriority `json:"priority"`
	PriorityLabel string                     `json:"priority_label"`
	Status        models.AppointmentStatus   `json:"status"`
	StatusLabel   string                     `json:"status_label"`
	StatusClass   string                     `json:"status_class"`
	UserID        uint64                     `json:"user_id"`
	Date          string                     `json:"date"`
	StartTime     string                     `json:"start_time"`
	EndTime       string                     `json:"end_time"`
	Location      string                     `json:"location"`
	Duration      int                        `json:"duration"`
	IsToday       bool                       `json:"is_today"`
	IsUpcoming    bool                       `json:"is_upcoming"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// AppointmentListResponse represents a paginated list of appointments
// plus the choice sets the list's filter controls are built from
type AppointmentListResponse struct {
	Appointments    []AppointmentDTO         `json:"appointments"`
	Pagination      utils.PaginationResponse `json:"pagination"`
	TypeChoices     []ChoiceDTO              `json:"type_choices"`
	PriorityChoices []ChoiceDTO              `json:"priority_choices"`
	StatusChoices   []ChoiceDTO              `json:"status_choices"`
}

// CalendarDTO is the month view: the week grid plus the appointments
// grouped by ISO date.
type CalendarDTO struct {
	Calendar           [][]int                     `json:"calendar"`
	AppointmentsByDate map[string][]AppointmentDTO `json:"appointments_by_date"`
	CurrentMonth       int                         `json:"current_month"`
	CurrentYear        int                         `json:"current_year"`
	MonthName          string                      `json:"month_name"`
	PrevMonth          int                         `json:"prev_month"`
	PrevYear           int                         `json:"prev_year"`
	NextMonth          int                         `json:"next_month"`
	NextYear           int                         `json:"next_year"`
	Today              string                      `json:"today"`
}

// ToAppointmentDTO converts an Appointment model to AppointmentDTO.
// today is the caller's current day in "YYYY-MM-DD" form.
func ToAppointmentDTO(a models.Appointment, today string) AppointmentDTO {
	return AppointmentDTO{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Type:          a.Type,
		TypeLabel:     a.Type.Label(),
		Priority:      a.Priority,
		PriorityLabel: a.Priority.Label(),
		Status:        a.Status,
		StatusLabel:   a.Status.Label(),
		StatusClass:   a.Status.CSSClass(),
		UserID:        a.UserID,
		Date:          a.Date,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Location:      a.Location,
		Duration:      a.Duration(),
		IsToday:       a.IsToday(today),
		IsUpcoming:    a.IsUpcoming(today),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToAppointmentDTOs converts a slice of Appointment models
func ToAppointmentDTOs(appointments []models.Appointment, today string) []AppointmentDTO {
	dtos := make([]AppointmentDTO, len(appointments))
	for i, a := range appointments {
		dtos[i] = ToAppointmentDTO(a, today)
	}
	return dtos
}
