package models

import (
	"time"
)

type AppointmentType string

const (
	AppointmentTypeReuniao  AppointmentType = "reuniao"
	AppointmentTypeLigacao  AppointmentType = "ligacao"
	AppointmentTypeEvento   AppointmentType = "evento"
	AppointmentTypeConsulta AppointmentType = "consulta"
	AppointmentTypeOutro    AppointmentType = "outro"
)

var AppointmentTypes = []AppointmentType{
	AppointmentTypeReuniao,
	AppointmentTypeLigacao,
	AppointmentTypeEvento,
	AppointmentTypeConsulta,
	AppointmentTypeOutro,
}

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentTypeReuniao, AppointmentTypeLigacao, AppointmentTypeEvento,
		AppointmentTypeConsulta, AppointmentTypeOutro:
		return true
	}
	return false
}

func (t AppointmentType) Label() string {
	switch t {
	case AppointmentTypeReuniao:
		return "Reunião"
	case AppointmentTypeLigacao:
		return "Ligação"
	case AppointmentTypeEvento:
		return "Evento"
	case AppointmentTypeConsulta:
		return "Consulta"
	case AppointmentTypeOutro:
		return "Outro"
	}
	return string(t)
}

type AppointmentPriority string

const (
	AppointmentPriorityBaixa   AppointmentPriority = "baixa"
	AppointmentPriorityMedia   AppointmentPriority = "media"
	AppointmentPriorityAlta    AppointmentPriority = "alta"
	AppointmentPriorityUrgente AppointmentPriority = "urgente"
)

var AppointmentPriorities = []AppointmentPriority{
	AppointmentPriorityBaixa,
	AppointmentPriorityMedia,
	AppointmentPriorityAlta,
	AppointmentPriorityUrgente,
}

func (p AppointmentPriority) IsValid() bool {
	switch p {
	case AppointmentPriorityBaixa, AppointmentPriorityMedia,
		AppointmentPriorityAlta, AppointmentPriorityUrgente:
		return true
	}
	return false
}

func (p AppointmentPriority) Label() string {
	switch p {
	case AppointmentPriorityBaixa:
		return "Baixa"
	case AppointmentPriorityMedia:
		return "Média"
	case AppointmentPriorityAlta:
		return "Alta"
	case AppointmentPriorityUrgente:
		return "Urgente"
	}
	return string(p)
}

type AppointmentStatus string

const (
	AppointmentStatusAgendado   AppointmentStatus = "agendado"
	AppointmentStatusConfirmado AppointmentStatus = "confirmado"
)

var AppointmentStatuses = []AppointmentStatus{AppointmentStatusAgendado, AppointmentStatusConfirmado}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusAgendado, AppointmentStatusConfirmado:
		return true
	}
	return false
}

func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentStatusAgendado:
		return "Agendado"
	case AppointmentStatusConfirmado:
		return "Confirmado"
	}
	return string(s)
}

// CSSClass is the status token frontends attach to the badge element.
func (s AppointmentStatus) CSSClass() string {
	return "status-" + string(s)
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment stores its day as "YYYY-MM-DD" and its times as "HH:MM".
// Both formats compare and sort lexicographically, so equality and
// range filters work the same on every supported database.
type Appointment struct {
	ID          uint64              `gorm:"primarykey" json:"id"`
	Title       string              `gorm:"type:varchar(200);not null" json:"title"`
	Description string              `gorm:"type:text" json:"description"`
	Type        AppointmentType     `gorm:"column:appointment_type;type:varchar(20);not null;default:'reuniao'" json:"appointment_type"`
	Priority    AppointmentPriority `gorm:"type:varchar(10);not null;default:'media'" json:"priority"`
	Status      AppointmentStatus   `gorm:"type:varchar(15);not null;default:'agendado'" json:"status"`
	UserID      uint64              `gorm:"not null;index" json:"user_id"`
	Date        string              `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime   string              `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime     string              `gorm:"type:varchar(5);not null" json:"end_time"`
	Location    string              `gorm:"type:varchar(300)" json:"location"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsToday reports whether the appointment falls on the given day.
func (a *Appointment) IsToday(today string) bool {
	return a.Date == today
}

// IsUpcoming reports whether the appointment is after the given day.
func (a *Appointment) IsUpcoming(today string) bool {
	return a.Date > today
}

// Duration returns the appointment length in minutes. Times are
// validated at write time, so parse failures only happen on rows
// written outside the application; those report 0.
func (a *Appointment) Duration() int {
	start, err := time.Parse(TimeLayout, a.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(TimeLayout, a.EndTime)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Minutes())
}
