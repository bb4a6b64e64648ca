package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentStatus = errors.New("invalid status")
	ErrInvalidDate              = errors.New("invalid date")
	ErrInvalidTime              = errors.New("invalid time")
	ErrEndNotAfterStart         = errors.New("end time must be after start time")
)

// AppointmentService handles appointment business logic.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(appointmentRepo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
	}
}

// ValidateSchedule checks the date and time fields an appointment write
// must carry: a parseable date, parseable times, and an end strictly
// after the start. Violating input is rejected before anything is
// persisted.
func ValidateSchedule(date, startTime, endTime string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	start, err := time.Parse(models.TimeLayout, startTime)
	if err != nil {
		return ErrInvalidTime
	}
	end, err := time.Parse(models.TimeLayout, endTime)
	if err != nil {
		return ErrInvalidTime
	}
	if !end.After(start) {
		return ErrEndNotAfterStart
	}
	return nil
}

// UpdateStatus applies a validated status transition to an appointment
// owned by the user.
func (s *AppointmentService) UpdateStatus(userID, appointmentID uint64, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidAppointmentStatus
	}

	appointment, err := s.appointmentRepo.FindByIDForUser(appointmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to look up appointment: %w", err)
	}

	appointment.Status = status
	if err := s.appointmentRepo.Update(appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return appointment, nil
}
