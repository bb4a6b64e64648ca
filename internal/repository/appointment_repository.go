package repository

import (
	"github.com/ikedoebber/organizer-api/internal/database"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/utils"
	"gorm.io/gorm"
)

// GormAppointmentRepository is a GORM implementation of AppointmentRepository
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) scoped(userID uint64) *gorm.DB {
	return r.db.Model(&models.Appointment{}).Where("user_id = ?", userID)
}

// Create creates a new appointment
func (r *GormAppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// FindByIDForUser finds an appointment by ID, scoped to its owner
func (r *GormAppointmentRepository) FindByIDForUser(id, userID uint64) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// List retrieves the user's appointments with filtering and clamped pagination
func (r *GormAppointmentRepository) List(userID uint64, filter AppointmentListFilter, params utils.PaginationParams) ([]models.Appointment, utils.PaginationResponse, error) {
	query := r.scoped(userID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		query = query.Where("appointment_type = ?", *filter.Type)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.PaginationResponse{}, err
	}

	params = params.Clamp(total)

	var appointments []models.Appointment
	err := query.Order("date, start_time").
		Scopes(database.Paginate(params)).
		Find(&appointments).Error
	if err != nil {
		return nil, utils.PaginationResponse{}, err
	}

	return appointments, utils.PaginationResponse{
		Page:       params.Page,
		PageSize:   params.Limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, params.Limit),
	}, nil
}

// OnDate returns the user's appointments on one day, by start time
func (r *GormAppointmentRepository) OnDate(userID uint64, date string, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := r.scoped(userID).
		Where("date = ?", date).
		Order("start_time")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&appointments).Error
	return appointments, err
}

// InRange returns the user's appointments in the window, ordered by
// (date, start_time)
func (r *GormAppointmentRepository) InRange(userID uint64, from, to string, exclusiveFrom bool, limit int) ([]models.Appointment, error) {
	query := r.scoped(userID)
	if exclusiveFrom {
		query = query.Where("date > ? AND date <= ?", from, to)
	} else {
		query = query.Where("date >= ? AND date <= ?", from, to)
	}

	query = query.Order("date, start_time")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointments []models.Appointment
	err := query.Find(&appointments).Error
	return appointments, err
}

// PastRange returns the user's appointments in [from, to], newest first
func (r *GormAppointmentRepository) PastRange(userID uint64, from, to string, limit int) ([]models.Appointment, error) {
	query := r.scoped(userID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC, start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointments []models.Appointment
	err := query.Find(&appointments).Error
	return appointments, err
}

// Stats computes the user's appointment counters
func (r *GormAppointmentRepository) Stats(userID uint64, today string) (AppointmentStats, error) {
	var stats AppointmentStats

	counts := []struct {
		dest  *int64
		apply func(*gorm.DB) *gorm.DB
	}{
		{&stats.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&stats.Today, func(q *gorm.DB) *gorm.DB { return q.Where("date = ?", today) }},
		{&stats.Upcoming, func(q *gorm.DB) *gorm.DB { return q.Where("date > ?", today) }},
		{&stats.Confirmed, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.AppointmentStatusConfirmado) }},
		{&stats.Urgent, func(q *gorm.DB) *gorm.DB { return q.Where("priority = ?", models.AppointmentPriorityUrgente) }},
	}

	for _, c := range counts {
		if err := c.apply(r.scoped(userID)).Count(c.dest).Error; err != nil {
			return AppointmentStats{}, err
		}
	}
	return stats, nil
}

// Update updates an appointment
func (r *GormAppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// Delete removes an appointment
func (r *GormAppointmentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}
