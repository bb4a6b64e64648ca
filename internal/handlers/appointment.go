package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/cache"
	"github.com/ikedoebber/organizer-api/internal/dto"
	apierrors "github.com/ikedoebber/organizer-api/internal/errors"
	"github.com/ikedoebber/organizer-api/internal/middleware"
	"github.com/ikedoebber/organizer-api/internal/models"
	"github.com/ikedoebber/organizer-api/internal/repository"
	"github.com/ikedoebber/organizer-api/internal/services"
	"github.com/ikedoebber/organizer-api/internal/utils"
	"gorm.io/gorm"
)

type AppointmentHandler struct {
	appointmentRepo    repository.AppointmentRepository
	appointmentService *services.AppointmentService
	dashboardService   *services.DashboardService
	dashboardCache     *cache.DashboardCache
}

func NewAppointmentHandler(
	appointmentRepo repository.AppointmentRepository,
	appointmentService *services.AppointmentService,
	dashboardService *services.DashboardService,
	dashboardCache *cache.DashboardCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentRepo:    appointmentRepo,
		appointmentService: appointmentService,
		dashboardService:   dashboardService,
		dashboardCache:     dashboardCache,
	}
}

// ListAppointments returns the user's appointments with optional
// status, type, date and free-text filters, paginated at a fixed page
// size. An unparseable date filter is ignored rather than an error.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var filter repository.AppointmentListFilter
	if raw := c.Query("status"); raw != "" {
		status := models.AppointmentStatus(raw)
		if status.IsValid() {
			filter.Status = &status
		}
	}
	if raw := c.Query("type"); raw != "" {
		appointmentType := models.AppointmentType(raw)
		if appointmentType.IsValid() {
			filter.Type = &appointmentType
		}
	}
	if raw := c.Query("date"); raw != "" {
		if _, err := time.Parse(models.DateLayout, raw); err == nil {
			filter.Date = raw
		}
	}
	filter.Search = c.Query("search")

	appointments, pagination, err := h.appointmentRepo.List(userID, filter, utils.GetPaginationParams(c))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch appointments")
		return
	}

	today := time.Now().Format(models.DateLayout)
	c.JSON(http.StatusOK, dto.AppointmentListResponse{
		Appointments:    dto.ToAppointmentDTOs(appointments, today),
		Pagination:      pagination,
		TypeChoices:     dto.AppointmentTypeChoices(),
		PriorityChoices: dto.AppointmentPriorityChoices(),
		StatusChoices:   dto.AppointmentStatusChoices(),
	})
}

// GetAppointment returns one of the user's appointments by ID.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	appointment, ok := h.findAppointment(c, userID)
	if !ok {
		return
	}

	today := time.Now().Format(models.DateLayout)
	c.JSON(http.StatusOK, dto.ToAppointmentDTO(*appointment, today))
}

type appointmentRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Type        string `json:"appointment_type"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Location    string `json:"location"`
}

// apply validates the request's enum and schedule fields and copies
// them onto the appointment, reporting the validation message to use
// on failure.
func (req *appointmentRequest) apply(appointment *models.Appointment) string {
	appointment.Type = models.AppointmentTypeReuniao
	appointment.Priority = models.AppointmentPriorityMedia
	appointment.Status = models.AppointmentStatusAgendado

	if req.Type != "" {
		appointmentType := models.AppointmentType(req.Type)
		if !appointmentType.IsValid() {
			return "Tipo inválido"
		}
		appointment.Type = appointmentType
	}
	if req.Priority != "" {
		priority := models.AppointmentPriority(req.Priority)
		if !priority.IsValid() {
			return "Prioridade inválida"
		}
		appointment.Priority = priority
	}
	if req.Status != "" {
		status := models.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return "Status inválido"
		}
		appointment.Status = status
	}

	if err := services.ValidateSchedule(req.Date, req.StartTime, req.EndTime); err != nil {
		switch {
		case errors.Is(err, services.ErrEndNotAfterStart):
			return "O horário de término deve ser posterior ao horário de início"
		default:
			return "Formato de data ou horário inválido"
		}
	}

	appointment.Title = req.Title
	appointment.Description = req.Description
	appointment.Date = req.Date
	appointment.StartTime = req.StartTime
	appointment.EndTime = req.EndTime
	appointment.Location = req.Location
	return ""
}

// CreateAppointment creates a new appointment owned by the current
// user. end_time must be strictly after start_time or nothing is
// persisted.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	appointment := models.Appointment{UserID: userID}
	if msg := req.apply(&appointment); msg != "" {
		apierrors.BadRequest(c, msg)
		return
	}

	if err := h.appointmentRepo.Create(&appointment); err != nil {
		apierrors.InternalError(c, "Failed to create appointment")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	today := time.Now().Format(models.DateLayout)
	c.JSON(http.StatusCreated, dto.ToAppointmentDTO(appointment, today))
}

// UpdateAppointment replaces the editable fields of one of the user's
// appointments, with the same schedule validation as creation.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	appointment, ok := h.findAppointment(c, userID)
	if !ok {
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if msg := req.apply(appointment); msg != "" {
		apierrors.BadRequest(c, msg)
		return
	}

	if err := h.appointmentRepo.Update(appointment); err != nil {
		apierrors.InternalError(c, "Failed to update appointment")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	today := time.Now().Format(models.DateLayout)
	c.JSON(http.StatusOK, dto.ToAppointmentDTO(*appointment, today))
}

// DeleteAppointment removes one of the user's appointments.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	appointment, ok := h.findAppointment(c, userID)
	if !ok {
		return
	}

	if err := h.appointmentRepo.Delete(appointment.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete appointment")
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Compromisso excluído com sucesso",
	})
}

// AppointmentsDashboard returns the per-entity appointment summary.
// XHR callers get the bare partial; page callers get the wrapped
// payload.
func (h *AppointmentHandler) AppointmentsDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	summary, err := h.dashboardService.AppointmentSummary(userID, time.Now())
	if err != nil {
		log.Printf("appointments dashboard failed for user %d: %v", userID, err)
		if middleware.IsXHR(c) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar appointments"})
		}
		return
	}

	if middleware.IsXHR(c) {
		c.JSON(http.StatusOK, summary)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page_title": "Compromissos",
		"dashboard":  summary,
	})
}

// Calendar returns the month view for the requested year/month,
// falling back to the current month on invalid or out-of-range input.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if rawYear, rawMonth := c.Query("year"), c.Query("month"); rawYear != "" || rawMonth != "" {
		parsedYear, errYear := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(year)))
		parsedMonth, errMonth := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(month)))
		year, month = utils.ClampCalendarInput(parsedYear, parsedMonth, errYear == nil && errMonth == nil, now)
	}

	firstDay, lastDay := utils.MonthBounds(year, month)
	appointments, err := h.appointmentRepo.InRange(userID, firstDay, lastDay, false, 0)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch appointments")
		return
	}

	today := now.Format(models.DateLayout)
	byDate := make(map[string][]dto.AppointmentDTO)
	for _, appointment := range appointments {
		byDate[appointment.Date] = append(byDate[appointment.Date], dto.ToAppointmentDTO(appointment, today))
	}

	prevYear, prevMonth, nextYear, nextMonth := utils.MonthNavigation(year, month)
	c.JSON(http.StatusOK, dto.CalendarDTO{
		Calendar:           utils.MonthCalendar(year, month),
		AppointmentsByDate: byDate,
		CurrentMonth:       month,
		CurrentYear:        year,
		MonthName:          time.Month(month).String(),
		PrevMonth:          prevMonth,
		PrevYear:           prevYear,
		NextMonth:          nextMonth,
		NextYear:           nextYear,
		Today:              today,
	})
}

// UpdateAppointmentStatus applies a status transition via AJAX. Only
// POST is accepted; anything else is a 400. The response carries the
// display label and the status CSS token the frontend swaps in.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Método inválido"})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID inválido"})
		return
	}

	newStatus := c.PostForm("status")
	if newStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status é obrigatório"})
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(userID, id, models.AppointmentStatus(newStatus))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAppointmentStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status inválido"})
		case errors.Is(err, services.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Compromisso não encontrado"})
		default:
			log.Printf("appointment status update failed for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erro interno ao atualizar o compromisso"})
		}
		return
	}

	invalidateDashboard(c, h.dashboardCache, userID)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"new_status_label": appointment.Status.Label(),
		"new_status_class": appointment.Status.CSSClass(),
	})
}

// findAppointment resolves the :id parameter to one of the user's
// appointments, writing the error response on failure.
func (h *AppointmentHandler) findAppointment(c *gin.Context, userID uint64) (*models.Appointment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid appointment ID")
		return nil, false
	}

	appointment, err := h.appointmentRepo.FindByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Compromisso não encontrado")
		} else {
			apierrors.InternalError(c, "Failed to fetch appointment")
		}
		return nil, false
	}
	return appointment, true
}
