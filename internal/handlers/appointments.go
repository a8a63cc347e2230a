package handlers

import (
	"github.com/gin-gonic/gin"

	"salon-booking-server/internal/middleware"
	"salon-booking-server/internal/models"
	"salon-booking-server/internal/scheduling"
	"salon-booking-server/internal/store"
	"salon-booking-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Engine *scheduling.Engine
	Stats  *scheduling.Aggregator
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(engine *scheduling.Engine, stats *scheduling.Aggregator) *AppointmentHandler {
	return &AppointmentHandler{Engine: engine, Stats: stats}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	ClientName         string   `json:"clientName" binding:"required"`
	ClientLastName     string   `json:"clientLastName" binding:"required"`
	ClientPhone        string   `json:"clientPhone" binding:"required"`
	HairdresserID      string   `json:"hairdresserId" binding:"required"`
	Date               string   `json:"date" binding:"required"`
	Time               string   `json:"time" binding:"required"`
	Service            string   `json:"service" binding:"required"`
	EstimatedDuration  int      `json:"estimatedDuration" binding:"required"`
	TotalCost          float64  `json:"totalCost" binding:"gte=0"`
	Deposit            *float64 `json:"deposit"`
	AdditionalComments string   `json:"additionalComments"`
}

// CreateAppointment books a new appointment through the scheduling engine.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	claims, _ := middleware.GetClaims(c)
	appointment, err := h.Engine.Create(claims, scheduling.CreateRequest{
		ClientName:         req.ClientName,
		ClientLastName:     req.ClientLastName,
		ClientPhone:        req.ClientPhone,
		HairdresserID:      req.HairdresserID,
		Date:               req.Date,
		Time:               req.Time,
		Service:            req.Service,
		EstimatedDuration:  req.EstimatedDuration,
		TotalCost:          req.TotalCost,
		Deposit:            req.Deposit,
		AdditionalComments: req.AdditionalComments,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments lists appointments for the calendar view, optionally for a
// single date and hairdresser. Non-admins only ever see their own calendar.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	filter := store.AppointmentFilter{
		Date:          c.Query("date"),
		HairdresserID: c.Query("hairdresserId"),
	}

	appointments, err := h.Engine.List(claims, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAllAppointments lists the full calendar with optional date-range and
// status filters, for the management table view.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	filter := store.AppointmentFilter{
		FromDate: c.Query("fromDate"),
		ToDate:   c.Query("toDate"),
	}
	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = models.AppointmentStatus(status)
	}

	appointments, err := h.Engine.ListAll(claims, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", gin.H{
		"appointments": appointments,
		"total":        len(appointments),
	})
}

// UpdateAppointmentRequest represents a partial appointment update. Absent
// fields are left untouched.
type UpdateAppointmentRequest struct {
	ClientName         *string                   `json:"clientName"`
	ClientLastName     *string                   `json:"clientLastName"`
	ClientPhone        *string                   `json:"clientPhone"`
	HairdresserID      *string                   `json:"hairdresserId"`
	Date               *string                   `json:"date"`
	Time               *string                   `json:"time"`
	Service            *string                   `json:"service"`
	EstimatedDuration  *int                      `json:"estimatedDuration"`
	TotalCost          *float64                  `json:"totalCost"`
	Status             *models.AppointmentStatus `json:"status"`
	Deposit            *float64                  `json:"deposit"`
	AdditionalComments *string                   `json:"additionalComments"`
}

// UpdateAppointment applies a patch, including status transitions and
// rescheduling, through the engine.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	claims, _ := middleware.GetClaims(c)
	appointment, err := h.Engine.Update(claims, c.Param("id"), scheduling.UpdatePatch{
		ClientName:         req.ClientName,
		ClientLastName:     req.ClientLastName,
		ClientPhone:        req.ClientPhone,
		HairdresserID:      req.HairdresserID,
		Date:               req.Date,
		Time:               req.Time,
		Service:            req.Service,
		EstimatedDuration:  req.EstimatedDuration,
		TotalCost:          req.TotalCost,
		Status:             req.Status,
		Deposit:            req.Deposit,
		AdditionalComments: req.AdditionalComments,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Appointment updated successfully", appointment)
}

// CancelAppointment moves an appointment to cancelled, freeing its slot.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	appointment, err := h.Engine.Cancel(claims, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// DeleteAppointment physically removes an appointment record.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.Engine.Remove(claims, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// GetStats returns the period summary (counts, revenue, deposits).
func (h *AppointmentHandler) GetStats(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	summary, err := h.Stats.Summarize(claims, c.DefaultQuery("period", scheduling.PeriodMonth))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Stats fetched successfully", summary)
}
