package handlers

import (
	"errors"
	"net/http"

	"salao/services/appointment"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking, roster and availability endpoints.
type AppointmentHandler struct {
	AppointmentService appointment.AppointmentService
}

// NewAppointmentHandler builds an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{AppointmentService: svc}
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req appointment.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Clients may only book for themselves.
	if c.GetString("userRole") == "client" && c.GetString("userID") != req.ClientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	appt, err := h.AppointmentService.Book(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, appointment.ErrNotFound), errors.Is(err, appointment.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Booking failed",
				zap.String("employee", req.EmployeeID),
				zap.String("date", req.Date),
				zap.String("startTime", req.StartTime),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAvailableSlotsHandler handles GET /api/appointments/available/:employeeId/:date.
func (h *AppointmentHandler) GetAvailableSlotsHandler(c *gin.Context) {
	employeeID := c.Param("employeeId")
	date := c.Param("date")

	slots, err := h.AppointmentService.AvailableSlots(employeeID, date)
	if err != nil {
		if errors.Is(err, appointment.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Availability lookup failed",
			zap.String("employee", employeeID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetAppointmentsHandler handles GET /api/appointments. Clients see only
// their own bookings; staff see everything.
func (h *AppointmentHandler) GetAppointmentsHandler(c *gin.Context) {
	if c.GetString("userRole") == "client" {
		appts, err := h.AppointmentService.ListForClient(c.GetString("userID"))
		if err != nil {
			utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
		return
	}

	appts, err := h.AppointmentService.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetEmployeeAppointmentsHandler handles GET /api/appointments/employee/:employeeId.
// Employees may only read their own roster; admins may read anyone's.
func (h *AppointmentHandler) GetEmployeeAppointmentsHandler(c *gin.Context) {
	employeeID := c.Param("employeeId")
	if c.GetString("userRole") == "employee" && c.GetString("userID") != employeeID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	appts, err := h.AppointmentService.ListForEmployee(employeeID)
	if err != nil {
		utils.GetLogger().Error("Failed to list employee roster",
			zap.String("employee", employeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentByIDHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentByIDHandler(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.AppointmentService.GetByID(id)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Appointment lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentHandler handles PUT /api/appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req appointment.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.AppointmentService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, appointment.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Appointment update failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.AppointmentService.Delete(id); err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Appointment delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
