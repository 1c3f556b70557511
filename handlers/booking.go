package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "lapidclinic/database/repository/catalog"
	"lapidclinic/models"
	"lapidclinic/services/booking"
	ai "lapidclinic/services/intelligence"
	"lapidclinic/services/notification"
	"lapidclinic/utils"
)

// BookingHandler serves the public booking flow.
type BookingHandler struct {
	Svc     booking.BookingService
	Notif   notification.NotificationService
	AI      ai.AIService
	Catalog catalogRepo.ServiceRepository
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, notif notification.NotificationService, aiSvc ai.AIService, catalog catalogRepo.ServiceRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Notif: notif, AI: aiSvc, Catalog: catalog, Logger: logger}
}

// GetAvailability returns the free slots for a date. A closed day returns
// an empty list so the client renders a "closed" state.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	slots, err := h.Svc.Availability(c.Request.Context(), date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateAppointment books a new pending appointment. A spiritual insight is
// generated for the booking when the request carries none; generation
// failures fall back to fixed text and never block the flow.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req booking.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if req.SpiritualInsight == "" {
		serviceType := models.ServiceType("")
		if svc, err := h.Catalog.GetByID(c.Request.Context(), req.ServiceID); err == nil {
			serviceType = svc.Type
		}
		req.SpiritualInsight = h.AI.SpiritualInsight(c.Request.Context(), serviceType, req.ClientName)
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	// The pending notice is composed here so the confirmation page can
	// offer the wa.me link right away.
	msg, err := h.Notif.Compose(c.Request.Context(), models.TemplatePending, appt)
	if err != nil {
		h.Logger.Warn("failed to compose pending message", zap.String("appointmentId", appt.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":    appt,
		"pendingMessage": msg,
	})
}

// GetGreeting returns the homepage subtitle.
func (h *BookingHandler) GetGreeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"greeting": h.AI.DailyGreeting(c.Request.Context())})
}

// respondBookingError maps booking service errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
	case booking.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case booking.IsStoreUnavailable(err):
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
