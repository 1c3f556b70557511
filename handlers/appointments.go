package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lapidclinic/models"
	"lapidclinic/services/booking"
	"lapidclinic/services/notification"
	"lapidclinic/utils"
)

// AppointmentHandler serves the admin appointment-management endpoints.
type AppointmentHandler struct {
	Svc    booking.BookingService
	Notif  notification.NotificationService
	Logger *zap.Logger
}

func NewAppointmentHandler(svc booking.BookingService, notif notification.NotificationService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Notif: notif, Logger: logger}
}

// ListAppointments returns every appointment, date descending. When the
// store is unreachable a cached snapshot may be served instead.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ConfirmAppointment confirms (or restores) an appointment and returns the
// composed confirmation message for out-of-band delivery.
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.transition(c, models.StatusConfirmed, models.TemplateConfirmation)
}

// CancelAppointment cancels an appointment, immediately re-offering its
// slot, and returns the composed cancellation message.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.transition(c, models.StatusCancelled, models.TemplateCancellation)
}

func (h *AppointmentHandler) transition(c *gin.Context, status models.AppointmentStatus, kind models.TemplateKind) {
	id := c.Param("id")

	var err error
	if status == models.StatusConfirmed {
		err = h.Svc.ConfirmAppointment(c.Request.Context(), id)
	} else {
		err = h.Svc.CancelAppointment(c.Request.Context(), id)
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	appt, err := h.Svc.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	msg, err := h.Notif.Compose(c.Request.Context(), kind, *appt)
	if err != nil {
		h.Logger.Warn("failed to compose notification", zap.String("appointmentId", id), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": appt,
		"message":     msg,
	})
}

// UpdateAppointment overwrites only the provided fields.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateAppointment(c.Request.Context(), id, upd); err != nil {
		respondBookingError(c, err)
		return
	}

	appt, err := h.Svc.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// DeleteAppointment removes the record permanently.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Svc.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// PreviewMessage composes any template kind for an appointment without
// changing its state; used for the reminder button and template editing.
func (h *AppointmentHandler) PreviewMessage(c *gin.Context) {
	kind := models.TemplateKind(c.Query("kind"))
	switch kind {
	case models.TemplateConfirmation, models.TemplateCancellation, models.TemplateReminder, models.TemplatePending:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "kind must be one of confirmation, cancellation, reminder, pending")
		return
	}

	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	msg, err := h.Notif.Compose(c.Request.Context(), kind, *appt)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
