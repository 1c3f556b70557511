package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lapidclinic/models"
	"lapidclinic/services/booking"
	"lapidclinic/utils"
)

// HoursHandler serves the weekly working-hours configuration.
type HoursHandler struct {
	Svc booking.BookingService
}

func NewHoursHandler(svc booking.BookingService) *HoursHandler {
	return &HoursHandler{Svc: svc}
}

// GetWorkingHours returns the weekday slot pools.
func (h *HoursHandler) GetWorkingHours(c *gin.Context) {
	hours, err := h.Svc.WorkingHours(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

// SetWorkingHours replaces the weekday slot pools.
func (h *HoursHandler) SetWorkingHours(c *gin.Context) {
	var body struct {
		Hours models.DailyHours `json:"hours"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetWorkingHours(c.Request.Context(), body.Hours); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": body.Hours})
}
