package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "lapidclinic/database/repository/catalog"
	"lapidclinic/services/admin"
	"lapidclinic/services/booking"
	ai "lapidclinic/services/intelligence"
	"lapidclinic/utils"
)

// DashboardHandler serves the admin overview: stats and the weekly journal.
type DashboardHandler struct {
	Stats   admin.StatsService
	Booking booking.BookingService
	Catalog catalogRepo.ServiceRepository
	AI      ai.AIService
}

func NewDashboardHandler(stats admin.StatsService, bookingSvc booking.BookingService, catalog catalogRepo.ServiceRepository, aiSvc ai.AIService) *DashboardHandler {
	return &DashboardHandler{Stats: stats, Booking: bookingSvc, Catalog: catalog, AI: aiSvc}
}

// GetStats returns the dashboard aggregates.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Stats.ClinicStats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetWeeklyJournal returns the generated journal paragraph. Generation
// failures fall back to fixed text; only store failures surface here.
func (h *DashboardHandler) GetWeeklyJournal(c *gin.Context) {
	appts, err := h.Booking.ListAppointments(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	services, err := h.Catalog.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"journal": h.AI.WeeklyJournal(c.Request.Context(), appts, services)})
}
