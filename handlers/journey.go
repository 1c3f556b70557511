package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lapidclinic/services/booking"
	"lapidclinic/services/journey"
	"lapidclinic/utils"
)

// JourneyHandler serves the client portal and the admin journey-notes tab.
// Portal access is a magic link carrying the phone number; no further
// authentication is specified for it.
type JourneyHandler struct {
	Journey journey.JourneyService
	Booking booking.BookingService
}

func NewJourneyHandler(journeySvc journey.JourneyService, bookingSvc booking.BookingService) *JourneyHandler {
	return &JourneyHandler{Journey: journeySvc, Booking: bookingSvc}
}

// GetPortal returns a client's appointments and journey notes in one call.
func (h *JourneyHandler) GetPortal(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "phone query parameter is required")
		return
	}

	appts, err := h.Booking.ListClientAppointments(c.Request.Context(), phone)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	notes, err := h.Journey.ListForClient(c.Request.Context(), phone)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": appts,
		"notes":        notes,
	})
}

// ListNotes returns a client's journey notes, newest first.
func (h *JourneyHandler) ListNotes(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "phone query parameter is required")
		return
	}

	notes, err := h.Journey.ListForClient(c.Request.Context(), phone)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// AddNote appends a journey note for a client.
func (h *JourneyHandler) AddNote(c *gin.Context) {
	var body struct {
		ClientPhone string `json:"clientPhone"`
		ClientName  string `json:"clientName"`
		Content     string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	note, err := h.Journey.Add(c.Request.Context(), body.ClientPhone, body.ClientName, body.Content)
	if err != nil {
		if journey.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"note": note})
}
