package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	settingsRepo "lapidclinic/database/repository/settings"
	"lapidclinic/models"
	"lapidclinic/services/notification"
	"lapidclinic/utils"
)

// SettingsHandler serves the admin-edited site content: message templates,
// numerology insights and the gallery.
type SettingsHandler struct {
	Notif    notification.NotificationService
	Settings settingsRepo.SettingsRepository
}

func NewSettingsHandler(notif notification.NotificationService, settings settingsRepo.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Notif: notif, Settings: settings}
}

// GetTemplates returns the message templates.
func (h *SettingsHandler) GetTemplates(c *gin.Context) {
	templates, err := h.Notif.Templates(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// SetTemplates replaces the message templates.
func (h *SettingsHandler) SetTemplates(c *gin.Context) {
	var templates models.MessageTemplates
	if err := c.ShouldBindJSON(&templates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Notif.SetTemplates(c.Request.Context(), templates); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetInsights returns the numerology personal-year texts.
func (h *SettingsHandler) GetInsights(c *gin.Context) {
	insights, err := h.Settings.GetInsights(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// SetInsights replaces the numerology personal-year texts.
func (h *SettingsHandler) SetInsights(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	insights := models.NumerologyInsights{}
	for key, text := range body {
		year, err := strconv.Atoi(key)
		if err != nil || year < 1 || year > 9 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "insight keys must be years 1-9")
			return
		}
		insights[year] = text
	}

	if err := h.Settings.SetInsights(c.Request.Context(), insights); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// ListGallery returns the site gallery.
func (h *SettingsHandler) ListGallery(c *gin.Context) {
	items, err := h.Settings.ListGallery(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": items})
}

// AddGalleryItem appends a gallery image.
func (h *SettingsHandler) AddGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if item.URL == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "url is required")
		return
	}

	created, err := h.Settings.AddGalleryItem(c.Request.Context(), item)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": created})
}

// DeleteGalleryItem removes a gallery image reference.
func (h *SettingsHandler) DeleteGalleryItem(c *gin.Context) {
	err := h.Settings.DeleteGalleryItem(c.Request.Context(), c.Param("id"))
	if errors.Is(err, settingsRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "gallery item not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
