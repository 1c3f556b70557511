package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "lapidclinic/database/repository/catalog"
	"lapidclinic/models"
	"lapidclinic/utils"
)

// ServiceHandler serves the service catalog: public listing plus admin CRUD.
type ServiceHandler struct {
	Catalog catalogRepo.ServiceRepository
}

func NewServiceHandler(catalog catalogRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Catalog: catalog}
}

// ListServices returns the full catalog. The booking UI filters on the
// active flag; the admin UI shows everything.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService adds a catalog entry.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !svc.Type.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown service type")
		return
	}
	if svc.Duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be positive")
		return
	}
	if svc.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "price must not be negative")
		return
	}

	created, err := h.Catalog.Create(c.Request.Context(), svc)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": created})
}

// UpdateService replaces a catalog entry.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")
	if !svc.Type.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown service type")
		return
	}

	err := h.Catalog.Update(c.Request.Context(), svc)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService removes a catalog entry. Appointments referencing it keep
// their serviceId; message composition falls back to a generic name.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	err := h.Catalog.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "service not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "backing store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
