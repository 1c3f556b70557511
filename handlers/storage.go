package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lapidclinic/services/storage"
	"lapidclinic/utils"
)

// StorageHandler serves image uploads for the service catalog and gallery.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(storageSvc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: storageSvc}
}

// UploadImage accepts a multipart "file" field, stores the blob and returns
// its public URL.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "image storage not configured", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "multipart file field is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "gallery")
	publicID, url, err := h.Storage.Upload(c.Request.Context(), file, folder)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "image upload failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"publicId": publicID, "url": url})
}
