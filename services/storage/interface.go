package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores image blobs and hands back publicly resolvable
// references for the service catalog and gallery.
type StorageService interface {
	// Upload stores the blob in the given folder and returns its public
	// identifier and URL.
	Upload(ctx context.Context, file io.Reader, destFolder string) (publicID string, url string, err error)
	Delete(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}
