package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Upload stores a blob in Cloudinary and returns its public identifier and
// delivery URL.
func (s *StorageServiceImpl) Upload(ctx context.Context, file io.Reader, destFolder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// Delete removes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
