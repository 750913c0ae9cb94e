package storage

import (
	"context"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for storage operations.
type StorageService interface {
	UploadStream(ctx context.Context, reader io.Reader, fileName, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
