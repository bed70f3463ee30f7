package storage

import (
	"context"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the external file store holding uploaded reports.
type StorageService interface {
	// UploadFile stores the content in the given folder and returns the
	// permanent public identifier.
	UploadFile(ctx context.Context, content io.Reader, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL returns a URL for fetching the stored file.
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
