package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/HoussamELM/PharmaRapide/config"
)

// Uploader pushes a prescription image to the configured image host and
// returns its public URL.
type Uploader interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error)
}

// NewUploader builds the uploader selected by STORAGE_PROVIDER.
func NewUploader(cfg config.Config) (Uploader, error) {
	switch cfg.Storage.Provider {
	case "imgbb":
		return NewImgBBUploader(cfg.ImgBB), nil
	case "s3":
		return NewS3Uploader(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}
