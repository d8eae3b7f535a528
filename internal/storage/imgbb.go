package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/HoussamELM/PharmaRapide/config"
)

// ImgBBUploader posts images to the imgbb upload endpoint: one multipart form
// with the image and the API key, a public URL back. Images are capped at
// 10MB upstream, so the form is buffered in memory.
type ImgBBUploader struct {
	Client   *http.Client
	APIKey   string
	Endpoint string
}

type imgbbResponse struct {
	Data struct {
		ID         string `json:"id"`
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		DeleteURL  string `json:"delete_url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

func NewImgBBUploader(cfg config.ImgBBConfig) *ImgBBUploader {
	return &ImgBBUploader{
		Client:   &http.Client{Timeout: 15 * time.Second},
		APIKey:   cfg.APIKey,
		Endpoint: cfg.Endpoint,
	}
}

// UploadFile uploads an image to imgbb and returns its public URL.
func (u *ImgBBUploader) UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", objectKey)
	if err != nil {
		return "", fmt.Errorf("failed to build imgbb form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.WriteField("key", u.APIKey); err != nil {
		return "", fmt.Errorf("failed to build imgbb form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build imgbb form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build imgbb request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to imgbb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imgbb upload failed with status %d", resp.StatusCode)
	}

	var body imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode imgbb response: %w", err)
	}
	if !body.Success || body.Data.URL == "" {
		return "", fmt.Errorf("imgbb upload rejected (status %d)", body.Status)
	}

	return body.Data.URL, nil
}
