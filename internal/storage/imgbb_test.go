package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HoussamELM/PharmaRapide/config"
)

func TestImgBBUploader_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}
		if got := r.FormValue("key"); got != "test-key" {
			t.Errorf("key field = %q, want test-key", got)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image field missing: %v", err)
		} else {
			file.Close()
			if header.Filename != "prescriptions/abc.jpg" {
				t.Errorf("image filename = %q", header.Filename)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"x","url":"https://i.ibb.co/abc/ordonnance.jpg"},"success":true,"status":200}`))
	}))
	defer server.Close()

	uploader := NewImgBBUploader(config.ImgBBConfig{APIKey: "test-key", Endpoint: server.URL})

	url, err := uploader.UploadFile(context.Background(), strings.NewReader("fake-image-bytes"), "prescriptions/abc.jpg")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if url != "https://i.ibb.co/abc/ordonnance.jpg" {
		t.Fatalf("UploadFile url = %q", url)
	}
}

func TestImgBBUploader_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{},"success":false,"status":400}`))
	}))
	defer server.Close()

	uploader := NewImgBBUploader(config.ImgBBConfig{APIKey: "k", Endpoint: server.URL})

	if _, err := uploader.UploadFile(context.Background(), strings.NewReader("x"), "p.jpg"); err == nil {
		t.Fatalf("UploadFile must fail when imgbb reports success=false")
	}
}

func TestImgBBUploader_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	uploader := NewImgBBUploader(config.ImgBBConfig{APIKey: "k", Endpoint: server.URL})

	if _, err := uploader.UploadFile(context.Background(), strings.NewReader("x"), "p.jpg"); err == nil {
		t.Fatalf("UploadFile must fail on a non-200 response")
	}
}

func TestNewUploader_SelectsProvider(t *testing.T) {
	cfg := config.Config{Storage: config.StorageConfig{Provider: "imgbb"}}
	up, err := NewUploader(cfg)
	if err != nil {
		t.Fatalf("NewUploader(imgbb): %v", err)
	}
	if _, ok := up.(*ImgBBUploader); !ok {
		t.Fatalf("NewUploader(imgbb) = %T, want *ImgBBUploader", up)
	}

	cfg.Storage.Provider = "ftp"
	if _, err := NewUploader(cfg); err == nil {
		t.Fatalf("NewUploader must reject an unknown provider")
	}
}
