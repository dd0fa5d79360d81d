package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"event-gallery/pkg/config"
)

// FileStorage abstracts the object storage used for event media.
type FileStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
}

// BunnyStorage stores files in a Bunny CDN storage zone.
type BunnyStorage struct {
	storageZone string
	accessKey   string
	baseURL     string
	cdnURL      string
	httpClient  *http.Client
}

func NewBunnyStorage(cfg config.BunnyConfig) *BunnyStorage {
	return &BunnyStorage{
		storageZone: cfg.StorageZone,
		accessKey:   cfg.AccessKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		cdnURL:      strings.TrimSuffix(cfg.CDNUrl, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *BunnyStorage) objectURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.storageZone, strings.TrimPrefix(path, "/"))
}

// Upload writes a file to the storage zone and returns its public URL.
func (s *BunnyStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(path), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("AccessKey", s.accessKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload returned status %d: %s", resp.StatusCode, string(body))
	}

	return s.PublicURL(path), nil
}

// Delete removes a file from the storage zone. Missing files are not an error.
func (s *BunnyStorage) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(path), nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("AccessKey", s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// PublicURL returns the CDN URL a stored file is served from.
func (s *BunnyStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s", s.cdnURL, strings.TrimPrefix(path, "/"))
}
