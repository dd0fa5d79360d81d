package googledrive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"event-gallery/pkg/config"
)

// ErrNotDriveLink is returned for URLs that do not point at Google Drive.
var ErrNotDriveLink = errors.New("not a google drive link")

// DriveClient resolves shared Google Drive links for external event videos.
type DriveClient struct {
	apiKey          string
	credentialsFile string
	httpClient      *http.Client
}

// DriveFile holds the metadata we keep for a linked file.
type DriveFile struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}

func NewDriveClient(cfg config.GoogleDriveConfig) *DriveClient {
	return &DriveClient{
		apiKey:          cfg.APIKey,
		credentialsFile: cfg.CredentialsFile,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether metadata lookups are possible.
func (c *DriveClient) Configured() bool {
	return c.apiKey != "" || c.credentialsFile != ""
}

var fileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
}

// ExtractFileID pulls the file ID out of a shared Drive link.
func ExtractFileID(link string) (string, error) {
	if !strings.Contains(link, "drive.google.com") {
		return "", ErrNotDriveLink
	}
	for _, pattern := range fileIDPatterns {
		if m := pattern.FindStringSubmatch(link); len(m) == 2 {
			return m[1], nil
		}
	}
	return "", ErrNotDriveLink
}

// NormalizeLink rewrites a shared Drive link into its embeddable preview form.
func NormalizeLink(link string) (string, error) {
	fileID, err := ExtractFileID(link)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID), nil
}

func (c *DriveClient) service(ctx context.Context) (*drive.Service, error) {
	if c.credentialsFile != "" {
		data, err := os.ReadFile(c.credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read drive credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, drive.DriveMetadataReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse drive credentials: %w", err)
		}
		return drive.NewService(ctx, option.WithCredentials(creds))
	}
	if c.apiKey != "" {
		return drive.NewService(ctx, option.WithAPIKey(c.apiKey))
	}
	return nil, errors.New("drive client not configured")
}

// GetFileMetadata fetches name, MIME type and size for a Drive file.
func (c *DriveClient) GetFileMetadata(ctx context.Context, fileID string) (*DriveFile, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	file, err := srv.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch drive file %s: %w", fileID, err)
	}

	return &DriveFile{
		ID:       file.Id,
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     file.Size,
	}, nil
}

// CheckLink reports whether the shared file is still reachable. Files that
// were deleted or had sharing revoked come back unavailable.
func (c *DriveClient) CheckLink(ctx context.Context, fileID string) (bool, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return false, err
	}

	_, err = srv.Files.Get(fileID).Fields("id").Context(ctx).Do()
	if err != nil {
		if isNotFoundOrForbidden(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check drive file %s: %w", fileID, err)
	}
	return true, nil
}

func isNotFoundOrForbidden(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "403")
}
